package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wjiaha0/hanzi/internal/catalog"
	"github.com/wjiaha0/hanzi/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import items from JSON or XLSX",
		Long:  "Import items from a .json or .xlsx file, or JSON on stdin. Items are appended unless --replace is given.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runImport,
	}

	cmd.Flags().Bool("replace", false, "Replace the whole catalog (progress for dropped items is lost)")

	catalogCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) {
	replace, _ := cmd.Flags().GetBool("replace")

	items, err := readItems(cmd.InOrStdin(), args)
	if err != nil {
		exitErr("import", err)
	}
	if len(items) == 0 {
		exitErr("import", fmt.Errorf("%w: no items in input", model.ErrInvalidArgument))
	}

	a, err := openApp(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer a.close()

	if replace {
		cat, err := catalog.New(nil, catalog.NewULIDSource())
		if err != nil {
			exitErr("import", err)
		}
		a.catalog = cat
	}
	added, err := a.catalog.Import(items)
	if err != nil {
		exitErr("import", err)
	}
	if err := a.saveCatalog(); err != nil {
		exitErr("save catalog", err)
	}

	fmt.Printf(`{"ok":true,"imported":%d,"total":%d}`+"\n", len(added), a.catalog.Len())
}

// readItems decodes items from the named file, or JSON from stdin when no
// file (or "-") is given.
func readItems(stdin io.Reader, args []string) ([]model.Item, error) {
	if len(args) == 0 || args[0] == "-" {
		return catalog.ReadJSON(stdin)
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return decodeItems(f, args[0])
}

func decodeItems(r io.Reader, name string) ([]model.Item, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx":
		return catalog.ReadXLSX(r)
	case ".json":
		return catalog.ReadJSON(r)
	default:
		return nil, fmt.Errorf("%w: unsupported file type %q (use .json or .xlsx)", model.ErrInvalidArgument, filepath.Ext(name))
	}
}

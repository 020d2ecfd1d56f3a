package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wjiaha0/hanzi/internal/catalog"
	"github.com/wjiaha0/hanzi/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export the catalog as JSON or XLSX",
		Long:  "Export the catalog to a .json or .xlsx file, or JSON on stdout.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runExport,
	}

	catalogCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	a, err := openApp(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer a.close()

	items := a.catalog.Items()
	if len(args) == 0 || args[0] == "-" {
		if err := catalog.WriteJSON(cmd.OutOrStdout(), items); err != nil {
			exitErr("export", err)
		}
		return
	}

	path := args[0]
	write := catalog.WriteJSON
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		write = catalog.WriteXLSX
	case ".json":
	default:
		exitErr("export", fmt.Errorf("%w: unsupported file type %q (use .json or .xlsx)", model.ErrInvalidArgument, filepath.Ext(path)))
	}

	f, err := os.Create(path)
	if err != nil {
		exitErr("export", err)
	}
	if err := write(f, items); err != nil {
		f.Close()
		exitErr("export", err)
	}
	if err := f.Close(); err != nil {
		exitErr("export", err)
	}

	fmt.Printf(`{"ok":true,"exported":%d,"path":%q}`+"\n", len(items), path)
}

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/wjiaha0/hanzi/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rm <position>",
		Short: "Remove an item and its progress",
		Long:  "Remove an item. Later items move up one position but keep their progress.",
		Args:  cobra.ExactArgs(1),
		Run:   runRm,
	}

	catalogCmd.AddCommand(cmd)
}

func runRm(cmd *cobra.Command, args []string) {
	pos, err := strconv.Atoi(args[0])
	if err != nil {
		exitErr("rm", fmt.Errorf("%w: position %q", model.ErrInvalidArgument, args[0]))
	}

	a, err := openApp(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer a.close()

	it, err := a.catalog.Remove(pos)
	if err != nil {
		exitErr("rm", err)
	}
	if err := a.saveCatalog(); err != nil {
		exitErr("save catalog", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"position":%d,"char":%q,"id":%q}`+"\n", pos, it.Char, it.ID)
}

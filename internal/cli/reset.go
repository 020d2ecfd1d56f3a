package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wjiaha0/hanzi/internal/catalog"
	"github.com/wjiaha0/hanzi/internal/model"
	"github.com/wjiaha0/hanzi/internal/progress"
)

func init() {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Discard learning progress",
		Long:  "Discard learning progress. With --all, also restore default settings and the built-in catalog.",
		Run:   runReset,
	}

	cmd.Flags().Bool("all", false, "Also reset settings and catalog")
	cmd.Flags().Bool("yes", false, "Do not ask for confirmation")

	RootCmd.AddCommand(cmd)
}

func runReset(cmd *cobra.Command, args []string) {
	all, _ := cmd.Flags().GetBool("all")
	yes, _ := cmd.Flags().GetBool("yes")

	if !yes {
		fmt.Fprint(cmd.ErrOrStderr(), "This discards all progress. Type yes to continue: ")
		var answer string
		fmt.Fscanln(cmd.InOrStdin(), &answer)
		if answer != "yes" {
			fmt.Fprintln(cmd.ErrOrStderr(), "aborted")
			return
		}
	}

	a, err := openApp(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer a.close()

	a.tracker.Reset(a.today())
	a.saveProgress()

	if all {
		a.settings = model.DefaultSettings()
		if err := a.store.Delete(a.ctx, progress.SettingsKey); err != nil {
			warn("reset settings", err)
		}

		items, err := catalog.Seed()
		if err != nil {
			exitErr("reset", err)
		}
		if a.catalog, err = catalog.New(items, catalog.NewULIDSource()); err != nil {
			exitErr("reset", err)
		}
		if err := a.saveCatalog(); err != nil {
			exitErr("save catalog", err)
		}
	}

	fmt.Printf(`{"ok":true,"all":%t}`+"\n", all)
}

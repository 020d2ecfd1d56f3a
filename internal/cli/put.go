package cli

import (
	"github.com/spf13/cobra"

	"github.com/wjiaha0/hanzi/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append an item to the catalog",
		Run:   runAdd,
	}

	addItemFlags(cmd)
	cmd.MarkFlagRequired("char")
	cmd.MarkFlagRequired("pinyin")
	cmd.MarkFlagRequired("phrase")

	catalogCmd.AddCommand(cmd)
}

func runAdd(cmd *cobra.Command, args []string) {
	a, err := openApp(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer a.close()

	it, err := a.catalog.Add(itemFromFlags(cmd, model.Item{}))
	if err != nil {
		exitErr("add", err)
	}
	if err := a.saveCatalog(); err != nil {
		exitErr("save catalog", err)
	}

	printJSON(itemDetail{Position: a.catalog.Len() - 1, Item: it})
}

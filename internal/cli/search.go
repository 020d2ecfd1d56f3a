package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wjiaha0/hanzi/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search catalog items",
		Long:  "Search item characters, pinyin, phrases and meanings for matching text.",
		Run:   runSearch,
	}

	cmd.Flags().StringP("category", "c", "", "Filter by category")
	cmd.Flags().IntP("limit", "l", 20, "Max results")

	catalogCmd.AddCommand(cmd)
}

func runSearch(cmd *cobra.Command, args []string) {
	query := strings.Join(args, " ")
	category, _ := cmd.Flags().GetString("category")
	limit, _ := cmd.Flags().GetInt("limit")

	if strings.TrimSpace(query) == "" && category == "" {
		exitErr("search", fmt.Errorf("a query or --category is required"))
	}

	a, err := openApp(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer a.close()

	results, err := a.store.SearchItems(cmd.Context(), store.SearchParams{
		Query:    query,
		Category: category,
		Limit:    limit,
	})
	if err != nil {
		exitErr("search", err)
	}
	if results == nil {
		results = []store.ItemMatch{}
	}

	printJSON(results)
}

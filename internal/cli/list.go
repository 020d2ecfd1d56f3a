package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wjiaha0/hanzi/internal/review"
	"github.com/wjiaha0/hanzi/internal/ui"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog items with their progress",
		Run:   runList,
	}

	cmd.Flags().IntP("limit", "l", 0, "Max results (0 for all)")
	cmd.Flags().Bool("learned", false, "Only learned items")
	cmd.Flags().Bool("weak", false, "Only learned items below mastery 60")
	cmd.Flags().Bool("chars-only", false, "Only output characters")

	catalogCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")
	learnedOnly, _ := cmd.Flags().GetBool("learned")
	weakOnly, _ := cmd.Flags().GetBool("weak")
	charsOnly, _ := cmd.Flags().GetBool("chars-only")

	a, err := openApp(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer a.close()

	var rows []itemDetail
	for i, it := range a.catalog.Items() {
		if limit > 0 && len(rows) >= limit {
			break
		}
		learned := a.tracker.IsLearned(it.ID)
		m, _ := a.tracker.Mastery(it.ID)
		if (learnedOnly || weakOnly) && !learned {
			continue
		}
		if weakOnly && m >= review.MasteredThreshold {
			continue
		}
		rows = append(rows, itemDetail{Position: i, Item: it, Learned: learned, Mastery: m})
	}

	if charsOnly {
		for _, r := range rows {
			fmt.Print(r.Item.Char)
		}
		fmt.Println()
		return
	}

	if textOutput() {
		for _, r := range rows {
			mark := ui.Muted.Render("·")
			if r.Learned {
				mark = ui.MasteryText(r.Mastery, review.MasteredThreshold)
			}
			fmt.Printf("%4d  %s  %-8s %s  %s\n", r.Position, r.Item.Char, r.Item.Pinyin, mark, ui.Muted.Render(r.Item.Phrase))
		}
		return
	}
	if rows == nil {
		rows = []itemDetail{}
	}
	printJSON(rows)
}

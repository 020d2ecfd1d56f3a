package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wjiaha0/hanzi/internal/model"
	"github.com/wjiaha0/hanzi/internal/review"
	"github.com/wjiaha0/hanzi/internal/ui"
)

func init() {
	cmd := &cobra.Command{
		Use:   "study [position|char]",
		Short: "Study an item and mark it learned",
		Long:  "Show an item and mark it learned. Without an argument, resumes after the most recently learned item.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runStudy,
	}

	RootCmd.AddCommand(cmd)
}

type studyResult struct {
	Position     int        `json:"position"`
	Total        int        `json:"total"`
	Item         model.Item `json:"item"`
	Phrases      []string   `json:"phrases"`
	NewlyLearned bool       `json:"newly_learned"`
	Mastery      int        `json:"mastery"`
	Streak       int        `json:"streak"`
	TodayLearned int        `json:"today_learned"`
}

func runStudy(cmd *cobra.Command, args []string) {
	a, err := openApp(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer a.close()

	if a.catalog.Len() == 0 {
		exitErr("study", fmt.Errorf("%w: catalog is empty", model.ErrNotFound))
	}

	pos := resumePosition(a)
	if len(args) > 0 {
		if pos, err = a.resolveItem(args[0]); err != nil {
			exitErr("study", err)
		}
	}

	it, _ := a.catalog.At(pos)
	added, err := a.tracker.MarkLearned(it.ID, a.today())
	if err != nil {
		exitErr("study", err)
	}
	a.saveProgress()

	snap := a.tracker.Snapshot()
	res := studyResult{
		Position:     pos,
		Total:        a.catalog.Len(),
		Item:         it,
		Phrases:      it.Phrases(),
		NewlyLearned: added,
		Mastery:      snap.Mastery[it.ID],
		Streak:       snap.Streak,
		TodayLearned: snap.TodayLearned,
	}

	if textOutput() {
		printStudyText(res)
		return
	}
	printJSON(res)
}

// resumePosition is the item after the most recently learned one, clamped to
// the last item.
func resumePosition(a *app) int {
	id, ok := a.tracker.LastLearned()
	if !ok {
		return 0
	}
	pos, ok := a.catalog.IndexOf(id)
	if !ok {
		return 0
	}
	return min(pos+1, a.catalog.Len()-1)
}

func printStudyText(r studyResult) {
	fmt.Println(ui.Panel.Render(ui.Big.Render(r.Item.Char)))
	fmt.Println(ui.LabelValue("pinyin", r.Item.Pinyin))
	fmt.Println(ui.LabelValue("phrases", strings.Join(r.Phrases, "  ")))
	if r.Item.Meaning != "" {
		fmt.Println(ui.LabelValue("meaning", r.Item.Meaning))
	}
	if r.Item.Radical != "" || r.Item.Strokes > 0 {
		fmt.Println(ui.Muted.Render(fmt.Sprintf("radical %s · %d strokes", r.Item.Radical, r.Item.Strokes)))
	}
	fmt.Println()
	status := ui.Muted.Render("already learned")
	if r.NewlyLearned {
		status = ui.Good.Render("new!")
	}
	fmt.Printf("%s %d/%d  %s  %s %s\n",
		ui.Key.Render("item"), r.Position+1, r.Total, status,
		ui.Key.Render("mastery"), ui.MasteryText(r.Mastery, review.MasteredThreshold))
	fmt.Printf("%s %s %d  %s %d\n", ui.IconFire, ui.Key.Render("streak"), r.Streak, ui.Key.Render("today"), r.TodayLearned)
}

package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/wjiaha0/hanzi/internal/store"
	"github.com/wjiaha0/hanzi/internal/ui"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show learning and database statistics",
		Run:   runStats,
	}

	RootCmd.AddCommand(cmd)
}

type statsResult struct {
	Learned        int          `json:"learned"`
	Total          int          `json:"total"`
	Percent        int          `json:"percent"`
	Streak         int          `json:"streak"`
	TodayLearned   int          `json:"today_learned"`
	LastVisit      string       `json:"last_visit,omitempty"`
	TotalDays      int          `json:"total_days"`
	TotalMinutes   float64      `json:"total_minutes"`
	AverageMastery int          `json:"average_mastery"`
	TotalReviews   int          `json:"total_reviews"`
	DB             *store.Stats `json:"db"`
}

func runStats(cmd *cobra.Command, args []string) {
	a, err := openApp(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer a.close()

	dbStats, err := a.store.Stats(cmd.Context())
	if err != nil {
		exitErr("stats", err)
	}

	p := a.tracker.Snapshot()
	res := statsResult{
		Learned:        len(p.Learned),
		Total:          a.catalog.Len(),
		Streak:         p.Streak,
		TodayLearned:   p.TodayLearned,
		TotalDays:      p.Stats.TotalDays,
		TotalMinutes:   p.TotalMinutes,
		AverageMastery: a.tracker.AverageMastery(),
		TotalReviews:   p.Stats.TotalReviews,
		DB:             dbStats,
	}
	if !p.LastVisit.IsZero() {
		res.LastVisit = p.LastVisit.String()
	}
	if res.Total > 0 {
		res.Percent = int(math.Round(float64(res.Learned) * 100 / float64(res.Total)))
	}

	if textOutput() {
		fmt.Println(ui.Heading(ui.IconChart, "Progress"))
		fmt.Println(ui.LabelValue("learned", fmt.Sprintf("%d/%d (%d%%)", res.Learned, res.Total, res.Percent)))
		fmt.Println(ui.LabelValue("streak", fmt.Sprintf("%s %d days", ui.IconFire, res.Streak)))
		fmt.Println(ui.LabelValue("today", res.TodayLearned))
		fmt.Println(ui.LabelValue("study days", res.TotalDays))
		fmt.Println(ui.LabelValue("study time", fmt.Sprintf("%.0f min", res.TotalMinutes)))
		fmt.Println(ui.LabelValue("average mastery", ui.MasteryBar(res.AverageMastery, 20)+fmt.Sprintf(" %d", res.AverageMastery)))
		fmt.Println(ui.LabelValue("reviews", res.TotalReviews))
		fmt.Println(ui.Muted.Render(fmt.Sprintf("%s · %d bytes", dbStats.DBPath, dbStats.DBSizeBytes)))
		return
	}
	printJSON(res)
}

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/wjiaha0/hanzi/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "time",
		Short: "Record study time",
	}

	add := &cobra.Command{
		Use:   "add <minutes>",
		Short: "Add minutes of study time",
		Args:  cobra.ExactArgs(1),
		Run:   runTimeAdd,
	}

	cmd.AddCommand(add)
	RootCmd.AddCommand(cmd)
}

func runTimeAdd(cmd *cobra.Command, args []string) {
	minutes, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		exitErr("time add", fmt.Errorf("%w: minutes %q", model.ErrInvalidArgument, args[0]))
	}

	a, err := openApp(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer a.close()

	if err := a.tracker.AddStudyMinutes(minutes); err != nil {
		exitErr("time add", err)
	}
	a.saveProgress()

	fmt.Printf(`{"ok":true,"total_minutes":%g}`+"\n", a.tracker.Snapshot().TotalMinutes)
}

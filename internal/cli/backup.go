package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/wjiaha0/hanzi/internal/model"
	"github.com/wjiaha0/hanzi/internal/progress"
)

func init() {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export or restore progress and settings",
	}

	export := &cobra.Command{
		Use:   "export [file]",
		Short: "Write progress and settings as JSON",
		Args:  cobra.MaximumNArgs(1),
		Run:   runBackupExport,
	}

	restore := &cobra.Command{
		Use:   "import [file]",
		Short: "Restore progress and settings from a backup",
		Long:  "Restore progress and settings from a backup file or stdin. Missing fields take default values.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runBackupImport,
	}

	cmd.AddCommand(export, restore)
	RootCmd.AddCommand(cmd)
}

func runBackupExport(cmd *cobra.Command, args []string) {
	a, err := openApp(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer a.close()

	b, _ := json.MarshalIndent(model.Backup{
		Progress:   a.tracker.Snapshot(),
		Settings:   a.settings,
		ExportDate: time.Now().UTC(),
	}, "", "  ")

	if len(args) == 0 || args[0] == "-" {
		fmt.Println(string(b))
		return
	}
	if err := os.WriteFile(args[0], append(b, '\n'), 0o644); err != nil {
		exitErr("backup export", err)
	}
	fmt.Printf(`{"ok":true,"path":%q}`+"\n", args[0])
}

func runBackupImport(cmd *cobra.Command, args []string) {
	var data []byte
	var err error
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		exitErr("read backup", err)
	}

	b, err := progress.MergeBackup(data)
	if err != nil {
		exitErr("backup import", err)
	}

	a, err := openApp(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer a.close()

	a.tracker = progress.NewTracker(b.Progress)
	a.settings = b.Settings
	dropped := a.tracker.Prune(a.catalog.Contains)
	a.saveProgress()
	a.saveSettings()

	snap := a.tracker.Snapshot()
	fmt.Printf(`{"ok":true,"learned":%d,"dropped":%d}`+"\n", len(snap.Learned), dropped)
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wjiaha0/hanzi/internal/ui"
)

func init() {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show settings",
		Run:   runSettings,
	}

	set := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one setting",
		Long: `Change one setting. Keys:
  theme           light, dark, auto
  fontSize        small, medium, large
  autoPlay        true, false
  autoSpeak       true, false
  animationSpeed  1-10
  voiceRate       0.5-2
  voicePitch      0.5-2`,
		Args: cobra.ExactArgs(2),
		Run:  runSettingsSet,
	}

	cmd.AddCommand(set)
	RootCmd.AddCommand(cmd)
}

func runSettings(cmd *cobra.Command, args []string) {
	a, err := openApp(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer a.close()

	if textOutput() {
		s := a.settings
		fmt.Println(ui.LabelValue("theme", s.Theme))
		fmt.Println(ui.LabelValue("fontSize", s.FontSize))
		fmt.Println(ui.LabelValue("autoPlay", s.AutoPlay))
		fmt.Println(ui.LabelValue("autoSpeak", s.AutoSpeak))
		fmt.Println(ui.LabelValue("animationSpeed", s.AnimationSpeed))
		fmt.Println(ui.LabelValue("voiceRate", s.VoiceRate))
		fmt.Println(ui.LabelValue("voicePitch", s.VoicePitch))
		return
	}
	printJSON(a.settings)
}

func runSettingsSet(cmd *cobra.Command, args []string) {
	a, err := openApp(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer a.close()

	if err := a.settings.Set(args[0], args[1]); err != nil {
		exitErr("settings", err)
	}
	a.saveSettings()

	printJSON(a.settings)
}

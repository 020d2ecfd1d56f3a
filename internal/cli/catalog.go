package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/wjiaha0/hanzi/internal/model"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the item catalog",
}

func init() {
	show := &cobra.Command{
		Use:   "show <position|char>",
		Short: "Show one item with its progress",
		Args:  cobra.ExactArgs(1),
		Run:   runCatalogShow,
	}

	edit := &cobra.Command{
		Use:   "edit <position>",
		Short: "Edit an item; progress stays attached",
		Args:  cobra.ExactArgs(1),
		Run:   runCatalogEdit,
	}
	addItemFlags(edit)

	catalogCmd.AddCommand(show, edit)
	RootCmd.AddCommand(catalogCmd)
}

func addItemFlags(cmd *cobra.Command) {
	cmd.Flags().String("char", "", "Character")
	cmd.Flags().String("pinyin", "", "Pinyin with tone marks")
	cmd.Flags().String("phrase", "", "Example phrases, separated by 、")
	cmd.Flags().String("meaning", "", "Meaning")
	cmd.Flags().String("category", "", "Category")
	cmd.Flags().Int("strokes", 0, "Stroke count")
	cmd.Flags().String("radical", "", "Radical")
}

// itemFromFlags overlays the flags that were set on base.
func itemFromFlags(cmd *cobra.Command, base model.Item) model.Item {
	it := base
	str := map[string]*string{
		"char":     &it.Char,
		"pinyin":   &it.Pinyin,
		"phrase":   &it.Phrase,
		"meaning":  &it.Meaning,
		"category": &it.Category,
		"radical":  &it.Radical,
	}
	for name, dst := range str {
		if cmd.Flags().Changed(name) {
			*dst, _ = cmd.Flags().GetString(name)
		}
	}
	if cmd.Flags().Changed("strokes") {
		it.Strokes, _ = cmd.Flags().GetInt("strokes")
	}
	return it
}

type itemDetail struct {
	Position int        `json:"position"`
	Item     model.Item `json:"item"`
	Learned  bool       `json:"learned"`
	Mastery  int        `json:"mastery"`
}

func runCatalogShow(cmd *cobra.Command, args []string) {
	a, err := openApp(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer a.close()

	pos, err := a.resolveItem(args[0])
	if err != nil {
		exitErr("show", err)
	}
	it, _ := a.catalog.At(pos)
	m, _ := a.tracker.Mastery(it.ID)
	printJSON(itemDetail{
		Position: pos,
		Item:     it,
		Learned:  a.tracker.IsLearned(it.ID),
		Mastery:  m,
	})
}

func runCatalogEdit(cmd *cobra.Command, args []string) {
	pos, err := strconv.Atoi(args[0])
	if err != nil {
		exitErr("edit", fmt.Errorf("%w: position %q", model.ErrInvalidArgument, args[0]))
	}

	a, err := openApp(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer a.close()

	cur, err := a.catalog.At(pos)
	if err != nil {
		exitErr("edit", err)
	}
	it, err := a.catalog.Edit(pos, itemFromFlags(cmd, cur))
	if err != nil {
		exitErr("edit", err)
	}
	if err := a.saveCatalog(); err != nil {
		exitErr("save catalog", err)
	}
	printJSON(itemDetail{Position: pos, Item: it, Learned: a.tracker.IsLearned(it.ID)})
}

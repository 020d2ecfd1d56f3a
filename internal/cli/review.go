package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wjiaha0/hanzi/internal/catalog"
	"github.com/wjiaha0/hanzi/internal/model"
	"github.com/wjiaha0/hanzi/internal/review"
	"github.com/wjiaha0/hanzi/internal/ui"
)

func init() {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Review learned items",
		Long: `Walk a review queue. For each item answer:
  e, easy   I knew it (+20)
  h, hard   I did not (-10)
  n, next   skip without scoring
  q, quit   stop the session`,
		Run: runReview,
	}

	cmd.Flags().StringP("mode", "m", "targeted", "Selection mode: targeted or random")
	cmd.Flags().IntP("limit", "l", 10, "Max items in the queue")
	cmd.Flags().Bool("include-mastered", false, "Include items at mastery 60 or above (targeted mode)")

	RootCmd.AddCommand(cmd)
}

type reviewSummary struct {
	Mode     string          `json:"mode"`
	Queued   int             `json:"queued"`
	Reviewed int             `json:"reviewed"`
	Skipped  int             `json:"skipped"`
	Finished bool            `json:"finished"`
	Results  []review.Result `json:"results"`
	Average  int             `json:"average_mastery"`
}

func runReview(cmd *cobra.Command, args []string) {
	mode, _ := cmd.Flags().GetString("mode")
	limit, _ := cmd.Flags().GetInt("limit")
	includeMastered, _ := cmd.Flags().GetBool("include-mastered")

	a, err := openApp(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer a.close()

	sel := review.NewSelector(a.tracker, a.catalog, nil)
	var queue []int
	switch mode {
	case "targeted":
		queue, err = sel.Targeted(includeMastered, limit)
	case "random":
		queue, err = sel.Random(limit)
	default:
		exitErr("review", fmt.Errorf("%w: mode %q (valid: targeted, random)", model.ErrInvalidArgument, mode))
	}
	if isEmptySelection(err) {
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing to review right now. Study some new items first.")
		return
	}
	if err != nil {
		exitErr("review", err)
	}

	sess := review.NewSession(a.tracker, a.catalog, a.clock)
	if err := sess.Start(queue); err != nil {
		exitErr("review", err)
	}

	sum, err := reviewLoop(sess, a.catalog, cmd.InOrStdin(), cmd.ErrOrStderr(), a.saveProgress)
	if err != nil {
		exitErr("review", err)
	}
	sum.Mode = mode
	sum.Average = a.tracker.AverageMastery()

	if textOutput() {
		fmt.Println(ui.Heading(ui.IconReview, "Review done"))
		fmt.Println(ui.LabelValue("reviewed", fmt.Sprintf("%d/%d", sum.Reviewed, sum.Queued)))
		fmt.Println(ui.LabelValue("skipped", sum.Skipped))
		fmt.Println(ui.LabelValue("average mastery", sum.Average))
		return
	}
	printJSON(sum)
}

// reviewLoop prompts on out and reads answers from in until the session
// finishes, the user quits, or input ends. save runs after every score.
func reviewLoop(sess *review.Session, cat *catalog.Catalog, in io.Reader, out io.Writer, save func()) (reviewSummary, error) {
	sum := reviewSummary{Queued: sess.Len()}
	sc := bufio.NewScanner(in)

	for sess.State() == review.Active {
		pos, _, err := sess.Current()
		if err != nil {
			return sum, err
		}
		it, err := cat.At(pos)
		if err != nil {
			return sum, err
		}
		fmt.Fprintf(out, "\n[%d/%d] %s  %s  %s\n", sess.Position()+1, sess.Len(),
			ui.Big.Render(it.Char), it.Pinyin, ui.Muted.Render(it.Phrase))
		fmt.Fprint(out, "easy/hard/next/quit> ")

		if !sc.Scan() {
			break
		}
		answer := strings.ToLower(strings.TrimSpace(sc.Text()))
		switch answer {
		case "q", "quit":
			if err := sess.Abandon(); err != nil {
				return sum, err
			}
		case "n", "next", "":
			if err := sess.Advance(); err != nil {
				return sum, err
			}
			sum.Skipped++
		default:
			outcome, err := model.ParseOutcome(answer)
			if err != nil {
				fmt.Fprintln(out, ui.Warn.Render("answer e, h, n or q"))
				continue
			}
			r, err := sess.MarkOutcome(outcome)
			if err != nil {
				return sum, err
			}
			save()
			fmt.Fprintf(out, "mastery %s\n", ui.MasteryText(r.Mastery, review.MasteredThreshold))
		}
	}
	if err := sc.Err(); err != nil && !errors.Is(err, io.EOF) {
		return sum, err
	}

	sum.Results = sess.Results()
	sum.Reviewed = len(sum.Results)
	sum.Finished = sess.State() == review.Finished
	if sess.State() == review.Active {
		if err := sess.Abandon(); err != nil {
			return sum, err
		}
	}
	return sum, nil
}

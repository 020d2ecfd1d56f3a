package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/wjiaha0/hanzi/internal/calendar"
	"github.com/wjiaha0/hanzi/internal/catalog"
	"github.com/wjiaha0/hanzi/internal/model"
	"github.com/wjiaha0/hanzi/internal/progress"
	"github.com/wjiaha0/hanzi/internal/review"
)

func newReviewFixture(t *testing.T) (*review.Session, *catalog.Catalog, *progress.Tracker) {
	t.Helper()
	cat, err := catalog.New([]model.Item{
		{ID: "a", Char: "人", Pinyin: "rén", Phrase: "人们"},
		{ID: "b", Char: "大", Pinyin: "dà", Phrase: "大小"},
		{ID: "c", Char: "小", Pinyin: "xiǎo", Phrase: "小心"},
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	day := calendar.New(2024, 5, 1)
	tr := progress.NewTracker(model.DefaultProgress())
	for _, id := range []model.ItemID{"a", "b", "c"} {
		tr.MarkLearned(id, day)
	}
	return review.NewSession(tr, cat, calendar.Fixed(day)), cat, tr
}

func TestReviewLoop(t *testing.T) {
	sess, cat, tr := newReviewFixture(t)
	if err := sess.Start([]int{0, 1, 2}); err != nil {
		t.Fatal(err)
	}

	saves := 0
	var out bytes.Buffer
	sum, err := reviewLoop(sess, cat, strings.NewReader("e\nbogus\nn\nhard\n"), &out, func() { saves++ })
	if err != nil {
		t.Fatalf("loop: %v", err)
	}

	if !sum.Finished || sum.Reviewed != 2 || sum.Skipped != 1 {
		t.Errorf("unexpected summary %+v", sum)
	}
	if saves != 2 {
		t.Errorf("expected a save per score, got %d", saves)
	}
	if m, _ := tr.Mastery("a"); m != 30 {
		t.Errorf("expected a at 30, got %d", m)
	}
	if m, _ := tr.Mastery("b"); m != 10 {
		t.Errorf("skipped item must keep its score, got %d", m)
	}
	if m, _ := tr.Mastery("c"); m != 0 {
		t.Errorf("expected c at 0, got %d", m)
	}
	if !strings.Contains(out.String(), "answer e, h, n or q") {
		t.Error("expected a hint after an unknown answer")
	}
}

func TestReviewLoopQuitAndEOF(t *testing.T) {
	sess, cat, _ := newReviewFixture(t)
	sess.Start([]int{2, 1, 0})

	sum, err := reviewLoop(sess, cat, strings.NewReader("e\nq\n"), &bytes.Buffer{}, func() {})
	if err != nil {
		t.Fatal(err)
	}
	if sum.Finished || sum.Reviewed != 1 || sess.State() != review.Idle {
		t.Errorf("quit should abandon: %+v state %s", sum, sess.State())
	}

	sess.Start([]int{0, 1})
	sum, _ = reviewLoop(sess, cat, strings.NewReader(""), &bytes.Buffer{}, func() {})
	if sum.Finished || sum.Reviewed != 0 || sess.State() != review.Idle {
		t.Errorf("end of input should abandon: %+v state %s", sum, sess.State())
	}
}

func TestDecodeItemsByExtension(t *testing.T) {
	items, err := decodeItems(strings.NewReader(`[{"char":"人","pinyin":"rén","phrase":"人们"}]`), "words.JSON")
	if err != nil || len(items) != 1 {
		t.Fatalf("expected 1 item, got %d (%v)", len(items), err)
	}

	if _, err := decodeItems(strings.NewReader(""), "words.csv"); !errors.Is(err, model.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for csv, got %v", err)
	}
}

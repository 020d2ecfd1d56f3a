package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/wjiaha0/hanzi/internal/calendar"
	"github.com/wjiaha0/hanzi/internal/model"
	"github.com/wjiaha0/hanzi/internal/progress"
)

var _ Store = (*SQLiteStore)(nil)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dir := t.TempDir()
	s, err := NewSQLiteStore(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testItems() []model.Item {
	return []model.Item{
		{ID: "01A", Char: "人", Pinyin: "rén", Phrase: "人们、大人", Meaning: "person", Category: "基础", Strokes: 2, Radical: "人"},
		{ID: "01B", Char: "大", Pinyin: "dà", Phrase: "大小、大学", Meaning: "big", Category: "基础", Strokes: 3, Radical: "大"},
		{ID: "01C", Char: "水", Pinyin: "shuǐ", Phrase: "喝水", Meaning: "water", Category: "自然", Strokes: 4, Radical: "水"},
	}
}

func TestKVPutAndGet(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if _, ok, err := s.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}

	if err := s.Put(ctx, "k", `{"a":1}`); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, ok, err := s.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got != `{"a":1}` {
		t.Errorf("expected stored value, got %q", got)
	}

	// Overwrite
	s.Put(ctx, "k", `{"a":2}`)
	got, _, _ = s.Get(ctx, "k")
	if got != `{"a":2}` {
		t.Errorf("expected overwritten value, got %q", got)
	}
}

func TestKVDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Put(ctx, "k", "v")
	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "k"); ok {
		t.Error("expected key to be gone")
	}
	if err := s.Delete(ctx, "k"); err != nil {
		t.Errorf("deleting a missing key should succeed, got %v", err)
	}
}

func TestReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "hanzi.db")

	s, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatal(err)
	}
	s.Put(ctx, "k", "v")
	s.SaveItems(ctx, testItems())
	s.Close()

	s, err = NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	if v, ok, _ := s.Get(ctx, "k"); !ok || v != "v" {
		t.Errorf("expected v after reopen, got %q (%v)", v, ok)
	}
	if items, _ := s.LoadItems(ctx); len(items) != 3 {
		t.Errorf("expected 3 items after reopen, got %d", len(items))
	}
}

func TestSaveAndLoadItems(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	items, err := s.LoadItems(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty catalog, got %d", len(items))
	}

	want := testItems()
	if err := s.SaveItems(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.LoadItems(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d: got %+v, want %+v", i, got[i], want[i])
		}
	}

	// Saving a reordered subset replaces everything.
	if err := s.SaveItems(ctx, []model.Item{want[2], want[0]}); err != nil {
		t.Fatal(err)
	}
	got, _ = s.LoadItems(ctx)
	if len(got) != 2 || got[0].ID != "01C" || got[1].ID != "01A" {
		t.Errorf("unexpected items after replace: %+v", got)
	}
}

func TestSaveItemsRollsBack(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	s.SaveItems(ctx, testItems())

	bad := testItems()
	bad[1].ID = ""
	if err := s.SaveItems(ctx, bad); err == nil {
		t.Fatal("expected error for item without id")
	}
	if items, _ := s.LoadItems(ctx); len(items) != 3 {
		t.Errorf("failed save must keep the old catalog, got %d items", len(items))
	}
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	s.SaveItems(ctx, testItems())
	s.Put(ctx, "b", "1")
	s.Put(ctx, "a", "2")

	st, err := s.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if st.Items != 3 {
		t.Errorf("expected 3 items, got %d", st.Items)
	}
	if len(st.Keys) != 2 || st.Keys[0] != "a" {
		t.Errorf("expected sorted keys [a b], got %v", st.Keys)
	}
	if len(st.Categories) != 2 || st.Categories[0].Category != "基础" || st.Categories[0].Count != 2 {
		t.Errorf("unexpected categories %+v", st.Categories)
	}
	if st.DBPath != s.Path() {
		t.Errorf("expected db path %s, got %s", s.Path(), st.DBPath)
	}
}

func TestProgressThroughSQLite(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	day := calendar.New(2024, 3, 10)
	tr := progress.NewTracker(model.DefaultProgress())
	tr.MarkLearned("01A", day)
	tr.AdjustMastery("01A", model.OutcomeEasy)
	tr.RecordVisit(day.AddDays(1))

	if err := progress.Save(ctx, s, tr); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := progress.Load(ctx, s, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Mastery["01A"] != 30 || got.Streak != 2 || got.LastVisit != day.AddDays(1) {
		t.Errorf("unexpected progress %+v", got)
	}
}

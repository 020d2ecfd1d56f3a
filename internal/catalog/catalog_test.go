package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/wjiaha0/hanzi/internal/model"
)

func seqIDs() IDFunc {
	n := 0
	return func() model.ItemID {
		n++
		return model.ItemID(fmt.Sprintf("id-%d", n))
	}
}

func newTestCatalog(t *testing.T, chars ...string) *Catalog {
	t.Helper()
	var items []model.Item
	for _, ch := range chars {
		items = append(items, model.Item{Char: ch, Pinyin: "p" + ch, Phrase: ch + ch})
	}
	c, err := New(items, seqIDs())
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	return c
}

func TestSeed(t *testing.T) {
	items, err := Seed()
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if len(items) == 0 {
		t.Fatal("expected built-in items")
	}
	c, err := New(items, nil)
	if err != nil {
		t.Fatalf("seed items must be valid: %v", err)
	}
	first, _ := c.At(0)
	if first.Char != "人" || first.ID == "" {
		t.Errorf("unexpected first item %+v", first)
	}
}

func TestULIDSourceUnique(t *testing.T) {
	gen := NewULIDSource()
	seen := map[model.ItemID]bool{}
	for i := 0; i < 1000; i++ {
		id := gen()
		if len(id) != 26 {
			t.Fatalf("expected 26-char ULID, got %q", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	items := []model.Item{
		{ID: "x", Char: "人", Pinyin: "rén", Phrase: "人们"},
		{ID: "x", Char: "大", Pinyin: "dà", Phrase: "大小"},
	}
	if _, err := New(items, seqIDs()); !errors.Is(err, model.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestAtOutOfRange(t *testing.T) {
	c := newTestCatalog(t, "a")
	for _, i := range []int{-1, 1} {
		if _, err := c.At(i); !errors.Is(err, model.ErrInvalidArgument) {
			t.Errorf("At(%d): expected ErrInvalidArgument, got %v", i, err)
		}
	}
}

func TestRemoveKeepsLaterIDs(t *testing.T) {
	c := newTestCatalog(t, "a", "b", "c", "d")
	idC, _ := c.IDAt(2)

	removed, err := c.Remove(1)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if removed.Char != "b" {
		t.Errorf("expected b removed, got %s", removed.Char)
	}
	if c.Contains(removed.ID) {
		t.Error("removed id still indexed")
	}

	// c moved from position 2 to 1 but kept its identity.
	pos, ok := c.IndexOf(idC)
	if !ok || pos != 1 {
		t.Errorf("expected c at position 1, got %d (%v)", pos, ok)
	}
	at, _ := c.At(1)
	if at.ID != idC {
		t.Errorf("expected id %s at position 1, got %s", idC, at.ID)
	}
}

func TestEditKeepsID(t *testing.T) {
	c := newTestCatalog(t, "a", "b")
	id, _ := c.IDAt(0)

	got, err := c.Edit(0, model.Item{Char: "z", Pinyin: "zz", Phrase: "zzz"})
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if got.ID != id || got.Char != "z" {
		t.Errorf("unexpected edited item %+v", got)
	}

	if _, err := c.Edit(0, model.Item{Char: "z"}); !errors.Is(err, model.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for incomplete item, got %v", err)
	}
	if at, _ := c.At(0); at.Char != "z" {
		t.Error("failed edit modified the item")
	}
}

func TestImportAllOrNothing(t *testing.T) {
	c := newTestCatalog(t, "a")
	_, err := c.Import([]model.Item{
		{Char: "b", Pinyin: "b", Phrase: "b"},
		{Char: "c"},
	})
	if !errors.Is(err, model.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if c.Len() != 1 {
		t.Errorf("expected nothing imported, got len %d", c.Len())
	}

	added, err := c.Import([]model.Item{
		{ID: "ignored", Char: "b", Pinyin: "b", Phrase: "b"},
		{Char: "c", Pinyin: "c", Phrase: "c"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(added) != 2 || c.Len() != 3 {
		t.Errorf("expected 2 added and 3 total, got %d and %d", len(added), c.Len())
	}
	if added[0].ID == "ignored" {
		t.Error("imported items must get fresh ids")
	}
}

func TestSearch(t *testing.T) {
	items := []model.Item{
		{Char: "人", Pinyin: "rén", Phrase: "人们、大人", Meaning: "person, people"},
		{Char: "大", Pinyin: "dà", Phrase: "大小、大学", Meaning: "big"},
		{Char: "小", Pinyin: "xiǎo", Phrase: "小心", Meaning: "small"},
	}
	c, _ := New(items, seqIDs())

	tests := []struct {
		query string
		want  []int
	}{
		{"大", []int{0, 1}},
		{"PEOPLE", []int{0}},
		{"xiǎo", []int{2}},
		{"", []int{0, 1, 2}},
		{"nothing", nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := c.Search(tt.query, 0)
			if len(got) != len(tt.want) {
				t.Fatalf("Search(%q) returned %d matches, want %d", tt.query, len(got), len(tt.want))
			}
			for i, m := range got {
				if m.Position != tt.want[i] {
					t.Errorf("match %d at position %d, want %d", i, m.Position, tt.want[i])
				}
			}
		})
	}

	if got := c.Search("", 2); len(got) != 2 {
		t.Errorf("expected limit 2, got %d", len(got))
	}
}

func TestJSONCodec(t *testing.T) {
	c := newTestCatalog(t, "a", "b")

	var buf bytes.Buffer
	if err := WriteJSON(&buf, c.Items()); err != nil {
		t.Fatal(err)
	}
	items, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(items) != 2 || items[1].Char != "b" {
		t.Errorf("unexpected items %+v", items)
	}

	if _, err := ReadJSON(strings.NewReader(`{"char":"a"}`)); !errors.Is(err, model.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for non-array, got %v", err)
	}
	if _, err := ReadJSON(strings.NewReader(`[{"char":"a","pinyin":"a"}]`)); !errors.Is(err, model.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for missing phrase, got %v", err)
	}
}

func TestXLSXRoundTrip(t *testing.T) {
	in := []model.Item{
		{Char: "人", Pinyin: "rén", Phrase: "人们、大人", Meaning: "person", Category: "基础", Strokes: 2, Radical: "人"},
		{Char: "大", Pinyin: "dà", Phrase: "大小"},
	}

	var buf bytes.Buffer
	if err := WriteXLSX(&buf, in); err != nil {
		t.Fatalf("write: %v", err)
	}

	out, err := ReadXLSX(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("expected %d items, got %d", len(in), len(out))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("item %d: got %+v, want %+v", i, out[i], in[i])
		}
	}
}

// Package catalog holds the ordered list of study items. Items are addressed
// by position for display and by ItemID for everything that must survive
// catalog edits.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/wjiaha0/hanzi/internal/model"
)

//go:embed seed.json
var seedJSON []byte

// IDFunc mints a new item identifier.
type IDFunc func() model.ItemID

// NewULIDSource returns an IDFunc producing ULIDs.
func NewULIDSource() IDFunc {
	entropy := rand.New(rand.NewSource(time.Now().UnixNano()))
	return func() model.ItemID {
		return model.ItemID(ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String())
	}
}

// Catalog is an ordered list of items with unique IDs.
type Catalog struct {
	items []model.Item
	index map[model.ItemID]int
	newID IDFunc
}

// New builds a catalog from items. Items without an ID get one from newID;
// duplicate IDs are rejected.
func New(items []model.Item, newID IDFunc) (*Catalog, error) {
	if newID == nil {
		newID = NewULIDSource()
	}
	c := &Catalog{newID: newID}
	c.items = make([]model.Item, 0, len(items))
	for i, it := range items {
		it, err := it.Normalize()
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		if it.ID == "" {
			it.ID = newID()
		}
		c.items = append(c.items, it)
	}
	if err := c.reindex(); err != nil {
		return nil, err
	}
	return c, nil
}

// Seed returns the built-in starter items without IDs.
func Seed() ([]model.Item, error) {
	var items []model.Item
	if err := json.Unmarshal(seedJSON, &items); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	return items, nil
}

func (c *Catalog) reindex() error {
	idx := make(map[model.ItemID]int, len(c.items))
	for i, it := range c.items {
		if _, dup := idx[it.ID]; dup {
			return fmt.Errorf("%w: duplicate item id %s", model.ErrInvalidArgument, it.ID)
		}
		idx[it.ID] = i
	}
	c.index = idx
	return nil
}

// Len returns the number of items.
func (c *Catalog) Len() int { return len(c.items) }

// At returns the item at position i.
func (c *Catalog) At(i int) (model.Item, error) {
	if i < 0 || i >= len(c.items) {
		return model.Item{}, fmt.Errorf("%w: position %d out of range [0, %d)", model.ErrInvalidArgument, i, len(c.items))
	}
	return c.items[i], nil
}

// IDAt returns the identifier of the item at position i.
func (c *Catalog) IDAt(i int) (model.ItemID, bool) {
	if i < 0 || i >= len(c.items) {
		return "", false
	}
	return c.items[i].ID, true
}

// IndexOf returns the current position of id.
func (c *Catalog) IndexOf(id model.ItemID) (int, bool) {
	i, ok := c.index[id]
	return i, ok
}

// Contains reports whether id is in the catalog.
func (c *Catalog) Contains(id model.ItemID) bool {
	_, ok := c.index[id]
	return ok
}

// Items returns a copy of all items in order.
func (c *Catalog) Items() []model.Item {
	return append([]model.Item{}, c.items...)
}

// Add appends an item and assigns it a new ID.
func (c *Catalog) Add(it model.Item) (model.Item, error) {
	it, err := it.Normalize()
	if err != nil {
		return model.Item{}, err
	}
	it.ID = c.newID()
	if c.Contains(it.ID) {
		return model.Item{}, fmt.Errorf("%w: duplicate item id %s", model.ErrInvalidArgument, it.ID)
	}
	c.items = append(c.items, it)
	c.index[it.ID] = len(c.items) - 1
	return it, nil
}

// Import appends items in order. Every item is validated before any is added.
func (c *Catalog) Import(items []model.Item) ([]model.Item, error) {
	normalized := make([]model.Item, 0, len(items))
	for i, it := range items {
		it, err := it.Normalize()
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		normalized = append(normalized, it)
	}
	added := make([]model.Item, 0, len(normalized))
	for _, it := range normalized {
		a, err := c.Add(it)
		if err != nil {
			return added, err
		}
		added = append(added, a)
	}
	return added, nil
}

// Edit replaces the content of the item at position i. Its ID is kept, so
// progress recorded for it stays attached.
func (c *Catalog) Edit(i int, it model.Item) (model.Item, error) {
	cur, err := c.At(i)
	if err != nil {
		return model.Item{}, err
	}
	it, err = it.Normalize()
	if err != nil {
		return model.Item{}, err
	}
	it.ID = cur.ID
	c.items[i] = it
	return it, nil
}

// Remove deletes the item at position i. Later items shift down one position
// but keep their IDs.
func (c *Catalog) Remove(i int) (model.Item, error) {
	it, err := c.At(i)
	if err != nil {
		return model.Item{}, err
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	delete(c.index, it.ID)
	for j := i; j < len(c.items); j++ {
		c.index[c.items[j].ID] = j
	}
	return it, nil
}

// Match is a search hit with the item's position.
type Match struct {
	Position int        `json:"position"`
	Item     model.Item `json:"item"`
}

// Search returns items whose character, pinyin, phrase or meaning contains
// query, case-insensitively. An empty query matches everything.
func (c *Catalog) Search(query string, limit int) []Match {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []Match
	for i, it := range c.items {
		if limit > 0 && len(out) >= limit {
			break
		}
		if q == "" || matches(it, q) {
			out = append(out, Match{Position: i, Item: it})
		}
	}
	return out
}

func matches(it model.Item, q string) bool {
	for _, f := range []string{it.Char, it.Pinyin, it.Phrase, it.Meaning} {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

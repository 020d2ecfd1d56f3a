// Package store provides the storage interfaces and SQLite implementation for
// learning state and the item catalog.
package store

import (
	"context"

	"github.com/wjiaha0/hanzi/internal/model"
)

// SearchParams holds parameters for searching catalog items.
type SearchParams struct {
	Query    string
	Category string
	Limit    int
}

// ItemMatch is a stored item with its catalog position.
type ItemMatch struct {
	Position int `db:"position" json:"position"`
	model.Item
}

// KV stores opaque documents by key.
type KV interface {
	// Get returns the value for key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Put creates or replaces the value for key.
	Put(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// ItemStore persists the ordered item catalog.
type ItemStore interface {
	// LoadItems returns all items in catalog order.
	LoadItems(ctx context.Context) ([]model.Item, error)

	// SaveItems replaces the stored catalog with items, in order.
	SaveItems(ctx context.Context, items []model.Item) error

	// SearchItems finds items by substring and category.
	SearchItems(ctx context.Context, p SearchParams) ([]ItemMatch, error)
}

// Store is everything the CLI persists.
type Store interface {
	KV
	ItemStore

	// Stats reports database statistics.
	Stats(ctx context.Context) (*Stats, error)

	// Close closes the store.
	Close() error
}

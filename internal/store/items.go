package store

import (
	"context"
	"fmt"

	"github.com/wjiaha0/hanzi/internal/model"
)

const itemColumns = `id, char, pinyin, phrase, meaning, category, strokes, radical`

// LoadItems returns all stored items ordered by position.
func (s *SQLiteStore) LoadItems(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	err := s.db.SelectContext(ctx, &items,
		`SELECT `+itemColumns+` FROM items ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}
	return items, nil
}

// SaveItems replaces the stored catalog in one transaction. Positions are
// taken from slice order.
func (s *SQLiteStore) SaveItems(ctx context.Context, items []model.Item) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM items`); err != nil {
		return fmt.Errorf("clear items: %w", err)
	}

	stmt, err := tx.PreparexContext(ctx,
		`INSERT INTO items (id, position, char, pinyin, phrase, meaning, category, strokes, radical)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, it := range items {
		if it.ID == "" {
			return fmt.Errorf("%w: item %d has no id", model.ErrInvalidArgument, i)
		}
		if _, err := stmt.ExecContext(ctx,
			it.ID, i, it.Char, it.Pinyin, it.Phrase, it.Meaning, it.Category, it.Strokes, it.Radical); err != nil {
			return fmt.Errorf("insert item %s: %w", it.ID, err)
		}
	}

	return tx.Commit()
}

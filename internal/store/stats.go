package store

import (
	"context"
	"os"
)

// Stats holds database statistics.
type Stats struct {
	DBPath      string          `json:"db_path"`
	DBSizeBytes int64           `json:"db_size_bytes"`
	Items       int             `json:"items"`
	Keys        []string        `json:"keys"`
	Categories  []CategoryStats `json:"categories"`
}

// CategoryStats holds per-category item counts.
type CategoryStats struct {
	Category string `db:"category" json:"category"`
	Count    int    `db:"cnt" json:"count"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context) (*Stats, error) {
	st := &Stats{DBPath: s.path}

	// DB file size
	if info, err := os.Stat(s.path); err == nil {
		st.DBSizeBytes = info.Size()
	}

	if err := s.db.GetContext(ctx, &st.Items, `SELECT COUNT(*) FROM items`); err != nil {
		return st, err
	}
	if err := s.db.SelectContext(ctx, &st.Keys, `SELECT key FROM kv ORDER BY key`); err != nil {
		return st, err
	}
	err := s.db.SelectContext(ctx, &st.Categories, `
		SELECT category, COUNT(*) AS cnt
		FROM items WHERE category != ''
		GROUP BY category ORDER BY cnt DESC, category`)
	return st, err
}

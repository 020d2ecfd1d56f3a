package store

import (
	"context"
	"fmt"
	"strings"
)

// SearchItems finds items whose character, pinyin, phrase or meaning contains
// the query substring, optionally restricted to a category.
func (s *SQLiteStore) SearchItems(ctx context.Context, p SearchParams) ([]ItemMatch, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}

	var where []string
	var args []interface{}

	if q := strings.TrimSpace(p.Query); q != "" {
		like := "%" + q + "%"
		where = append(where, "(char LIKE ? OR pinyin LIKE ? OR phrase LIKE ? OR meaning LIKE ?)")
		args = append(args, like, like, like, like)
	}
	if p.Category != "" {
		where = append(where, "category = ?")
		args = append(args, p.Category)
	}

	query := `SELECT position, ` + itemColumns + ` FROM items`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY position LIMIT ?`
	args = append(args, limit)

	var matches []ItemMatch
	if err := s.db.SelectContext(ctx, &matches, query, args...); err != nil {
		return nil, fmt.Errorf("search items: %w", err)
	}
	return matches, nil
}

// Package model defines the core learning data types.
package model

import (
	"fmt"
	"strings"
)

// ItemID is the stable identifier of a catalog item. It survives reordering
// and deletion of other items.
type ItemID string

// Item is one study unit: a character with pronunciation and example phrase.
type Item struct {
	ID       ItemID `json:"id,omitempty" db:"id"`
	Char     string `json:"char" db:"char"`
	Pinyin   string `json:"pinyin" db:"pinyin"`
	Phrase   string `json:"phrase" db:"phrase"`
	Meaning  string `json:"meaning,omitempty" db:"meaning"`
	Category string `json:"category,omitempty" db:"category"`
	Strokes  int    `json:"strokes,omitempty" db:"strokes"`
	Radical  string `json:"radical,omitempty" db:"radical"`
}

// Normalize trims whitespace and checks the required fields.
func (it Item) Normalize() (Item, error) {
	it.Char = strings.TrimSpace(it.Char)
	it.Pinyin = strings.TrimSpace(it.Pinyin)
	it.Phrase = strings.TrimSpace(it.Phrase)
	it.Meaning = strings.TrimSpace(it.Meaning)
	it.Category = strings.TrimSpace(it.Category)
	it.Radical = strings.TrimSpace(it.Radical)
	if it.Char == "" || it.Pinyin == "" || it.Phrase == "" {
		return it, fmt.Errorf("%w: char, pinyin and phrase are required", ErrInvalidArgument)
	}
	if it.Strokes < 0 {
		return it, fmt.Errorf("%w: strokes must not be negative", ErrInvalidArgument)
	}
	return it, nil
}

// Phrases splits the example phrase on the enumeration comma and other common
// separators.
func (it Item) Phrases() []string {
	fields := strings.FieldsFunc(it.Phrase, func(r rune) bool {
		switch r {
		case '、', '，', ',', ';', '；', '/':
			return true
		}
		return false
	})
	out := fields[:0]
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

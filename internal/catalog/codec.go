package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/wjiaha0/hanzi/internal/model"
)

// Columns is the header row used for spreadsheet import and export.
var Columns = []string{"char", "pinyin", "phrase", "meaning", "category", "strokes", "radical"}

const sheetName = "Sheet1"

// ReadJSON decodes a JSON array of item records.
func ReadJSON(r io.Reader) ([]model.Item, error) {
	var items []model.Item
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, fmt.Errorf("%w: expected a JSON array of items: %v", model.ErrInvalidArgument, err)
	}
	for i := range items {
		if _, err := items[i].Normalize(); err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
	}
	return items, nil
}

// WriteJSON encodes items as an indented JSON array.
func WriteJSON(w io.Writer, items []model.Item) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if items == nil {
		items = []model.Item{}
	}
	return enc.Encode(items)
}

// ReadXLSX reads items from the first sheet of a workbook. The first row must
// be a header naming at least the char, pinyin and phrase columns; empty rows
// are skipped.
func ReadXLSX(r io.Reader) ([]model.Item, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: open workbook: %v", model.ErrInvalidArgument, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", model.ErrInvalidArgument)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	cols := map[string]int{}
	for i, h := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range Columns[:3] {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%w: header is missing column %q", model.ErrInvalidArgument, required)
		}
	}

	cell := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var items []model.Item
	for n, row := range rows[1:] {
		if strings.TrimSpace(strings.Join(row, "")) == "" {
			continue
		}
		it := model.Item{
			Char:     cell(row, "char"),
			Pinyin:   cell(row, "pinyin"),
			Phrase:   cell(row, "phrase"),
			Meaning:  cell(row, "meaning"),
			Category: cell(row, "category"),
			Radical:  cell(row, "radical"),
		}
		if s := cell(row, "strokes"); s != "" {
			it.Strokes, err = strconv.Atoi(s)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d: strokes %q is not a number", model.ErrInvalidArgument, n+2, s)
			}
		}
		if _, err := it.Normalize(); err != nil {
			return nil, fmt.Errorf("row %d: %w", n+2, err)
		}
		items = append(items, it)
	}
	return items, nil
}

// WriteXLSX writes items as a single-sheet workbook with a header row.
func WriteXLSX(w io.Writer, items []model.Item) error {
	f := excelize.NewFile()
	defer f.Close()

	header := make([]interface{}, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, it := range items {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		var strokes interface{}
		if it.Strokes > 0 {
			strokes = it.Strokes
		}
		row := []interface{}{it.Char, it.Pinyin, it.Phrase, it.Meaning, it.Category, strokes, it.Radical}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

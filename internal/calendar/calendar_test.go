package calendar

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDaysSince(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Date
		expected int
	}{
		{"same day", New(2024, 3, 10), New(2024, 3, 10), 0},
		{"next day", New(2024, 3, 11), New(2024, 3, 10), 1},
		{"month boundary", New(2024, 3, 1), New(2024, 2, 29), 1},
		{"three days", New(2024, 3, 13), New(2024, 3, 10), 3},
		{"backwards", New(2024, 3, 9), New(2024, 3, 10), -1},
		{"year boundary", New(2025, 1, 1), New(2024, 12, 31), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.DaysSince(tt.b); got != tt.expected {
				t.Errorf("%s.DaysSince(%s) = %d, want %d", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestAddDays(t *testing.T) {
	d := New(2024, 2, 28).AddDays(2)
	if d != New(2024, 3, 1) {
		t.Errorf("expected 2024-03-01, got %s", d)
	}
}

func TestFromTimeUsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	ts := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)
	if got := FromTime(ts.In(loc)); got != New(2024, 5, 2) {
		t.Errorf("expected 2024-05-02 in UTC+8, got %s", got)
	}
}

func TestJSON(t *testing.T) {
	type wrapper struct {
		D Date `json:"d"`
	}

	b, err := json.Marshal(wrapper{D: New(2024, 7, 4)})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"d":"2024-07-04"}` {
		t.Errorf("unexpected json %s", b)
	}

	b, _ = json.Marshal(wrapper{})
	if string(b) != `{"d":null}` {
		t.Errorf("expected null for zero date, got %s", b)
	}

	var w wrapper
	if err := json.Unmarshal([]byte(`{"d":"2023-12-31"}`), &w); err != nil {
		t.Fatal(err)
	}
	if w.D != New(2023, 12, 31) {
		t.Errorf("expected 2023-12-31, got %s", w.D)
	}

	if err := json.Unmarshal([]byte(`{"d":null}`), &w); err != nil {
		t.Fatal(err)
	}
	if !w.D.IsZero() {
		t.Errorf("expected zero date, got %s", w.D)
	}

	if err := json.Unmarshal([]byte(`{"d":"Tue Mar 05 2024"}`), &w); err == nil {
		t.Error("expected error for unsupported layout")
	}
}

func TestFixedClock(t *testing.T) {
	c := Fixed(New(2024, 1, 2))
	if c.Today() != New(2024, 1, 2) {
		t.Errorf("unexpected day %s", c.Today())
	}
}

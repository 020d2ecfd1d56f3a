package model

import (
	"time"

	"github.com/wjiaha0/hanzi/internal/calendar"
)

// Progress is the durable learning state. JSON field names match the
// persisted format.
type Progress struct {
	Learned      []ItemID       `json:"learned"`
	Mastery      map[ItemID]int `json:"mastery"`
	LastVisit    calendar.Date  `json:"lastVisit"`
	Streak       int            `json:"streak"`
	TodayLearned int            `json:"todayLearned"`
	TotalMinutes float64        `json:"totalTime"`
	Stats        Stats          `json:"stats"`
}

// Stats holds aggregate counters.
type Stats struct {
	TotalDays       int `json:"totalDays"`
	TotalCharacters int `json:"totalCharacters"`
	TotalReviews    int `json:"totalReviews"`
}

// DefaultProgress returns the state of a fresh installation.
func DefaultProgress() Progress {
	return Progress{
		Learned: []ItemID{},
		Mastery: map[ItemID]int{},
	}
}

// Clone returns a deep copy.
func (p Progress) Clone() Progress {
	c := p
	c.Learned = append([]ItemID{}, p.Learned...)
	c.Mastery = make(map[ItemID]int, len(p.Mastery))
	for k, v := range p.Mastery {
		c.Mastery[k] = v
	}
	return c
}

// Backup is the export document holding progress and settings.
type Backup struct {
	Progress   Progress  `json:"progress"`
	Settings   Settings  `json:"settings"`
	ExportDate time.Time `json:"exportDate"`
}

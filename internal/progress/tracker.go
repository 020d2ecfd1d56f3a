// Package progress owns the learning state: learned items, mastery scores,
// visit streaks and aggregate counters.
package progress

import (
	"fmt"
	"math"
	"sync"

	"github.com/wjiaha0/hanzi/internal/calendar"
	"github.com/wjiaha0/hanzi/internal/model"
)

const (
	// InitialMastery is the score given to an item the first time it is learned.
	InitialMastery = 10
	// MaxMastery and MinMastery bound every score.
	MaxMastery = 100
	MinMastery = 0

	easyStep = 20
	hardStep = 10
)

// Tracker applies every mutation of a Progress value. All methods are
// serialized by one mutex; each validates its input before touching state.
type Tracker struct {
	mu sync.Mutex
	p  model.Progress
}

// NewTracker wraps p. The tracker keeps its own copy.
func NewTracker(p model.Progress) *Tracker {
	return &Tracker{p: sanitize(p)}
}

// Snapshot returns a deep copy of the current state.
func (t *Tracker) Snapshot() model.Progress {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.p.Clone()
}

// RecordVisit updates the streak for a visit on today.
func (t *Tracker) RecordVisit(today calendar.Date) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.recordVisit(today)
}

func (t *Tracker) recordVisit(today calendar.Date) {
	last := t.p.LastVisit
	if last == today {
		return
	}
	if !last.IsZero() {
		// A clock that moved backwards counts as a broken streak.
		if today.DaysSince(last) == 1 {
			t.p.Streak++
		} else {
			t.p.Streak = 0
		}
	}
	t.p.LastVisit = today
	t.p.TodayLearned = 0
	t.p.Stats.TotalDays++
}

// MarkLearned records id as seen on today. It reports whether the item was
// new. Day rollover is applied before the item is counted.
func (t *Tracker) MarkLearned(id model.ItemID, today calendar.Date) (bool, error) {
	if id == "" {
		return false, fmt.Errorf("%w: empty item id", model.ErrInvalidArgument)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.recordVisit(today)
	if t.isLearned(id) {
		return false, nil
	}

	first := len(t.p.Learned) == 0 && t.p.Streak == 0
	t.p.Learned = append(t.p.Learned, id)
	t.p.TodayLearned++
	t.p.Stats.TotalCharacters++
	if _, ok := t.p.Mastery[id]; !ok {
		t.p.Mastery[id] = InitialMastery
	}
	if first {
		t.p.Streak = 1
	}
	return true, nil
}

// AdjustMastery applies a review outcome to a learned item and returns the
// new score.
func (t *Tracker) AdjustMastery(id model.ItemID, outcome model.Outcome) (int, error) {
	if !outcome.IsValid() {
		return 0, fmt.Errorf("%w: outcome %q", model.ErrInvalidArgument, outcome)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.isLearned(id) {
		return 0, fmt.Errorf("%w: item %s has not been learned", model.ErrInvalidArgument, id)
	}

	m := t.p.Mastery[id]
	switch outcome {
	case model.OutcomeEasy:
		m = min(MaxMastery, m+easyStep)
	case model.OutcomeHard:
		m = max(MinMastery, m-hardStep)
	}
	t.p.Mastery[id] = m
	t.p.Stats.TotalReviews++
	return m, nil
}

// AverageMastery is the mean score over learned items, rounded half up.
func (t *Tracker) AverageMastery() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.p.Learned) == 0 {
		return 0
	}
	sum := 0
	for _, id := range t.p.Learned {
		sum += t.p.Mastery[id]
	}
	return int(math.Floor(float64(sum)/float64(len(t.p.Learned)) + 0.5))
}

// Reset discards all progress. today is recorded as the last visit.
func (t *Tracker) Reset(today calendar.Date) {
	t.mu.Lock()
	defer t.mu.Unlock()

	p := model.DefaultProgress()
	p.LastVisit = today
	p.Stats.TotalDays = 1
	t.p = p
}

// AddStudyMinutes adds externally measured study time.
func (t *Tracker) AddStudyMinutes(minutes float64) error {
	if minutes < 0 || math.IsNaN(minutes) || math.IsInf(minutes, 0) {
		return fmt.Errorf("%w: minutes must be a non-negative number", model.ErrInvalidArgument)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.p.TotalMinutes += minutes
	return nil
}

// IsLearned reports whether id has been seen.
func (t *Tracker) IsLearned(id model.ItemID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.isLearned(id)
}

func (t *Tracker) isLearned(id model.ItemID) bool {
	for _, l := range t.p.Learned {
		if l == id {
			return true
		}
	}
	return false
}

// Mastery returns the score of id and whether it has one.
func (t *Tracker) Mastery(id model.ItemID) (int, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	m, ok := t.p.Mastery[id]
	return m, ok
}

// Learned returns learned ids in the order they were first seen.
func (t *Tracker) Learned() []model.ItemID {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]model.ItemID{}, t.p.Learned...)
}

// LastLearned returns the most recently learned id.
func (t *Tracker) LastLearned() (model.ItemID, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.p.Learned) == 0 {
		return "", false
	}
	return t.p.Learned[len(t.p.Learned)-1], true
}

// Prune drops learned and mastery entries for ids rejected by valid, such as
// items deleted from the catalog. It returns the number of ids removed.
func (t *Tracker) Prune(valid func(model.ItemID) bool) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	kept := t.p.Learned[:0]
	removed := 0
	for _, id := range t.p.Learned {
		if valid(id) {
			kept = append(kept, id)
			continue
		}
		delete(t.p.Mastery, id)
		removed++
	}
	t.p.Learned = kept
	for id := range t.p.Mastery {
		if !valid(id) {
			delete(t.p.Mastery, id)
		}
	}
	return removed
}

// sanitize restores the invariants on state read from storage.
func sanitize(p model.Progress) model.Progress {
	p = p.Clone()

	seen := make(map[model.ItemID]bool, len(p.Learned))
	learned := make([]model.ItemID, 0, len(p.Learned))
	for _, id := range p.Learned {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		learned = append(learned, id)
	}
	p.Learned = learned

	for id, m := range p.Mastery {
		if !seen[id] {
			delete(p.Mastery, id)
			continue
		}
		p.Mastery[id] = max(MinMastery, min(MaxMastery, m))
	}

	p.Streak = max(0, p.Streak)
	p.TodayLearned = max(0, p.TodayLearned)
	if p.TotalMinutes < 0 || math.IsNaN(p.TotalMinutes) {
		p.TotalMinutes = 0
	}
	return p
}

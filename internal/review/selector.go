// Package review builds review queues and walks them.
package review

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/wjiaha0/hanzi/internal/model"
)

// MasteredThreshold is the score at which an item stops being weak.
const MasteredThreshold = 60

// Source provides uniform random integers in [0, n).
type Source interface {
	Intn(n int) int
}

// NewSource returns a time-seeded Source.
func NewSource() Source {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Progress is the read side of the progress tracker used for selection.
type Progress interface {
	Learned() []model.ItemID
	Mastery(id model.ItemID) (int, bool)
}

// Catalog maps between item positions and identifiers.
type Catalog interface {
	Len() int
	IDAt(i int) (model.ItemID, bool)
	IndexOf(id model.ItemID) (int, bool)
}

// Selector builds queues of catalog positions.
type Selector struct {
	progress Progress
	catalog  Catalog
	rnd      Source
}

// NewSelector creates a Selector. A nil rnd uses NewSource.
func NewSelector(p Progress, c Catalog, rnd Source) *Selector {
	if rnd == nil {
		rnd = NewSource()
	}
	return &Selector{progress: p, catalog: c, rnd: rnd}
}

// Targeted selects up to limit learned items. Unless includeMastered is set,
// only items scoring below MasteredThreshold are candidates. Learned items no
// longer in the catalog are skipped.
func (s *Selector) Targeted(includeMastered bool, limit int) ([]int, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive, got %d", model.ErrInvalidArgument, limit)
	}

	var candidates []int
	for _, id := range s.progress.Learned() {
		pos, ok := s.catalog.IndexOf(id)
		if !ok {
			continue
		}
		if !includeMastered {
			if m, _ := s.progress.Mastery(id); m >= MasteredThreshold {
				continue
			}
		}
		candidates = append(candidates, pos)
	}
	if len(candidates) == 0 {
		if includeMastered {
			return nil, fmt.Errorf("%w: no learned items to review", model.ErrEmptySelection)
		}
		return nil, fmt.Errorf("%w: no items below mastery %d", model.ErrEmptySelection, MasteredThreshold)
	}
	return s.pick(candidates, limit), nil
}

// Random selects up to limit items from the whole catalog regardless of
// learning state.
func (s *Selector) Random(limit int) ([]int, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive, got %d", model.ErrInvalidArgument, limit)
	}
	n := s.catalog.Len()
	if n == 0 {
		return nil, fmt.Errorf("%w: catalog is empty", model.ErrEmptySelection)
	}
	candidates := make([]int, n)
	for i := range candidates {
		candidates[i] = i
	}
	return s.pick(candidates, limit), nil
}

func (s *Selector) pick(candidates []int, limit int) []int {
	Shuffle(candidates, s.rnd)
	if limit < len(candidates) {
		candidates = candidates[:limit]
	}
	return candidates
}

// Shuffle permutes xs in place with a Fisher-Yates shuffle.
func Shuffle(xs []int, rnd Source) {
	for i := len(xs) - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		xs[i], xs[j] = xs[j], xs[i]
	}
}

package review

import (
	"fmt"

	"github.com/wjiaha0/hanzi/internal/calendar"
	"github.com/wjiaha0/hanzi/internal/model"
)

// State is the lifecycle stage of a Session.
type State int

const (
	Idle State = iota
	Active
	Finished
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Active:
		return "active"
	case Finished:
		return "finished"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Scorer is the write side of the progress tracker used during review.
type Scorer interface {
	IsLearned(id model.ItemID) bool
	MarkLearned(id model.ItemID, today calendar.Date) (bool, error)
	AdjustMastery(id model.ItemID, outcome model.Outcome) (int, error)
}

// Positions resolves catalog positions to item identifiers.
type Positions interface {
	IDAt(i int) (model.ItemID, bool)
}

// Result records one scored item.
type Result struct {
	ItemID  model.ItemID  `json:"itemId"`
	Outcome model.Outcome `json:"outcome"`
	Mastery int           `json:"mastery"`
}

// Session walks one review queue. The queue is resolved to item IDs when the
// session starts, so catalog edits during a session do not retarget it.
type Session struct {
	scorer  Scorer
	catalog Positions
	clock   calendar.Clock

	state   State
	queue   []int
	ids     []model.ItemID
	cursor  int
	results []Result
}

// NewSession creates an idle session.
func NewSession(scorer Scorer, catalog Positions, clock calendar.Clock) *Session {
	if clock == nil {
		clock = calendar.NewSystemClock()
	}
	return &Session{scorer: scorer, catalog: catalog, clock: clock}
}

// Start begins a new session over queue, discarding any previous one.
func (s *Session) Start(queue []int) error {
	if s.state == Active {
		return fmt.Errorf("%w: session already active", model.ErrInvalidState)
	}
	if len(queue) == 0 {
		return fmt.Errorf("%w: empty review queue", model.ErrEmptySelection)
	}
	ids := make([]model.ItemID, len(queue))
	for i, pos := range queue {
		id, ok := s.catalog.IDAt(pos)
		if !ok {
			return fmt.Errorf("%w: queue position %d is not in the catalog", model.ErrInvalidArgument, pos)
		}
		ids[i] = id
	}

	s.queue = append([]int{}, queue...)
	s.ids = ids
	s.cursor = 0
	s.results = nil
	s.state = Active
	return nil
}

// State returns the current lifecycle stage.
func (s *Session) State() State { return s.state }

// Position returns the cursor.
func (s *Session) Position() int { return s.cursor }

// Len returns the queue length.
func (s *Session) Len() int { return len(s.queue) }

// Remaining returns the number of items not yet passed.
func (s *Session) Remaining() int {
	if s.state != Active {
		return 0
	}
	return len(s.queue) - s.cursor
}

// Current returns the catalog position and ID under the cursor.
func (s *Session) Current() (int, model.ItemID, error) {
	if s.state != Active {
		return 0, "", fmt.Errorf("%w: no current item in %s session", model.ErrInvalidState, s.state)
	}
	return s.queue[s.cursor], s.ids[s.cursor], nil
}

// Advance moves past the current item without scoring it.
func (s *Session) Advance() error {
	if s.state != Active {
		return fmt.Errorf("%w: cannot advance %s session", model.ErrInvalidState, s.state)
	}
	s.cursor++
	if s.cursor == len(s.queue) {
		s.state = Finished
	}
	return nil
}

// MarkOutcome scores the current item and advances. An item that was never
// learned, which random review allows, is marked learned first.
func (s *Session) MarkOutcome(outcome model.Outcome) (Result, error) {
	if !outcome.IsValid() {
		return Result{}, fmt.Errorf("%w: outcome %q", model.ErrInvalidArgument, outcome)
	}
	if s.state != Active {
		return Result{}, fmt.Errorf("%w: cannot score in %s session", model.ErrInvalidState, s.state)
	}

	id := s.ids[s.cursor]
	if !s.scorer.IsLearned(id) {
		if _, err := s.scorer.MarkLearned(id, s.clock.Today()); err != nil {
			return Result{}, err
		}
	}
	m, err := s.scorer.AdjustMastery(id, outcome)
	if err != nil {
		return Result{}, err
	}

	r := Result{ItemID: id, Outcome: outcome, Mastery: m}
	s.results = append(s.results, r)
	return r, s.Advance()
}

// Abandon discards an active session.
func (s *Session) Abandon() error {
	if s.state != Active {
		return fmt.Errorf("%w: no active session to abandon", model.ErrInvalidState)
	}
	s.state = Idle
	s.queue = nil
	s.ids = nil
	s.cursor = 0
	return nil
}

// Results returns the outcomes recorded so far in this session.
func (s *Session) Results() []Result {
	return append([]Result{}, s.results...)
}

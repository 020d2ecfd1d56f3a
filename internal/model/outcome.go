package model

import (
	"fmt"
	"strings"
)

// Outcome is the learner's self-assessment of one reviewed item.
type Outcome string

const (
	OutcomeEasy Outcome = "easy"
	OutcomeHard Outcome = "hard"
)

func (o Outcome) IsValid() bool {
	switch o {
	case OutcomeEasy, OutcomeHard:
		return true
	default:
		return false
	}
}

// ParseOutcome parses user input. "e" and "h" are accepted as shorthands.
func ParseOutcome(input string) (Outcome, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "e":
		s = string(OutcomeEasy)
	case "h":
		s = string(OutcomeHard)
	}
	o := Outcome(s)
	if !o.IsValid() {
		return "", fmt.Errorf("%w: outcome %q (valid: easy, hard)", ErrInvalidArgument, input)
	}
	return o, nil
}

package model

import "errors"

// Sentinel errors shared by the tracker, selector and session.
// Use errors.Is to check: errors.Is(err, model.ErrEmptySelection)
var (
	ErrInvalidArgument = errors.New("hanzi: invalid argument")
	ErrInvalidState    = errors.New("hanzi: invalid state")
	ErrEmptySelection  = errors.New("hanzi: nothing to review")
	ErrPersistence     = errors.New("hanzi: persistence failure")
	ErrNotFound        = errors.New("hanzi: not found")
)

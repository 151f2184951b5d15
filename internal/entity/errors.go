package entity

import "errors"

// Domain errors for dictionary entries and quiz sessions.
var (
	ErrCorruptStore       = errors.New("dictionary store is corrupt")
	ErrCorruptSessionLog  = errors.New("session log is corrupt")
	ErrExhausted          = errors.New("working set exhausted")
	ErrInvalidRoundCount  = errors.New("round count must be positive")
	ErrInvalidWordType    = errors.New("unknown word type")
	ErrMismatchedExamples = errors.New("example sequences have different lengths")
)

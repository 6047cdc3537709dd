package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrInvalidInput     = errors.New("invalid input")
	ErrNumericUnderflow = errors.New("numeric underflow")
	ErrVocabExceeded    = errors.New("vocabulary size exceeded")
	ErrNotFound         = errors.New("not found")
)

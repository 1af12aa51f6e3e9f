package ledger

import "errors"

// Error kinds surfaced by ledger operations. Callers match with errors.Is;
// the wrapping message carries the specifics.
var (
	// ErrNotFound: no shard for the requested year, or no transaction
	// with the given id.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput: unparseable date, or a report month outside 1..12.
	ErrInvalidInput = errors.New("invalid input")

	// ErrIO: a shard write failed. Fatal, never retried.
	ErrIO = errors.New("io failure")
)

package export

import "errors"

// No-op outcomes. Callers report these once and do not write anything.
var (
	// ErrEmptyInput means the whole document had no text.
	ErrEmptyInput = errors.New("document is empty")
	// ErrEmptySelection means no text was selected.
	ErrEmptySelection = errors.New("selection is empty")
	// ErrNothingProduced means the selection held no usable field lines.
	ErrNothingProduced = errors.New("no field lines produced")
)

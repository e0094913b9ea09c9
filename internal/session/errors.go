package session

import (
	"context"
	"errors"

	"sdk-formatter/internal/export"
	"sdk-formatter/internal/host"
	"sdk-formatter/internal/sdkfile"
)

// ErrSaveCancelled means no save location was chosen.
var ErrSaveCancelled = errors.New("save cancelled")

// Kind groups export errors by how the caller should react.
type Kind int

const (
	KindNone Kind = iota
	// KindNoOp is a benign "nothing to do": empty input or a declined prompt.
	KindNoOp
	// KindStructural means the SDK file is not safe to modify.
	KindStructural
	// KindCancelled means the context ended the operation.
	KindCancelled
	// KindDecision means a replace question could not be asked.
	KindDecision
	// KindIO covers reading, creating or writing files.
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNoOp:
		return "no-op"
	case KindStructural:
		return "structural"
	case KindCancelled:
		return "cancelled"
	case KindDecision:
		return "decision"
	case KindIO:
		return "io"
	default:
		return "unknown"
	}
}

// KindOf classifies err. Errors that are not recognized count as I/O.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, export.ErrEmptyInput),
		errors.Is(err, export.ErrEmptySelection),
		errors.Is(err, export.ErrNothingProduced),
		errors.Is(err, sdkfile.ErrReplaceDeclined),
		errors.Is(err, ErrSaveCancelled):
		return KindNoOp
	case errors.Is(err, sdkfile.ErrStructural), errors.Is(err, sdkfile.ErrUnclosedBlock):
		return KindStructural
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindCancelled
	case errors.Is(err, host.ErrNonInteractive):
		return KindDecision
	default:
		return KindIO
	}
}

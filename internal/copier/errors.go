package copier

import (
	"errors"
	"fmt"

	"github.com/abduss/objcopy/internal/metrics"
)

var (
	// ErrDecode classifies failures to read the notification payload.
	ErrDecode = errors.New("decode notification")
	// ErrInvalidEvent signals a notification without a usable object record.
	ErrInvalidEvent = fmt.Errorf("%w: no object record", ErrDecode)
	// ErrCopy classifies failures of the server-side copy.
	ErrCopy = errors.New("copy object")
	// ErrPersist classifies failures to write the metadata record. The object has
	// already been copied when this is returned.
	ErrPersist = errors.New("persist record")
)

// resultOf maps an error to its metrics result label.
func resultOf(err error) string {
	switch {
	case err == nil:
		return metrics.ResultOK
	case errors.Is(err, ErrDecode):
		return metrics.ResultDecodeError
	case errors.Is(err, ErrCopy):
		return metrics.ResultCopyError
	default:
		return metrics.ResultPersistError
	}
}

package glb

import (
	"errors"
	"fmt"
)

// FormatError reports a malformed container: bad magic, unsupported
// version, truncated or overrunning chunk data, or invalid JSON in the
// structured chunk. It is always fatal to the operation that raised it.
type FormatError struct {
	Label string // source label of the offending container, may be empty
	Msg   string
	Err   error // underlying cause, may be nil
}

func (e *FormatError) Error() string {
	msg := e.Msg
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	if e.Label != "" {
		return fmt.Sprintf("%s: %s", e.Label, msg)
	}
	return msg
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// IsFormatError reports whether err is (or wraps) a FormatError.
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

func formatErrf(label string, format string, args ...interface{}) error {
	return &FormatError{Label: label, Msg: fmt.Sprintf(format, args...)}
}

package huffzip

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned by BuildTree when there is nothing to build a
// tree from.  Compress treats empty input as a no-op and never returns it.
var ErrEmptyInput = errors.New("huffzip: empty input")

// ErrCorruptContainer is wrapped by every error caused by a malformed or
// truncated container.  Use errors.Is to test for it.
var ErrCorruptContainer = errors.New("huffzip: corrupt container")

func corruptf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrCorruptContainer}, args...)...)
}

package picture

import "errors"

var (
	// ErrInvalidArgument reports a parameter no operation can accept, such
	// as an unknown flip axis or a non-positive picture dimension.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnsupportedFormat reports an output format with no registered encoder.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

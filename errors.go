package hostfile

import (
	"errors"
	"io/fs"
)

var (
	// ErrClosed is returned when an operation is performed on a file with
	// no valid backing, either because it was closed or because it was
	// never given one. Re-exported from io/fs for convenience.
	ErrClosed = fs.ErrClosed

	// ErrInvalid is returned for malformed arguments such as an
	// unrecognized open-mode string. Re-exported from io/fs for convenience.
	ErrInvalid = fs.ErrInvalid

	// ErrUnsupported is returned when an operation has no meaning for the
	// file's current backing representation. For example, positioned I/O
	// or Sync on a stream-only file, or path reverse-lookup on an
	// anonymous descriptor.
	ErrUnsupported = errors.New("operation not supported")
)

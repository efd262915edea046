package hostfile

import (
	"fmt"
	"io"
)

// DeviceKind categorizes the device behind an I/O object.
type DeviceKind int

const (
	// DeviceKindUnknown indicates the device category is unknown.
	DeviceKindUnknown DeviceKind = iota
	// DeviceKindFile indicates a host file device.
	DeviceKindFile
	// DeviceKindSocket indicates a socket device. Sockets are out of
	// scope for this package but share the category tag so callers can
	// multiplex over mixed I/O objects.
	DeviceKindSocket
)

// String returns a string representation of the DeviceKind.
func (k DeviceKind) String() string {
	switch k {
	case DeviceKindFile:
		return "file"
	case DeviceKindSocket:
		return "socket"
	default:
		return "unknown"
	}
}

// WaitableHandle is an OS handle usable with readiness-polling
// interfaces such as select, poll or epoll. It must only be used for
// polling, never for I/O.
type WaitableHandle int

// InvalidHandle is the sentinel for "no waitable handle available".
const InvalidHandle WaitableHandle = -1

// InvalidDescriptor is the sentinel value for an absent or released
// file descriptor slot.
const InvalidDescriptor = -1

// DescriptorIsValid reports whether d is a usable file descriptor.
// A descriptor is valid iff it is non-negative; this predicate is the
// sole definition of descriptor validity in this package.
func DescriptorIsValid(d int) bool { return d >= 0 }

// Flusher allows flushing buffered data into the underlying handle.
type Flusher interface {
	// Flush writes any buffered data to the underlying handle.
	Flush() error
}

// Syncer allows syncing file contents to stable storage.
type Syncer interface {
	// Sync commits the current contents of the file to stable storage.
	Sync() error
}

// File is the operation contract all host file types satisfy.
//
// Read, Write and Seek operate on the object's current file position
// and are not safe for unsynchronized concurrent use. ReadAt and
// WriteAt are offset-explicit and serialized by a per-instance lock
// around the positioned system calls; callers owning private offsets
// may use them concurrently.
type File interface {
	io.Reader
	io.Writer
	io.Seeker
	io.ReaderAt
	io.WriterAt
	io.Closer
	Flusher
	Syncer

	// IsValid reports whether the file still holds at least one valid
	// backing (descriptor or stream).
	IsValid() bool

	// Kind returns the device category of the file.
	Kind() DeviceKind

	// WaitableHandle returns a handle for readiness polling, or
	// InvalidHandle if none is available. The handle is generally the
	// same value as the descriptor, but it is not interchangeable with
	// Descriptor: it must only be used for polling.
	WaitableHandle() WaitableHandle

	// Path returns the path behind the file, best effort. It fails with
	// an error wrapping ErrUnsupported when the backing representation
	// cannot support reverse lookup.
	Path() (string, error)

	// Descriptor returns the descriptor slot's value, or
	// InvalidDescriptor. It never derives a descriptor from the stream.
	Descriptor() int

	// Options returns the open options the file was constructed with,
	// for informational purposes only.
	Options() OpenOptions

	// Stream returns the stream backing, lazily constructing one over
	// the descriptor when necessary.
	Stream() (Stream, error)

	// TakeStream hands the owned stream to the caller without closing
	// it and resets the file to the invalid state. It returns nil if
	// the stream slot is absent or borrowed. This is an escape hatch
	// for APIs that must assume bare ownership of a stream, not a
	// general-purpose accessor.
	TakeStream() Stream

	// IsInteractive reports whether the file is a terminal (tty or pty).
	IsInteractive() bool

	// IsRealTerminal reports whether the file is a terminal with a
	// non-zero width and height, so cursor movement and other escape
	// sequences will work.
	IsRealTerminal() bool

	// IsTerminalWithColors reports whether the file is a terminal that
	// supports colors.
	IsTerminalWithColors() bool
}

// Printf formats according to format and writes the result to f.
// It is a convenience layered on the Write path and reports the number
// of bytes written.
func Printf(f io.Writer, format string, args ...any) (int, error) {
	return fmt.Fprintf(f, format, args...)
}

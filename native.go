package hostfile

import (
	"fmt"
	"os"
	"sync"
)

// ownership records whether a slot's resource is released on Close.
type ownership int

const (
	borrowed ownership = iota
	owned
)

func ownershipOf(transfer bool) ownership {
	if transfer {
		return owned
	}
	return borrowed
}

// descriptorSlot holds a raw OS descriptor with its own validity and
// ownership state. The zero value is an absent slot.
type descriptorSlot struct {
	fd    int
	valid bool
	own   ownership
}

func (s descriptorSlot) Valid() bool {
	return s.valid && DescriptorIsValid(s.fd)
}

// streamSlot holds a buffered stream handle with its ownership state.
// A nil stream is an absent slot. wrapsFD marks the aliasing case where
// the stream was lazily layered over the descriptor slot, so closing
// the stream also releases the descriptor.
type streamSlot struct {
	s       Stream
	own     ownership
	wrapsFD bool
}

// NativeFile implements File over a file descriptor and/or a stream.
// Either backing may be owned or borrowed independently; the file is
// valid while at least one backing is.
//
// The zero value is an invalid file holding no resources.
type NativeFile struct {
	terminalFlags

	desc    descriptorSlot
	stream  streamSlot
	options OpenOptions

	// offsetMu serializes the positioned system calls behind ReadAt and
	// WriteAt. Current-position operations are deliberately unguarded.
	offsetMu sync.Mutex
}

// Option configures file construction.
type Option func(*NativeFile)

// WithProber overrides the terminal capability prober. Intended for
// tests; the default prober queries the host.
func WithProber(p Prober) Option {
	return func(f *NativeFile) { f.prober = p }
}

// NewFile returns an empty, invalid file.
func NewFile(opts ...Option) *NativeFile {
	f := &NativeFile{desc: descriptorSlot{fd: InvalidDescriptor}}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NewFileFromDescriptor wraps an open descriptor. When transferOwnership
// is true the file releases the descriptor on Close; otherwise the
// descriptor is borrowed and never released. The options describe how
// the descriptor was opened and are informational only.
func NewFileFromDescriptor(fd int, options OpenOptions, transferOwnership bool, opts ...Option) *NativeFile {
	f := &NativeFile{
		desc: descriptorSlot{
			fd:    fd,
			valid: DescriptorIsValid(fd),
			own:   ownershipOf(transferOwnership),
		},
		options: options,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NewFileFromStream wraps an open stream. When transferOwnership is
// true the file closes the stream on Close; otherwise the stream is
// borrowed: it is flushed on Close but never closed.
func NewFileFromStream(stream Stream, transferOwnership bool, opts ...Option) *NativeFile {
	f := &NativeFile{
		desc: descriptorSlot{fd: InvalidDescriptor},
		stream: streamSlot{
			s:   stream,
			own: ownershipOf(transferOwnership),
		},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// IsValid reports whether at least one backing is valid.
func (f *NativeFile) IsValid() bool {
	return f.desc.Valid() || f.stream.s != nil
}

// Kind returns DeviceKindFile.
func (f *NativeFile) Kind() DeviceKind {
	return DeviceKindFile
}

// Read reads from the current file position, preferring the stream
// backing. Not safe for concurrent use; see ReadAt for the offset-
// explicit contract.
func (f *NativeFile) Read(p []byte) (int, error) {
	switch {
	case f.stream.s != nil:
		return f.stream.s.Read(p)
	case f.desc.Valid():
		return readFD(f.desc.fd, p)
	default:
		return 0, ErrClosed
	}
}

// Write writes to the current file position, preferring the stream
// backing. The full length is transferred unless an error occurs; a
// short write always carries a non-nil error. Not safe for concurrent
// use; see WriteAt for the offset-explicit contract.
func (f *NativeFile) Write(p []byte) (int, error) {
	switch {
	case f.stream.s != nil:
		return f.stream.s.Write(p)
	case f.desc.Valid():
		return writeFD(f.desc.fd, p)
	default:
		return 0, ErrClosed
	}
}

// Seek repositions the current file position, preferring the
// descriptor. Not synchronized: concurrent seeks race by design and
// must be serialized by the caller.
func (f *NativeFile) Seek(offset int64, whence int) (int64, error) {
	switch {
	case f.desc.Valid():
		return seekFD(f.desc.fd, offset, whence)
	case f.stream.s != nil:
		return f.stream.s.Seek(offset, whence)
	default:
		return 0, ErrClosed
	}
}

// ReadAt reads len(p) bytes from the given offset, leaving the current
// file position untouched. Positioned reads require a descriptor and
// are serialized against other positioned I/O on this file.
func (f *NativeFile) ReadAt(p []byte, off int64) (int, error) {
	if !f.desc.Valid() {
		if f.stream.s != nil {
			return 0, fmt.Errorf("positioned read requires a descriptor: %w", ErrUnsupported)
		}
		return 0, ErrClosed
	}
	f.offsetMu.Lock()
	defer f.offsetMu.Unlock()
	return preadFD(f.desc.fd, p, off)
}

// WriteAt writes len(p) bytes at the given offset, leaving the current
// file position untouched. Positioned writes require a descriptor and
// are serialized against other positioned I/O on this file.
func (f *NativeFile) WriteAt(p []byte, off int64) (int, error) {
	if !f.desc.Valid() {
		if f.stream.s != nil {
			return 0, fmt.Errorf("positioned write requires a descriptor: %w", ErrUnsupported)
		}
		return 0, ErrClosed
	}
	f.offsetMu.Lock()
	defer f.offsetMu.Unlock()
	return pwriteFD(f.desc.fd, p, off)
}

// Flush writes buffered stream data through to the host. Descriptor-
// only files buffer nothing, so Flush succeeds trivially.
func (f *NativeFile) Flush() error {
	switch {
	case f.stream.s != nil:
		return f.stream.s.Flush()
	case f.desc.Valid():
		return nil
	default:
		return ErrClosed
	}
}

// Sync forces the file's data to persistent storage. A descriptor is
// required; one is derived from the stream when the stream exposes it.
func (f *NativeFile) Sync() error {
	fd := InvalidDescriptor
	switch {
	case f.desc.Valid():
		fd = f.desc.fd
	case f.stream.s != nil:
		if offered, ok := f.stream.s.(interface{ Fd() int }); ok {
			fd = offered.Fd()
		}
		if !DescriptorIsValid(fd) {
			return fmt.Errorf("sync requires a descriptor: %w", ErrUnsupported)
		}
	default:
		return ErrClosed
	}
	return syncFD(fd)
}

// Close releases every owned backing exactly once and resets the file
// to the invalid state. It is idempotent: closing an already-invalid
// file succeeds. Close is best-effort: it attempts every release step
// and reports the first error encountered.
func (f *NativeFile) Close() error {
	var firstErr error

	if f.stream.s != nil {
		if f.stream.own == owned {
			if err := f.stream.s.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
			if f.stream.wrapsFD {
				// The stream held the descriptor; it is released now.
				f.desc = descriptorSlot{fd: InvalidDescriptor}
			}
		} else if err := f.stream.s.Flush(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if f.desc.Valid() && f.desc.own == owned {
		if err := closeFD(f.desc.fd); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	f.desc = descriptorSlot{fd: InvalidDescriptor}
	f.stream = streamSlot{}
	f.options = 0
	return firstErr
}

// TakeStream hands the owned stream to the caller without closing it
// and resets the file to the invalid state. The caller assumes sole
// responsibility for eventually closing the returned stream, including
// any descriptor it wraps. A borrowed or absent stream slot returns nil
// and leaves the file unchanged.
func (f *NativeFile) TakeStream() Stream {
	if f.stream.s == nil || f.stream.own != owned {
		return nil
	}
	s := f.stream.s
	f.desc = descriptorSlot{fd: InvalidDescriptor}
	f.stream = streamSlot{}
	f.options = 0
	return s
}

// Descriptor returns the descriptor slot's value or InvalidDescriptor.
// It never derives a descriptor from the stream.
func (f *NativeFile) Descriptor() int {
	if f.desc.Valid() {
		return f.desc.fd
	}
	return InvalidDescriptor
}

// Options returns the open options the file was constructed with.
func (f *NativeFile) Options() OpenOptions {
	return f.options
}

// Stream returns the stream backing. When only a descriptor is present
// a buffered stream is lazily layered over it and cached as owned; a
// borrowed descriptor is duplicated first so the stream never controls
// the caller's descriptor. This is the one transition from "one valid
// slot" to "both valid" after construction, and it is not safe to race
// with Close or TakeStream.
func (f *NativeFile) Stream() (Stream, error) {
	if f.stream.s != nil {
		return f.stream.s, nil
	}
	if !f.desc.Valid() {
		return nil, ErrClosed
	}

	if f.desc.own != owned {
		dup, err := dupFD(f.desc.fd)
		if err != nil {
			return nil, err
		}
		f.desc = descriptorSlot{fd: dup, valid: true, own: owned}
	}

	name, _ := f.Path()
	f.stream = streamSlot{
		s:       NewBufferedStream(os.NewFile(uintptr(f.desc.fd), name)),
		own:     owned,
		wrapsFD: true,
	}
	return f.stream.s, nil
}

// WaitableHandle returns the descriptor slot's value for readiness
// polling, or InvalidHandle. Streams are never pollable, even when the
// stream slot is the only valid one.
func (f *NativeFile) WaitableHandle() WaitableHandle {
	if f.desc.Valid() {
		return WaitableHandle(f.desc.fd)
	}
	return InvalidHandle
}

// Path resolves the path behind the file, best effort: the descriptor
// is reverse-looked-up when the host supports it, then a named stream
// is consulted.
func (f *NativeFile) Path() (string, error) {
	if f.desc.Valid() {
		return fdPath(f.desc.fd)
	}
	if f.stream.s != nil {
		if named, ok := f.stream.s.(interface{ Name() string }); ok {
			if name := named.Name(); name != "" {
				return name, nil
			}
		}
	}
	return "", fmt.Errorf("file has no resolvable path: %w", ErrUnsupported)
}

// IsInteractive reports whether the file is a terminal (tty or pty).
// The answer is computed once and cached for the object lifetime.
func (f *NativeFile) IsInteractive() bool {
	f.resolve(f.Descriptor())
	return f.interactive.Bool()
}

// IsRealTerminal reports whether the file is a terminal with a non-zero
// width, so cursor movement and other escape sequences will work.
// The answer is computed once and cached for the object lifetime.
func (f *NativeFile) IsRealTerminal() bool {
	f.resolve(f.Descriptor())
	return f.realTerminal.Bool()
}

// IsTerminalWithColors reports whether the file is a terminal that
// supports colors. The answer is computed once and cached for the
// object lifetime.
func (f *NativeFile) IsTerminalWithColors() bool {
	f.resolve(f.Descriptor())
	return f.colors.Bool()
}

// Compile-time interface checks.
var _ File = (*NativeFile)(nil)

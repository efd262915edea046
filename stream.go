package hostfile

import (
	"bufio"
	"io"
	"os"
)

// Stream is a buffered stream handle over an open file.
//
// Streams carry their own cursor and buffering, so mixing stream I/O
// with raw descriptor I/O on the same file requires a Flush in between.
//
// Implementations may additionally expose:
//
//   - Fd() int: the descriptor the stream wraps, when it wraps one.
//   - Name() string: the name the stream was opened with.
//
// Callers discover these with type assertions, mirroring the optional
// Flusher/Syncer capabilities on File.
type Stream interface {
	io.Reader
	io.Writer
	io.Seeker
	io.Closer
	Flusher
}

// BufferedStream is a Stream over an *os.File with independent read and
// write buffers, behaving like a C stdio stream: reads are buffered
// ahead, writes are buffered until Flush, and Seek reconciles both
// buffers against the underlying descriptor.
//
// Closing a BufferedStream closes the descriptor it wraps.
type BufferedStream struct {
	f *os.File
	r *bufio.Reader
	w *bufio.Writer
}

// NewBufferedStream layers a buffered stream over f. The stream assumes
// control of f's cursor; the caller should stop using f directly.
func NewBufferedStream(f *os.File) *BufferedStream {
	return &BufferedStream{
		f: f,
		r: bufio.NewReader(f),
		w: bufio.NewWriter(f),
	}
}

// Read reads from the stream at its current position. Buffered writes
// are flushed first so reads observe them.
func (s *BufferedStream) Read(p []byte) (int, error) {
	if s.w.Buffered() > 0 {
		if err := s.w.Flush(); err != nil {
			return 0, err
		}
	}
	return s.r.Read(p)
}

// Write writes to the stream at its current position. Any read-ahead is
// unwound first so the write lands at the logical cursor.
func (s *BufferedStream) Write(p []byte) (int, error) {
	if n := s.r.Buffered(); n > 0 {
		if _, err := s.f.Seek(-int64(n), io.SeekCurrent); err != nil {
			return 0, err
		}
		s.r.Reset(s.f)
	}
	return s.w.Write(p)
}

// Seek repositions the stream, discarding read-ahead and flushing
// pending writes so the descriptor cursor and the logical cursor agree.
func (s *BufferedStream) Seek(offset int64, whence int) (int64, error) {
	if err := s.w.Flush(); err != nil {
		return 0, err
	}
	if whence == io.SeekCurrent {
		// The descriptor is ahead of the logical position by the
		// unread buffered bytes.
		offset -= int64(s.r.Buffered())
	}
	s.r.Reset(s.f)
	return s.f.Seek(offset, whence)
}

// Flush writes any buffered data to the underlying descriptor.
func (s *BufferedStream) Flush() error {
	return s.w.Flush()
}

// Close flushes the stream and closes the underlying file, reporting
// the first error encountered.
func (s *BufferedStream) Close() error {
	err := s.w.Flush()
	if cerr := s.f.Close(); err == nil {
		err = cerr
	}
	return err
}

// Fd returns the descriptor the stream wraps.
func (s *BufferedStream) Fd() int {
	return int(s.f.Fd())
}

// Name returns the name of the underlying file.
func (s *BufferedStream) Name() string {
	return s.f.Name()
}

// Compile-time interface checks.
var _ Stream = (*BufferedStream)(nil)

package hostfile

import (
	"github.com/go-git/go-billy/v5"
)

// billyStream adapts a billy.File into a Stream.
type billyStream struct {
	file billy.File
}

// StreamFromBilly adapts a go-billy file into a Stream, giving File a
// descriptor-less stream backing. Billy backends such as memfs have no
// OS descriptor, so files built over them report InvalidDescriptor and
// fail positioned I/O and Sync with ErrUnsupported.
//
// Billy files are unbuffered, so Flush is a no-op, mirroring how
// backends without a capability degrade gracefully.
func StreamFromBilly(f billy.File) Stream {
	return &billyStream{file: f}
}

// Read delegates directly to the underlying billy.File.
func (s *billyStream) Read(p []byte) (int, error) {
	return s.file.Read(p)
}

// Write delegates directly to the underlying billy.File.
func (s *billyStream) Write(p []byte) (int, error) {
	return s.file.Write(p)
}

// Seek delegates directly to the underlying billy.File.
func (s *billyStream) Seek(offset int64, whence int) (int64, error) {
	return s.file.Seek(offset, whence)
}

// Flush is a no-op: billy files write through without buffering.
func (s *billyStream) Flush() error {
	return nil
}

// Close delegates directly to the underlying billy.File.
func (s *billyStream) Close() error {
	return s.file.Close()
}

// Name returns the name provided when the billy file was opened.
func (s *billyStream) Name() string {
	return s.file.Name()
}

// Compile-time interface checks.
var _ Stream = (*billyStream)(nil)

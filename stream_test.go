package hostfile

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func tempStream(t *testing.T) *BufferedStream {
	t.Helper()
	f, err := os.Create(filepath.Join(t.TempDir(), "stream.bin"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return NewBufferedStream(f)
}

func TestBufferedStream_WriteFlushRead(t *testing.T) {
	s := tempStream(t)
	defer func() { _ = s.Close() }()

	payload := []byte("buffered stream round trip")
	n, err := s.Write(payload)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if n != len(payload) {
		t.Fatalf("Write n = %d, want %d", n, len(payload))
	}

	if _, err := s.Seek(0, io.SeekStart); err != nil {
		t.Fatalf("Seek: %v", err)
	}
	got := make([]byte, len(payload))
	if _, err := io.ReadFull(s, got); err != nil {
		t.Fatalf("ReadFull: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("read back %q, want %q", got, payload)
	}
}

// Buffered writes become visible to reads without an explicit Flush:
// Read flushes pending writes first, the way stdio streams reconcile
// their buffers.
func TestBufferedStream_ReadSeesPendingWrites(t *testing.T) {
	s := tempStream(t)
	defer func() { _ = s.Close() }()

	if _, err := s.Write([]byte("pending")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := s.Seek(0, io.SeekStart); err != nil {
		t.Fatalf("Seek: %v", err)
	}
	got := make([]byte, 7)
	if _, err := io.ReadFull(s, got); err != nil {
		t.Fatalf("ReadFull: %v", err)
	}
	if string(got) != "pending" {
		t.Errorf("read %q, want %q", got, "pending")
	}
}

// A write after a buffered read lands at the logical cursor, not at the
// descriptor position inflated by read-ahead.
func TestBufferedStream_WriteAfterReadAhead(t *testing.T) {
	s := tempStream(t)
	defer func() { _ = s.Close() }()

	if _, err := s.Write([]byte("0123456789")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := s.Seek(0, io.SeekStart); err != nil {
		t.Fatalf("Seek: %v", err)
	}

	// Read two bytes; bufio will have read ahead past them.
	two := make([]byte, 2)
	if _, err := io.ReadFull(s, two); err != nil {
		t.Fatalf("ReadFull: %v", err)
	}

	// Overwrite must continue at offset 2.
	if _, err := s.Write([]byte("XY")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := s.Seek(0, io.SeekStart); err != nil {
		t.Fatalf("Seek: %v", err)
	}
	got := make([]byte, 10)
	if _, err := io.ReadFull(s, got); err != nil {
		t.Fatalf("ReadFull: %v", err)
	}
	if string(got) != "01XY456789" {
		t.Errorf("content = %q, want %q", got, "01XY456789")
	}
}

// SeekCurrent accounts for unread buffered bytes so the result is the
// logical position.
func TestBufferedStream_SeekCurrentWithReadAhead(t *testing.T) {
	s := tempStream(t)
	defer func() { _ = s.Close() }()

	if _, err := s.Write([]byte("abcdefghij")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := s.Seek(0, io.SeekStart); err != nil {
		t.Fatalf("Seek: %v", err)
	}
	three := make([]byte, 3)
	if _, err := io.ReadFull(s, three); err != nil {
		t.Fatalf("ReadFull: %v", err)
	}

	pos, err := s.Seek(0, io.SeekCurrent)
	if err != nil {
		t.Fatalf("Seek: %v", err)
	}
	if pos != 3 {
		t.Errorf("logical position = %d, want 3", pos)
	}
}

func TestBufferedStream_EOF(t *testing.T) {
	s := tempStream(t)
	defer func() { _ = s.Close() }()

	if n, err := s.Read(make([]byte, 8)); n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("Read on empty stream = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestBufferedStream_FdAndName(t *testing.T) {
	dir := t.TempDir()
	f, err := os.Create(filepath.Join(dir, "named.bin"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	s := NewBufferedStream(f)
	defer func() { _ = s.Close() }()

	if !DescriptorIsValid(s.Fd()) {
		t.Errorf("Fd() = %d, want a valid descriptor", s.Fd())
	}
	if s.Name() != f.Name() {
		t.Errorf("Name() = %q, want %q", s.Name(), f.Name())
	}
}

func TestBufferedStream_CloseFlushes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flushed.bin")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	s := NewBufferedStream(f)
	if _, err := s.Write([]byte("buffered")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "buffered" {
		t.Errorf("file content = %q, want %q", data, "buffered")
	}
}

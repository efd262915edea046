package filetest

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/jmgilman/go/hostfile"
)

// Config adapts the suite to backing behavior characteristics.
type Config struct {
	// ReadOnly indicates the file under test cannot be written.
	ReadOnly bool

	// Unseekable indicates the backing has no meaningful cursor to
	// rewind (e.g. a pipe), so read-back verification is skipped.
	Unseekable bool

	// SkipTests lists suite subtests to skip by name (e.g. "WriteFull").
	SkipTests []string
}

// TestFile runs the File conformance subtests. The open function must
// return a fresh, valid file for each subtest; the suite closes what it
// opens.
func TestFile(t *testing.T, config Config, open func(t *testing.T) hostfile.File) {
	shouldSkip := func(name string) bool {
		for _, skip := range config.SkipTests {
			if skip == name {
				return true
			}
		}
		return false
	}

	run := func(name string, fn func(t *testing.T)) {
		t.Run(name, func(t *testing.T) {
			if shouldSkip(name) {
				t.Skip("Skipped by configuration")
				return
			}
			fn(t)
		})
	}

	run("ValidityLifecycle", func(t *testing.T) {
		f := open(t)
		if !f.IsValid() {
			t.Fatal("freshly opened file is not valid")
		}
		if err := f.Close(); err != nil {
			t.Fatalf("Close() error = %v", err)
		}
		if f.IsValid() {
			t.Error("file still valid after Close")
		}
		if fd := f.Descriptor(); fd != hostfile.InvalidDescriptor {
			t.Errorf("Descriptor() after Close = %d, want %d", fd, hostfile.InvalidDescriptor)
		}
	})

	run("CloseIdempotent", func(t *testing.T) {
		f := open(t)
		if err := f.Close(); err != nil {
			t.Fatalf("first Close() error = %v", err)
		}
		if err := f.Close(); err != nil {
			t.Errorf("second Close() error = %v, want nil", err)
		}
	})

	run("ClosedOperationsFail", func(t *testing.T) {
		f := open(t)
		if err := f.Close(); err != nil {
			t.Fatalf("Close() error = %v", err)
		}
		if _, err := f.Read(make([]byte, 1)); !errors.Is(err, hostfile.ErrClosed) {
			t.Errorf("Read on closed file: error = %v, want ErrClosed", err)
		}
		if _, err := f.Write([]byte("x")); !errors.Is(err, hostfile.ErrClosed) {
			t.Errorf("Write on closed file: error = %v, want ErrClosed", err)
		}
	})

	run("WriteFull", func(t *testing.T) {
		if config.ReadOnly {
			t.Skip("read-only backing")
			return
		}
		f := open(t)
		defer closeQuietly(t, f)

		payload := bytes.Repeat([]byte("full-write-contract."), 512)
		n, err := f.Write(payload)
		if err != nil {
			t.Fatalf("Write() error = %v", err)
		}
		if n != len(payload) {
			t.Fatalf("Write() n = %d, want %d: short write returned without error", n, len(payload))
		}
	})

	run("ReadBackAndEOF", func(t *testing.T) {
		if config.ReadOnly || config.Unseekable {
			t.Skip("backing cannot round-trip")
			return
		}
		f := open(t)
		defer closeQuietly(t, f)

		payload := []byte("eof-convention")
		if _, err := f.Write(payload); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
		if err := f.Flush(); err != nil {
			t.Fatalf("Flush() error = %v", err)
		}
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			t.Fatalf("Seek() error = %v", err)
		}

		got := make([]byte, len(payload))
		if _, err := io.ReadFull(f, got); err != nil {
			t.Fatalf("ReadFull() error = %v", err)
		}
		if !bytes.Equal(got, payload) {
			t.Errorf("read back %q, want %q", got, payload)
		}
		if n, err := f.Read(make([]byte, 1)); n != 0 || !errors.Is(err, io.EOF) {
			t.Errorf("Read at end = (%d, %v), want (0, io.EOF)", n, err)
		}
	})

	run("CapabilitiesStable", func(t *testing.T) {
		f := open(t)
		defer closeQuietly(t, f)

		first := f.IsInteractive()
		for i := 0; i < 3; i++ {
			if got := f.IsInteractive(); got != first {
				t.Fatalf("IsInteractive() changed from %v to %v on call %d", first, got, i+2)
			}
		}
		// Real-terminal and colors imply interactive.
		if f.IsRealTerminal() && !first {
			t.Error("IsRealTerminal() true for a non-interactive file")
		}
		if f.IsTerminalWithColors() && !f.IsRealTerminal() {
			t.Error("IsTerminalWithColors() true for a non-real terminal")
		}
	})
}

func closeQuietly(t *testing.T, f hostfile.File) {
	t.Helper()
	if err := f.Close(); err != nil {
		t.Logf("Close error (non-fatal): %v", err)
	}
}

//go:build unix

package hostfile

import (
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// Raw descriptors bypass the runtime poller, so every syscall below
// retries EINTR itself.

func readFD(fd int, p []byte) (int, error) {
	for {
		n, err := unix.Read(fd, p)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return 0, os.NewSyscallError("read", err)
		}
		if n == 0 && len(p) > 0 {
			return 0, io.EOF
		}
		return n, nil
	}
}

func writeFD(fd int, p []byte) (int, error) {
	var written int
	for written < len(p) {
		n, err := unix.Write(fd, p[written:])
		if n > 0 {
			written += n
		}
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return written, os.NewSyscallError("write", err)
		}
		if n == 0 {
			return written, io.ErrShortWrite
		}
	}
	return written, nil
}

func preadFD(fd int, p []byte, off int64) (int, error) {
	var n int
	for n < len(p) {
		m, err := unix.Pread(fd, p[n:], off+int64(n))
		if m > 0 {
			n += m
		}
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return n, os.NewSyscallError("pread", err)
		}
		if m == 0 {
			return n, io.EOF
		}
	}
	return n, nil
}

func pwriteFD(fd int, p []byte, off int64) (int, error) {
	var n int
	for n < len(p) {
		m, err := unix.Pwrite(fd, p[n:], off+int64(n))
		if m > 0 {
			n += m
		}
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return n, os.NewSyscallError("pwrite", err)
		}
		if m == 0 {
			return n, io.ErrShortWrite
		}
	}
	return n, nil
}

func seekFD(fd int, offset int64, whence int) (int64, error) {
	off, err := unix.Seek(fd, offset, whence)
	if err != nil {
		return 0, os.NewSyscallError("lseek", err)
	}
	return off, nil
}

func syncFD(fd int) error {
	for {
		err := unix.Fsync(fd)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return os.NewSyscallError("fsync", err)
		}
		return nil
	}
}

func closeFD(fd int) error {
	// EINTR after close is not retried: the descriptor state is
	// unspecified and a retry risks closing a reused descriptor.
	if err := unix.Close(fd); err != nil {
		return os.NewSyscallError("close", err)
	}
	return nil
}

func dupFD(fd int) (int, error) {
	for {
		dup, err := unix.Dup(fd)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return InvalidDescriptor, os.NewSyscallError("dup", err)
		}
		return dup, nil
	}
}

//go:build !unix

package hostfile

import "fmt"

func errNoRawDescriptors(op string) error {
	return fmt.Errorf("%s: raw descriptor I/O is unavailable on this platform: %w", op, ErrUnsupported)
}

func readFD(fd int, p []byte) (int, error) { return 0, errNoRawDescriptors("read") }

func writeFD(fd int, p []byte) (int, error) { return 0, errNoRawDescriptors("write") }

func preadFD(fd int, p []byte, off int64) (int, error) { return 0, errNoRawDescriptors("pread") }

func pwriteFD(fd int, p []byte, off int64) (int, error) { return 0, errNoRawDescriptors("pwrite") }

func seekFD(fd int, offset int64, whence int) (int64, error) {
	return 0, errNoRawDescriptors("lseek")
}

func syncFD(fd int) error { return errNoRawDescriptors("fsync") }

func closeFD(fd int) error { return errNoRawDescriptors("close") }

func dupFD(fd int) (int, error) { return InvalidDescriptor, errNoRawDescriptors("dup") }

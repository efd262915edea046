//go:build unix

package hostfile

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

// Open opens path with the given options and creation permissions and
// returns a descriptor-backed file owning the descriptor.
func Open(path string, options OpenOptions, perm fs.FileMode, opts ...Option) (*NativeFile, error) {
	for {
		fd, err := unix.Open(path, PosixOpenFlags(options), uint32(perm.Perm()))
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return nil, &fs.PathError{Op: "open", Path: path, Err: err}
		}
		return NewFileFromDescriptor(fd, options, true, opts...), nil
	}
}

// OpenMode opens path with a conventional fopen-style mode string such
// as "r" or "w+". The mode is translated through ParseMode; see Open.
func OpenMode(path, mode string, perm fs.FileMode, opts ...Option) (*NativeFile, error) {
	options, err := ParseMode(mode)
	if err != nil {
		return nil, err
	}
	return Open(path, options, perm, opts...)
}

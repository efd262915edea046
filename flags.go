//go:build unix

package hostfile

import "golang.org/x/sys/unix"

// PosixOpenFlags translates an abstract option set into the flag
// argument for open(2). The translation is pure and cannot fail: append
// and truncate imply write access, and exclusive creation implies
// creation.
func PosixOpenFlags(options OpenOptions) int {
	flags := 0

	read := options.Has(OpenRead)
	write := options&(OpenWrite|OpenAppend|OpenTruncate) != 0
	switch {
	case read && write:
		flags |= unix.O_RDWR
	case write:
		flags |= unix.O_WRONLY
	default:
		flags |= unix.O_RDONLY
	}

	if options.Has(OpenAppend) {
		flags |= unix.O_APPEND
	}
	if options.Has(OpenTruncate) {
		flags |= unix.O_TRUNC
	}
	if options.Has(OpenNonBlocking) {
		flags |= unix.O_NONBLOCK
	}
	if options.Has(OpenCreateExclusive) {
		flags |= unix.O_CREAT | unix.O_EXCL
	} else if options.Has(OpenCanCreate) {
		flags |= unix.O_CREAT
	}
	if options.Has(OpenDontFollowSymlinks) {
		flags |= unix.O_NOFOLLOW
	}
	if options.Has(OpenCloseOnExec) {
		flags |= unix.O_CLOEXEC
	}
	return flags
}

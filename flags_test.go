//go:build unix

package hostfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

func TestPosixOpenFlags(t *testing.T) {
	tests := []struct {
		name    string
		options OpenOptions
		want    int
	}{
		{"read", OpenRead, unix.O_RDONLY},
		{"write", OpenWrite, unix.O_WRONLY},
		{"read-write", OpenRead | OpenWrite, unix.O_RDWR},
		{"append implies write", OpenAppend, unix.O_WRONLY | unix.O_APPEND},
		{"truncate implies write", OpenTruncate, unix.O_WRONLY | unix.O_TRUNC},
		{"read-append", OpenRead | OpenAppend, unix.O_RDWR | unix.O_APPEND},
		{
			"full write mode",
			OpenWrite | OpenTruncate | OpenCanCreate,
			unix.O_WRONLY | unix.O_TRUNC | unix.O_CREAT,
		},
		{
			"exclusive implies create",
			OpenWrite | OpenCreateExclusive,
			unix.O_WRONLY | unix.O_CREAT | unix.O_EXCL,
		},
		{
			"exclusive wins over create",
			OpenWrite | OpenCanCreate | OpenCreateExclusive,
			unix.O_WRONLY | unix.O_CREAT | unix.O_EXCL,
		},
		{"non-blocking", OpenRead | OpenNonBlocking, unix.O_RDONLY | unix.O_NONBLOCK},
		{"no-follow", OpenRead | OpenDontFollowSymlinks, unix.O_RDONLY | unix.O_NOFOLLOW},
		{"close-on-exec", OpenRead | OpenCloseOnExec, unix.O_RDONLY | unix.O_CLOEXEC},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PosixOpenFlags(tt.options))
		})
	}
}

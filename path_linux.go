//go:build linux

package hostfile

import (
	"fmt"
	"os"
)

// fdPath reverse-looks-up the path behind fd via procfs.
func fdPath(fd int) (string, error) {
	path, err := os.Readlink(fmt.Sprintf("/proc/self/fd/%d", fd))
	if err != nil {
		return "", fmt.Errorf("descriptor %d has no resolvable path: %w", fd, ErrUnsupported)
	}
	return path, nil
}

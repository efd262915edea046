//go:build !linux

package hostfile

import "fmt"

// fdPath reverse-looks-up the path behind fd. Hosts without a
// descriptor-to-path facility cannot support it.
func fdPath(fd int) (string, error) {
	return "", fmt.Errorf("descriptor %d has no resolvable path: %w", fd, ErrUnsupported)
}

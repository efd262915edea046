//go:build !unix

package hostfile

// hostProber probes the host terminal. Platforms without unix terminal
// ioctls report no capabilities.
type hostProber struct{}

func (hostProber) IsTerminal(fd int) bool { return false }

func (hostProber) Size(fd int) (width, height int, err error) {
	return 0, 0, ErrUnsupported
}

func (hostProber) HasColors(fd int) bool { return false }

// Compile-time interface check.
var _ Prober = hostProber{}

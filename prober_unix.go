//go:build unix

package hostfile

import (
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// hostProber probes the host terminal.
type hostProber struct{}

func (hostProber) IsTerminal(fd int) bool {
	return isatty.IsTerminal(uintptr(fd)) || isatty.IsCygwinTerminal(uintptr(fd))
}

func (hostProber) Size(fd int) (width, height int, err error) {
	return term.GetSize(fd)
}

func (hostProber) HasColors(fd int) bool {
	return terminalSupportsColors()
}

// Compile-time interface check.
var _ Prober = hostProber{}

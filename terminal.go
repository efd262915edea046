package hostfile

import (
	"os"
	"strings"
	"sync"
)

// Prober answers terminal capability questions about a file descriptor.
// The default prober queries the host; tests inject doubles via
// WithProber.
type Prober interface {
	// IsTerminal reports whether fd refers to a terminal.
	IsTerminal(fd int) bool

	// Size returns the width and height of the terminal behind fd.
	Size(fd int) (width, height int, err error)

	// HasColors reports whether the terminal behind fd supports colors.
	HasColors(fd int) bool
}

// terminalFlags holds the three lazily computed capability flags and
// the compute-once discipline shared by every concrete file type.
//
// All three flags settle in a single pass: deciding "real terminal"
// requires knowing "interactive", and "colors" requires "real terminal".
type terminalFlags struct {
	prober Prober

	once         sync.Once
	interactive  TriState
	realTerminal TriState
	colors       TriState
}

// resolve computes the flags from fd on first use. Later calls return
// the cached values regardless of fd, so a file closed after the first
// query keeps its last-known capabilities.
func (t *terminalFlags) resolve(fd int) {
	t.once.Do(func() {
		p := t.prober
		if p == nil {
			p = hostProber{}
		}

		interactive := DescriptorIsValid(fd) && p.IsTerminal(fd)
		t.interactive = triStateOf(interactive)
		if !interactive {
			t.realTerminal = TriStateFalse
			t.colors = TriStateFalse
			return
		}

		width, _, err := p.Size(fd)
		real := err == nil && width > 0
		t.realTerminal = triStateOf(real)
		if !real {
			t.colors = TriStateFalse
			return
		}

		t.colors = triStateOf(p.HasColors(fd))
	})
}

// terminalSupportsColors decides color support from the TERM
// environment variable.
func terminalSupportsColors() bool {
	term := os.Getenv("TERM")
	if term == "" || term == "dumb" {
		return false
	}
	switch term {
	case "ansi", "cygwin", "linux":
		return true
	}
	for _, prefix := range []string{"screen", "xterm", "vt100", "rxvt", "tmux"} {
		if strings.HasPrefix(term, prefix) {
			return true
		}
	}
	return strings.Contains(term, "color")
}

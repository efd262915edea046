package hostfile

import "testing"

func TestTerminalSupportsColors(t *testing.T) {
	tests := []struct {
		term string
		want bool
	}{
		{"", false},
		{"dumb", false},
		{"ansi", true},
		{"linux", true},
		{"cygwin", true},
		{"xterm", true},
		{"xterm-256color", true},
		{"screen-256color", true},
		{"tmux-256color", true},
		{"rxvt-unicode", true},
		{"vt100", true},
		{"foo-color", true},
		{"vt52", false},
		{"emacs", false},
	}

	for _, tt := range tests {
		name := tt.term
		if name == "" {
			name = "unset"
		}
		t.Run(name, func(t *testing.T) {
			t.Setenv("TERM", tt.term)
			if got := terminalSupportsColors(); got != tt.want {
				t.Errorf("TERM=%q: supportsColors = %v, want %v", tt.term, got, tt.want)
			}
		})
	}
}

// The compute-once pass settles all three flags together even when the
// prober is never consulted (no descriptor).
func TestTerminalFlags_ResolveWithoutDescriptor(t *testing.T) {
	var flags terminalFlags
	flags.resolve(InvalidDescriptor)

	if flags.interactive != TriStateFalse {
		t.Errorf("interactive = %v, want false", flags.interactive)
	}
	if flags.realTerminal != TriStateFalse {
		t.Errorf("realTerminal = %v, want false", flags.realTerminal)
	}
	if flags.colors != TriStateFalse {
		t.Errorf("colors = %v, want false", flags.colors)
	}
}

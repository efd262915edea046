package filetest

import "testing"

func TestRecordingProber_Counts(t *testing.T) {
	p := &RecordingProber{Terminal: true, Width: 120, Height: 40, Colors: true}

	if !p.IsTerminal(1) {
		t.Error("IsTerminal() = false, want canned true")
	}
	w, h, err := p.Size(1)
	if err != nil || w != 120 || h != 40 {
		t.Errorf("Size() = (%d, %d, %v), want (120, 40, nil)", w, h, err)
	}
	if !p.HasColors(1) {
		t.Error("HasColors() = false, want canned true")
	}

	if got := p.TerminalCalls(); got != 1 {
		t.Errorf("TerminalCalls() = %d, want 1", got)
	}
	if got := p.Calls(); got != 3 {
		t.Errorf("Calls() = %d, want 3", got)
	}
}

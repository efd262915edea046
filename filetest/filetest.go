// Package filetest provides test doubles and a conformance test suite
// for validating hostfile.File implementations against the interface
// contracts.
//
// The suite validates the contracts every backing must honor: close
// idempotence, validity lifecycle, full-length writes and the EOF
// convention. Backing-specific behavior (positioned I/O, Sync, lazy
// stream construction) stays in the implementation's own tests.
//
// Example usage:
//
//	func TestMyFile(t *testing.T) {
//	    filetest.TestFile(t, filetest.Config{}, func(t *testing.T) hostfile.File {
//	        return newFileUnderTest(t)
//	    })
//	}
package filetest

import (
	"sync"

	"github.com/jmgilman/go/hostfile"
)

// RecordingProber is a hostfile.Prober double that records how often
// each probe runs. Useful for asserting that capability flags are
// computed exactly once per file lifetime.
type RecordingProber struct {
	// Terminal, Width, Height and Colors are the canned probe answers.
	Terminal bool
	Width    int
	Height   int
	Colors   bool

	mu            sync.Mutex
	terminalCalls int
	sizeCalls     int
	colorCalls    int
}

// IsTerminal implements hostfile.Prober.
func (p *RecordingProber) IsTerminal(fd int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.terminalCalls++
	return p.Terminal
}

// Size implements hostfile.Prober.
func (p *RecordingProber) Size(fd int) (width, height int, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sizeCalls++
	return p.Width, p.Height, nil
}

// HasColors implements hostfile.Prober.
func (p *RecordingProber) HasColors(fd int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.colorCalls++
	return p.Colors
}

// Calls returns the total number of probe invocations across all three
// probes.
func (p *RecordingProber) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.terminalCalls + p.sizeCalls + p.colorCalls
}

// TerminalCalls returns how often IsTerminal ran.
func (p *RecordingProber) TerminalCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.terminalCalls
}

// Compile-time interface check.
var _ hostfile.Prober = (*RecordingProber)(nil)

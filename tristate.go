package hostfile

// TriState represents a lazily computed boolean capability value.
// It starts as TriStateUnknown and transitions to TriStateTrue or
// TriStateFalse exactly once per object lifetime.
type TriState int

const (
	// TriStateUnknown indicates the value has not been computed yet.
	TriStateUnknown TriState = iota
	// TriStateTrue indicates the capability is present.
	TriStateTrue
	// TriStateFalse indicates the capability is absent.
	TriStateFalse
)

// String returns a string representation of the TriState.
func (t TriState) String() string {
	switch t {
	case TriStateTrue:
		return "true"
	case TriStateFalse:
		return "false"
	default:
		return "unknown"
	}
}

// Bool reports the tri-state as a plain boolean, treating unknown as false.
func (t TriState) Bool() bool {
	return t == TriStateTrue
}

// triStateOf converts a computed boolean into its settled tri-state.
func triStateOf(b bool) TriState {
	if b {
		return TriStateTrue
	}
	return TriStateFalse
}

package hostfile

import "fmt"

// OpenOptions is a bitmask describing the intent a file was, or should
// be, opened with.
//
// The values are transmitted verbatim in the remote file-open protocol
// message and MUST NOT be renumbered or reassigned once defined. New
// options must take unused bit positions.
type OpenOptions uint32

const (
	// OpenRead opens the file for reading.
	OpenRead OpenOptions = 1 << iota
	// OpenWrite opens the file for writing.
	OpenWrite
	// OpenAppend writes to the end of the file instead of truncating it.
	OpenAppend
	// OpenTruncate truncates the file when opening.
	OpenTruncate
	// OpenNonBlocking opens the file in non-blocking mode.
	OpenNonBlocking
	// OpenCanCreate creates the file if it does not already exist.
	OpenCanCreate
	// OpenCreateExclusive creates the file only if it does not already exist.
	OpenCreateExclusive
	// OpenDontFollowSymlinks refuses to follow a trailing symbolic link.
	OpenDontFollowSymlinks
	// OpenCloseOnExec closes the file when executing a new process.
	OpenCloseOnExec
)

// Has reports whether every option in mask is set.
func (o OpenOptions) Has(mask OpenOptions) bool {
	return o&mask == mask
}

// ParseMode parses a conventional fopen-style mode string ("r", "w+",
// "ab", ...) into the equivalent OpenOptions. The "b" binary indicator
// is accepted in its usual positions and has no effect.
//
// Unrecognized mode strings fail with an error wrapping ErrInvalid.
func ParseMode(mode string) (OpenOptions, error) {
	switch mode {
	case "r", "rb":
		return OpenRead, nil
	case "r+", "rb+", "r+b":
		return OpenRead | OpenWrite, nil
	case "w", "wb":
		return OpenWrite | OpenTruncate | OpenCanCreate, nil
	case "w+", "wb+", "w+b":
		return OpenRead | OpenWrite | OpenTruncate | OpenCanCreate, nil
	case "a", "ab":
		return OpenWrite | OpenAppend | OpenCanCreate, nil
	case "a+", "ab+", "a+b":
		return OpenRead | OpenWrite | OpenAppend | OpenCanCreate, nil
	}
	return 0, fmt.Errorf("invalid file open mode %q: %w", mode, ErrInvalid)
}

// ModeString maps options back to the closest fopen-style mode string,
// for interop with APIs that take mode strings rather than flag sets.
// Option sets with no mode-string equivalent (for example write without
// read, truncate or append) fail with an error wrapping ErrInvalid.
func ModeString(options OpenOptions) (string, error) {
	switch {
	case options.Has(OpenAppend):
		if options.Has(OpenRead) {
			return "a+", nil
		}
		return "a", nil
	case options.Has(OpenRead | OpenWrite):
		if options.Has(OpenTruncate) {
			return "w+", nil
		}
		return "r+", nil
	case options.Has(OpenWrite):
		return "w", nil
	case options.Has(OpenRead):
		return "r", nil
	}
	return "", fmt.Errorf("open options %#x have no mode string: %w", uint32(options), ErrInvalid)
}

// internal/action/errors.go
package action

import "errors"

// Parse failures are distinguished by cause so the console can report them
// precisely. All of them wrap one of these sentinels.
var (
	ErrUnknownType   = errors.New("unknown spec type")
	ErrBadCharacter  = errors.New("invalid character in spec")
	ErrBadNumber     = errors.New("malformed number in spec")
	ErrOutOfRange    = errors.New("magnitude out of range")
	ErrMissingButton = errors.New("missing mouse button name")
	ErrTruncated     = errors.New("truncated spec")

	// ErrReservedWord rejects a keystroke spec that would encode to the
	// all-zero word, which readers treat as "unset".
	ErrReservedWord = errors.New("keystroke 0x00 without modifiers is reserved")

	ErrTooManyEntries = errors.New("too many entries for a configuration")
	ErrMissingSpec    = errors.New("missing counterclockwise spec")
)

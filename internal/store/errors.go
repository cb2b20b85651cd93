// internal/store/errors.go
package store

import "errors"

// Boundary violations are typed rejections: they leave both the in-memory
// header mirror and the persisted image untouched.
var (
	ErrBadSlot       = errors.New("store: slot out of range")
	ErrUnusedSlot    = errors.New("store: slot unused")
	ErrBadCombo      = errors.New("store: chord out of range")
	ErrNoSpace       = errors.New("store: not enough free space")
	ErrDefaultBlock  = errors.New("store: slot 0 is permanent")
	ErrBlockTooLarge = errors.New("store: block exceeds entry budget")
	ErrCorrupt       = errors.New("store: stored block overruns region")
)

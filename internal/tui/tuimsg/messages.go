package tuimsg

import (
	"github.com/rgehrsitz/lifegrid/internal/domain"
)

// ProfileChangedMsg carries the edited profile; the root model recomputes
// the snapshot on receipt.
type ProfileChangedMsg struct {
	Profile domain.Profile
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

package settings

import (
	"errors"
	"fmt"
)

// ErrNoSession is returned when a save or cancel is requested for a
// section that has no active edit session.
var ErrNoSession = errors.New("no active edit session")

// ErrUnknownSection is returned for section ids outside the closed set.
var ErrUnknownSection = errors.New("unknown settings section")

// ConflictError reports an attempt to start editing a section while
// another one is already being edited. Editing is exclusive across
// sections, so a correct caller never triggers this; it is a
// programming-contract violation, not a user-facing condition.
type ConflictError struct {
	Active    SectionID
	Requested SectionID
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("section %q is already being edited, cannot edit %q", e.Active, e.Requested)
}

package reservation

import (
	"fmt"

	"vango/models"
)

// ConflictError reports that the requested window overlaps existing
// reservations (or that the slot is being confirmed by someone else right
// now). Recoverable: the customer picks a new window.
type ConflictError struct {
	Windows []models.Window
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("requested window conflicts with %d existing reservation(s)", len(e.Windows))
}

// TransitionError reports an invalid status change request.
type TransitionError struct {
	From string
	To   string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot move reservation from %q to %q", e.From, e.To)
}

package pricing

import "fmt"

// RangeError reports an invalid rental window supplied by the caller. It is a
// user-recoverable input error.
type RangeError struct {
	Reason string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid rental range: %s", e.Reason)
}

// TierError reports a gap in a category's rate table: a valid duration that no
// configured tier covers. This is a data-integrity problem for operators, not
// something the customer can fix, and must never be collapsed into a zero
// price.
type TierError struct {
	Hours int
}

func (e *TierError) Error() string {
	return fmt.Sprintf("no pricing tier covers %d hours", e.Hours)
}

// UnknownAddOnError reports a requested add-on that does not exist in the
// catalog. It is a user-recoverable input error.
type UnknownAddOnError struct {
	AddOnID string
}

func (e *UnknownAddOnError) Error() string {
	return fmt.Sprintf("unknown add-on %q", e.AddOnID)
}

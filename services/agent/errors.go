package agent

import "fmt"

// Turn error kinds. Handlers map these onto HTTP statuses and user-facing
// copy; the taxonomy keeps operator problems (integrity) visibly apart from
// retryable upstream failures.
const (
	KindInput     = "input"
	KindIntegrity = "integrity"
	KindUpstream  = "upstream"
)

// TurnError is a turn-level failure. The conversation state is never mutated
// when one of these is returned, so the caller can resubmit the same turn.
type TurnError struct {
	Kind    string
	Message string
	Err     error
}

func (e *TurnError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *TurnError) Unwrap() error { return e.Err }

func inputErr(msg string) *TurnError {
	return &TurnError{Kind: KindInput, Message: msg}
}

func integrityErr(msg string, err error) *TurnError {
	return &TurnError{Kind: KindIntegrity, Message: msg, Err: err}
}

func upstreamErr(msg string, err error) *TurnError {
	return &TurnError{Kind: KindUpstream, Message: msg, Err: err}
}

package booking

// Status is the payment lifecycle state of a booking. Transitions only move
// forward: pending is the sole non-terminal webhook state, refunded is an
// administrative terminal state reachable from anywhere.
type Status string

const (
	StatusPending  Status = "pending"
	StatusPaid     Status = "paid"
	StatusFailed   Status = "failed"
	StatusRefunded Status = "refunded"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusFailed, StatusRefunded:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// CanTransitionTo reports whether the state machine permits s -> next.
// Repeating the current state is not a transition; callers treat it as a
// no-op before consulting this.
func (s Status) CanTransitionTo(next Status) bool {
	if next == StatusRefunded {
		return true // administrative path, any state
	}
	if s != StatusPending {
		return false
	}
	return next == StatusPaid || next == StatusFailed
}

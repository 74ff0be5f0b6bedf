package bootstrap

// State is a step of the fetch state machine.
type State int

const (
	// StateIdle is the state of a fetcher that has not run yet.
	StateIdle State = iota
	// StateRequesting means a remote call is in flight.
	StateRequesting
	// StateRetrying means the fetcher is waiting out the backoff.
	StateRetrying
	// StateSucceeded is terminal: properties were mapped.
	StateSucceeded
	// StateFailed is terminal: the policy ran out.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRequesting:
		return "requesting"
	case StateRetrying:
		return "retrying"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no transition leaves s.
func (s State) Terminal() bool {
	return s == StateSucceeded || s == StateFailed
}

package conversation

// TurnStatus is the lifecycle state of one exchange.
type TurnStatus int

const (
	// StatusPending means the tutor request is in flight. At most one
	// turn per thread is pending at any time.
	StatusPending TurnStatus = iota
	StatusCompleted
	StatusErrored
)

func (s TurnStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusCompleted:
		return "completed"
	case StatusErrored:
		return "errored"
	}
	return "unknown"
}

// Turn is one user-message/tutor-reply exchange.
type Turn struct {
	// UserText is the guardian-typed (or dictated) message. Empty for
	// the synthetic greeting turn.
	UserText string

	// BotText is the tutor's reply. Empty until the turn resolves; the
	// fixed apology string when the turn errors.
	BotText string

	Status TurnStatus

	// LatencyMs is the server-reported latency when present, otherwise
	// the measured wall-clock round trip.
	LatencyMs int64

	// Greeting marks the synthetic welcome turn.
	Greeting bool
}

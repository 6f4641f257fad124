package client

// Phase is the lifecycle stage of a session.
type Phase string

const (
	PhaseIdle        Phase = "idle"
	PhaseConnecting  Phase = "connecting"
	PhaseJoining     Phase = "joining"
	PhaseAwaiting    Phase = "awaiting"
	PhaseDispatching Phase = "dispatching"
	PhaseTerminated  Phase = "terminated"
)

func (p Phase) String() string { return string(p) }

package manager

// State of a session. Terminated is final.
type State uint8

const (
	StateRunning State = iota
	StateTerminated
)

func (s State) String() string {
	if s == StateTerminated {
		return "terminated"
	}
	return "running"
}

// TerminationReason records why a session ended.
type TerminationReason uint8

const (
	ReasonNone TerminationReason = iota
	ReasonSelfCollision
	ReasonWallCollision
	ReasonQuit
)

func (r TerminationReason) String() string {
	switch r {
	case ReasonSelfCollision:
		return "self_collision"
	case ReasonWallCollision:
		return "wall_collision"
	case ReasonQuit:
		return "quit"
	default:
		return "none"
	}
}

// StateManager tracks the running/terminated state and per-session
// counters. Nothing is persisted.
type StateManager struct {
	state     State
	reason    TerminationReason
	ticks     uint64
	foodEaten int
}

func NewStateManager() *StateManager {
	return &StateManager{state: StateRunning}
}

func (sm *StateManager) State() State {
	return sm.state
}

func (sm *StateManager) Running() bool {
	return sm.state == StateRunning
}

func (sm *StateManager) Reason() TerminationReason {
	return sm.reason
}

// Terminate moves to StateTerminated. Only the first call records a reason.
func (sm *StateManager) Terminate(reason TerminationReason) {
	if sm.state == StateTerminated {
		return
	}
	sm.state = StateTerminated
	sm.reason = reason
}

// AdvanceTick counts a processed tick and returns its number, starting at 1.
func (sm *StateManager) AdvanceTick() uint64 {
	sm.ticks++
	return sm.ticks
}

func (sm *StateManager) Ticks() uint64 {
	return sm.ticks
}

func (sm *StateManager) RecordFood() {
	sm.foodEaten++
}

func (sm *StateManager) FoodEaten() int {
	return sm.foodEaten
}

package valueobjects

import "fmt"

// State is the contact outcome of an assignment.
type State string

const (
	StatePending   State = "pending"
	StateBitten    State = "bitten"
	StateNoService State = "no_service"
	StateNoAnswer  State = "no_answer"
	StateScheduled State = "scheduled"
)

var validStates = map[State]bool{
	StatePending:   true,
	StateBitten:    true,
	StateNoService: true,
	StateNoAnswer:  true,
	StateScheduled: true,
}

// Only pending moves. Finalized assignments are released by deleting them.
var stateTransitions = map[State][]State{
	StatePending: {
		StateBitten,
		StateNoService,
		StateNoAnswer,
		StateScheduled,
	},
}

func (s State) String() string {
	return string(s)
}

func (s State) IsValid() bool {
	return validStates[s]
}

// IsFinal reports whether the agent has recorded an outcome.
func (s State) IsFinal() bool {
	return s.IsValid() && s != StatePending
}

func (s State) CanTransitionTo(next State) bool {
	for _, allowed := range stateTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func NewState(s string) (State, error) {
	state := State(s)
	if !state.IsValid() {
		return "", fmt.Errorf("invalid assignment state: %q", s)
	}
	return state, nil
}

// AllStates lists every state, pending first.
func AllStates() []State {
	return []State{StatePending, StateBitten, StateNoService, StateNoAnswer, StateScheduled}
}

package tokenizer

// State is one step of a state machine. A nil result stops the machine.
type State[S any] func() *StateResult[S]

// StateResult is what a state returns: the state to run next and, when
// HasOutput is set, the value produced by this step.
type StateResult[S any] struct {
	Output    S
	HasOutput bool
	Next      State[S]
}

// Machine drives states until one produces output. Embed it and set the
// start state with SetStart.
type Machine[S any] struct {
	start   State[S]
	current State[S]
}

// SetStart sets the start state and makes it current.
func (m *Machine[S]) SetStart(state State[S]) {
	m.start = state
	m.current = state
}

// StartState returns the state the machine resets to.
func (m *Machine[S]) StartState() State[S] {
	return m.start
}

// Stay keeps the current state and produces nothing.
func (m *Machine[S]) Stay() *StateResult[S] {
	return &StateResult[S]{Next: m.current}
}

// StayWith keeps the current state and produces output.
func (m *Machine[S]) StayWith(output S) *StateResult[S] {
	return &StateResult[S]{Output: output, HasOutput: true, Next: m.current}
}

// Transition moves to next and produces nothing.
func (m *Machine[S]) Transition(next State[S]) *StateResult[S] {
	return &StateResult[S]{Next: next}
}

// TransitionWith moves to next and produces output.
func (m *Machine[S]) TransitionWith(output S, next State[S]) *StateResult[S] {
	return &StateResult[S]{Output: output, HasOutput: true, Next: next}
}

// Stop ends the machine.
func (m *Machine[S]) Stop() *StateResult[S] {
	return nil
}

// Turn runs states until one produces output or the machine stops. ok is
// false once the machine has stopped.
func (m *Machine[S]) Turn() (output S, ok bool) {
	for m.current != nil {
		result := m.current()
		if result == nil {
			m.current = nil
			return output, false
		}
		m.current = result.Next
		if result.HasOutput {
			return result.Output, true
		}
	}
	return output, false
}

// Reset returns the machine to its start state.
func (m *Machine[S]) Reset() {
	m.current = m.start
}

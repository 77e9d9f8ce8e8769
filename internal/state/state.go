// internal/state/state.go
package state

import "fmt"

// Phase is the lifecycle phase of a window.
type Phase int

const (
	Uninitialized Phase = iota
	Ready
	Terminated
)

func (p Phase) String() string {
	switch p {
	case Uninitialized:
		return "uninitialized"
	case Ready:
		return "ready"
	case Terminated:
		return "terminated"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

var allowed = map[Phase][]Phase{
	Uninitialized: {Ready, Terminated},
	Ready:         {Ready, Terminated},
}

// StateMachine tracks the current phase and rejects transitions out of
// Terminated or back to Uninitialized.
type StateMachine struct {
	current Phase
	onEnter map[Phase]func()
}

// NewStateMachine returns a machine in Uninitialized.
func NewStateMachine() *StateMachine {
	return &StateMachine{onEnter: make(map[Phase]func())}
}

// OnEnter registers fn to run every time the machine enters p.
func (sm *StateMachine) OnEnter(p Phase, fn func()) {
	sm.onEnter[p] = fn
}

func (sm *StateMachine) Current() Phase {
	return sm.current
}

// CanEnter reports whether a transition to next is allowed.
func (sm *StateMachine) CanEnter(next Phase) bool {
	for _, p := range allowed[sm.current] {
		if p == next {
			return true
		}
	}
	return false
}

// SetState moves to next and runs its enter hook.
func (sm *StateMachine) SetState(next Phase) error {
	if !sm.CanEnter(next) {
		return fmt.Errorf("state: %s -> %s not allowed", sm.current, next)
	}
	sm.current = next
	if fn := sm.onEnter[next]; fn != nil {
		fn()
	}
	return nil
}

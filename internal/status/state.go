// Package status tracks the load state of the conversation view.
package status

import (
	"fmt"
	"slices"
	"sync"

	"github.com/matheus3301/wchat/internal/bus"
)

// State is the load state of the live feed behind the conversation view.
type State string

const (
	Loading   State = "LOADING"    // subscribed, no snapshot yet
	SignedOut State = "SIGNED_OUT" // no session; the login form is shown
	Ready     State = "READY"      // snapshots are flowing
	Degraded  State = "DEGRADED"   // index/configuration warning, feed may be empty
	Error     State = "ERROR"      // terminal for the view until reloaded
)

// validTransitions defines allowed state transitions.
var validTransitions = map[State][]State{
	Loading:   {Ready, Degraded, SignedOut, Error},
	SignedOut: {Loading},
	Ready:     {Degraded, SignedOut, Loading, Error},
	Degraded:  {Ready, SignedOut, Loading, Error},
	Error:     {Loading, SignedOut},
}

// Machine tracks and enforces load state transitions.
type Machine struct {
	mu      sync.RWMutex
	current State
	detail  string
	bus     *bus.Bus
}

// NewMachine creates a new state machine starting in Loading state.
func NewMachine(b *bus.Bus) *Machine {
	return &Machine{
		current: Loading,
		bus:     b,
	}
}

// Current returns the current state.
func (m *Machine) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Detail returns the message attached to the last transition.
func (m *Machine) Detail() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.detail
}

// Transition attempts to move to a new state. Returns error if transition is invalid.
func (m *Machine) Transition(to State) error {
	return m.TransitionWithDetail(to, "")
}

// TransitionWithDetail is Transition with a human-readable reason (e.g. the
// feed error). Moving to the current state only refreshes the detail.
func (m *Machine) TransitionWithDetail(to State, detail string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if to == m.current {
		m.detail = detail
		return nil
	}
	allowed := validTransitions[m.current]
	if !slices.Contains(allowed, to) {
		return fmt.Errorf("invalid transition from %s to %s", m.current, to)
	}
	from := m.current
	m.current = to
	m.detail = detail
	if m.bus != nil {
		m.bus.Emit(bus.KindFeedStatus, StatusChange{
			From:   from,
			To:     to,
			Detail: detail,
		})
	}
	return nil
}

// StatusChange is the payload for status change events.
type StatusChange struct {
	From   State
	To     State
	Detail string
}

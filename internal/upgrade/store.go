// Package upgrade holds the process-wide state of the upgrade prompt and the
// helper that opens it when an API call hits a daily limit.
package upgrade

import (
	"sync"

	"github.com/mingle-app/mingle/internal/plan"
)

// State is a snapshot of the upgrade prompt.
type State struct {
	Visible     bool
	LimitKind   plan.LimitKind // empty when closed
	LimitCount  int
	CurrentPlan plan.Plan
}

// Store owns the prompt state. Open and Close are the only mutators.
// Subscribers get a snapshot after every mutation; a subscriber whose
// buffer is full misses that update.
type Store struct {
	mu    sync.RWMutex
	state State
	subs  map[chan State]struct{}
}

// NewStore returns a closed store for a free-plan user.
func NewStore() *Store {
	return &Store{
		state: State{CurrentPlan: plan.Free},
		subs:  make(map[chan State]struct{}),
	}
}

// State returns the current snapshot.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Open shows the prompt, overwriting any previous parameters.
func (s *Store) Open(kind plan.LimitKind, count int, current plan.Plan) {
	s.update(func(st *State) {
		*st = State{
			Visible:     true,
			LimitKind:   kind,
			LimitCount:  count,
			CurrentPlan: current,
		}
	})
}

// Close hides the prompt and clears the limit. CurrentPlan is kept.
func (s *Store) Close() {
	s.update(func(st *State) {
		st.Visible = false
		st.LimitKind = ""
		st.LimitCount = 0
	})
}

func (s *Store) update(fn func(*State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
	for ch := range s.subs {
		select {
		case ch <- s.state:
		default:
		}
	}
}

// Subscribe returns a channel receiving every new state.
func (s *Store) Subscribe() chan State {
	ch := make(chan State, 8)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs[ch] = struct{}{}
	return ch
}

// Unsubscribe removes ch and closes it.
func (s *Store) Unsubscribe(ch chan State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.subs[ch]; ok {
		delete(s.subs, ch)
		close(ch)
	}
}

var defaultStore = NewStore()

// Default returns the process-wide store.
func Default() *Store { return defaultStore }

// Open opens the process-wide prompt.
func Open(kind plan.LimitKind, count int, current plan.Plan) {
	defaultStore.Open(kind, count, current)
}

// Close closes the process-wide prompt.
func Close() { defaultStore.Close() }

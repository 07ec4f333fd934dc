package effect

// Set tracks the status effects currently active on one character, in
// application order. Ordering is preserved so per-turn processing emits
// messages deterministically.
//
// It is not safe for concurrent use; the caller must serialise access.
type Set struct {
	effects []*Effect
}

// NewSet creates an empty Set.
func NewSet() *Set {
	return &Set{}
}

// Add attaches e to the set. If an effect of the same Type is already
// present it is replaced, refreshing power and duration; the refreshed
// effect moves to the end of the processing order.
//
// Precondition: e must not be nil.
// Postcondition: Has(e.Type) is true and exactly one effect of that
// type is present.
func (s *Set) Add(e *Effect) {
	s.Remove(e.Type)
	s.effects = append(s.effects, e)
}

// Remove deletes the effect with the given type, if present.
//
// Postcondition: Has(t) is false.
func (s *Set) Remove(t Type) {
	for i, e := range s.effects {
		if e.Type == t {
			s.effects = append(s.effects[:i], s.effects[i+1:]...)
			return
		}
	}
}

// Has reports whether an effect of type t is currently active.
func (s *Set) Has(t Type) bool {
	for _, e := range s.effects {
		if e.Type == t {
			return true
		}
	}
	return false
}

// Get returns the active effect of type t, or nil if not present.
func (s *Set) Get(t Type) *Effect {
	for _, e := range s.effects {
		if e.Type == t {
			return e
		}
	}
	return nil
}

// Len returns the number of active effects.
func (s *Set) Len() int {
	return len(s.effects)
}

// All returns the active effects in application order. The slice is a
// new allocation, but the pointed-to effects are shared — callers must
// not modify them.
func (s *Set) All() []*Effect {
	out := make([]*Effect, len(s.effects))
	copy(out, s.effects)
	return out
}

// PreventsAction reports whether any active effect blocks the bearer
// from acting this turn.
func (s *Set) PreventsAction() bool {
	for _, e := range s.effects {
		if e.PreventsAction() {
			return true
		}
	}
	return false
}

// AttackDelta returns the net additive attack modifier from all active
// effects. Boosts are positive, weakness penalties negative.
func (s *Set) AttackDelta() int {
	total := 0
	for _, e := range s.effects {
		total += e.AttackDelta()
	}
	return total
}

// DefenseDelta returns the net additive defense modifier from all
// active effects.
func (s *Set) DefenseDelta() int {
	total := 0
	for _, e := range s.effects {
		total += e.DefenseDelta()
	}
	return total
}

// TickDurations decrements the remaining duration of every active
// effect by 1 and removes the ones that reach zero, returning the
// expired effects in application order.
//
// Postcondition: For every returned effect, Has(effect.Type) is false;
// every surviving effect has Remaining >= 1.
func (s *Set) TickDurations() []*Effect {
	var expired []*Effect
	kept := s.effects[:0]
	for _, e := range s.effects {
		e.Remaining--
		if e.Expired() {
			expired = append(expired, e)
			continue
		}
		kept = append(kept, e)
	}
	s.effects = kept
	return expired
}

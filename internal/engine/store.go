package engine

import "github.com/nealhardesty/p2k/internal/mapping"

// Store holds the last observed pressed state of every button binding, by
// table index, and of both triggers. Only the Engine writes to it.
type Store struct {
	buttons  []bool
	triggers [2]bool
}

// NewStore returns a store for n button bindings with everything released.
func NewStore(n int) *Store {
	return &Store{buttons: make([]bool, n)}
}

// Button reports whether button binding i was last seen pressed.
func (s *Store) Button(i int) bool {
	return s.buttons[i]
}

func (s *Store) setButton(i int, pressed bool) {
	s.buttons[i] = pressed
}

func (s *Store) Trigger(side mapping.Side) bool {
	return s.triggers[side]
}

func (s *Store) setTrigger(side mapping.Side, pressed bool) {
	s.triggers[side] = pressed
}

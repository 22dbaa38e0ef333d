package engine

import (
	"github.com/nealhardesty/p2k/internal/mapping"
)

// TriggerThreshold is the trigger magnitude (out of 255) at which a trigger
// counts as pressed.
const TriggerThreshold = 16

// Snapshot is one sample of the controller.
type Snapshot struct {
	Connected    bool
	Buttons      mapping.Buttons
	LeftTrigger  uint8
	RightTrigger uint8
}

// Trigger returns the magnitude of the given trigger.
func (s Snapshot) Trigger(side mapping.Side) uint8 {
	if side == mapping.Left {
		return s.LeftTrigger
	}
	return s.RightTrigger
}

// Event is a synthetic key press or release, as collected by Recorder.
type Event struct {
	Key   int
	Press bool
}

// Sink receives synthetic key events.
type Sink interface {
	Inject(key int, press bool)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(key int, press bool)

func (f SinkFunc) Inject(key int, press bool) { f(key, press) }

// Engine turns controller samples into key events according to a mapping
// table. It is not safe for concurrent use.
type Engine struct {
	table *mapping.Table
	store *Store
}

func New(table *mapping.Table) *Engine {
	return &Engine{
		table: table,
		store: NewStore(len(table.Buttons)),
	}
}

// Store exposes the engine's pressed-state store.
func (e *Engine) Store() *Store {
	return e.store
}

// Process compares snap with the previous sample and sends one event to sink
// for every binding whose pressed state changed. A disconnected snapshot is
// ignored entirely and leaves every binding as it was. It returns the number
// of events sent.
func (e *Engine) Process(snap Snapshot, sink Sink) int {
	if !snap.Connected {
		return 0
	}

	n := 0
	for i, b := range e.table.Buttons {
		pressed := snap.Buttons.Has(b.Control)
		if edge(e.store.Button(i), pressed, b.Key, sink) {
			n++
		}
		e.store.setButton(i, pressed)
	}
	for _, side := range sides {
		pressed := snap.Trigger(side) >= TriggerThreshold
		if edge(e.store.Trigger(side), pressed, e.table.Trigger(side).Key, sink) {
			n++
		}
		e.store.setTrigger(side, pressed)
	}
	return n
}

// ReleaseAll sends a release for every binding currently held down and marks
// it released. It returns the number of events sent.
func (e *Engine) ReleaseAll(sink Sink) int {
	n := 0
	for i, b := range e.table.Buttons {
		if edge(e.store.Button(i), false, b.Key, sink) {
			n++
		}
		e.store.setButton(i, false)
	}
	for _, side := range sides {
		if edge(e.store.Trigger(side), false, e.table.Trigger(side).Key, sink) {
			n++
		}
		e.store.setTrigger(side, false)
	}
	return n
}

// Triggers are evaluated left first.
var sides = []mapping.Side{mapping.Left, mapping.Right}

// edge sends key to sink when the pressed state changed.
func edge(prev, pressed bool, key int, sink Sink) bool {
	if prev == pressed {
		return false
	}
	sink.Inject(key, pressed)
	return true
}

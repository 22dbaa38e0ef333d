package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nealhardesty/p2k/internal/mapping"
)

func newEngine(t *testing.T, config string) *Engine {
	t.Helper()
	pairs, err := mapping.Parse(strings.NewReader(config))
	require.NoError(t, err)
	return New(mapping.Build(pairs))
}

func connected(buttons mapping.Buttons, lt, rt uint8) Snapshot {
	return Snapshot{Connected: true, Buttons: buttons, LeftTrigger: lt, RightTrigger: rt}
}

func TestProcessPressRelease(t *testing.T) {
	e := newEngine(t, "A 41 B 42")
	rec := &Recorder{}

	n := e.Process(connected(mapping.Buttons(mapping.ControlA), 0, 0), rec)
	assert.Equal(t, 1, n)
	assert.Equal(t, []Event{{Key: 0x41, Press: true}}, rec.Take())
	assert.True(t, e.Store().Button(0))
	assert.False(t, e.Store().Button(1))

	e.Process(connected(0, 0, 0), rec)
	assert.Equal(t, []Event{{Key: 0x41, Press: false}}, rec.Take())
	assert.False(t, e.Store().Button(0))
}

func TestProcessIdempotent(t *testing.T) {
	e := newEngine(t, "A 41 B 42 LT 10 RT 11")
	rec := &Recorder{}
	snap := connected(mapping.Buttons(0).With(mapping.ControlA, mapping.ControlB), 200, 16)

	assert.Equal(t, 4, e.Process(snap, rec))
	assert.Len(t, rec.Take(), 4)

	assert.Equal(t, 0, e.Process(snap, rec))
	assert.Empty(t, rec.Take())
}

func TestProcessOrdering(t *testing.T) {
	e := newEngine(t, "Y 59 UP 26 LT 10 RT 11")
	rec := &Recorder{}

	e.Process(connected(mapping.Buttons(0).With(mapping.ControlUp, mapping.ControlY), 255, 255), rec)
	assert.Equal(t, []Event{
		{Key: 0x59, Press: true},
		{Key: 0x26, Press: true},
		{Key: 0x10, Press: true},
		{Key: 0x11, Press: true},
	}, rec.Take())
}

func TestProcessDisconnectedFreezes(t *testing.T) {
	e := newEngine(t, "A 41 LT 10")
	rec := &Recorder{}

	e.Process(connected(mapping.Buttons(mapping.ControlA), 0, 0), rec)
	rec.Take()

	for _, snap := range []Snapshot{
		{},
		{Buttons: 0xffff, LeftTrigger: 255, RightTrigger: 255},
		{Buttons: 0},
	} {
		assert.Equal(t, 0, e.Process(snap, rec))
	}
	assert.Empty(t, rec.Take())
	assert.True(t, e.Store().Button(0), "state must survive a disconnect")
	assert.False(t, e.Store().Trigger(mapping.Left))
}

func TestProcessReconnectResumesFromLastState(t *testing.T) {
	e := newEngine(t, "A 41")
	rec := &Recorder{}

	e.Process(connected(mapping.Buttons(mapping.ControlA), 0, 0), rec)
	e.Process(Snapshot{}, rec)
	rec.Take()

	// A was released while unplugged; the release is only seen on reconnect.
	e.Process(connected(0, 0, 0), rec)
	assert.Equal(t, []Event{{Key: 0x41, Press: false}}, rec.Take())
}

func TestProcessReconnectMissesEdgeDuringDisconnect(t *testing.T) {
	e := newEngine(t, "A 41")
	rec := &Recorder{}

	e.Process(connected(0, 0, 0), rec)
	e.Process(Snapshot{Buttons: mapping.Buttons(mapping.ControlA)}, rec)
	e.Process(connected(0, 0, 0), rec)
	assert.Empty(t, rec.Take())
}

func TestTriggerThreshold(t *testing.T) {
	tests := []struct {
		magnitude uint8
		pressed   bool
	}{
		{0, false},
		{15, false},
		{16, true},
		{17, true},
		{255, true},
	}
	for _, tt := range tests {
		e := newEngine(t, "LT 10 RT 11")
		rec := &Recorder{}

		e.Process(connected(0, tt.magnitude, tt.magnitude), rec)
		if tt.pressed {
			assert.Equal(t, []Event{{Key: 0x10, Press: true}, {Key: 0x11, Press: true}}, rec.Take(), "magnitude %d", tt.magnitude)
		} else {
			assert.Empty(t, rec.Take(), "magnitude %d", tt.magnitude)
		}
		assert.Equal(t, tt.pressed, e.Store().Trigger(mapping.Left))
		assert.Equal(t, tt.pressed, e.Store().Trigger(mapping.Right))
	}
}

func TestUnconfiguredTriggerFiresKeyZero(t *testing.T) {
	e := newEngine(t, "A 41")
	rec := &Recorder{}

	e.Process(connected(0, 0, 40), rec)
	assert.Equal(t, []Event{{Key: 0, Press: true}}, rec.Take())
}

func TestDuplicateBindingsFireIndependently(t *testing.T) {
	e := newEngine(t, "A 41 A 42")
	rec := &Recorder{}

	e.Process(connected(mapping.Buttons(mapping.ControlA), 0, 0), rec)
	assert.Equal(t, []Event{{Key: 0x41, Press: true}, {Key: 0x42, Press: true}}, rec.Take())

	e.Process(connected(0, 0, 0), rec)
	assert.Equal(t, []Event{{Key: 0x41, Press: false}, {Key: 0x42, Press: false}}, rec.Take())
}

func TestSameKeyNotDeduplicated(t *testing.T) {
	e := newEngine(t, "A 20 B 20")
	rec := &Recorder{}

	e.Process(connected(mapping.Buttons(0).With(mapping.ControlA, mapping.ControlB), 0, 0), rec)
	assert.Equal(t, []Event{{Key: 0x20, Press: true}, {Key: 0x20, Press: true}}, rec.Take())

	e.Process(connected(mapping.Buttons(mapping.ControlB), 0, 0), rec)
	assert.Equal(t, []Event{{Key: 0x20, Press: false}}, rec.Take())
}

func TestUnmappedControlsIgnored(t *testing.T) {
	e := newEngine(t, "FOO 99 A 41")
	rec := &Recorder{}

	e.Process(connected(mapping.Buttons(mapping.ControlB), 0, 0), rec)
	assert.Empty(t, rec.Take())
}

func TestEndToEnd(t *testing.T) {
	e := newEngine(t, "A 41 LT 10")
	rec := &Recorder{}

	e.Process(connected(mapping.Buttons(mapping.ControlA), 0, 0), rec)
	assert.Equal(t, []Event{{Key: 0x41, Press: true}}, rec.Take())

	snap2 := connected(0, 20, 0)
	e.Process(snap2, rec)
	assert.Equal(t, []Event{{Key: 0x41, Press: false}, {Key: 0x10, Press: true}}, rec.Take())

	e.Process(snap2, rec)
	assert.Empty(t, rec.Take())
}

// Every emitted event must correspond to a change of the computed state.
func TestEventsOnlyOnEdges(t *testing.T) {
	e := newEngine(t, "A 41 X 58 RT 11")
	rec := &Recorder{}

	samples := []Snapshot{
		connected(0, 0, 0),
		connected(mapping.Buttons(mapping.ControlA), 0, 15),
		connected(mapping.Buttons(mapping.ControlA), 0, 16),
		{Buttons: 0},
		connected(mapping.Buttons(0).With(mapping.ControlA, mapping.ControlX), 0, 100),
		connected(mapping.Buttons(mapping.ControlX), 0, 3),
		connected(mapping.Buttons(mapping.ControlX), 0, 3),
	}
	var prevA, prevX, prevRT bool
	for i, s := range samples {
		e.Process(s, rec)
		var want []Event
		if s.Connected {
			a, x, rt := s.Buttons.Has(mapping.ControlA), s.Buttons.Has(mapping.ControlX), s.RightTrigger >= TriggerThreshold
			if a != prevA {
				want = append(want, Event{Key: 0x41, Press: a})
			}
			if x != prevX {
				want = append(want, Event{Key: 0x58, Press: x})
			}
			if rt != prevRT {
				want = append(want, Event{Key: 0x11, Press: rt})
			}
			prevA, prevX, prevRT = a, x, rt
		}
		assert.Equal(t, want, rec.Take(), "sample %d", i)
	}
}

func TestReleaseAll(t *testing.T) {
	e := newEngine(t, "A 41 B 42 LT 10 RT 11")
	rec := &Recorder{}

	e.Process(connected(mapping.Buttons(mapping.ControlB), 0, 50), rec)
	rec.Take()

	assert.Equal(t, 2, e.ReleaseAll(rec))
	assert.Equal(t, []Event{{Key: 0x42, Press: false}, {Key: 0x11, Press: false}}, rec.Take())
	assert.Equal(t, 0, e.ReleaseAll(rec))
	assert.False(t, e.Store().Button(1))
	assert.False(t, e.Store().Trigger(mapping.Right))
}

func TestSinkFunc(t *testing.T) {
	e := newEngine(t, "START 0D")
	var got []Event
	sink := SinkFunc(func(key int, press bool) { got = append(got, Event{key, press}) })

	e.Process(connected(mapping.Buttons(mapping.ControlStart), 0, 0), sink)
	assert.Equal(t, []Event{{Key: 0x0d, Press: true}}, got)
}

func TestRecorder(t *testing.T) {
	rec := &Recorder{}
	var sink Sink = rec

	sink.Inject(0x41, true)
	sink.Inject(0x41, false)
	assert.Equal(t, []Event{{Key: 0x41, Press: true}, {Key: 0x41, Press: false}}, rec.Take())
	assert.Empty(t, rec.Events)
	assert.Nil(t, rec.Take())
}

func TestStoreWrites(t *testing.T) {
	s := NewStore(2)

	s.setButton(1, true)
	s.setTrigger(mapping.Right, true)
	assert.False(t, s.Button(0))
	assert.True(t, s.Button(1))
	assert.False(t, s.Trigger(mapping.Left))
	assert.True(t, s.Trigger(mapping.Right))

	s.setButton(1, false)
	assert.False(t, s.Button(1))
}

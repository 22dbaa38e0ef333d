package poller

import (
	"context"
	"errors"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"

	"github.com/nealhardesty/p2k/internal/engine"
)

// DefaultInterval is the pause between two samples.
const DefaultInterval = time.Millisecond

// ErrDisconnected is returned by a Source when no controller is attached at
// the requested index.
var ErrDisconnected = errors.New("controller not connected")

// Source samples controller state.
type Source interface {
	Poll(index int) (engine.Snapshot, error)
}

var defaultLogger = zerolog.New(os.Stdout).With().Timestamp().Str("subsystem", "poller").Logger()

// Poller feeds controller samples to an engine at a fixed cadence.
type Poller struct {
	Source   Source
	Engine   *engine.Engine
	Sink     engine.Sink
	Index    int
	Interval time.Duration

	log       *zerolog.Logger
	connected bool
}

func New(source Source, e *engine.Engine, sink engine.Sink, logger *zerolog.Logger) *Poller {
	if logger == nil {
		l := defaultLogger
		logger = &l
	}
	return &Poller{
		Source:   source,
		Engine:   e,
		Sink:     sink,
		Interval: DefaultInterval,
		log:      logger,
	}
}

// Run samples the controller until ctx is done. On return every key still
// held by the engine has been released.
func (p *Poller) Run(ctx context.Context) error {
	// Some backends must be sampled from the thread that opened them.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	timer := time.NewTimer(p.Interval)
	defer timer.Stop()

	for {
		if ctx.Err() != nil {
			return p.stop()
		}
		select {
		case <-ctx.Done():
			return p.stop()
		case <-timer.C:
		}

		p.Step()
		timer.Reset(p.Interval)
	}
}

// Step takes one sample and hands it to the engine. Any source error is
// treated as a disconnected controller.
func (p *Poller) Step() int {
	snap, err := p.Source.Poll(p.Index)
	if err != nil {
		if !errors.Is(err, ErrDisconnected) {
			p.log.Debug().Err(err).Msg("poll failed")
		}
		snap = engine.Snapshot{}
	}

	if snap.Connected != p.connected {
		p.connected = snap.Connected
		if snap.Connected {
			p.log.Info().Int("index", p.Index).Msg("controller connected")
		} else {
			p.log.Info().Int("index", p.Index).Msg("controller disconnected")
		}
	}

	return p.Engine.Process(snap, p.Sink)
}

func (p *Poller) stop() error {
	if n := p.Engine.ReleaseAll(p.Sink); n > 0 {
		p.log.Info().Int("keys", n).Msg("released held keys")
	}
	return nil
}

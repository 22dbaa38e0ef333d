// Package keyboard injects synthetic key events into the OS input stream.
package keyboard

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/micmonay/keybd_event"
	"github.com/rs/zerolog"
)

var defaultLogger = zerolog.New(os.Stdout).With().Timestamp().Str("subsystem", "keyboard").Logger()

// keyBonding is the part of keybd_event.KeyBonding the injector drives.
type keyBonding interface {
	SetKeys(keys ...int)
	Press() error
	Release() error
}

// Injector sends key presses and releases through keybd_event.
type Injector struct {
	kb  keyBonding
	log *zerolog.Logger
}

func NewInjector(logger *zerolog.Logger) (*Injector, error) {
	kb, err := keybd_event.NewKeyBonding()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize keyboard: %w", err)
	}
	// The uinput device needs a moment before the desktop picks it up.
	if runtime.GOOS == "linux" {
		time.Sleep(2 * time.Second)
	}
	return newInjector(&kb, logger), nil
}

func newInjector(kb keyBonding, logger *zerolog.Logger) *Injector {
	if logger == nil {
		l := defaultLogger
		logger = &l
	}
	return &Injector{kb: kb, log: logger}
}

// Inject presses or releases the key with the given Windows virtual-key
// code. Key 0, the code of an unbound trigger, is not sent. Codes with no
// key on this platform and injection failures are logged and dropped.
func (j *Injector) Inject(key int, press bool) {
	if key == 0 {
		return
	}
	code, ok := Translate(key)
	if !ok {
		j.log.Warn().Int("key", key).Msg("no key for virtual-key code")
		return
	}
	j.kb.SetKeys(code)

	var err error
	if press {
		j.log.Debug().Int("key", key).Int("code", code).Msg("pressing key")
		err = j.kb.Press()
	} else {
		j.log.Debug().Int("key", key).Int("code", code).Msg("releasing key")
		err = j.kb.Release()
	}
	if err != nil {
		j.log.Warn().Err(err).Int("key", key).Bool("press", press).Msg("failed to inject key")
	}
}

//go:build sdl

package controller

import (
	"fmt"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/nealhardesty/p2k/internal/engine"
	"github.com/nealhardesty/p2k/internal/mapping"
	"github.com/nealhardesty/p2k/internal/poller"
)

func init() {
	// SDL must be driven from the thread that initialized it.
	runtime.LockOSThread()
}

var sdlLogger = zerolog.New(os.Stdout).With().Timestamp().Str("subsystem", "sdl").Logger()

var sdlButtons = []struct {
	button  sdl.GameControllerButton
	control mapping.Control
}{
	{sdl.CONTROLLER_BUTTON_DPAD_UP, mapping.ControlUp},
	{sdl.CONTROLLER_BUTTON_DPAD_DOWN, mapping.ControlDown},
	{sdl.CONTROLLER_BUTTON_DPAD_LEFT, mapping.ControlLeft},
	{sdl.CONTROLLER_BUTTON_DPAD_RIGHT, mapping.ControlRight},
	{sdl.CONTROLLER_BUTTON_START, mapping.ControlStart},
	{sdl.CONTROLLER_BUTTON_BACK, mapping.ControlBack},
	{sdl.CONTROLLER_BUTTON_LEFTSTICK, mapping.ControlLSB},
	{sdl.CONTROLLER_BUTTON_RIGHTSTICK, mapping.ControlRSB},
	{sdl.CONTROLLER_BUTTON_LEFTSHOULDER, mapping.ControlLB},
	{sdl.CONTROLLER_BUTTON_RIGHTSHOULDER, mapping.ControlRB},
	{sdl.CONTROLLER_BUTTON_A, mapping.ControlA},
	{sdl.CONTROLLER_BUTTON_B, mapping.ControlB},
	{sdl.CONTROLLER_BUTTON_X, mapping.ControlX},
	{sdl.CONTROLLER_BUTTON_Y, mapping.ControlY},
}

// SDL samples pads through the SDL2 game controller API, which covers
// controllers that do not speak the Xbox 360 report.
type SDL struct {
	log        *zerolog.Logger
	controller *sdl.GameController
}

func NewSDL(logger *zerolog.Logger) (*SDL, error) {
	if logger == nil {
		l := sdlLogger
		logger = &l
	}
	if err := sdl.Init(sdl.INIT_GAMECONTROLLER); err != nil {
		return nil, fmt.Errorf("SDL init failed: %w", err)
	}
	return &SDL{log: logger}, nil
}

func (s *SDL) Poll(index int) (engine.Snapshot, error) {
	sdl.PumpEvents()

	if s.controller != nil && !s.controller.Attached() {
		s.log.Info().Msg("controller detached")
		s.controller.Close()
		s.controller = nil
	}
	if s.controller == nil {
		if index >= sdl.NumJoysticks() || !sdl.IsGameController(index) {
			return engine.Snapshot{}, poller.ErrDisconnected
		}
		s.controller = sdl.GameControllerOpen(index)
		if s.controller == nil {
			return engine.Snapshot{}, fmt.Errorf("failed to open controller %d: %w", index, sdl.GetError())
		}
		s.log.Info().Str("name", s.controller.Name()).Msg("opened controller")
	}

	sdl.GameControllerUpdate()

	var buttons mapping.Buttons
	for _, b := range sdlButtons {
		if s.controller.Button(b.button) != 0 {
			buttons = buttons.With(b.control)
		}
	}
	return engine.Snapshot{
		Connected:    true,
		Buttons:      buttons,
		LeftTrigger:  triggerMagnitude(s.controller.Axis(sdl.CONTROLLER_AXIS_TRIGGERLEFT)),
		RightTrigger: triggerMagnitude(s.controller.Axis(sdl.CONTROLLER_AXIS_TRIGGERRIGHT)),
	}, nil
}

// triggerMagnitude scales an SDL trigger axis (0..32767) to 0..255.
func triggerMagnitude(v int16) uint8 {
	if v <= 0 {
		return 0
	}
	return uint8(v >> 7)
}

func (s *SDL) Close() error {
	if s.controller != nil {
		s.controller.Close()
		s.controller = nil
	}
	sdl.Quit()
	return nil
}

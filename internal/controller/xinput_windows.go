package controller

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/nealhardesty/p2k/internal/engine"
	"github.com/nealhardesty/p2k/internal/mapping"
	"github.com/nealhardesty/p2k/internal/poller"
)

var (
	xinput             = windows.NewLazySystemDLL("xinput1_4.dll")
	procXInputGetState = xinput.NewProc("XInputGetState")
)

type xinputGamepad struct {
	Buttons      uint16
	LeftTrigger  byte
	RightTrigger byte
	ThumbLX      int16
	ThumbLY      int16
	ThumbRX      int16
	ThumbRY      int16
}

type xinputState struct {
	PacketNumber uint32
	Gamepad      xinputGamepad
}

// XInput samples pads through the Windows XInput API.
type XInput struct{}

func NewXInput() (*XInput, error) {
	if err := procXInputGetState.Find(); err != nil {
		return nil, fmt.Errorf("failed to load XInput: %w", err)
	}
	return &XInput{}, nil
}

func (x *XInput) Poll(index int) (engine.Snapshot, error) {
	var state xinputState
	r, _, _ := procXInputGetState.Call(uintptr(index), uintptr(unsafe.Pointer(&state)))
	switch syscall.Errno(r) {
	case 0:
	case windows.ERROR_DEVICE_NOT_CONNECTED:
		return engine.Snapshot{}, poller.ErrDisconnected
	default:
		return engine.Snapshot{}, fmt.Errorf("XInputGetState: %w", syscall.Errno(r))
	}
	return engine.Snapshot{
		Connected:    true,
		Buttons:      mapping.Buttons(state.Gamepad.Buttons),
		LeftTrigger:  state.Gamepad.LeftTrigger,
		RightTrigger: state.Gamepad.RightTrigger,
	}, nil
}

func (x *XInput) Close() error {
	return nil
}

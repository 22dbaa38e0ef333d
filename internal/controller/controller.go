// Package controller reads game controller state from the platform.
//
// Every backend reports an XInput-style snapshot: a 16-bit button word using
// the XInput flag layout and two 8-bit trigger magnitudes.
package controller

import (
	"encoding/binary"
	"fmt"

	"github.com/nealhardesty/p2k/internal/engine"
	"github.com/nealhardesty/p2k/internal/mapping"
	"github.com/nealhardesty/p2k/internal/poller"
)

// Source is a controller backend that holds OS resources.
type Source interface {
	poller.Source
	Close() error
}

type deviceKey struct {
	VendorID  uint16
	ProductID uint16
}

// Pads that speak the Xbox 360 input report.
var knownDevices = []deviceKey{
	{0x045E, 0x028E}, // Xbox 360 wired
	{0x045E, 0x028F}, // Xbox 360 wireless (play and charge)
	{0x045E, 0x0719}, // Xbox 360 wireless receiver
	{0x046D, 0xC21D}, // Logitech F310
	{0x046D, 0xC21E}, // Logitech F510
	{0x046D, 0xC21F}, // Logitech F710
}

const (
	reportTypeInput = 0x00
	reportMinSize   = 6
)

// DecodeReport turns an Xbox 360 input report into a connected snapshot.
//
//	byte 0     report type (0x00)
//	byte 1     report length
//	bytes 2-3  button word, little endian
//	byte 4     left trigger
//	byte 5     right trigger
//	bytes 6-13 sticks (unused)
func DecodeReport(report []byte) (engine.Snapshot, error) {
	if len(report) < reportMinSize {
		return engine.Snapshot{}, fmt.Errorf("short report: %d < %d bytes", len(report), reportMinSize)
	}
	if report[0] != reportTypeInput {
		return engine.Snapshot{}, fmt.Errorf("not an input report: type 0x%02X", report[0])
	}
	return engine.Snapshot{
		Connected:    true,
		Buttons:      mapping.Buttons(binary.LittleEndian.Uint16(report[2:4])),
		LeftTrigger:  report[4],
		RightTrigger: report[5],
	}, nil
}

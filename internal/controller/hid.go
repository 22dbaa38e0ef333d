//go:build !windows

package controller

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/karalabe/hid"
	"github.com/rs/zerolog"

	"github.com/nealhardesty/p2k/internal/engine"
	"github.com/nealhardesty/p2k/internal/poller"
)

const reopenInterval = time.Second

var hidLogger = zerolog.New(os.Stdout).With().Timestamp().Str("subsystem", "hid").Logger()

// HID reads an Xbox 360 compatible pad through raw HID reports. The device
// only sends a report when something changes, so a background reader keeps
// the latest one and Poll returns it without blocking.
type HID struct {
	log *zerolog.Logger

	mu          sync.Mutex
	device      hidDevice
	latest      engine.Snapshot
	lastAttempt time.Time
	closed      bool
}

// hidDevice is the part of *hid.Device the reader uses.
type hidDevice interface {
	Read(b []byte) (int, error)
	Close() error
}

func NewHID(logger *zerolog.Logger) (*HID, error) {
	if !hid.Supported() {
		return nil, fmt.Errorf("hid is not supported on this platform")
	}
	if logger == nil {
		l := hidLogger
		logger = &l
	}
	return &HID{log: logger}, nil
}

// Poll returns the most recent report of the index-th known pad, opening it
// first if needed.
func (h *HID) Poll(index int) (engine.Snapshot, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return engine.Snapshot{}, poller.ErrDisconnected
	}
	if h.device == nil {
		if time.Since(h.lastAttempt) < reopenInterval {
			return engine.Snapshot{}, poller.ErrDisconnected
		}
		h.lastAttempt = time.Now()
		if err := h.open(index); err != nil {
			return engine.Snapshot{}, err
		}
	}
	return h.latest, nil
}

func (h *HID) open(index int) error {
	var devices []hid.DeviceInfo
	for _, k := range knownDevices {
		devices = append(devices, hid.Enumerate(k.VendorID, k.ProductID)...)
	}
	if index >= len(devices) {
		return poller.ErrDisconnected
	}

	info := devices[index]
	device, err := info.Open()
	if err != nil {
		return fmt.Errorf("failed to open controller: %w", err)
	}
	h.log.Info().
		Str("product", info.Product).
		Str("vid", fmt.Sprintf("%04X", info.VendorID)).
		Str("pid", fmt.Sprintf("%04X", info.ProductID)).
		Msg("opened controller")

	h.device = device
	// Nothing is pressed until the first report says otherwise.
	h.latest = engine.Snapshot{Connected: true}
	go h.read(device)
	return nil
}

// read owns device from here on and closes it once it stops reading, so a
// handle is never freed under a blocked Read.
func (h *HID) read(device hidDevice) {
	defer device.Close()

	buffer := make([]byte, 64)
	for {
		n, err := device.Read(buffer)
		if err != nil {
			if h.forget(device) {
				h.log.Warn().Err(err).Msg("error reading from controller")
			}
			return
		}

		snap, err := DecodeReport(buffer[:n])
		if err != nil {
			// LED and rumble status reports share the pipe.
			continue
		}

		h.mu.Lock()
		if h.device != device {
			h.mu.Unlock()
			return
		}
		h.latest = snap
		h.mu.Unlock()
	}
}

// forget detaches device if it is still the current one and reports whether
// it was.
func (h *HID) forget(device hidDevice) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.device != device {
		return false
	}
	h.device = nil
	h.latest = engine.Snapshot{}
	return true
}

// Close detaches the open device and stops further reopening. The reader
// closes the handle when its pending Read returns.
func (h *HID) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	h.device = nil
	h.latest = engine.Snapshot{}
	return nil
}

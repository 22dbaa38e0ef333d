package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nealhardesty/p2k/internal/engine"
	"github.com/nealhardesty/p2k/internal/mapping"
)

func TestDecodeReport(t *testing.T) {
	report := []byte{
		0x00, 0x14, // type, length
		0x01, 0x10, // dpad up, A
		0x0F, 0xFF, // triggers
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}

	snap, err := DecodeReport(report)
	require.NoError(t, err)
	assert.Equal(t, engine.Snapshot{
		Connected:    true,
		Buttons:      mapping.Buttons(0).With(mapping.ControlUp, mapping.ControlA),
		LeftTrigger:  15,
		RightTrigger: 255,
	}, snap)
}

func TestDecodeReportButtonLayout(t *testing.T) {
	for i, c := range mapping.Controls {
		word := uint16(c)
		snap, err := DecodeReport([]byte{0x00, 0x14, byte(word), byte(word >> 8), 0, 0})
		require.NoError(t, err)
		assert.True(t, snap.Buttons.Has(c), "control %d (%s)", i, c)
		assert.Equal(t, mapping.Buttons(c), snap.Buttons)
	}
}

func TestDecodeReportRejects(t *testing.T) {
	_, err := DecodeReport([]byte{0x00, 0x14, 0x00})
	assert.Error(t, err)

	// LED status report
	_, err = DecodeReport([]byte{0x01, 0x03, 0x0E, 0x00, 0x00, 0x00})
	assert.Error(t, err)
}

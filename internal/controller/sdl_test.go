//go:build sdl

package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTriggerMagnitude(t *testing.T) {
	assert.Equal(t, uint8(0), triggerMagnitude(-5))
	assert.Equal(t, uint8(0), triggerMagnitude(0))
	assert.Equal(t, uint8(15), triggerMagnitude(2047))
	assert.Equal(t, uint8(16), triggerMagnitude(2048))
	assert.Equal(t, uint8(255), triggerMagnitude(32767))
}

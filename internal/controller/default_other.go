//go:build !windows && !sdl

package controller

import "github.com/rs/zerolog"

// Default opens the raw HID backend.
func Default(logger *zerolog.Logger) (Source, error) {
	src, err := NewHID(logger)
	if err != nil {
		return nil, err
	}
	return src, nil
}

//go:build !sdl

package controller

import "github.com/rs/zerolog"

// Default opens the XInput backend.
func Default(_ *zerolog.Logger) (Source, error) {
	src, err := NewXInput()
	if err != nil {
		return nil, err
	}
	return src, nil
}

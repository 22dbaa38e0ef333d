//go:build sdl

package controller

import "github.com/rs/zerolog"

// Default opens the SDL backend.
func Default(logger *zerolog.Logger) (Source, error) {
	src, err := NewSDL(logger)
	if err != nil {
		return nil, err
	}
	return src, nil
}

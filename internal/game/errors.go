package game

import "errors"

var (
	ErrInvalidCoordinate    = errors.New("wall coordinate out of range")
	ErrAlreadyClaimed       = errors.New("wall already claimed")
	ErrGameOver             = errors.New("game already finished")
	ErrInvalidConfiguration = errors.New("board width and height must be positive")
)

package game

import "errors"

var (
	ErrIllegalMove       = errors.New("illegal move")
	ErrInvalidDimensions = errors.New("invalid board dimensions")
)

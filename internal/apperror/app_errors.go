package apperror

import "errors"

var (
	ErrGameFinished    = errors.New("game is already finished")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrOutOfBounds     = errors.New("X or Y out of bounds")
	ErrInvalidX        = errors.New("X is not a valid int")
	ErrInvalidY        = errors.New("Y is not a valid int")
	ErrWrongTokenCount = errors.New("invalid input")
	ErrInvalidBoard    = errors.New("invalid board")
)

package tictactoe

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	FirstPlayerRandom = "random"
	FirstPlayerX      = "X"
	FirstPlayerO      = "O"
)

// BoardFromArg reads the entry argument: a board size, or a serialized board.
func BoardFromArg(arg string, maxDimension int) (*entity.Board, error) {
	if size, err := strconv.Atoi(arg); err == nil {
		if size < 0 || size > maxDimension {
			return nil, fmt.Errorf("%w: size %d is outside [0, %d]", apperror.ErrInvalidBoard, size, maxDimension)
		}

		return entity.NewBoard(size), nil
	}

	board, err := entity.ParseBoard(arg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse board: %w", err)
	}

	// text without a single recognized cell is not a board, just garbage
	if board.Dimension() == 0 {
		return nil, fmt.Errorf("%w: no cells in %q", apperror.ErrInvalidBoard, arg)
	}

	return board, nil
}

// CriteriaFromArg returns the run length needed to win. Anything outside [1, dimension]
// falls back to the dimension.
func CriteriaFromArg(arg string, dimension int) int {
	criteria, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || criteria < 1 || criteria > dimension {
		return dimension
	}

	return criteria
}

// PlayerOrder fixes who moves first. intn is only consulted for the random policy.
func PlayerOrder(policy string, intn func(n int) int) [2]entity.Mark {
	switch strings.ToUpper(strings.TrimSpace(policy)) {
	case FirstPlayerX:
		return [2]entity.Mark{entity.PlayerX, entity.PlayerO}
	case FirstPlayerO:
		return [2]entity.Mark{entity.PlayerO, entity.PlayerX}
	}

	if intn(2) == 0 {
		return [2]entity.Mark{entity.PlayerX, entity.PlayerO}
	}

	return [2]entity.Mark{entity.PlayerO, entity.PlayerX}
}

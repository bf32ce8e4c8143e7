package tictactoe

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// ParseMove reads "x y", both 1-indexed, and returns the zero-indexed coordinate.
func ParseMove(line string, dimension int) (entity.Coord, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return entity.Coord{}, fmt.Errorf("%w: expected 2 values, got %d", apperror.ErrWrongTokenCount, len(parts))
	}

	x, err := strconv.Atoi(parts[0])
	if err != nil {
		return entity.Coord{}, fmt.Errorf("%w: %q", apperror.ErrInvalidX, parts[0])
	}

	y, err := strconv.Atoi(parts[1])
	if err != nil {
		return entity.Coord{}, fmt.Errorf("%w: %q", apperror.ErrInvalidY, parts[1])
	}

	if x < 1 || x > dimension || y < 1 || y > dimension {
		return entity.Coord{}, fmt.Errorf("%w: (%d, %d)", apperror.ErrOutOfBounds, x, y)
	}

	return entity.Coord{X: x - 1, Y: y - 1}, nil
}

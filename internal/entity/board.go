package entity

import (
	"fmt"
	"math"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

// DefaultDimension is the classic 3x3 board.
const DefaultDimension = 3

// Coord addresses a cell, zero-indexed. X is the column, Y is the row.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Board is a square grid of marks stored row-major.
type Board struct {
	cells     []Mark
	dimension int
}

// NewBoard returns an empty board of the given dimension.
func NewBoard(dimension int) *Board {
	if dimension < 0 {
		dimension = 0
	}

	cells := make([]Mark, dimension*dimension)
	for i := range cells {
		cells[i] = Empty
	}

	return &Board{
		cells:     cells,
		dimension: dimension,
	}
}

// ParseBoard reads a serialized board. X/O/N/_ are recognized case-insensitively, every other
// character is skipped. The number of recognized characters must be a perfect square.
func ParseBoard(text string) (*Board, error) {
	cells := make([]Mark, 0, len(text))
	for _, r := range text {
		if mark, ok := NewMark(r); ok {
			cells = append(cells, mark)
		}
	}

	dimension := isqrt(len(cells))
	if dimension*dimension != len(cells) {
		return nil, fmt.Errorf("%w: %d cells is not a square", apperror.ErrInvalidBoard, len(cells))
	}

	return &Board{
		cells:     cells,
		dimension: dimension,
	}, nil
}

func isqrt(n int) int {
	root := int(math.Sqrt(float64(n)))
	for root*root > n {
		root--
	}
	for (root+1)*(root+1) <= n {
		root++
	}

	return root
}

func (that *Board) Dimension() int {
	return that.dimension
}

// InBounds reports whether the zero-indexed coordinate lies on the board.
func (that *Board) InBounds(coord Coord) bool {
	return coord.X >= 0 && coord.X < that.dimension && coord.Y >= 0 && coord.Y < that.dimension
}

func (that *Board) index(coord Coord) int {
	if !that.InBounds(coord) {
		panic(fmt.Sprintf("coordinate (%d, %d) is outside a %dx%d board", coord.X, coord.Y, that.dimension, that.dimension))
	}

	return coord.X + coord.Y*that.dimension
}

func (that *Board) Get(coord Coord) Mark {
	return that.cells[that.index(coord)]
}

func (that *Board) Set(coord Coord, mark Mark) {
	that.cells[that.index(coord)] = mark
}

func (that *Board) IsFull() bool {
	for _, cell := range that.cells {
		if cell == Empty {
			return false
		}
	}

	return true
}

func (that *Board) Equal(other *Board) bool {
	if that.dimension != other.dimension {
		return false
	}

	for i := range that.cells {
		if that.cells[i] != other.cells[i] {
			return false
		}
	}

	return true
}

// CompactString concatenates the cells row-major without separators.
func (that *Board) CompactString() string {
	var sb strings.Builder
	sb.Grow(len(that.cells))

	for _, cell := range that.cells {
		sb.WriteString(cell.String())
	}

	return sb.String()
}

// Render draws one bracketed row per line.
func (that *Board) Render() string {
	var sb strings.Builder

	for y := 0; y < that.dimension; y++ {
		for x := 0; x < that.dimension; x++ {
			sb.WriteString("[" + that.Get(Coord{X: x, Y: y}).String() + "]")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func (that *Board) String() string {
	return that.Render()
}

// Evaluate looks for a run of at least criteria consecutive marks of one player along a row,
// a column or one of the two principal diagonals. O is checked before X. The scan stops as soon
// as a run is long enough.
func (that *Board) Evaluate(criteria int) GameResult {
	if criteria < 1 {
		criteria = 1
	}

	last := that.dimension - 1
	for _, mark := range Players {
		var diagonal, antiDiagonal int

		for i := 0; i < that.dimension; i++ {
			var row, column int

			for j := 0; j < that.dimension; j++ {
				row = that.extendRun(Coord{X: j, Y: i}, mark, row)
				column = that.extendRun(Coord{X: i, Y: j}, mark, column)

				if row >= criteria || column >= criteria {
					return Winner(mark)
				}
			}

			diagonal = that.extendRun(Coord{X: i, Y: i}, mark, diagonal)
			antiDiagonal = that.extendRun(Coord{X: last - i, Y: i}, mark, antiDiagonal)

			if diagonal >= criteria || antiDiagonal >= criteria {
				return Winner(mark)
			}
		}
	}

	if that.IsFull() {
		return Draw()
	}

	return InProgress()
}

func (that *Board) extendRun(coord Coord, mark Mark, run int) int {
	if that.Get(coord) == mark {
		return run + 1
	}

	return 0
}

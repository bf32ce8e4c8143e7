package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, text string) *Board {
	t.Helper()

	board, err := ParseBoard(text)
	require.NoError(t, err)

	return board
}

func TestNewBoard(t *testing.T) {
	t.Run("All cells are empty", func(t *testing.T) {
		// When: a new board is created
		board := NewBoard(4)

		// Then: it has the requested dimension and no marks
		assert.Equal(t, 4, board.Dimension())
		assert.Equal(t, "________________", board.CompactString())
		assert.False(t, board.IsFull())
	})

	t.Run("Zero dimension is a valid empty board", func(t *testing.T) {
		// When: a board without cells is created
		board := NewBoard(0)

		// Then: it is full and immediately a draw
		assert.Equal(t, 0, board.Dimension())
		assert.True(t, board.IsFull())
		assert.Equal(t, Draw(), board.Evaluate(board.Dimension()))
	})
}

func TestParseBoard(t *testing.T) {
	t.Run("Separators are ignored", func(t *testing.T) {
		// When: parsing an all-empty board with row separators
		board := mustParse(t, "NNN,NNN,NNN")

		// Then: it equals a freshly created 3x3 board
		assert.True(t, board.Equal(NewBoard(3)))
	})

	t.Run("Characters are case-insensitive", func(t *testing.T) {
		// When: parsing a board with lower-case marks
		board := mustParse(t, "xo_/nXO/o n x")

		// Then: every mark is recognized
		assert.Equal(t, "XO__XOO_X", board.CompactString())
	})

	t.Run("Non-square cell count is rejected", func(t *testing.T) {
		// When: parsing five cells
		board, err := ParseBoard("XXOOX")

		// Then: ErrInvalidBoard is returned
		require.ErrorIs(t, err, apperror.ErrInvalidBoard)
		assert.Nil(t, board)
	})

	t.Run("Compact string round-trips", func(t *testing.T) {
		// Given: a board with a few marks
		board := NewBoard(4)
		board.Set(Coord{X: 1, Y: 0}, PlayerX)
		board.Set(Coord{X: 3, Y: 2}, PlayerO)

		// When: parsing its compact representation
		parsed := mustParse(t, board.CompactString())

		// Then: the boards are equal
		assert.True(t, parsed.Equal(board))
	})
}

func TestBoard_GetSet(t *testing.T) {
	t.Run("Cells are stored row-major", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard(3)

		// When: marking column 2, row 1
		board.Set(Coord{X: 2, Y: 1}, PlayerO)

		// Then: the mark lands at index x + y*dimension
		assert.Equal(t, PlayerO, board.Get(Coord{X: 2, Y: 1}))
		assert.Equal(t, "_____O___", board.CompactString())
	})

	t.Run("Out of range access panics", func(t *testing.T) {
		board := NewBoard(3)

		assert.Panics(t, func() { board.Get(Coord{X: 3, Y: 0}) })
		assert.Panics(t, func() { board.Set(Coord{X: 0, Y: -1}, PlayerX) })
	})
}

func TestBoard_Render(t *testing.T) {
	// Given: a board with a complete top row
	board := mustParse(t, "XXX,NNN,NNO")

	// Then: each row is printed on its own line
	assert.Equal(t, "[X][X][X]\n[_][_][_]\n[_][_][O]\n", board.Render())
	assert.Equal(t, "XXX_____O", board.CompactString())
}

func TestBoard_Evaluate(t *testing.T) {
	tests := []struct {
		name     string
		board    string
		criteria int
		expected GameResult
	}{
		{name: "Empty board is in progress", board: "NNN,NNN,NNN", criteria: 3, expected: InProgress()},
		{name: "Top row", board: "XXX,NNN,NNN", criteria: 3, expected: Winner(PlayerX)},
		{name: "Middle row", board: "NNN,XXX,NNN", criteria: 3, expected: Winner(PlayerX)},
		{name: "Gap in row", board: "XNX,NNN,NNN", criteria: 3, expected: InProgress()},
		{name: "Column with a gap", board: "OXN,OXN,NOX", criteria: 3, expected: InProgress()},
		{name: "Full column", board: "OXN,OXN,OXN", criteria: 3, expected: Winner(PlayerO)},
		{name: "Main diagonal", board: "XON,OXN,ONX", criteria: 3, expected: Winner(PlayerX)},
		{name: "Main diagonal for O", board: "OXN,OON,XNO", criteria: 3, expected: Winner(PlayerO)},
		{name: "Anti-diagonal", board: "___O,__O_,_O__,O___", criteria: 4, expected: Winner(PlayerO)},
		{name: "Full board without a run", board: "XOX,OOX,OXO", criteria: 3, expected: Draw()},
		{name: "Criteria one picks the first scanned mark", board: "XOX,OOX,OXO", criteria: 1, expected: Winner(PlayerO)},
		{name: "Criteria two", board: "XOX,OOX,OXO", criteria: 2, expected: Winner(PlayerO)},
		{name: "Criteria one on an empty board", board: "___,___,___", criteria: 1, expected: InProgress()},
		{name: "Criteria one with a single mark", board: "___,_X_,___", criteria: 1, expected: Winner(PlayerX)},
		{name: "Scattered marks do not form a run", board: "X_X,O_O,___", criteria: 2, expected: InProgress()},
		{name: "Complete bottom row wins over scattered top row", board: "X_X,OO_,XXX", criteria: 3, expected: Winner(PlayerX)},
		{name: "Run resets after a gap", board: "XX_X,OO_O,____,____", criteria: 3, expected: InProgress()},
		{name: "Short column on a larger board", board: "_____,__X__,__X__,__X__,_____", criteria: 3, expected: Winner(PlayerX)},
		{name: "Both players qualify, O is checked first", board: "XXX,OOO,___", criteria: 3, expected: Winner(PlayerO)},
		{name: "Criteria below one behaves as one", board: "___,___,__X", criteria: 0, expected: Winner(PlayerX)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a parsed board
			board := mustParse(t, tt.board)

			// When: evaluating it
			result := board.Evaluate(tt.criteria)

			// Then: the expected result is produced
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestGameResult(t *testing.T) {
	assert.True(t, Winner(PlayerX).IsFinished())
	assert.True(t, Draw().IsFinished())
	assert.True(t, Draw().IsDraw())
	assert.False(t, InProgress().IsFinished())

	assert.Equal(t, "The winner is O", Winner(PlayerO).String())
	assert.Equal(t, "It's a draw", Draw().String())
}

func TestMark(t *testing.T) {
	mark, ok := NewMark('n')
	assert.True(t, ok)
	assert.Equal(t, Empty, mark)

	_, ok = NewMark(',')
	assert.False(t, ok)

	assert.Equal(t, PlayerO, PlayerX.Opponent())
	assert.Equal(t, PlayerX, PlayerO.Opponent())
	assert.Equal(t, Empty, Empty.Opponent())
	assert.False(t, Empty.IsPlayer())
}

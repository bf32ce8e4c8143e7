package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	StateAwaitingMove = "awaiting_move"
	StateEvaluating   = "evaluating"
	StateFinished     = "finished"
)

// Game drives the turn state machine for a single board.
type Game struct {
	ID       string
	Board    *entity.Board
	Criteria int
	Players  [2]entity.Mark
	Result   entity.GameResult

	state string
	turn  int
}

// NewGame evaluates the board right away, so a parsed board that is already decided
// starts out finished.
func NewGame(id string, board *entity.Board, criteria int, players [2]entity.Mark) *Game {
	game := &Game{
		ID:       id,
		Board:    board,
		Criteria: criteria,
		Players:  players,
		state:    StateAwaitingMove,
	}

	game.evaluate()

	return game
}

func (that *Game) State() string {
	return that.state
}

// Current returns the mark of the player whose move is awaited.
func (that *Game) Current() entity.Mark {
	return that.Players[that.turn]
}

func (that *Game) IsFinished() bool {
	return that.state == StateFinished
}

// MakeTurn places the current player's mark. A rejected move leaves the board and the turn untouched.
func (that *Game) MakeTurn(coord entity.Coord) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if err := validateMove(that.Board, coord); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	that.Board.Set(coord, that.Current())
	that.evaluate()

	if !that.IsFinished() {
		that.turn = 1 - that.turn
	}

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(board *entity.Board, coord entity.Coord) error {
	if !board.InBounds(coord) {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrOutOfBounds, coord.X+1, coord.Y+1)
	}

	if board.Get(coord) != entity.Empty {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrCellOccupied, coord.X+1, coord.Y+1)
	}

	return nil
}

func (that *Game) evaluate() {
	that.state = StateEvaluating
	that.Result = that.Board.Evaluate(that.Criteria)

	if that.Result.IsFinished() {
		that.state = StateFinished
		return
	}

	that.state = StateAwaitingMove
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

type PlayUseCase interface {
	Play(ctx context.Context, game *tictactoe.Game) (entity.GameResult, error)
}

type terminal interface {
	ReadLine() (string, error)
	Print(text string) error
	Diagnose(text string) error
}

type playUseCase struct {
	logger   *slog.Logger
	terminal terminal
}

func NewPlayUseCase(logger *slog.Logger, terminal terminal) PlayUseCase {
	return &playUseCase{
		logger:   logger,
		terminal: terminal,
	}
}

// Play runs the game to its end. Bad input re-prompts the same player; only a broken terminal
// or a cancelled context stops the loop early.
func (that *playUseCase) Play(ctx context.Context, game *tictactoe.Game) (entity.GameResult, error) {
	log := that.logger.With("method", "Play", "game_id", game.ID)

	log.Info("game started",
		"dimension", game.Board.Dimension(),
		"criteria", game.Criteria,
		"first_player", game.Current().String(),
	)

	if err := that.terminal.Print(game.Board.Render() + "\n"); err != nil {
		return entity.GameResult{}, err
	}

	for !game.IsFinished() {
		if err := ctx.Err(); err != nil {
			return entity.GameResult{}, fmt.Errorf("game interrupted: %w", err)
		}

		player := game.Current()

		coord, err := that.turn(game)
		if err != nil {
			if !isRejection(err) {
				return entity.GameResult{}, err
			}

			log.Debug("move rejected", "player", player.String(), "error", err)

			if err = that.terminal.Diagnose(diagnostic(err, coord)); err != nil {
				return entity.GameResult{}, err
			}

			continue
		}

		if !game.IsFinished() {
			if err := that.terminal.Print(game.Board.Render() + "\n"); err != nil {
				return entity.GameResult{}, err
			}
		}
	}

	log.Info("game finished", "status", game.Result.Status, "winner", game.Result.Winner.String())

	if err := that.terminal.Print(game.Board.CompactString() + "\n" + game.Result.String() + "\n"); err != nil {
		return entity.GameResult{}, err
	}

	return game.Result, nil
}

// turn solicits one move from the current player and applies it.
func (that *playUseCase) turn(game *tictactoe.Game) (entity.Coord, error) {
	player := game.Current()

	if err := that.terminal.Print(player.String() + ", your move: (x  y)  "); err != nil {
		return entity.Coord{}, err
	}

	line, err := that.terminal.ReadLine()
	if err != nil {
		return entity.Coord{}, fmt.Errorf("failed to read move: %w", err)
	}

	coord, err := tictactoe.ParseMove(line, game.Board.Dimension())
	if err != nil {
		return entity.Coord{}, err
	}

	if err = game.MakeTurn(coord); err != nil {
		return coord, fmt.Errorf("failed to make turn: %w", err)
	}

	that.logger.Debug("move accepted", "game_id", game.ID, "player", player.String(), "x", coord.X+1, "y", coord.Y+1)

	return coord, nil
}

func isRejection(err error) bool {
	return errors.Is(err, apperror.ErrWrongTokenCount) ||
		errors.Is(err, apperror.ErrInvalidX) ||
		errors.Is(err, apperror.ErrInvalidY) ||
		errors.Is(err, apperror.ErrOutOfBounds) ||
		errors.Is(err, apperror.ErrCellOccupied)
}

func diagnostic(err error, coord entity.Coord) string {
	switch {
	case errors.Is(err, apperror.ErrWrongTokenCount):
		return "Invalid input"
	case errors.Is(err, apperror.ErrInvalidX):
		return "X is not a valid int"
	case errors.Is(err, apperror.ErrInvalidY):
		return "Y is not a valid int"
	case errors.Is(err, apperror.ErrCellOccupied):
		return fmt.Sprintf("(%d, %d) is already occupied! Try again", coord.X+1, coord.Y+1)
	default:
		return "X or Y out of bounds"
	}
}

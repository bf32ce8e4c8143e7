package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-cli/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-cli/internal/usecase"
)

// Streams are the terminal the game is played on.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// RunApp - runs a single game. args are the positional entry arguments: [size|board] [criteria].
func RunApp(logger *slog.Logger, conf *config.Config, args []string, streams Streams) error {
	gameID := pkg.GenerateGameID()
	log := logger.With("component", "app", "game_id", gameID)

	board := resolveBoard(log, conf, args)

	var criteriaArg string
	if len(args) > 1 {
		criteriaArg = args[1]
	}
	criteria := tictactoe.CriteriaFromArg(criteriaArg, board.Dimension())

	players := tictactoe.PlayerOrder(conf.Game.FirstPlayer, rand.Intn) //nolint: gosec // it's ok

	game := tictactoe.NewGame(gameID, board, criteria, players)
	terminal := console.New(streams.In, streams.Out, streams.Err)
	playUseCase := usecase.NewPlayUseCase(logger.With("component", "play"), terminal)

	if _, err := playUseCase.Play(context.Background(), game); err != nil {
		return fmt.Errorf("game failed: %w", err)
	}

	return nil
}

// resolveBoard never fails: a malformed argument falls back to an empty board of the default size.
func resolveBoard(log *slog.Logger, conf *config.Config, args []string) *entity.Board {
	defaultSize := conf.Game.BoardSize
	if defaultSize < 0 || defaultSize > conf.Game.MaxBoardSize {
		log.Warn("configured board size is out of range", "board_size", defaultSize)
		defaultSize = entity.DefaultDimension
	}

	if len(args) == 0 {
		return entity.NewBoard(defaultSize)
	}

	board, err := tictactoe.BoardFromArg(args[0], conf.Game.MaxBoardSize)
	if err != nil {
		log.Warn("malformed board argument, using the default board", "error", err)
		return entity.NewBoard(defaultSize)
	}

	return board
}

package engine

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/meta"
	"connect4/searcher"
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// Player pairs a bot with the name it is reported under.
type Player struct {
	Name     string
	Searcher searcher.Searcher
}

type Option func(e *Local)

// WithBoard starts the game from b instead of an empty board. The side to
// move on b starts.
func WithBoard(b *game.Board) Option {
	return func(e *Local) {
		if b != nil {
			e.board = b.Clone()
		}
	}
}

// Local runs a game between two in-process bots.
type Local struct {
	board   *game.Board
	players map[game.Piece]Player
}

func LocalEngine(first game.Piece, playerA, playerB Player, options ...Option) *Local {
	if playerA.Searcher == nil || playerB.Searcher == nil {
		panic("both players need a searcher")
	}

	e := &Local{
		board: game.New(first),
		players: map[game.Piece]Player{
			game.PlayerA: playerA,
			game.PlayerB: playerB,
		},
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the game loop until the board is won or full. A bot that
// fails or answers with an illegal column ends the game with an error; no
// move is substituted. ctx is checked between turns.
func (e *Local) Run(ctx context.Context) (Result, error) {
	gameMetric := metrics.GameMetric{
		Starter:   e.board.ToMove(),
		StartTime: time.Now(),
		ThinkTime: map[game.Piece]time.Duration{},
		Moves:     map[game.Piece]int{},
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("player %s (%s) is starting", gameMetric.Starter, e.players[gameMetric.Starter].Name)

	step := 1
	for !e.board.IsOver() {
		if err := ctx.Err(); err != nil {
			return e.result(gameMetric, moveMetrics), err
		}

		side := e.board.ToMove()
		player := e.players[side]

		start := time.Now()
		column, searchMetric, err := choose(player.Searcher, e.board.Clone())
		elapsed := time.Since(start)
		if err != nil {
			return e.result(gameMetric, moveMetrics), fmt.Errorf("player %s (%s) failed at step %d: %w", side, player.Name, step, err)
		}
		if !e.board.IsLegal(column) {
			return e.result(gameMetric, moveMetrics), fmt.Errorf("player %s (%s) chose column %d at step %d: %w", side, player.Name, column, step, game.ErrIllegalMove)
		}
		if err := e.board.Play(column, side); err != nil {
			return e.result(gameMetric, moveMetrics), err
		}

		if searchMetric.Duration == 0 {
			searchMetric.Duration = elapsed
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       side,
			Bot:          player.Name,
			Column:       column,
			SearchMetric: searchMetric,
		})
		gameMetric.ThinkTime[side] += elapsed
		gameMetric.Moves[side]++

		if elapsed > meta.MAX_TURN_TIME {
			log.Warn().Msgf("player %s (%s) took %s for step %d", side, player.Name, elapsed, step)
		}
		log.Debug().Msgf("step %d: player %s (%s) played column %d in %s", step, side, player.Name, column, elapsed)
		step++
	}

	result := e.result(gameMetric, moveMetrics)
	log.Debug().Msgf("game over after %d moves, winner: %s\n%s", result.Game.TotalMoves, metrics.Outcome(result.Winner), e.board)
	for _, side := range []game.Piece{game.PlayerA, game.PlayerB} {
		moves := gameMetric.Moves[side]
		if moves == 0 {
			continue
		}
		think := gameMetric.ThinkTime[side]
		log.Debug().Msgf("player %s (%s) took %s for %d moves, %s per move", side, e.players[side].Name, think, moves, think/time.Duration(moves))
	}
	return result, nil
}

func (e *Local) result(gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric) Result {
	gameMetric.Winner = e.board.Winner()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	return Result{
		Winner: gameMetric.Winner,
		Board:  e.board.Clone(),
		Game:   gameMetric,
		Moves:  moveMetrics,
	}
}

func choose(s searcher.Searcher, b *game.Board) (int, metrics.SearchMetric, error) {
	if r, ok := s.(searcher.Reporter); ok {
		return r.Search(b)
	}
	column, err := s.ChooseColumn(b)
	return column, metrics.SearchMetric{}, err
}

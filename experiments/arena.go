package experiments

import (
	"connect4/engine"
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// MatchUp is a series of games between two bot configs. Bot1 plays
// PlayerA and Bot2 plays PlayerB; the starting side is drawn per game.
type MatchUp struct {
	Bot1    metrics.BotConfig
	Bot2    metrics.BotConfig
	Games   int
	Workers int
	Seed    uint64 // Zero picks a clock based seed
}

type Summary struct {
	Games     int
	Bot1Wins  int
	Bot2Wins  int
	Draws     int
	Bot1First int // Games Bot1 started
	Duration  time.Duration
}

func (s Summary) String() string {
	return fmt.Sprintf("games=%d bot1=%d bot2=%d draws=%d bot1_first=%d duration=%s",
		s.Games, s.Bot1Wins, s.Bot2Wins, s.Draws, s.Bot1First, s.Duration)
}

type counters struct {
	games     atomic.Int32
	bot1Wins  atomic.Int32
	bot2Wins  atomic.Int32
	draws     atomic.Int32
	bot1First atomic.Int32
}

// Run plays the match up on Workers goroutines. Each game builds its own
// bots from the registry, so no searcher is shared between goroutines. Game
// IDs run from 1 to Games and records come back sorted by ID.
func Run(ctx context.Context, m MatchUp) (Summary, []metrics.GameRecord, []metrics.MoveRecord, error) {
	if m.Games <= 0 {
		return Summary{}, nil, nil, fmt.Errorf("games must be positive, got %d", m.Games)
	}
	workers := min(max(m.Workers, 1), m.Games)
	seed := m.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	// Fail fast on bad configs before starting any goroutine
	for _, config := range []string{m.Bot1.Config, m.Bot2.Config} {
		if _, err := searcher.New(config, game.PlayerA); err != nil {
			return Summary{}, nil, nil, err
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tasks := make(chan int, m.Games)
	for id := 1; id <= m.Games; id++ {
		tasks <- id
	}
	close(tasks)

	var (
		c           counters
		wg          sync.WaitGroup
		mu          sync.Mutex
		firstErr    error
		gameRecords []metrics.GameRecord
		moveRecords []metrics.MoveRecord
	)
	start := time.Now()

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for id := range tasks {
				if ctx.Err() != nil {
					return
				}
				record, moves, err := playGame(ctx, m, id, seed)
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					cancel()
					return
				}

				c.games.Add(1)
				switch record.Winner {
				case game.PlayerA:
					c.bot1Wins.Add(1)
				case game.PlayerB:
					c.bot2Wins.Add(1)
				default:
					c.draws.Add(1)
				}
				if record.Starter == game.PlayerA {
					c.bot1First.Add(1)
				}

				mu.Lock()
				gameRecords = append(gameRecords, record)
				moveRecords = append(moveRecords, moves...)
				mu.Unlock()

				log.Debug().Msgf("completed game %d of %d with winner: %s", id, m.Games, metrics.Outcome(record.Winner))
			}
		}()
	}
	wg.Wait()

	summary := Summary{
		Games:     int(c.games.Load()),
		Bot1Wins:  int(c.bot1Wins.Load()),
		Bot2Wins:  int(c.bot2Wins.Load()),
		Draws:     int(c.draws.Load()),
		Bot1First: int(c.bot1First.Load()),
		Duration:  time.Since(start),
	}
	sort.Slice(gameRecords, func(i, j int) bool { return gameRecords[i].ID < gameRecords[j].ID })
	sort.SliceStable(moveRecords, func(i, j int) bool {
		if moveRecords[i].Game != moveRecords[j].Game {
			return moveRecords[i].Game < moveRecords[j].Game
		}
		return moveRecords[i].Step < moveRecords[j].Step
	})

	if firstErr == nil {
		firstErr = ctx.Err()
	}
	return summary, gameRecords, moveRecords, firstErr
}

// playGame runs game id. The starting side depends only on seed and id.
func playGame(ctx context.Context, m MatchUp, id int, seed uint64) (metrics.GameRecord, []metrics.MoveRecord, error) {
	bot1, err := searcher.New(m.Bot1.Config, game.PlayerA)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}
	bot2, err := searcher.New(m.Bot2.Config, game.PlayerB)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	rng := rand.New(rand.NewSource(seed + uint64(id)))
	first := game.PlayerA
	if rng.Intn(2) == 1 {
		first = game.PlayerB
	}

	e := engine.LocalEngine(first,
		engine.Player{Name: m.Bot1.Config, Searcher: bot1},
		engine.Player{Name: m.Bot2.Config, Searcher: bot2},
	)
	result, err := e.Run(ctx)
	if err != nil {
		return metrics.GameRecord{}, nil, fmt.Errorf("game %d: %w", id, err)
	}

	record := metrics.GameRecord{
		ID:         id,
		Bot1:       m.Bot1.ID,
		Bot2:       m.Bot2.ID,
		GameMetric: result.Game,
	}
	moves := make([]metrics.MoveRecord, 0, len(result.Moves))
	for _, mm := range result.Moves {
		moves = append(moves, metrics.MoveRecord{
			Game:       id,
			MoveMetric: mm,
		})
	}
	return record, moves, nil
}

package main

import (
	"connect4/experiments"
	"connect4/experiments/metrics"
	"connect4/meta"
	"connect4/searcher"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	config, err := meta.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	player1 := flag.String("p1", config.Player1, "Bot config for PlayerA, e.g. \"mcts:iterations=2000,c=1.4\"")
	player2 := flag.String("p2", config.Player2, "Bot config for PlayerB")
	games := flag.Int("games", config.Games, "Number of games to play")
	workers := flag.Int("workers", config.Workers, "Number of games played in parallel")
	seed := flag.Uint64("seed", config.Seed, "Seed for the starting sides, 0 for a clock seed")
	records := flag.String("records", config.RecordsDir, "Directory for CSV records, empty to skip")
	experiment := flag.String("experiment", "", "Run a predefined experiment instead: strength")
	bots := flag.Bool("bots", false, "List the available bots and exit")
	verbose := flag.Bool("v", false, "Log every move")
	flag.Parse()

	zerolog.SetGlobalLevel(config.LogLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *bots {
		fmt.Println(strings.Join(searcher.Names(), "\n"))
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch *experiment {
	case "":
		matchUp := experiments.MatchUp{
			Bot1:    metrics.BotConfig{ID: 1, Config: *player1},
			Bot2:    metrics.BotConfig{ID: 2, Config: *player2},
			Games:   *games,
			Workers: *workers,
			Seed:    *seed,
		}
		summaries, err := experiments.RunExperiment(ctx, "arena", []experiments.MatchUp{matchUp}, *records)
		if err != nil {
			log.Fatal().Err(err).Msg("arena failed")
		}
		s := summaries[0]
		log.Info().Msgf("%s won %d, %s won %d, %d draws in %s", *player1, s.Bot1Wins, *player2, s.Bot2Wins, s.Draws, s.Duration)
	case "strength":
		if _, err := experiments.RunStrengthExperiment(ctx, *games, *workers, *seed, *records); err != nil {
			log.Fatal().Err(err).Msg("strength experiment failed")
		}
	default:
		log.Fatal().Msgf("unknown experiment %q", *experiment)
	}
}

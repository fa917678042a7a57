package experiments

import (
	"connect4/experiments/metrics"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Iteration budgets compared against the alpha-beta baseline
var strengthConfigs = []metrics.BotConfig{
	{ID: 1, Config: "mcts:iterations=250"},
	{ID: 2, Config: "mcts:iterations=500"},
	{ID: 3, Config: "mcts:iterations=1000"},
	{ID: 4, Config: "mcts:iterations=2000"},
}

// RunStrengthExperiment pairs MCTS at growing iteration budgets against a
// fixed alpha-beta baseline.
func RunStrengthExperiment(ctx context.Context, games, workers int, seed uint64, recordsDir string) ([]Summary, error) {
	baseline := metrics.BotConfig{ID: 0, Config: "alphabeta:depth=4"}
	matchUps := []MatchUp{}
	for _, config := range strengthConfigs {
		matchUps = append(matchUps, MatchUp{Bot1: baseline, Bot2: config, Games: games, Workers: workers, Seed: seed})
	}
	return RunExperiment(ctx, "strength", matchUps, recordsDir)
}

// RunExperiment plays each match up in turn. Game IDs are renumbered to be
// unique across the experiment. When recordsDir is not empty the bot
// configs, games and moves are written there as CSV files.
func RunExperiment(ctx context.Context, name string, matchUps []MatchUp, recordsDir string) ([]Summary, error) {
	count := 0
	summaries := []Summary{}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchUp := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between bot1=%q and bot2=%q...", mi+1, len(matchUps), matchUp.Bot1.Config, matchUp.Bot2.Config)

		summary, games, moves, err := Run(ctx, matchUp)
		if err != nil {
			return summaries, fmt.Errorf("matchup %d of %d: %w", mi+1, len(matchUps), err)
		}

		ids := make(map[int]int, len(games))
		for _, record := range games {
			count++
			ids[record.ID] = count
			record.ID = count
			gameRecords = append(gameRecords, record)
		}
		for _, record := range moves {
			record.Game = ids[record.Game]
			moveRecords = append(moveRecords, record)
		}
		summaries = append(summaries, summary)

		log.Info().Msgf("completed matchup %d of %d: %s", mi+1, len(matchUps), summary)
	}

	log.Info().Msgf("completed %s experiment", name)

	if recordsDir == "" {
		return summaries, nil
	}
	return summaries, WriteRecords(recordsDir, name, botConfigs(matchUps), gameRecords, moveRecords)
}

// WriteRecords stores bot configs, game records and move records under a
// timestamped directory in recordsDir/name.
func WriteRecords(recordsDir, name string, configs []metrics.BotConfig, games []metrics.GameRecord, moves []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(recordsDir, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteBotConfigs(configs)
	if err != nil {
		return fmt.Errorf("failed to store bot configs: %w", err)
	}
	log.Info().Msg("stored bot configs")

	err = writer.WriteGameRecords(games)
	if err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moves)
	if err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return nil
}

// botConfigs lists the distinct configs of the match ups, by ID.
func botConfigs(matchUps []MatchUp) []metrics.BotConfig {
	seen := map[int]bool{}
	configs := []metrics.BotConfig{}
	for _, m := range matchUps {
		for _, config := range []metrics.BotConfig{m.Bot1, m.Bot2} {
			if !seen[config.ID] {
				seen[config.ID] = true
				configs = append(configs, config)
			}
		}
	}
	return configs
}

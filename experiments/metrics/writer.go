package metrics

import (
	"connect4/game"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type BotConfig struct {
	ID     int
	Config string // Registry config string, e.g. "mcts:iterations=1000"
}

type GameRecord struct {
	ID   int
	Bot1 int // BotConfig.ID playing PlayerA
	Bot2 int // BotConfig.ID playing PlayerB
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

func NewWriter(root, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteBotConfigs(configs []BotConfig) error {
	header := []string{"id", "config"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Config,
		})
	}
	return w.write("bot_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{
		"id", "bot1", "bot2", "starter", "winner", "start_time", "end_time", "duration",
		"total_moves", "think_time_a", "think_time_b", "moves_a", "moves_b",
	}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Bot1),
			strconv.Itoa(record.Bot2),
			record.Starter.String(),
			Outcome(record.Winner),
			record.StartTime.Format(time.RFC3339Nano),
			record.EndTime.Format(time.RFC3339Nano),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
			record.ThinkTime[game.PlayerA].String(),
			record.ThinkTime[game.PlayerB].String(),
			strconv.Itoa(record.Moves[game.PlayerA]),
			strconv.Itoa(record.Moves[game.PlayerB]),
		})
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{
		"game", "step", "player", "bot", "column", "duration",
		"depth", "iterations", "nodes", "full_playouts", "max_depth",
	}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player.String(),
			record.Bot,
			strconv.Itoa(record.Column),
			record.Duration.String(),
			strconv.Itoa(record.Depth),
			strconv.Itoa(record.Iterations),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.FullPlayouts),
			strconv.Itoa(record.MaxDepth),
		})
	}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) write(file string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", file, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", file, err)
	}
	return nil
}

// Outcome names a game result for records and logs.
func Outcome(winner game.Piece) string {
	if winner == game.Empty {
		return "draw"
	}
	return winner.String()
}

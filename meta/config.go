package meta

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	LogLevel   zerolog.Level
	Player1    string
	Player2    string
	Games      int
	Workers    int
	Seed       uint64
	RecordsDir string // Empty disables CSV records
}

// LoadConfig reads the given .env files, or ./.env when none are given, and
// then the process environment. Missing files are skipped.
func LoadConfig(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if !os.IsNotExist(errors.Cause(err)) {
				return nil, errors.Wrapf(err, "loading %s", file)
			}
			log.Debug().Msgf("no %s file, using environment only", file)
		}
	}

	level, err := zerolog.ParseLevel(GetEnv("C4_LOG_LEVEL", "info"))
	if err != nil {
		return nil, errors.Wrap(err, "C4_LOG_LEVEL")
	}
	seed, err := GetEnvAsUint64("C4_SEED", 0)
	if err != nil {
		return nil, err
	}

	config := &Config{
		LogLevel:   level,
		Player1:    GetEnv("C4_PLAYER1", "alphabeta"),
		Player2:    GetEnv("C4_PLAYER2", "mcts"),
		Games:      GetEnvAsInt("C4_GAMES", GAMES),
		Workers:    GetEnvAsInt("C4_WORKERS", WORKERS),
		Seed:       seed,
		RecordsDir: GetEnv("C4_RECORDS_DIR", ""),
	}
	if config.Games <= 0 {
		return nil, errors.Errorf("C4_GAMES must be positive, got %d", config.Games)
	}
	if config.Workers <= 0 {
		return nil, errors.Errorf("C4_WORKERS must be positive, got %d", config.Workers)
	}
	return config, nil
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Msgf("invalid integer for %s=%q, using default %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsUint64(key string, defaultValue uint64) (uint64, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseUint(valueStr, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "%s=%q", key, valueStr)
	}
	return value, nil
}

package searcher

import (
	"connect4/game"
	"connect4/meta"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// Factory builds a Searcher for side from the parameters of a config string.
// Factories should pop the parameters they understand; leftovers are
// reported as errors by New.
type Factory func(side game.Piece, params map[string]string) (Searcher, error)

var (
	// Registered bot constructors, by name
	factories = make(map[string]Factory)
)

// Register makes a bot constructor available to New under name.
func Register(name string, factory Factory) {
	factories[name] = factory
}

// Names lists the registered bot names in order.
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultConfig is used by New when given an empty config.
var DefaultConfig = "alphabeta"

// New creates a bot for side from a config string: the bot name, optionally
// followed by a colon and comma-separated key=value parameters, e.g.
// "mcts:iterations=2000,c=1.2,seed=7".
func New(config string, side game.Piece) (Searcher, error) {
	if config == "" {
		config = DefaultConfig
	}
	if side != game.PlayerA && side != game.PlayerB {
		return nil, errors.Errorf("cannot create bot %q for side %d", config, side)
	}

	name, rest, _ := strings.Cut(config, ":")
	factory, ok := factories[name]
	if !ok {
		return nil, errors.Errorf("unknown bot %q, known bots: %s", name, strings.Join(Names(), ", "))
	}
	params := splitConfigString(rest)
	s, err := factory(side, params)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to create bot %q", name)
	}
	if len(params) > 0 {
		unknown := make([]string, 0, len(params))
		for key := range params {
			unknown = append(unknown, key)
		}
		sort.Strings(unknown)
		return nil, errors.Errorf("bot %q does not take parameters %v", name, unknown)
	}
	return s, nil
}

// splitConfigString splits "k1=v1,k2,k3=v3" into a map. A key without a
// value maps to "".
func splitConfigString(config string) map[string]string {
	params := make(map[string]string)
	if config == "" {
		return params
	}
	for _, part := range strings.Split(config, ",") {
		key, value, _ := strings.Cut(part, "=")
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		params[key] = strings.TrimSpace(value)
	}
	return params
}

// PopParamOr parses and removes key from params, or returns defaultValue when
// key is absent or empty.
func PopParamOr[T interface {
	int | uint64 | float64 | time.Duration
}](params map[string]string, key string, defaultValue T) (T, error) {
	value, exists := params[key]
	delete(params, key)
	if !exists || value == "" {
		return defaultValue, nil
	}

	var parsed any
	var err error
	switch any(defaultValue).(type) {
	case int:
		parsed, err = strconv.Atoi(value)
	case uint64:
		parsed, err = strconv.ParseUint(value, 10, 64)
	case float64:
		parsed, err = strconv.ParseFloat(value, 64)
	case time.Duration:
		parsed, err = time.ParseDuration(value)
	}
	if err != nil {
		return defaultValue, errors.Wrapf(err, "failed to parse configuration %s=%q", key, value)
	}
	return parsed.(T), nil
}

// seededRand returns a source seeded from params["seed"], or from the clock
// when no seed is given.
func seededRand(params map[string]string) (*rand.Rand, error) {
	if _, ok := params["seed"]; !ok {
		return newRand(), nil
	}
	seed, err := PopParamOr(params, "seed", uint64(0))
	if err != nil {
		return nil, err
	}
	return rand.New(rand.NewSource(seed)), nil
}

func newRandomBot(side game.Piece, params map[string]string) (Searcher, error) {
	rng, err := seededRand(params)
	if err != nil {
		return nil, err
	}
	return NewRandom(side, rng), nil
}

func newAlphaBetaBot(side game.Piece, params map[string]string) (Searcher, error) {
	depth, err := PopParamOr(params, "depth", meta.DEPTH)
	if err != nil {
		return nil, err
	}
	if depth <= 0 {
		return nil, errors.Errorf("depth must be positive, got %d", depth)
	}
	return NewAlphaBeta(side, WithDepth(depth), WithAlphaBetaMetrics()), nil
}

func newMCTSBot(side game.Piece, params map[string]string) (Searcher, error) {
	iterations, err := PopParamOr(params, "iterations", 0)
	if err != nil {
		return nil, err
	}
	duration, err := PopParamOr(params, "duration", time.Duration(0))
	if err != nil {
		return nil, err
	}
	c, err := PopParamOr(params, "c", meta.EXPLORATION)
	if err != nil {
		return nil, err
	}
	if iterations < 0 || duration < 0 || c < 0 {
		return nil, errors.Errorf("iterations, duration and c must not be negative")
	}
	rng, err := seededRand(params)
	if err != nil {
		return nil, err
	}
	return NewMCTS(side,
		WithIterations(iterations),
		WithDuration(duration),
		WithExploration(c),
		WithRand(rng),
		WithMetrics(),
	), nil
}

func init() {
	Register("random", newRandomBot)
	Register("alphabeta", newAlphaBetaBot)
	Register("minimax", newAlphaBetaBot)
	Register("mcts", newMCTSBot)
	Register("montecarlo", newMCTSBot)
}

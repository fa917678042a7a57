// meta/meta.go
package meta

import (
	"math"
	"time"
)

// DEPTH defines the default alpha-beta search depth.
const DEPTH = 5

// ITERATIONS defines the default number of MCTS iterations per move.
const ITERATIONS = 1000

// EXPLORATION defines the default UCT exploration constant.
var EXPLORATION = math.Sqrt2

// GAMES defines the default number of games per arena run.
const GAMES = 20

// WORKERS defines the default number of goroutines playing arena games.
const WORKERS = 4

// MAX_TURN_TIME is the think time above which the engine warns about a move.
const MAX_TURN_TIME = 10 * time.Second

// RECORDS_DIR is where experiment CSV records are written.
const RECORDS_DIR = "records"

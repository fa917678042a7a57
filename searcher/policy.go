package searcher

import "math"

// Rewards from the point of view of the side that moved into a node
const (
	WIN  = 1.0
	DRAW = 0.5
	LOSS = 0.0
)

type uct struct {
	numerator float64
}

func newUCT(c float64, N float64) *uct {
	if N == 0 {
		panic("N cannot be 0")
	}
	return &uct{numerator: c * c * math.Log(N)}
}

func (u uct) evaluate(w float64, n float64) float64 {
	if n == 0 {
		panic("n cannot be 0")
	}
	// UCT = w/n + c*sqrt(ln(N)/n)
	return w/n + math.Sqrt(u.numerator/n)
}

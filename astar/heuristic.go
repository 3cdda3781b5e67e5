package astar

import "github.com/katalvlaran/isopath/isogrid"

// Heuristic estimates the cost between two decoded cells. It is the number
// of moves needed if every move made full progress on X (±1) or on the
// diagonal block 2·Y+parity (±2), whichever axis is further away.
func Heuristic(a, b isogrid.Info) float64 {
	dx := abs(a.X - b.X)
	db := abs(block(a) - block(b))

	return max(float64(dx), float64(db)/2)
}

func block(i isogrid.Info) int {
	return 2*i.Y + int(i.Parity)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

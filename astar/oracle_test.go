package astar_test

import (
	"math"

	"github.com/katalvlaran/isopath/astar"
	"github.com/katalvlaran/isopath/isogrid"
)

// shortestFrom is an O(N²) array Dijkstra used as ground truth for the
// A* tests. Unreachable cells hold +Inf.
func shortestFrom(v *isogrid.View, src int, diagonals bool) []float64 {
	n := v.Len()
	dist := make([]float64, n)
	done := make([]bool, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[src] = 0
	for {
		u := -1
		for i := 0; i < n; i++ {
			if !done[i] && !math.IsInf(dist[i], 1) && (u < 0 || dist[i] < dist[u]) {
				u = i
			}
		}
		if u < 0 {
			return dist
		}
		done[u] = true
		for _, l := range v.Links(nil, u, diagonals) {
			if nd := dist[u] + moveCost(l); nd < dist[l.To] {
				dist[l.To] = nd
			}
		}
	}
}

func moveCost(l isogrid.Link) float64 {
	if l.Diagonal {
		return astar.DiagonalCost
	}
	return astar.StraightCost
}

// pathCost sums move costs along path and reports whether every step is a
// legal move on v.
func pathCost(v *isogrid.View, path []int, diagonals bool) (float64, bool) {
	total := 0.0
	for i := 1; i < len(path); i++ {
		ok := false
		for _, l := range v.Links(nil, path[i-1], diagonals) {
			if l.To == path[i] {
				total += moveCost(l)
				ok = true
				break
			}
		}
		if !ok {
			return 0, false
		}
	}

	return total, true
}

// cheapestSimplePath enumerates every simple path from src to dst and
// returns the minimum cost. Only usable on tiny grids.
func cheapestSimplePath(v *isogrid.View, src, dst int) float64 {
	best := math.Inf(1)
	seen := make([]bool, v.Len())
	var walk func(u int, cost float64)
	walk = func(u int, cost float64) {
		if u == dst {
			best = math.Min(best, cost)
			return
		}
		seen[u] = true
		for _, l := range v.Links(nil, u, true) {
			if !seen[l.To] {
				walk(l.To, cost+moveCost(l))
			}
		}
		seen[u] = false
	}
	walk(src, 0)

	return best
}

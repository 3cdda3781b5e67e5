package isogrid

// View is a read-only snapshot of a Grid: its dimensions plus the
// walkability flags at the time Snapshot was called. A View is safe to share
// between goroutines.
type View struct {
	layout
	walkable []bool
}

// Walkable reports whether id is inside the grid and walkable.
func (v *View) Walkable(id int) bool {
	return v.Contains(id) && v.walkable[id]
}

// Links appends to dst every walkable cell reachable in one move from id and
// returns the extended slice. Topological neighbors come first in
// right, left, up, down order; if diagonals is set they are followed by
// id+1, id−1, id+2·rows, id−2·rows. Out-of-range ids yield no links.
//
// The walkability of id itself is not checked.
func (v *View) Links(dst []Link, id int, diagonals bool) []Link {
	if !v.Contains(id) {
		return dst
	}
	for _, n := range v.adjacent(id) {
		if n != None && v.walkable[n] {
			dst = append(dst, Link{To: n})
		}
	}
	if !diagonals {
		return dst
	}
	for _, n := range v.diagonal(id) {
		if n != None && v.walkable[n] {
			dst = append(dst, Link{To: n, Diagonal: true})
		}
	}

	return dst
}

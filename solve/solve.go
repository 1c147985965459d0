package solve

import (
	"github.com/katalvlaran/witnesspath/geom"
	"github.com/katalvlaran/witnesspath/puzzle"
	"github.com/katalvlaran/witnesspath/validate"
)

// Result is the outcome of a Solve run.
type Result struct {
	// Solutions is the list of accepted paths, in non-decreasing length
	// order (a consequence of the enumerator's FIFO discipline).
	Solutions []geom.Path
	// StatesVisited counts every partial dequeued and processed.
	StatesVisited int
	// Truncated is set when the safety queue bound was hit; Solutions
	// still holds everything found before that point.
	Truncated bool
	// Warning carries a human-readable explanation when Truncated is set.
	Warning string
}

// partial is one live prefix in the enumerator's queue.
type partial struct {
	path          []geom.Position
	visited       map[geom.Position]struct{}
	left, right   map[geom.Position]struct{}
	reachableEnds int
}

func (p *partial) last() geom.Position { return p.path[len(p.path)-1] }

// clone returns a deep-enough copy of p for a sibling branch: the path
// slice, visited set, and partial-area sets are all copied so appending to
// one branch never mutates another.
func (p *partial) clone() *partial {
	np := &partial{
		path:          append([]geom.Position(nil), p.path...),
		visited:       make(map[geom.Position]struct{}, len(p.visited)),
		left:          make(map[geom.Position]struct{}, len(p.left)),
		right:         make(map[geom.Position]struct{}, len(p.right)),
		reachableEnds: p.reachableEnds,
	}
	for k := range p.visited {
		np.visited[k] = struct{}{}
	}
	for k := range p.left {
		np.left[k] = struct{}{}
	}
	for k := range p.right {
		np.right[k] = struct{}{}
	}
	return np
}

// Solve enumerates solutions of p shortest-first, applying cfg's pruners,
// until the queue empties, cfg.MaxSolutions is reached, or the safety queue
// bound is hit.
func Solve(p *puzzle.Puzzle, cfg Config) Result {
	partialAreaActive := cfg.PartialAreaCheck && len(p.Cancels()) == 0

	var queue []*partial
	for _, s := range p.Starts() {
		st := &partial{
			path:          []geom.Position{s},
			visited:       map[geom.Position]struct{}{s: {}},
			left:          make(map[geom.Position]struct{}),
			right:         make(map[geom.Position]struct{}),
			reachableEnds: len(p.Ends()),
		}
		queue = append(queue, st)
	}

	var res Result

	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		res.StatesVisited++

		v := cur.last()
		for _, d := range geom.Directions {
			v2 := v.Move(d)
			if !p.ContainsVertex(v2) {
				continue
			}
			edge := geom.NewEdge(v, d)
			if p.IsBlocked(edge) {
				continue
			}
			if _, already := cur.visited[v2]; already {
				continue
			}

			next := cur.clone()
			next.path = append(next.path, v2)
			next.visited[v2] = struct{}{}
			updatePartialAreas(p, next, v, d, partialAreaActive)

			if cfg.EdgeStones && stonePerpendicularityDead(p, next) {
				continue
			}
			if partialAreaActive && colourConflict(p, next) {
				continue
			}

			if p.IsEnd(v2) {
				if validate.IsSolution(p, geom.Path(next.path)) {
					if cfg.MaxSolutions == 0 || len(res.Solutions) < cfg.MaxSolutions {
						res.Solutions = append(res.Solutions, append(geom.Path(nil), geom.Path(next.path)...))
					}
					if cfg.MaxSolutions != 0 && len(res.Solutions) >= cfg.MaxSolutions {
						return res
					}
				}
				if cfg.SimpleEndReachabilityCheck {
					next.reachableEnds--
					if next.reachableEnds <= 0 {
						continue
					}
				}
			}

			if len(queue) >= SafetyQueueBound {
				res.Truncated = true
				res.Warning = "solve: queue size safety bound reached; returning solutions found so far"
				return res
			}
			queue = append(queue, next)
		}
	}

	return res
}

// updatePartialAreas advances the incremental left/right cell sets across
// the edge just traversed from v in direction d. Either side is wiped the
// moment its neighbouring cell falls outside the board, since a region
// that escapes to outside was never actually closed.
func updatePartialAreas(p *puzzle.Puzzle, next *partial, v geom.Position, d geom.Direction, active bool) {
	if !active {
		return
	}
	left, right := geom.NewEdge(v, d).NeighbouringCells()
	if d == geom.Down || d == geom.Left {
		// NeighbouringCells is relative to the canonical Up/Right spelling;
		// travelling the other way swaps which cell is on which side.
		left, right = right, left
	}

	if !p.InBoard(left) {
		next.left = make(map[geom.Position]struct{})
	} else {
		next.left[left] = struct{}{}
	}
	if !p.InBoard(right) {
		next.right = make(map[geom.Position]struct{})
	} else {
		next.right[right] = struct{}{}
	}
}

// colourConflict reports whether either partial-area set holds two squares
// of distinct colour.
func colourConflict(p *puzzle.Puzzle, next *partial) bool {
	return sideHasConflict(p, next.left) || sideHasConflict(p, next.right)
}

func sideHasConflict(p *puzzle.Puzzle, side map[geom.Position]struct{}) bool {
	seen := false
	var col puzzle.Color
	for cell := range side {
		c, ok := p.Square(cell)
		if !ok {
			continue
		}
		if !seen {
			col, seen = c, true
			continue
		}
		if c != col {
			return true
		}
	}
	return false
}

// stonePerpendicularityDead checks the two not-yet-used directions at the
// second-to-last vertex (the one whose two path edges just both became
// fixed) for an edge stone that can now never be traversed.
func stonePerpendicularityDead(p *puzzle.Puzzle, next *partial) bool {
	n := len(next.path)
	if n < 3 {
		return false
	}
	u := next.path[n-2]
	pred := next.path[n-3]
	last := next.path[n-1]

	dirIn, _ := pred.DirectionTo(u)
	dirOut, _ := u.DirectionTo(last)
	usedBack := dirIn.Opposite()

	for _, d := range geom.Directions {
		if d == usedBack || d == dirOut {
			continue
		}
		if p.HasEdgeStone(geom.NewEdge(u, d)) {
			return true
		}
	}
	return false
}

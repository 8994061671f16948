package network

import (
	"math"
	"sort"

	"github.com/ocodelab/go-neural-pulse/pkg/geometry"
)

type gridKey struct {
	x, y int
}

// grid is a spatial hash over node indices, an optional optimization for
// node counts where the plain O(n^2) pair scan gets expensive. Cell size
// equals the connection distance, so any pair within range sits in the same
// or an adjacent cell.
type grid struct {
	cellSize float64
	cells    map[gridKey][]int
	pairs    [][2]int // reused between frames
}

func newGrid(connectionDistance float64) *grid {
	// Clamp to a minimum of 10 to avoid tiny cells or division by zero.
	return &grid{
		cellSize: math.Max(connectionDistance, 10.0),
		cells:    make(map[gridKey][]int),
	}
}

func (g *grid) cellOf(p geometry.Vector2D) gridKey {
	return gridKey{
		x: int(math.Floor(p.X / g.cellSize)),
		y: int(math.Floor(p.Y / g.cellSize)),
	}
}

// rebuild re-buckets every node. Cell slices are reset to length 0 but keep
// their capacity, so steady-state rebuilds allocate almost nothing.
func (g *grid) rebuild(nodes []Node) {
	for k := range g.cells {
		g.cells[k] = g.cells[k][:0]
	}
	for i := range nodes {
		key := g.cellOf(nodes[i].Pos)
		g.cells[key] = append(g.cells[key], i)
	}
}

// candidatePairs returns every index pair (i < j) that could lie within the
// connection distance, scanning the 3x3 cell block around each node. The
// result is sorted i ascending then j ascending so the caller's draw order
// matches the brute-force scan exactly.
func (g *grid) candidatePairs(nodes []Node) [][2]int {
	g.pairs = g.pairs[:0]
	for i := range nodes {
		key := g.cellOf(nodes[i].Pos)
		for cx := key.x - 1; cx <= key.x+1; cx++ {
			for cy := key.y - 1; cy <= key.y+1; cy++ {
				for _, j := range g.cells[gridKey{x: cx, y: cy}] {
					if j > i {
						g.pairs = append(g.pairs, [2]int{i, j})
					}
				}
			}
		}
	}
	sort.Slice(g.pairs, func(a, b int) bool {
		if g.pairs[a][0] != g.pairs[b][0] {
			return g.pairs[a][0] < g.pairs[b][0]
		}
		return g.pairs[a][1] < g.pairs[b][1]
	})
	return g.pairs
}

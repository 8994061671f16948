package network

import "math"

// Connection is the ephemeral visual relationship derived from one node
// pair on one frame. It has no identity and is never retained between
// frames.
type Connection struct {
	A, B      int     // node indices, A < B
	Distance  float64
	BaseAlpha float64 // distance-derived opacity before pulse modulation
	Alpha     float64 // opacity actually drawn
	Width     float64
	Color     Color
	Accent    bool
	Embellish bool // close enough (and accent) to grow a dendrite spur
}

// EvalPair computes the connection for the unordered pair (i, j) at elapsed
// time t seconds. Returns false when the nodes are at or beyond the
// connection distance. The result only depends on the two endpoints and t,
// never on other pairs, and is symmetric under an (i, j) swap.
func EvalPair(cfg *Config, nodes []Node, i, j int, t float64) (Connection, bool) {
	lo, hi := i, j
	if lo > hi {
		lo, hi = hi, lo
	}

	d := nodes[lo].Pos.DistanceTo(nodes[hi].Pos)
	if d >= cfg.ConnectionDistance {
		return Connection{}, false
	}

	conn := Connection{
		A:         lo,
		B:         hi,
		Distance:  d,
		BaseAlpha: (1 - d/cfg.ConnectionDistance) * cfg.IntensityFactor,
		Accent:    nodes[lo].Kind == KindAccent || nodes[hi].Kind == KindAccent,
	}

	if conn.Accent {
		// Phase is seeded with the lower index so different pairs pulse
		// out of sync. The pulse only brightens: the distance-derived
		// base alpha is the floor.
		pulse := 0.5 + 0.5*math.Sin(t*cfg.PulseSpeed+float64(lo))
		conn.Alpha = math.Min(1, conn.BaseAlpha*(1+cfg.PulseDepth*pulse))
		conn.Width = cfg.AccentLineWidth
		conn.Color = cfg.AccentColor
	} else {
		conn.Alpha = conn.BaseAlpha * cfg.NeutralAlphaScale
		conn.Width = cfg.LineWidth
		conn.Color = cfg.NeutralColor
	}

	conn.Embellish = conn.Accent && d < cfg.SubThresholdFraction*cfg.ConnectionDistance
	return conn, true
}

// DrawConnections evaluates every unordered node pair in fixed order
// (i ascending, then j ascending) and draws the resulting lines and
// dendrite spurs. O(n^2), which is fine at the node counts this runs at.
func DrawConnections(s Surface, cfg *Config, nodes []Node, t float64) {
	drawConnections(s, cfg, nodes, nil, t)
}

// drawConnections optionally routes pair discovery through a spatial grid.
// The grid emits candidates re-sorted into the same (i asc, j asc) order,
// so both paths produce an identical draw sequence.
func drawConnections(s Surface, cfg *Config, nodes []Node, g *grid, t float64) {
	if g != nil {
		g.rebuild(nodes)
		for _, p := range g.candidatePairs(nodes) {
			drawPair(s, cfg, nodes, p[0], p[1], t)
		}
		return
	}
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			drawPair(s, cfg, nodes, i, j, t)
		}
	}
}

func drawPair(s Surface, cfg *Config, nodes []Node, i, j int, t float64) {
	conn, ok := EvalPair(cfg, nodes, i, j, t)
	if !ok {
		return
	}

	a, b := nodes[conn.A].Pos, nodes[conn.B].Pos
	s.StrokeLine(a.X, a.Y, b.X, b.Y, conn.Width, conn.Color.WithAlpha(conn.Alpha))

	if conn.Embellish {
		DrawBranch(s, cfg, nodes[conn.A], nodes[conn.B], conn.BaseAlpha*cfg.BranchAlphaFraction, t)
	}
}

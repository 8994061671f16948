package network

import (
	"math"
	"math/rand/v2"

	"github.com/ocodelab/go-neural-pulse/pkg/geometry"
)

// Kind tags a node as part of the accent subset (pulsing, glowing, able to
// grow dendrites) or the neutral background population.
type Kind uint8

const (
	KindNeutral Kind = iota
	KindAccent
)

func (k Kind) String() string {
	if k == KindAccent {
		return "accent"
	}
	return "neutral"
}

// Node is the only entity in the animation. Radius, PulseOffset and Kind
// are fixed at creation; only Pos and Vel change afterwards.
type Node struct {
	Pos         geometry.Vector2D
	Vel         geometry.Vector2D
	Radius      float64
	PulseOffset float64
	Kind        Kind
}

// NewPopulation creates the full node set for a cfg.WorldWidth x
// cfg.WorldHeight world. The collection is created exactly once; window
// resizes never recreate it. The rng is passed in so callers (and tests)
// control seeding.
func NewPopulation(cfg *Config, rng *rand.Rand) []Node {
	nodes := make([]Node, cfg.NodeCount)
	for i := range nodes {
		kind := KindNeutral
		if rng.Float64() < cfg.AccentProbability {
			kind = KindAccent
		}
		nodes[i] = Node{
			Pos: geometry.NewVector(rng.Float64()*cfg.WorldWidth, rng.Float64()*cfg.WorldHeight),
			Vel: geometry.NewVector(
				(rng.Float64()-0.5)*2*cfg.MaxSpeed,
				(rng.Float64()-0.5)*2*cfg.MaxSpeed,
			),
			Radius:      cfg.MinRadius + rng.Float64()*(cfg.MaxRadius-cfg.MinRadius),
			PulseOffset: rng.Float64() * 2 * math.Pi,
			Kind:        kind,
		}
	}
	return nodes
}

// Move advances the node by its velocity, reflects the velocity component
// whose coordinate left [0, w] / [0, h], then clamps the position back into
// the world. The clamp runs unconditionally, so a node stranded outside the
// bounds by a resize is pulled back in on its next update.
func (n *Node) Move(w, h float64) {
	n.Pos = n.Pos.Add(n.Vel)
	if n.Pos.X < 0 || n.Pos.X > w {
		n.Vel.X = -n.Vel.X
	}
	if n.Pos.Y < 0 || n.Pos.Y > h {
		n.Vel.Y = -n.Vel.Y
	}
	n.Pos = n.Pos.Clamp(0, w, 0, h)
}

// Pulse returns the node's pulse value in [0, 1] at elapsed time t seconds.
// The per-node offset desynchronizes pulsing across the population.
func (n *Node) Pulse(speed, t float64) float64 {
	return 0.5 + 0.5*math.Sin(t*speed+n.PulseOffset)
}

package network

import (
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"
)

// State is the animator lifecycle. Stopped is terminal; there is no resume.
type State uint8

const (
	StateRunning State = iota
	StateStopped
)

func (s State) String() string {
	if s == StateStopped {
		return "stopped"
	}
	return "running"
}

// Animator owns the node collection, the current viewport dimensions and
// the elapsed clock. Everything is mutated on the host's single render
// goroutine, so no locking is needed anywhere.
type Animator struct {
	cfg     *Config
	nodes   []Node
	width   float64
	height  float64
	elapsed float64
	state   State
	grid    *grid
	log     *zap.SugaredLogger
}

// NewAnimator builds the population and starts in the running state.
// A non-positive viewport means there is no drawing surface to animate on;
// that is a fatal precondition reported as an error so the caller can
// decline to start without crashing the host.
func NewAnimator(cfg *Config, rng *rand.Rand, log *zap.SugaredLogger) (*Animator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.WorldWidth <= 0 || cfg.WorldHeight <= 0 {
		return nil, fmt.Errorf("no drawing surface: viewport %gx%g", cfg.WorldWidth, cfg.WorldHeight)
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	a := &Animator{
		cfg:    cfg,
		nodes:  NewPopulation(cfg, rng),
		width:  cfg.WorldWidth,
		height: cfg.WorldHeight,
		log:    log,
	}
	if cfg.SpatialGrid {
		a.grid = newGrid(cfg.ConnectionDistance)
	}

	log.Infow("animator ready",
		"nodes", len(a.nodes),
		"width", a.width,
		"height", a.height,
		"subBranches", cfg.SubBranches,
		"spatialGrid", cfg.SpatialGrid,
	)
	return a, nil
}

func (a *Animator) State() State     { return a.state }
func (a *Animator) Elapsed() float64 { return a.elapsed }
func (a *Animator) Nodes() []Node    { return a.nodes }

// Advance moves the simulation forward by dt seconds: clock first, then
// every node's motion. Does nothing once stopped.
func (a *Animator) Advance(dt float64) {
	if a.state == StateStopped {
		return
	}
	a.elapsed += dt
	for i := range a.nodes {
		a.nodes[i].Move(a.width, a.height)
	}
}

// Render draws one complete frame: clear, connection lines with their
// dendrite spurs, then every node body on top. Nothing drawn here survives
// to the next frame.
func (a *Animator) Render(s Surface) {
	s.Clear(a.cfg.BackgroundColor.WithAlpha(1))
	drawConnections(s, a.cfg, a.nodes, a.grid, a.elapsed)
	for i := range a.nodes {
		a.drawNode(s, &a.nodes[i])
	}
}

// drawNode draws the node body sized by its radius plus a pulse-driven
// bonus. Accent nodes pulse in brightness and carry a larger low-alpha glow
// disc underneath; neutral nodes stay at a flat alpha.
func (a *Animator) drawNode(s Surface, n *Node) {
	pulse := n.Pulse(a.cfg.PulseSpeed, a.elapsed)
	r := n.Radius + a.cfg.NodePulseRadiusBonus*pulse

	if n.Kind == KindAccent {
		alpha := a.cfg.NodeAlphaBase + a.cfg.NodeAlphaDepth*pulse
		s.FillCircle(n.Pos.X, n.Pos.Y, r*a.cfg.GlowRadiusScale, a.cfg.AccentColor.WithAlpha(a.cfg.GlowAlpha*pulse))
		s.FillCircle(n.Pos.X, n.Pos.Y, r, a.cfg.AccentColor.WithAlpha(alpha))
		return
	}
	s.FillCircle(n.Pos.X, n.Pos.Y, r, a.cfg.NeutralColor.WithAlpha(a.cfg.NodeAlphaBase))
}

// Resize updates the viewport dimensions. Nodes persist; any node left
// outside the new bounds is pulled back in by the clamp on its next Move.
func (a *Animator) Resize(w, h float64) {
	if w == a.width && h == a.height {
		return
	}
	a.width, a.height = w, h
	a.log.Debugw("viewport resized", "width", w, "height", h)
}

// Stop transitions to the terminal stopped state. Idempotent; node state is
// left as-is because the host is tearing down with us.
func (a *Animator) Stop() {
	if a.state == StateStopped {
		return
	}
	a.state = StateStopped
	a.log.Infow("animator stopped", "elapsed", a.elapsed)
}

package network

import (
	"math"

	"github.com/ocodelab/go-neural-pulse/pkg/geometry"
)

// DrawBranch draws the dendrite spur for a connected pair: a stroke
// perpendicular to the segment, growing out of its midpoint, with a length
// that breathes over time. When cfg.SubBranches is set the spur forks into
// two shorter sub-spurs at its tip, and the tip always gets a small filled
// marker.
//
// Coincident nodes have no perpendicular direction; that case draws
// nothing.
func DrawBranch(s Surface, cfg *Config, a, b Node, alpha, t float64) {
	dir := b.Pos.Sub(a.Pos)
	if dir.LenSqr() < geometry.Epsilon {
		return
	}

	mid := a.Pos.Midpoint(b.Pos)
	perp := dir.Perp().Normalize()

	length := cfg.BranchLength + cfg.BranchAmplitude*math.Sin(t*cfg.BranchPulseSpeed)
	tip := mid.Add(perp.Mul(length))

	s.StrokeLine(mid.X, mid.Y, tip.X, tip.Y, cfg.BranchLineWidth, cfg.AccentColor.WithAlpha(alpha))

	if cfg.SubBranches {
		base := perp.Angle()
		for _, offset := range [2]float64{-cfg.SubBranchAngle, cfg.SubBranchAngle} {
			end := tip.Add(geometry.NewVectorPolar(length*cfg.SubBranchFraction, base+offset))
			s.StrokeLine(tip.X, tip.Y, end.X, end.Y, cfg.SubBranchLineWidth,
				cfg.AccentColor.WithAlpha(alpha*cfg.SubBranchAlphaScale))
		}
	}

	s.FillCircle(tip.X, tip.Y, cfg.BranchTipRadius, cfg.AccentColor.WithAlpha(alpha))
}

package network

import "image/color"

// drawOp records one primitive call so tests can assert on the exact draw
// sequence of a frame.
type drawOp struct {
	kind           string // "clear", "line" or "circle"
	ax, ay, bx, by float64
	cx, cy, r      float64
	width          float64
	color          color.RGBA
}

// recordingSurface is the test double for the Surface contract.
type recordingSurface struct {
	ops []drawOp
}

func (s *recordingSurface) Clear(c color.RGBA) {
	s.ops = append(s.ops, drawOp{kind: "clear", color: c})
}

func (s *recordingSurface) StrokeLine(ax, ay, bx, by, width float64, c color.RGBA) {
	s.ops = append(s.ops, drawOp{kind: "line", ax: ax, ay: ay, bx: bx, by: by, width: width, color: c})
}

func (s *recordingSurface) FillCircle(cx, cy, r float64, c color.RGBA) {
	s.ops = append(s.ops, drawOp{kind: "circle", cx: cx, cy: cy, r: r, color: c})
}

func (s *recordingSurface) count(kind string) int {
	n := 0
	for _, op := range s.ops {
		if op.kind == kind {
			n++
		}
	}
	return n
}

func (s *recordingSurface) reset() {
	s.ops = s.ops[:0]
}

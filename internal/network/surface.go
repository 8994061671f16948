package network

import "image/color"

// Surface is the drawing collaborator the animator renders through. The
// production implementation wraps the ebiten screen image; tests substitute
// a recording fake.
type Surface interface {
	// Clear fills the whole surface with a solid color.
	Clear(c color.RGBA)
	// StrokeLine draws a straight segment from (ax, ay) to (bx, by).
	StrokeLine(ax, ay, bx, by, width float64, c color.RGBA)
	// FillCircle draws a filled disc centered at (cx, cy).
	FillCircle(cx, cy, r float64, c color.RGBA)
}

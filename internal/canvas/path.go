// internal/canvas/path.go
package canvas

import "golang.org/x/image/vector"

// kappa places cubic control points so four segments approximate a circle.
const kappa = 0.5522847498

// rectPath adds a closed axis-aligned rectangle. reverse flips the winding so
// the area cancels against an enclosing path.
func rectPath(z *vector.Rasterizer, x0, y0, x1, y1 float32, reverse bool) {
	if x1 <= x0 || y1 <= y0 {
		return
	}
	z.MoveTo(x0, y0)
	if reverse {
		z.LineTo(x0, y1)
		z.LineTo(x1, y1)
		z.LineTo(x1, y0)
	} else {
		z.LineTo(x1, y0)
		z.LineTo(x1, y1)
		z.LineTo(x0, y1)
	}
	z.ClosePath()
}

// circlePath adds a closed circle built from four cubic segments.
func circlePath(z *vector.Rasterizer, cx, cy, r float32, reverse bool) {
	if r <= 0 {
		return
	}
	k := r * kappa
	z.MoveTo(cx+r, cy)
	if reverse {
		z.CubeTo(cx+r, cy-k, cx+k, cy-r, cx, cy-r)
		z.CubeTo(cx-k, cy-r, cx-r, cy-k, cx-r, cy)
		z.CubeTo(cx-r, cy+k, cx-k, cy+r, cx, cy+r)
		z.CubeTo(cx+k, cy+r, cx+r, cy+k, cx+r, cy)
	} else {
		z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
		z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
		z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
		z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	}
	z.ClosePath()
}

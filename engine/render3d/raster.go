package render3d

import (
	"math"

	"github.com/1siamBot/softraster/engine/math3d"
)

// PointDrawer is the single primitive the rasterizers write through.
// Device implements it with bounds and depth checks.
type PointDrawer interface {
	DrawPoint(p math3d.Vector3, c Color)
}

// Clipper is a PointDrawer with a finite pixel grid. Rasterizers skip rows,
// spans and segments that cannot land on it, so a vertex projected far off
// screen costs no more than the pixels it covers.
type Clipper interface {
	PointDrawer
	Bounds() (width, height int)
}

// lineGuard is how far outside the grid a line endpoint may sit before the
// segment is clipped to the guard band.
const lineGuard = 1 << 16

func gridOf(dst PointDrawer) (w, h int, ok bool) {
	if c, isClipper := dst.(Clipper); isClipper {
		w, h = c.Bounds()
		return w, h, true
	}
	return 0, 0, false
}

// interpolate lerps from min to max, clamping k to [0,1].
func interpolate(min, max, k float64) float64 {
	if k < 0 {
		k = 0
	} else if k > 1 {
		k = 1
	}
	return min + (max-min)*k
}

// edgeFraction is how far y lies along the vertical span a->b. A horizontal
// edge counts as fully traversed.
func edgeFraction(y float64, a, b math3d.Vector3) float64 {
	if a.Y == b.Y {
		return 1
	}
	return (y - a.Y) / (b.Y - a.Y)
}

// scanline fills row y between edge pa-pb and edge pc-pd.
func scanline(dst PointDrawer, y float64, pa, pb, pc, pd math3d.Vector3, c Color) {
	g1 := edgeFraction(y, pa, pb)
	g2 := edgeFraction(y, pc, pd)

	startX := math.Trunc(interpolate(pa.X, pb.X, g1))
	endX := math.Trunc(interpolate(pc.X, pd.X, g2))
	z1 := interpolate(pa.Z, pb.Z, g1)
	z2 := interpolate(pc.Z, pd.Z, g2)
	if startX > endX {
		startX, endX = endX, startX
		z1, z2 = z2, z1
	}

	from, to := startX, endX
	if w, _, ok := gridOf(dst); ok {
		from = math.Max(from, 0)
		to = math.Min(to, float64(w))
	}
	for x := from; x < to; x++ {
		gz := (x - startX) / (endX - startX)
		dst.DrawPoint(math3d.V3(x, y, interpolate(z1, z2, gz)), c)
	}
}

// above orders vertices top to bottom, breaking ties on X then Z so that
// every permutation of a triangle sorts the same way.
func above(a, b math3d.Vector3) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Z < b.Z
}

func inverseSlope(a, b math3d.Vector3) float64 {
	if b.Y-a.Y > 0 {
		return (b.X - a.X) / (b.Y - a.Y)
	}
	return 0
}

// FillTriangle scan-fills the screen-space triangle p1 p2 p3 with a flat
// color, interpolating depth linearly along edges and spans.
func FillTriangle(dst PointDrawer, p1, p2, p3 math3d.Vector3, c Color) {
	if above(p2, p1) {
		p1, p2 = p2, p1
	}
	if above(p3, p2) {
		p2, p3 = p3, p2
	}
	if above(p2, p1) {
		p1, p2 = p2, p1
	}

	top, bottom := math.Trunc(p1.Y), math.Trunc(p3.Y)
	if _, h, ok := gridOf(dst); ok {
		top = math.Max(top, 0)
		bottom = math.Min(bottom, float64(h-1))
	}

	// p2 lies right of the long edge p1-p3 when its edge is less steep
	if inverseSlope(p1, p2) > inverseSlope(p1, p3) {
		for y := top; y <= bottom; y++ {
			if y < p2.Y {
				scanline(dst, y, p1, p3, p1, p2, c)
			} else {
				scanline(dst, y, p1, p3, p2, p3, c)
			}
		}
		return
	}
	for y := top; y <= bottom; y++ {
		if y < p2.Y {
			scanline(dst, y, p1, p2, p1, p3, c)
		} else {
			scanline(dst, y, p2, p3, p1, p3, c)
		}
	}
}

// BresenhamLine draws the integer line between p1 and p2, both endpoints
// included, at depth 0. Endpoints are ordered first so that A->B and B->A
// light the same pixels. On a Clipper, endpoints further than lineGuard
// outside the grid are pulled in along the line before walking.
func BresenhamLine(dst PointDrawer, p1, p2 math3d.Vector2, c Color) {
	if w, h, ok := gridOf(dst); ok {
		if p2.X < p1.X || (p2.X == p1.X && p2.Y < p1.Y) {
			p1, p2 = p2, p1
		}
		var visible bool
		if p1, p2, visible = clipSegment(p1, p2, -lineGuard, -lineGuard, float64(w+lineGuard), float64(h+lineGuard)); !visible {
			return
		}
	}

	x1, y1 := int(p1.X), int(p1.Y)
	x2, y2 := int(p2.X), int(p2.Y)
	if x1 > x2 || (x1 == x2 && y1 > y2) {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	stepX, stepY := -1, -1
	if x1 < x2 {
		stepX = 1
	}
	if y1 < y2 {
		stepY = 1
	}

	err := dx - dy
	for {
		dst.DrawPoint(math3d.V3(float64(x1), float64(y1), 0), c)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := err * 2
		if e2 > -dy {
			err -= dy
			x1 += stepX
		}
		if e2 < dx {
			err += dx
			y1 += stepY
		}
	}
}

// SubdivideLine plots the midpoint of p1-p2 and recurses into both halves
// until segments are shorter than two pixels. Endpoints are not plotted.
func SubdivideLine(dst PointDrawer, p1, p2 math3d.Vector3, c Color) {
	if !(p2.Sub(p1).Length() >= 2) {
		return
	}
	if w, h, ok := gridOf(dst); ok {
		// every midpoint stays inside the segment's bounding box
		if math.Max(p1.X, p2.X) < 0 || math.Max(p1.Y, p2.Y) < 0 ||
			math.Min(p1.X, p2.X) >= float64(w) || math.Min(p1.Y, p2.Y) >= float64(h) {
			return
		}
	}
	mid := p1.Add(p2.Sub(p1).Div(2))
	dst.DrawPoint(mid, c)
	SubdivideLine(dst, p1, mid, c)
	SubdivideLine(dst, mid, p2, c)
}

// clipSegment cuts p1-p2 to the rectangle [minX,maxX]x[minY,maxY]
// (Liang-Barsky). It reports false when nothing of the segment is inside or
// an endpoint is not finite.
func clipSegment(p1, p2 math3d.Vector2, minX, minY, maxX, maxY float64) (math3d.Vector2, math3d.Vector2, bool) {
	for _, v := range [4]float64{p1.X, p1.Y, p2.X, p2.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return p1, p2, false
		}
	}
	if p1.X >= minX && p1.X <= maxX && p1.Y >= minY && p1.Y <= maxY &&
		p2.X >= minX && p2.X <= maxX && p2.Y >= minY && p2.Y <= maxY {
		return p1, p2, true
	}

	d := p2.Sub(p1)
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-d.X, p1.X - minX},
		{d.X, maxX - p1.X},
		{-d.Y, p1.Y - minY},
		{d.Y, maxY - p1.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return p1, p2, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return p1, p2, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return p1, p2, false
			}
			t1 = math.Min(t1, r)
		}
	}
	return p1.Add(d.Mul(t0)), p1.Add(d.Mul(t1)), true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

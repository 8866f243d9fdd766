package canvas

import (
	"fmt"
	"math"
)

// Point is a pixel position relative to the canvas top-left corner.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// QuadCurve is a quadratic Bézier segment in canvas pixel space.
type QuadCurve struct {
	Start   Point `json:"start"`
	Control Point `json:"control"`
	End     Point `json:"end"`
}

// PathData renders the curve as SVG path data.
func (q QuadCurve) PathData() string {
	return fmt.Sprintf("M %.2f %.2f Q %.2f %.2f %.2f %.2f",
		q.Start.X, q.Start.Y, q.Control.X, q.Control.Y, q.End.X, q.End.Y)
}

// PointAt evaluates the curve at t in [0, 1].
func (q QuadCurve) PointAt(t float64) Point {
	u := 1 - t
	return Point{
		X: u*u*q.Start.X + 2*u*t*q.Control.X + t*t*q.End.X,
		Y: u*u*q.Start.Y + 2*u*t*q.Control.Y + t*t*q.End.Y,
	}
}

// connectionCurve computes the curved path for one of a site's connections.
// The control point sits at the midpoint of the straight segment, pushed out
// along the segment's normal. The push direction rotates by a per-index
// offset symmetric around the normal, and the push distance grows with the
// index, so a site's curves fan out instead of overlapping: one connection
// bows by a fixed amount, two or three spread visibly apart.
func connectionCurve(src, dst Point, index, total int, layout Layout) QuadCurve {
	mid := Point{X: (src.X + dst.X) / 2, Y: (src.Y + dst.Y) / 2}
	normal := math.Atan2(dst.Y-src.Y, dst.X-src.X) + math.Pi/2

	angle := normal + angularOffset(index, total, layout.FanStep)
	magnitude := layout.CurveBase + float64(index)*layout.CurveStep

	return QuadCurve{
		Start: src,
		Control: Point{
			X: mid.X + magnitude*math.Cos(angle),
			Y: mid.Y + magnitude*math.Sin(angle),
		},
		End: dst,
	}
}

// angularOffset spreads a site's connections symmetrically around the
// straight line: for three connections the offsets are proportional to
// -1, 0, +1.
func angularOffset(index, total int, step float64) float64 {
	return (float64(index) - float64(total-1)/2) * step
}

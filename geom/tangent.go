package geom

import "math"

// A Line2 is the line in the XY plane through two points.
type Line2 struct {
	P1, P2 Point2
}

// A Circle is a circle in the XY plane.
type Circle struct {
	Center Point2
	Radius float64
}

// TangentPointsFrom returns the two points where the tangent lines
// through p touch the circle. It returns ErrNoTangent if p lies
// inside or on the circle: inside no tangent line exists, and on the
// circle the construction degenerates to p itself.
func (c Circle) TangentPointsFrom(p Point2) ([2]Point2, error) {
	d2 := c.Center.SquaredDistanceTo(p)
	if d2 <= c.Radius*c.Radius {
		return [2]Point2{}, ErrNoTangent
	}
	base := math.Atan2(p.Y-c.Center.Y, p.X-c.Center.X)
	// Half-angle at the center between the direction to p and the
	// direction to either tangency point.
	spread := math.Acos(c.Radius / math.Sqrt(d2))
	return [2]Point2{
		PolarPoint2(c.Center, base+spread, c.Radius),
		PolarPoint2(c.Center, base-spread, c.Radius),
	}, nil
}

// CommonTangents returns the common tangent lines between c and o,
// each expressed by its tangency points: P1 on c, P2 on o. Up to four
// lines exist: the two external tangents whenever neither circle lies
// strictly inside the other, and the two internal tangents whenever
// the circles do not overlap. When the circles touch, the collapsing
// pair is reported as a single line, whose two tangency points
// coincide in the internally tangent case. Concentric circles have no
// common tangent and yield an empty slice.
func (c Circle) CommonTangents(o Circle) []Line2 {
	lines := make([]Line2, 0, 4)
	dx := o.Center.X - c.Center.X
	dy := o.Center.Y - c.Center.Y
	d := math.Hypot(dx, dy)
	if d == 0 {
		return lines
	}
	base := math.Atan2(dy, dx)
	// External tangents: tangency directions offset from the center
	// line by acos((rc-ro)/d), identical on both circles.
	if cos := (c.Radius - o.Radius) / d; -1 <= cos && cos <= 1 {
		spread := math.Acos(cos)
		lines = append(lines, Line2{
			P1: PolarPoint2(c.Center, base+spread, c.Radius),
			P2: PolarPoint2(o.Center, base+spread, o.Radius),
		})
		if spread != 0 && spread != math.Pi {
			lines = append(lines, Line2{
				P1: PolarPoint2(c.Center, base-spread, c.Radius),
				P2: PolarPoint2(o.Center, base-spread, o.Radius),
			})
		}
	}
	// Internal tangents: offset acos((rc+ro)/d), opposite directions
	// on the two circles.
	if cos := (c.Radius + o.Radius) / d; cos <= 1 {
		spread := math.Acos(cos)
		lines = append(lines, Line2{
			P1: PolarPoint2(c.Center, base+spread, c.Radius),
			P2: PolarPoint2(o.Center, base+spread+math.Pi, o.Radius),
		})
		if spread != 0 {
			lines = append(lines, Line2{
				P1: PolarPoint2(c.Center, base-spread, c.Radius),
				P2: PolarPoint2(o.Center, base-spread+math.Pi, o.Radius),
			})
		}
	}
	return lines
}

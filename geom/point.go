// Copyright 2024 The GeometryExtensions (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geom

import "math"

// Point2 is a point in the XY plane.
type Point2 struct {
	X, Y float64
}

// Point3 is a point in 3-dimensional space.
type Point3 struct {
	X, Y, Z float64
}

// PolarPoint2 returns the point at the given distance from base in
// the direction angle, measured counterclockwise in radians from the
// positive X axis.
func PolarPoint2(base Point2, angle, distance float64) Point2 {
	return Point2{
		X: base.X + distance*math.Cos(angle),
		Y: base.Y + distance*math.Sin(angle),
	}
}

// PolarPoint3 is PolarPoint2 in the XY plane through base: the Z
// component carries over unchanged.
func PolarPoint3(base Point3, angle, distance float64) Point3 {
	return Point3{
		X: base.X + distance*math.Cos(angle),
		Y: base.Y + distance*math.Sin(angle),
		Z: base.Z,
	}
}

// MidPoint returns the point halfway between p and q.
func (p Point2) MidPoint(q Point2) Point2 {
	return Point2{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

// MidPoint returns the point halfway between p and q.
func (p Point3) MidPoint(q Point3) Point3 {
	return Point3{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2, Z: (p.Z + q.Z) / 2}
}

// SquaredDistanceTo returns the squared Euclidean distance between p
// and q.
func (p Point2) SquaredDistanceTo(q Point2) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// SquaredDistanceTo returns the squared Euclidean distance between p
// and q.
func (p Point3) SquaredDistanceTo(q Point3) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	dz := p.Z - q.Z
	return dx*dx + dy*dy + dz*dz
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point2) DistanceTo(q Point2) float64 {
	return math.Sqrt(p.SquaredDistanceTo(q))
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point3) DistanceTo(q Point3) float64 {
	return math.Sqrt(p.SquaredDistanceTo(q))
}

// XY projects p onto the XY plane.
func (p Point3) XY() Point2 {
	return Point2{X: p.X, Y: p.Y}
}

// WithZ lifts p out of the XY plane at elevation z.
func (p Point2) WithZ(z float64) Point3 {
	return Point3{X: p.X, Y: p.Y, Z: z}
}

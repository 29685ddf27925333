// Copyright 2024 The GeometryExtensions (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdtree

import "github.com/gileCAD/GeometryExtensions/geom"

// NewPoint2Tree builds a 2-dimensional tree indexing the points
// themselves.
func NewPoint2Tree(points []geom.Point2) (*Tree[geom.Point2], error) {
	return New(points, func(p geom.Point2) Coord {
		return Coord{p.X, p.Y}
	}, 2)
}

// NewPoint3Tree builds a tree indexing the points themselves. With
// ignoreZ, all distance and containment computations use only the X
// and Y components, treating the point set as projected onto the XY
// plane; the stored points keep their Z values.
func NewPoint3Tree(points []geom.Point3, ignoreZ bool) (*Tree[geom.Point3], error) {
	dimension := 3
	if ignoreZ {
		dimension = 2
	}
	return New(points, func(p geom.Point3) Coord {
		return Coord{p.X, p.Y, p.Z}
	}, dimension)
}

// Copyright 2024 The GeometryExtensions (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package geom provides the small host geometry kernel used by the
// spatial index: plain 2- and 3-dimensional point value types with
// closed-form constructions (polar points, midpoints, distances) and
// circle tangent-line helpers.
//
// Everything in this package is pure value math with no state; the
// only failure modes are input validation.
package geom

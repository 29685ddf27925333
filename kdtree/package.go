// Copyright 2024 The GeometryExtensions (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package kdtree provides a k-d tree spatial index over arbitrary
// coordinate-bearing items, answering nearest-neighbour,
// k-nearest-neighbour, radius, and axis-aligned box queries in 2 or 3
// dimensions.
//
// A tree is built exactly once from a finite, non-empty item
// collection and a position extractor, and is immutable afterward:
// there is no insert, delete, or rebalance. A successfully constructed
// tree may therefore serve concurrent read-only queries without
// locking, provided the indexed items are not mutated externally.
package kdtree

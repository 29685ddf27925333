// Copyright 2024 The GeometryExtensions (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdtree_test

import (
	"fmt"
	"sort"

	"github.com/gileCAD/GeometryExtensions/geom"
	"github.com/gileCAD/GeometryExtensions/kdtree"
)

// Create a point slice for example purposes.
var points = []geom.Point2{
	{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 5, Y: 5},
}

func ExampleNewPoint2Tree() {
	tree, _ := kdtree.NewPoint2Tree(points) // Ignore error ONLY to keep example simple.

	fmt.Println(tree.NearestNeighbor(kdtree.Coord{4, 4}))
	// Output: {5 5}
}

func ExampleNew() {
	type city struct {
		Name     string
		Lon, Lat float64
	}
	cities := []city{
		{"Oslo", 10.75, 59.91},
		{"Paris", 2.35, 48.86},
		{"Berlin", 13.40, 52.52},
	}

	tree, _ := kdtree.New(cities, func(c city) kdtree.Coord {
		return kdtree.Coord{c.Lon, c.Lat}
	}, 2) // Ignore error ONLY to keep example simple.

	nearest := tree.NearestNeighbor(kdtree.Coord{4.9, 52.4}) // Amsterdam
	fmt.Println(nearest.Name)
	// Output: Paris
}

func ExampleTree_NearestNeighbors() {
	tree, _ := kdtree.NewPoint2Tree(points) // Ignore error ONLY to keep example simple.

	// Results hold the correct k-subset but are not distance-sorted;
	// sort them when presentation order matters.
	results := tree.NearestNeighbors(kdtree.Coord{0, 0}, 2)
	sort.Slice(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})
	for _, r := range results {
		fmt.Printf("%v at squared distance %v\n", r.Item, r.Distance)
	}
	// Output: {0 0} at squared distance 0
	// {5 5} at squared distance 50
}

func ExampleTree_NeighborsWithin() {
	tree, _ := kdtree.NewPoint2Tree(points) // Ignore error ONLY to keep example simple.

	fmt.Println(tree.NeighborsWithin(kdtree.Coord{0, 0}, 10.1))
	// Output: [{5 5} {0 10} {0 0} {10 0}]
}

func ExampleTree_BoxedRange() {
	tree, _ := kdtree.NewPoint2Tree(points) // Ignore error ONLY to keep example simple.

	fmt.Println(tree.BoxedRange(kdtree.Coord{0, 0}, kdtree.Coord{5, 5}))
	// Output: [{5 5} {0 0}]
}

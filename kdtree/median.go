// Copyright 2024 The GeometryExtensions (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdtree

// medianOf rearranges items in place so that the element ending at
// index len(items)/2 is the one a full sort under cmp would put there:
// every element before it compares <= and every element after it
// compares >=, with neither side internally sorted. It returns that
// median element.
//
// The routine is an iterative window-narrowing quickselect with a
// Hoare two-pointer partition. The pivot is always the midpoint of the
// current window, never randomized, so adversarial or duplicate-heavy
// inputs can degrade the average linear running time toward quadratic.
//
// Panics if items is empty. Construction never calls medianOf on an
// empty partition, so the panic marks a caller bug, not a reachable
// runtime state.
func medianOf[T any](items []T, cmp func(a, b T) int) T {
	if len(items) == 0 {
		textPanic("median of empty slice")
	}
	k := len(items) / 2
	from, to := 0, len(items)-1
	for from < to {
		pivot := items[(from+to)/2]
		r, w := from, to
		for r < w {
			// Move not-less-than-pivot elements to the high end of
			// the window.
			if cmp(items[r], pivot) >= 0 {
				items[r], items[w] = items[w], items[r]
				w--
			} else {
				r++
			}
		}
		if cmp(items[r], pivot) > 0 {
			r--
		}
		// Narrow the window to whichever side holds index k.
		if k <= r {
			to = r
		} else {
			from = r + 1
		}
	}
	return items[k]
}

// Copyright 2024 The GeometryExtensions (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdtree

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intCmp(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func TestMedianOf(t *testing.T) {
	t.Run("Panic", func(t *testing.T) {
		assert.PanicsWithValue(t, "kdtree: median of empty slice", func() {
			medianOf(nil, intCmp)
		})
	})

	t.Run("Fixed", func(t *testing.T) {
		testCases := []struct {
			name     string
			input    []int
			expected int
		}{
			{"Single", []int{7}, 7},
			{"Pair", []int{2, 1}, 2},
			{"PairSorted", []int{1, 2}, 2},
			{"OddSorted", []int{1, 2, 3, 4, 5}, 3},
			{"OddReversed", []int{5, 4, 3, 2, 1}, 3},
			{"EvenShuffled", []int{8, 1, 6, 3, 5, 2, 7, 4}, 5},
			{"AllDuplicates", []int{9, 9, 9, 9, 9}, 9},
			{"SomeDuplicates", []int{4, 1, 4, 1, 4, 1, 4}, 4},
		}

		for _, testCase := range testCases {
			t.Run(testCase.name, func(t *testing.T) {
				input := make([]int, len(testCase.input))
				copy(input, testCase.input)

				actual := medianOf(input, intCmp)

				assert.Equal(t, testCase.expected, actual)
				assert.Equal(t, testCase.expected, input[len(input)/2])
			})
		}
	})

	t.Run("Partition", func(t *testing.T) {
		r := rand.New(rand.NewSource(0x6d656469616e))
		for trial := 0; trial < 100; trial++ {
			n := 1 + r.Intn(200)
			input := make([]int, n)
			for i := range input {
				input[i] = r.Intn(25) // Narrow range forces duplicates.
			}
			expected := make([]int, n)
			copy(expected, input)
			sort.Ints(expected)
			k := n / 2

			actual := medianOf(input, intCmp)

			require.Equal(t, expected[k], actual)
			require.Equal(t, actual, input[k])
			for i := 0; i < k; i++ {
				require.LessOrEqual(t, input[i], actual)
			}
			for i := k + 1; i < n; i++ {
				require.GreaterOrEqual(t, input[i], actual)
			}
			// The rearrangement must not gain or lose elements.
			rearranged := make([]int, n)
			copy(rearranged, input)
			sort.Ints(rearranged)
			require.Equal(t, expected, rearranged)
		}
	})
}

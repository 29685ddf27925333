// Copyright 2024 The GeometryExtensions (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors(t *testing.T) {
	t.Run("Sentinels", func(t *testing.T) {
		assert.EqualError(t, ErrNilInput, "kdtree: nil item collection or position function")
		assert.EqualError(t, ErrEmptyInput, "kdtree: empty item collection")
		assert.EqualError(t, ErrInvalidDimension, "kdtree: dimension must be 2 or 3")
	})

	t.Run("textErr", func(t *testing.T) {
		assert.EqualError(t, textErr("foo"), "kdtree: foo")
	})

	t.Run("fmtErr", func(t *testing.T) {
		assert.EqualError(t, fmtErr("my %s is %d", "bar", 11), "kdtree: my bar is 11")
	})

	t.Run("textPanic", func(t *testing.T) {
		assert.PanicsWithValue(t, "kdtree: foo", func() {
			textPanic("foo")
		})
	})
}

// Copyright 2024 The GeometryExtensions (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdtree

import (
	"errors"
	"fmt"
)

var (
	// ErrNilInput is returned by New when the item collection or the
	// position extractor is absent.
	ErrNilInput = textErr("nil item collection or position function")
	// ErrEmptyInput is returned by New when the item collection holds
	// zero elements: no root node can be produced.
	ErrEmptyInput = textErr("empty item collection")
	// ErrInvalidDimension is returned by New when the dimension is
	// neither 2 nor 3.
	ErrInvalidDimension = textErr("dimension must be 2 or 3")
)

const packageName = "kdtree: "

func textErr(text string) error {
	return errors.New(packageName + text)
}

func fmtErr(format string, a ...interface{}) error {
	return fmt.Errorf(packageName+format, a...)
}

func textPanic(text string) {
	panic(packageName + text)
}

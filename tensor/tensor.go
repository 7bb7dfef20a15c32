// Copyright 2026 Xplain ML Toolkit. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense numeric arrays the toolkit's
// explainability algorithms operate on.
//
// The package defines a row-major float64 tensor and the reshaping algebra
// needed for batched finite differences:
//   - Shape: dimension bookkeeping with batch/feature splitting
//   - Dense: the tensor type, plus creation and manipulation helpers
//
// Example:
//
//	x, err := tensor.New(tensor.Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})
//	if err != nil {
//		log.Fatal(err)
//	}
//	flat, _ := x.Flatten2D() // Shape{2, 3}
package tensor

import (
	"math/rand"

	"github.com/xplain-ml/xplain/internal/tensor"
)

// Shape holds the dimensions of a tensor, outermost first.
type Shape = tensor.Shape

// Dense is a dense float64 tensor with row-major layout.
type Dense = tensor.Dense

// New creates a tensor from a shape and a data slice. The slice is used
// directly, not copied; its length must match the shape's element count.
func New(shape Shape, data []float64) (*Dense, error) {
	return tensor.New(shape, data)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape) *Dense {
	return tensor.Zeros(shape)
}

// Full creates a tensor filled with a specific value.
func Full(shape Shape, value float64) *Dense {
	return tensor.Full(shape, value)
}

// Eye creates an n×n identity matrix.
func Eye(n int) *Dense {
	return tensor.Eye(n)
}

// Randn creates a tensor with values drawn from the standard normal
// distribution using the supplied source.
func Randn(shape Shape, rng *rand.Rand) *Dense {
	return tensor.Randn(shape, rng)
}

// RandUniform creates a tensor with values drawn uniformly from [min, max).
func RandUniform(shape Shape, min, max float64, rng *rand.Rand) *Dense {
	return tensor.RandUniform(shape, min, max, rng)
}

// Arange creates a 1-D tensor with values start, start+1, ... up to but not
// including stop.
func Arange(start, stop float64) *Dense {
	return tensor.Arange(start, stop)
}

// Add returns the element-wise sum of two same-shaped tensors.
func Add(a, b *Dense) (*Dense, error) {
	return tensor.Add(a, b)
}

// Sub returns the element-wise difference a - b of two same-shaped tensors.
func Sub(a, b *Dense) (*Dense, error) {
	return tensor.Sub(a, b)
}

// Cat concatenates tensors along the given dimension.
func Cat(ts []*Dense, dim int) (*Dense, error) {
	return tensor.Cat(ts, dim)
}

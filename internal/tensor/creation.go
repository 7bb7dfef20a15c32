package tensor

import (
	"math"
	"math/rand"
)

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape) *Dense {
	if err := shape.Validate(); err != nil {
		panic(err) // Callers construct shapes from literals or validated input
	}
	return &Dense{shape: shape.Clone(), data: make([]float64, shape.NumElements())}
}

// Full creates a tensor filled with a specific value.
func Full(shape Shape, value float64) *Dense {
	t := Zeros(shape)
	for i := range t.data {
		t.data[i] = value
	}
	return t
}

// Eye creates an n×n identity matrix.
func Eye(n int) *Dense {
	t := Zeros(Shape{n, n})
	for i := 0; i < n; i++ {
		t.data[i*n+i] = 1
	}
	return t
}

// Randn creates a tensor with values drawn from the standard normal
// distribution using the supplied source. Passing the generator explicitly
// keeps test data reproducible.
func Randn(shape Shape, rng *rand.Rand) *Dense {
	t := Zeros(shape)
	for i := range t.data {
		t.data[i] = rng.NormFloat64()
	}
	return t
}

// RandUniform creates a tensor with values drawn uniformly from [min, max).
func RandUniform(shape Shape, min, max float64, rng *rand.Rand) *Dense {
	t := Zeros(shape)
	for i := range t.data {
		t.data[i] = rng.Float64()*(max-min) + min
	}
	return t
}

// Arange creates a 1-D tensor with values start, start+1, ... up to but not
// including stop.
func Arange(start, stop float64) *Dense {
	n := int(math.Ceil(stop - start))
	if n <= 0 {
		n = 0
	}
	t := &Dense{shape: Shape{n}, data: make([]float64, n)}
	for i := range t.data {
		t.data[i] = start + float64(i)
	}
	return t
}

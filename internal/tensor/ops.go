package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Add returns the element-wise sum of two same-shaped tensors.
func Add(a, b *Dense) (*Dense, error) {
	if !a.shape.Equal(b.shape) {
		return nil, fmt.Errorf("Add: shape mismatch %v vs %v", a.shape, b.shape)
	}
	out := Zeros(a.shape)
	floats.AddTo(out.data, a.data, b.data)
	return out, nil
}

// Sub returns the element-wise difference a - b of two same-shaped tensors.
func Sub(a, b *Dense) (*Dense, error) {
	if !a.shape.Equal(b.shape) {
		return nil, fmt.Errorf("Sub: shape mismatch %v vs %v", a.shape, b.shape)
	}
	out := Zeros(a.shape)
	floats.SubTo(out.data, a.data, b.data)
	return out, nil
}

// Scale returns the tensor multiplied element-wise by c.
func (t *Dense) Scale(c float64) *Dense {
	out := t.Clone()
	floats.Scale(c, out.data)
	return out
}

// ScaleCols multiplies column k of a 2-D tensor by v[k], returning a new
// tensor. This is row-wise broadcasting of an element-wise product.
func (t *Dense) ScaleCols(v []float64) (*Dense, error) {
	if len(t.shape) != 2 {
		return nil, fmt.Errorf("ScaleCols: tensor must be 2-D, got shape %v", t.shape)
	}
	if len(v) != t.shape[1] {
		return nil, fmt.Errorf("ScaleCols: vector length %d does not match %d columns", len(v), t.shape[1])
	}
	out := t.Clone()
	cols := t.shape[1]
	for i := 0; i < t.shape[0]; i++ {
		floats.Mul(out.data[i*cols:(i+1)*cols], v)
	}
	return out, nil
}

// Sum returns the sum of all elements.
func (t *Dense) Sum() float64 {
	return floats.Sum(t.data)
}

// SumRows returns the per-row sums of a 2-D tensor.
func (t *Dense) SumRows() ([]float64, error) {
	if len(t.shape) != 2 {
		return nil, fmt.Errorf("SumRows: tensor must be 2-D, got shape %v", t.shape)
	}
	rows, cols := t.shape[0], t.shape[1]
	sums := make([]float64, rows)
	for i := 0; i < rows; i++ {
		sums[i] = floats.Sum(t.data[i*cols : (i+1)*cols])
	}
	return sums, nil
}

// ArgMaxRows returns, for each row of a 2-D tensor, the index of its
// maximum element.
func (t *Dense) ArgMaxRows() ([]int, error) {
	if len(t.shape) != 2 {
		return nil, fmt.Errorf("ArgMaxRows: tensor must be 2-D, got shape %v", t.shape)
	}
	rows, cols := t.shape[0], t.shape[1]
	if cols == 0 {
		return nil, fmt.Errorf("ArgMaxRows: rows are empty")
	}
	idx := make([]int, rows)
	for i := 0; i < rows; i++ {
		idx[i] = floats.MaxIdx(t.data[i*cols : (i+1)*cols])
	}
	return idx, nil
}

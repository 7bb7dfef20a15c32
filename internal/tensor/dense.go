package tensor

import (
	"fmt"
	"slices"
)

// Dense is a dense float64 tensor with row-major layout.
//
// The black-box prediction contract this module serves is plain
// array-in/array-out, so Dense carries no device or dtype dispatch: any
// framework-tensor conversion happens in an adapter on the model's side of
// the boundary.
type Dense struct {
	shape Shape
	data  []float64
}

// New creates a tensor from a shape and a data slice. The slice is used
// directly, not copied; its length must match the shape's element count.
func New(shape Shape, data []float64) (*Dense, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("New: data length %d does not match shape %v (%d elements)",
			len(data), shape, shape.NumElements())
	}
	return &Dense{shape: shape.Clone(), data: data}, nil
}

// Shape returns the tensor's shape. The returned slice must not be mutated.
func (t *Dense) Shape() Shape {
	return t.shape
}

// Data returns the underlying row-major buffer. Mutations are visible to the
// tensor.
func (t *Dense) Data() []float64 {
	return t.data
}

// NumElements returns the total element count.
func (t *Dense) NumElements() int {
	return len(t.data)
}

// Clone returns a deep copy of the tensor.
func (t *Dense) Clone() *Dense {
	return &Dense{shape: t.shape.Clone(), data: slices.Clone(t.data)}
}

// At returns the element at the given multi-dimensional index.
func (t *Dense) At(idx ...int) (float64, error) {
	if len(idx) != len(t.shape) {
		return 0, fmt.Errorf("At: index rank %d does not match tensor rank %d", len(idx), len(t.shape))
	}
	strides := t.shape.ComputeStrides()
	flat := 0
	for i, j := range idx {
		if j < 0 || j >= t.shape[i] {
			return 0, fmt.Errorf("At: index %d out of range for dimension %d (size %d)", j, i, t.shape[i])
		}
		flat += j * strides[i]
	}
	return t.data[flat], nil
}

// Row returns a view of row i of a 2-D tensor. The returned slice aliases
// the tensor's buffer.
func (t *Dense) Row(i int) ([]float64, error) {
	if len(t.shape) != 2 {
		return nil, fmt.Errorf("Row: tensor must be 2-D, got shape %v", t.shape)
	}
	rows, cols := t.shape[0], t.shape[1]
	if i < 0 || i >= rows {
		return nil, fmt.Errorf("Row: index %d out of range for %d rows", i, rows)
	}
	return t.data[i*cols : (i+1)*cols], nil
}

// String formats the tensor as shape plus flat data, for debugging.
func (t *Dense) String() string {
	return fmt.Sprintf("Dense(shape=%v, data=%v)", t.shape, t.data)
}

package tensor

import (
	"fmt"
	"slices"
)

// Reshape returns a tensor sharing t's buffer with a new shape. The new
// shape must cover the same number of elements. One dimension may be -1 and
// is inferred from the element count.
func (t *Dense) Reshape(dims ...int) (*Dense, error) {
	total := len(t.data)
	inferIdx := -1
	product := 1
	for i, dim := range dims {
		switch {
		case dim == -1:
			if inferIdx >= 0 {
				return nil, fmt.Errorf("Reshape: can only have one -1 dimension")
			}
			inferIdx = i
		case dim <= 0:
			return nil, fmt.Errorf("Reshape: dimensions must be positive, got %d", dim)
		default:
			product *= dim
		}
	}

	shape := make(Shape, len(dims))
	copy(shape, dims)
	if inferIdx >= 0 {
		if product == 0 || total%product != 0 {
			return nil, fmt.Errorf("Reshape: cannot infer dimension for shape %v from %d elements", Shape(dims), total)
		}
		shape[inferIdx] = total / product
	}

	if shape.NumElements() != total {
		return nil, fmt.Errorf("Reshape: shape %v needs %d elements, tensor has %d",
			shape, shape.NumElements(), total)
	}
	return &Dense{shape: shape, data: t.data}, nil
}

// Flatten2D reshapes a batch tensor (N, *F) to (N, D) where D is the
// flattened per-instance feature count. Shares t's buffer.
func (t *Dense) Flatten2D() (*Dense, error) {
	batch, features, err := t.shape.SplitBatch()
	if err != nil {
		return nil, fmt.Errorf("Flatten2D: %w", err)
	}
	return &Dense{shape: Shape{batch, features}, data: t.data}, nil
}

// AtLeast2D promotes a tensor below rank 2 to a single-row matrix. Tensors
// already at rank 2 or higher are returned unchanged. Shares t's buffer.
func (t *Dense) AtLeast2D() *Dense {
	if len(t.shape) >= 2 {
		return t
	}
	return &Dense{shape: Shape{1, len(t.data)}, data: t.data}
}

// Cat concatenates tensors along the given dimension. All inputs must agree
// on every other dimension.
func Cat(ts []*Dense, dim int) (*Dense, error) {
	if len(ts) == 0 {
		return nil, fmt.Errorf("Cat: at least one tensor required")
	}
	rank := len(ts[0].shape)
	if dim < 0 || dim >= rank {
		return nil, fmt.Errorf("Cat: dimension %d out of range for rank %d", dim, rank)
	}

	outShape := ts[0].shape.Clone()
	for i, t := range ts[1:] {
		if len(t.shape) != rank {
			return nil, fmt.Errorf("Cat: tensor %d has rank %d, want %d", i+1, len(t.shape), rank)
		}
		for d := 0; d < rank; d++ {
			if d == dim {
				continue
			}
			if t.shape[d] != outShape[d] {
				return nil, fmt.Errorf("Cat: tensor %d has size %d in dimension %d, want %d",
					i+1, t.shape[d], d, outShape[d])
			}
		}
		outShape[dim] += t.shape[dim]
	}

	// Copy block-wise: each input contributes shape[dim]*inner contiguous
	// elements per outer slice.
	outer := 1
	for d := 0; d < dim; d++ {
		outer *= outShape[d]
	}
	inner := 1
	for d := dim + 1; d < rank; d++ {
		inner *= outShape[d]
	}

	out := Zeros(outShape)
	pos := 0
	for o := 0; o < outer; o++ {
		for _, t := range ts {
			block := t.shape[dim] * inner
			copy(out.data[pos:pos+block], t.data[o*block:(o+1)*block])
			pos += block
		}
	}
	return out, nil
}

// Repeat repeats each slice along the leading axis n times consecutively:
// rows a, b become a, a, b, b for n = 2.
func (t *Dense) Repeat(n int) (*Dense, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Repeat: count must be > 0, got %d", n)
	}
	if len(t.shape) == 0 {
		return nil, fmt.Errorf("Repeat: scalar tensor has no leading axis")
	}

	rows := t.shape[0]
	width := len(t.data) / rows
	outShape := t.shape.Clone()
	outShape[0] = rows * n

	out := Zeros(outShape)
	for i := 0; i < rows; i++ {
		src := t.data[i*width : (i+1)*width]
		for k := 0; k < n; k++ {
			copy(out.data[(i*n+k)*width:(i*n+k+1)*width], src)
		}
	}
	return out, nil
}

// Tile stacks the whole tensor n times along the leading axis: rows a, b
// become a, b, a, b for n = 2.
func (t *Dense) Tile(n int) (*Dense, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Tile: count must be > 0, got %d", n)
	}
	if len(t.shape) == 0 {
		return nil, fmt.Errorf("Tile: scalar tensor has no leading axis")
	}

	outShape := t.shape.Clone()
	outShape[0] *= n

	out := &Dense{shape: outShape, data: make([]float64, 0, len(t.data)*n)}
	for k := 0; k < n; k++ {
		out.data = append(out.data, t.data...)
	}
	out.data = slices.Clip(out.data)
	return out, nil
}

// Split divides the tensor into two along the leading axis at row cut.
// Both halves share t's buffer.
func (t *Dense) Split(cut int) (*Dense, *Dense, error) {
	if len(t.shape) == 0 {
		return nil, nil, fmt.Errorf("Split: scalar tensor has no leading axis")
	}
	rows := t.shape[0]
	if cut <= 0 || cut >= rows {
		return nil, nil, fmt.Errorf("Split: cut %d out of range for %d rows", cut, rows)
	}

	width := len(t.data) / rows
	headShape := t.shape.Clone()
	headShape[0] = cut
	tailShape := t.shape.Clone()
	tailShape[0] = rows - cut

	head := &Dense{shape: headShape, data: t.data[:cut*width]}
	tail := &Dense{shape: tailShape, data: t.data[cut*width:]}
	return head, tail, nil
}

package tensor

import "fmt"

// Shape holds the dimensions of a tensor, outermost first.
type Shape []int

// NumElements returns the total element count for the shape.
// A rank-0 shape describes a scalar and counts as one element.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate reports an error if any dimension is non-positive.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal reports whether two shapes have identical rank and dimensions.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides returns row-major strides: stride[i] is the product of all
// dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// SplitBatch interprets the shape as a batch of instances: the leading axis
// is the batch size and the remaining axes form the per-instance feature
// shape. It returns the batch size and the flattened per-instance feature
// count.
func (s Shape) SplitBatch() (batch, features int, err error) {
	if len(s) == 0 {
		return 0, 0, fmt.Errorf("SplitBatch: scalar shape has no batch axis")
	}
	if err := s.Validate(); err != nil {
		return 0, 0, fmt.Errorf("SplitBatch: %w", err)
	}
	batch = s[0]
	features = s.NumElements() / batch
	return batch, features, nil
}

// FeatureShape returns the per-instance trailing shape (everything after the
// batch axis). The returned shape aliases s.
func (s Shape) FeatureShape() Shape {
	if len(s) == 0 {
		return Shape{}
	}
	return s[1:]
}

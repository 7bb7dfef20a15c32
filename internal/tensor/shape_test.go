package tensor

import (
	"testing"
)

func TestShapeNumElements(t *testing.T) {
	cases := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1},
		{Shape{4}, 4},
		{Shape{2, 3}, 6},
		{Shape{2, 3, 4}, 24},
	}
	for _, c := range cases {
		if got := c.shape.NumElements(); got != c.want {
			t.Errorf("NumElements(%v) = %d, want %d", c.shape, got, c.want)
		}
	}
}

func TestShapeValidate(t *testing.T) {
	if err := (Shape{2, 3}).Validate(); err != nil {
		t.Errorf("Validate({2,3}) = %v, want nil", err)
	}
	if err := (Shape{2, 0}).Validate(); err == nil {
		t.Error("Validate({2,0}) = nil, want error")
	}
	if err := (Shape{-1, 3}).Validate(); err == nil {
		t.Error("Validate({-1,3}) = nil, want error")
	}
}

func TestShapeEqualAndClone(t *testing.T) {
	s := Shape{2, 3, 4}
	if !s.Equal(Shape{2, 3, 4}) {
		t.Error("Equal: identical shapes reported unequal")
	}
	if s.Equal(Shape{2, 3}) || s.Equal(Shape{2, 3, 5}) {
		t.Error("Equal: different shapes reported equal")
	}

	clone := s.Clone()
	clone[0] = 99
	if s[0] != 2 {
		t.Error("Clone: mutation leaked into original")
	}
}

func TestShapeComputeStrides(t *testing.T) {
	strides := Shape{2, 3, 4}.ComputeStrides()
	want := []int{12, 4, 1}
	for i := range want {
		if strides[i] != want[i] {
			t.Errorf("ComputeStrides({2,3,4}) = %v, want %v", strides, want)
			break
		}
	}
}

func TestShapeSplitBatch(t *testing.T) {
	batch, features, err := Shape{5, 2, 3}.SplitBatch()
	if err != nil {
		t.Fatalf("SplitBatch({5,2,3}) returned error: %v", err)
	}
	if batch != 5 || features != 6 {
		t.Errorf("SplitBatch({5,2,3}) = (%d, %d), want (5, 6)", batch, features)
	}

	if _, _, err := (Shape{}).SplitBatch(); err == nil {
		t.Error("SplitBatch on scalar shape should fail")
	}
}

func TestShapeFeatureShape(t *testing.T) {
	fs := Shape{5, 2, 3}.FeatureShape()
	if !fs.Equal(Shape{2, 3}) {
		t.Errorf("FeatureShape({5,2,3}) = %v, want {2,3}", fs)
	}
	if fs := (Shape{5}).FeatureShape(); len(fs) != 0 {
		t.Errorf("FeatureShape({5}) = %v, want empty", fs)
	}
}

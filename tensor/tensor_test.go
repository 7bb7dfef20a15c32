// Copyright 2026 Xplain ML Toolkit. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/xplain-ml/xplain/tensor"
)

// TestPublicAPI verifies the re-exported surface works end to end.
func TestPublicAPI(t *testing.T) {
	x, err := tensor.New(tensor.Shape{2, 2}, []float64{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if !x.Shape().Equal(tensor.Shape{2, 2}) {
		t.Errorf("Shape() = %v, want [2 2]", x.Shape())
	}

	y, err := tensor.Add(x, tensor.Eye(2))
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	want := []float64{2, 2, 3, 5}
	for i, v := range y.Data() {
		if v != want[i] {
			t.Errorf("Add data = %v, want %v", y.Data(), want)
			break
		}
	}

	both, err := tensor.Cat([]*tensor.Dense{x, y}, 0)
	if err != nil {
		t.Fatalf("Cat failed: %v", err)
	}
	if !both.Shape().Equal(tensor.Shape{4, 2}) {
		t.Errorf("Cat shape = %v, want [4 2]", both.Shape())
	}
}

func TestArange(t *testing.T) {
	a := tensor.Arange(0, 4)
	if !a.Shape().Equal(tensor.Shape{4}) {
		t.Fatalf("Arange shape = %v, want [4]", a.Shape())
	}
	for i, v := range a.Data() {
		if v != float64(i) {
			t.Errorf("Arange data = %v", a.Data())
			break
		}
	}
}

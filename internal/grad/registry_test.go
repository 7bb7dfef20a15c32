package grad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xplain-ml/xplain/internal/tensor"
)

func TestNumericalGradientRegistry(t *testing.T) {
	// Known framework keys exist up front but start empty.
	assert.Empty(t, NumericalGradients("pytorch"))
	assert.Empty(t, NumericalGradients("tensorflow"))

	first := BatchGradFunc(func(f Func, x *tensor.Dense, eps Eps) (*tensor.Dense, error) {
		return tensor.Zeros(tensor.Shape{1, 1}), nil
	})
	second := BatchGradFunc(NumGradBatch)

	RegisterNumericalGradient("tensorflow", first)
	RegisterNumericalGradient("tensorflow", second)

	got := NumericalGradients("tensorflow")
	require.Len(t, got, 2, "registration appends in order")
	assert.Empty(t, NumericalGradients("pytorch"), "other frameworks unaffected")

	// The first registered function is the first returned.
	out, err := got[0](nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{1, 1}, out.Shape())
}

func TestNumericalGradientRegistryUnknownKey(t *testing.T) {
	// Keys are not validated; a misspelled framework silently creates an
	// orphan entry instead of failing.
	assert.Empty(t, NumericalGradients("tensorflw"))
	RegisterNumericalGradient("tensorflw", BatchGradFunc(NumGradBatch))
	assert.Len(t, NumericalGradients("tensorflw"), 1)
}

package grad

import (
	"math"
	"math/rand"
	"testing"

	"github.com/seehuhn/mt19937"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xplain-ml/xplain/internal/tensor"
)

func newRNG(seed int64) *rand.Rand {
	src := mt19937.New()
	src.Seed(seed)
	return rand.New(src)
}

func TestPerturbOffsets(t *testing.T) {
	const eps = 0.5
	n, dim := 3, 4
	x := tensor.Randn(tensor.Shape{n, dim}, newRNG(7))

	pos, neg, err := Perturb(x, Scalar(eps), false)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{n * dim, dim}, pos.Shape())
	assert.Equal(t, tensor.Shape{n * dim, dim}, neg.Shape())

	// Row i*dim+j differs from the original instance by ±eps at feature j
	// and nowhere else.
	for i := 0; i < n; i++ {
		orig, err := x.Row(i)
		require.NoError(t, err)
		for j := 0; j < dim; j++ {
			posRow, err := pos.Row(i*dim + j)
			require.NoError(t, err)
			negRow, err := neg.Row(i*dim + j)
			require.NoError(t, err)
			for k := 0; k < dim; k++ {
				if k == j {
					assert.InDelta(t, 2*eps, posRow[k]-negRow[k], 1e-12)
					assert.InDelta(t, orig[k]+eps, posRow[k], 1e-12)
				} else {
					assert.InDelta(t, 0, posRow[k]-negRow[k], 1e-12)
					assert.InDelta(t, orig[k], posRow[k], 1e-12)
				}
			}
		}
	}
}

func TestPerturbPreservesFeatureShape(t *testing.T) {
	x := tensor.Randn(tensor.Shape{2, 2, 3}, newRNG(11))

	pos, neg, err := Perturb(x, Scalar(1e-4), false)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{12, 2, 3}, pos.Shape())
	assert.Equal(t, tensor.Shape{12, 2, 3}, neg.Shape())
}

func TestPerturbProbaPreservesRowSums(t *testing.T) {
	// Rows on the probability simplex.
	x, err := tensor.New(tensor.Shape{2, 3}, []float64{0.2, 0.3, 0.5, 0.6, 0.1, 0.3})
	require.NoError(t, err)

	pos, neg, err := Perturb(x, Scalar(1e-3), true)
	require.NoError(t, err)

	posSums, err := pos.SumRows()
	require.NoError(t, err)
	negSums, err := neg.SumRows()
	require.NoError(t, err)

	origSums, err := x.SumRows()
	require.NoError(t, err)
	for r := 0; r < 6; r++ {
		assert.InDelta(t, origSums[r/3], posSums[r], 1e-12)
		assert.InDelta(t, origSums[r/3], negSums[r], 1e-12)
	}
}

func TestPerturbPerFeatureEps(t *testing.T) {
	x := tensor.Zeros(tensor.Shape{1, 3})
	eps := Eps{0.1, 0.2, 0.3}

	pos, neg, err := Perturb(x, eps, false)
	require.NoError(t, err)
	for j := 0; j < 3; j++ {
		posRow, err := pos.Row(j)
		require.NoError(t, err)
		negRow, err := neg.Row(j)
		require.NoError(t, err)
		assert.InDelta(t, eps[j], posRow[j], 1e-12)
		assert.InDelta(t, -eps[j], negRow[j], 1e-12)
	}
}

func TestPerturbEpsLengthMismatch(t *testing.T) {
	x := tensor.Zeros(tensor.Shape{1, 3})
	_, _, err := Perturb(x, Eps{0.1, 0.2}, false)
	assert.Error(t, err)
}

func TestPerturbProbaSingleFeature(t *testing.T) {
	// The compensation term divides by dim-1; with one feature the offsets
	// come out infinite. Callers must keep dim > 1 in proba mode.
	x := tensor.Full(tensor.Shape{1, 1}, 1)
	pos, _, err := Perturb(x, Scalar(1e-3), true)
	require.NoError(t, err)
	assert.True(t, math.IsInf(pos.Data()[0], 0) || math.IsNaN(pos.Data()[0]))
}

package predict

import (
	"fmt"

	"github.com/xplain-ml/xplain/internal/tensor"
)

// PredictFunc is a plain batch prediction callable, the normalized form the
// adapters in this package produce and consume.
type PredictFunc func(x *tensor.Dense) (*tensor.Dense, error)

// ArgmaxTransformer converts a soft-scoring predictor into a hard-label
// one: each prediction row collapses to the index of its maximum score.
type ArgmaxTransformer struct {
	predictor PredictFunc
}

// NewArgmaxTransformer wraps predictor. The predictor's output is promoted
// to at least two dimensions before the class axis is reduced, so
// single-instance predictors that return a flat score vector still work.
func NewArgmaxTransformer(predictor PredictFunc) *ArgmaxTransformer {
	return &ArgmaxTransformer{predictor: predictor}
}

// Labels returns the predicted class index for every instance in x.
func (t *ArgmaxTransformer) Labels(x *tensor.Dense) ([]int, error) {
	preds, err := t.predictor(x)
	if err != nil {
		return nil, fmt.Errorf("Labels: %w", err)
	}
	return preds.AtLeast2D().ArgMaxRows()
}

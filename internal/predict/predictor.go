package predict

import (
	"fmt"

	"github.com/xplain-ml/xplain/internal/tensor"
)

// Classifier is the minimal surface expected of a wrapped model: a batch of
// instances in, one prediction row per instance out.
type Classifier interface {
	Predict(x *tensor.Dense) (*tensor.Dense, error)
}

// Preprocessor transforms raw instances into the representation the
// classifier was fitted on.
type Preprocessor interface {
	Transform(x *tensor.Dense) (*tensor.Dense, error)
}

// Predictor adapts a classifier and an optional preprocessor into a plain
// prediction callable. The preprocessor, when present, runs before every
// prediction.
type Predictor struct {
	clf          Classifier
	preprocessor Preprocessor
}

// NewPredictor wraps clf, with pre applied first on every call. pre may be
// nil; clf may not.
func NewPredictor(clf Classifier, pre Preprocessor) (*Predictor, error) {
	if clf == nil {
		return nil, fmt.Errorf("NewPredictor: classifier with a Predict method is required")
	}
	return &Predictor{clf: clf, preprocessor: pre}, nil
}

// Predict runs the preprocessor (if any) and then the classifier, so a
// Predictor is itself a Classifier and composes.
func (p *Predictor) Predict(x *tensor.Dense) (*tensor.Dense, error) {
	if p.preprocessor != nil {
		transformed, err := p.preprocessor.Transform(x)
		if err != nil {
			return nil, fmt.Errorf("Predict: preprocessing: %w", err)
		}
		x = transformed
	}
	return p.clf.Predict(x)
}

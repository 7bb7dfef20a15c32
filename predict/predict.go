// Copyright 2026 Xplain ML Toolkit. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package predict normalizes model calling conventions for the
// explainability toolkit.
//
// Example:
//
//	p, err := predict.NewPredictor(clf, scaler)
//	if err != nil {
//		log.Fatal(err)
//	}
//	labels := predict.NewArgmaxTransformer(p.Predict)
//	y, err := labels.Labels(batch) // hard class labels
package predict

import (
	"github.com/xplain-ml/xplain/internal/predict"
)

// Framework identifies the deep-learning framework a wrapped predictor is
// implemented in.
type Framework = predict.Framework

// Known frameworks.
const (
	PyTorch    Framework = predict.PyTorch
	TensorFlow Framework = predict.TensorFlow
)

// Classifier is the minimal surface expected of a wrapped model.
type Classifier = predict.Classifier

// Preprocessor transforms raw instances before prediction.
type Preprocessor = predict.Preprocessor

// Predictor adapts a classifier and an optional preprocessor into a plain
// prediction callable.
type Predictor = predict.Predictor

// PredictFunc is a plain batch prediction callable.
type PredictFunc = predict.PredictFunc

// ArgmaxTransformer converts soft prediction scores into hard class labels.
type ArgmaxTransformer = predict.ArgmaxTransformer

// Wrapper adapts a predictor's inputs and outputs at the framework
// boundary.
type Wrapper = predict.Wrapper

// NewPredictor wraps clf, with pre applied first on every call. pre may be
// nil; clf may not.
func NewPredictor(clf Classifier, pre Preprocessor) (*Predictor, error) {
	return predict.NewPredictor(clf, pre)
}

// NewArgmaxTransformer wraps predictor for hard-label output.
func NewArgmaxTransformer(predictor PredictFunc) *ArgmaxTransformer {
	return predict.NewArgmaxTransformer(predictor)
}

// RegisterBlackboxWrapper installs w as the wrapper for framework,
// replacing any previous registration. Only the known frameworks are
// accepted.
func RegisterBlackboxWrapper(framework Framework, w Wrapper) error {
	return predict.RegisterBlackboxWrapper(framework, w)
}

// BlackboxWrapper returns the wrapper registered for framework, or nil when
// none has been registered.
func BlackboxWrapper(framework Framework) Wrapper {
	return predict.BlackboxWrapper(framework)
}

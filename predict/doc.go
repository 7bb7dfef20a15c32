// Copyright 2026 Xplain ML Toolkit. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package predict adapts arbitrary classifiers into the plain callables
// the explainability algorithms expect.
//
// # Adapters
//
// Predictor wraps any model exposing a Predict method, optionally running
// a Preprocessor first, so pipeline and bare models look the same to the
// rest of the toolkit. ArgmaxTransformer converts a soft-scoring predictor
// into a hard-label one by taking the per-instance argmax over the class
// axis.
//
// # Black-Box Wrappers
//
// Models implemented in a deep-learning framework consume and produce that
// framework's tensor type, while the toolkit speaks plain arrays. A
// Wrapper closes that gap: it decorates a PredictFunc so conversion
// happens at the boundary. Each framework backend registers exactly one
// wrapper with RegisterBlackboxWrapper at startup; BlackboxWrapper recalls
// it by framework name and returns nil when the backend was never loaded.
// Registration validates the framework name, unlike the gradient-function
// registry in package grad, which accepts any key.
package predict

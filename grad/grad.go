// Copyright 2026 Xplain ML Toolkit. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package grad approximates gradients of black-box prediction functions by
// symmetric finite differences.
//
// Example:
//
//	f := func(x *tensor.Dense) (*tensor.Dense, error) {
//		return model.Predict(x) // any array-in/array-out predictor
//	}
//	g, err := grad.NumGradBatch(f, batch, grad.Scalar(1e-6))
//	// g has shape (N, P, *F): one estimate per instance, class and feature.
package grad

import (
	"github.com/xplain-ml/xplain/internal/grad"
	"github.com/xplain-ml/xplain/internal/tensor"
)

// Eps is the finite-difference step size: either a single value broadcast
// across every feature, or one value per flattened feature.
type Eps = grad.Eps

// Func is a black-box batch prediction function: a batch of instances in,
// one prediction row per instance out.
type Func = grad.Func

// BatchGradFunc estimates per-instance gradients of a black-box function
// over a batch.
type BatchGradFunc = grad.BatchGradFunc

// Scalar returns a step size applied uniformly to every feature.
func Scalar(v float64) Eps {
	return grad.Scalar(v)
}

// Perturb builds the symmetric ±eps perturbation batches used for central
// differences. See the internal documentation for the layout contract: row
// i*D+j of each output is instance i with feature j perturbed.
func Perturb(x *tensor.Dense, eps Eps, proba bool) (pos, neg *tensor.Dense, err error) {
	return grad.Perturb(x, eps, proba)
}

// NumGradBatch estimates the gradient of f at every instance in x via
// central differences, returning a tensor of shape (N, P, *F).
func NumGradBatch(f Func, x *tensor.Dense, eps Eps) (*tensor.Dense, error) {
	return grad.NumGradBatch(f, x, eps)
}

// RegisterNumericalGradient appends fn to the gradient implementations
// registered for framework. Registration happens explicitly at process
// startup; the name is not validated.
func RegisterNumericalGradient(framework string, fn BatchGradFunc) {
	grad.RegisterNumericalGradient(framework, fn)
}

// NumericalGradients returns the gradient implementations registered for
// framework, in registration order.
func NumericalGradients(framework string) []BatchGradFunc {
	return grad.NumericalGradients(framework)
}

// Copyright 2026 Xplain ML Toolkit. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package grad estimates gradients of black-box prediction functions.
//
// # Overview
//
// Explanation algorithms often need the gradient of a model they can only
// call, not differentiate. This package approximates it with symmetric
// finite differences:
//
//  1. Perturb builds, for every instance and every feature, a positively
//     and a negatively offset copy of the instance.
//  2. NumGradBatch evaluates the function once on the unperturbed batch
//     (to learn the prediction width) and once on both perturbation
//     branches concatenated, then combines the results into central
//     differences.
//
// The result has shape (N, P, *F): one partial-derivative estimate per
// instance, prediction class and feature.
//
// # Step Size
//
// The step eps trades truncation error, which shrinks as O(eps²), against
// floating-point round-off, which grows as eps shrinks. Values between
// 1e-4 and 1e-8 work well for float64 inputs of moderate magnitude; no
// automatic selection is performed. Eps can also carry one step per
// feature when features live on very different scales.
//
// # Probability Inputs
//
// Perturb's proba mode compensates each step so perturbed probability
// vectors keep their row sum, for callers probing points that must stay on
// the simplex. The feature count must exceed one in this mode. Gradient
// estimation itself always perturbs freely: NumGradBatch does not apply
// the simplex compensation.
//
// # Registry
//
// Framework-specific gradient implementations register themselves with
// RegisterNumericalGradient at startup and are recalled by framework name,
// letting optimizer code dispatch without importing every backend.
package grad

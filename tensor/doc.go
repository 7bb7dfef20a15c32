// Copyright 2026 Xplain ML Toolkit. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor holds the numeric substrate for black-box explainability.
//
// # Overview
//
// Everything the toolkit exchanges with a model is a plain dense float64
// array: batches of instances going in, prediction scores coming out. This
// package provides that array type together with the handful of operations
// the finite-difference machinery needs:
//
//   - Creation: New, Zeros, Full, Eye, Randn, RandUniform, Arange
//   - Manipulation: Reshape (with one inferred -1 dimension), Flatten2D,
//     AtLeast2D, Cat, Repeat, Tile, Split
//   - Arithmetic: Add, Sub, Scale, ScaleCols, Sum, SumRows, ArgMaxRows
//
// # Batch Convention
//
// Tensors passed to prediction functions follow the batch convention: the
// leading axis indexes instances and the trailing axes form the
// per-instance feature shape, which may be any rank (a feature vector, an
// image, ...). Shape.SplitBatch and Dense.Flatten2D convert between the
// general (N, *F) form and the flattened (N, D) form the numeric code
// works in.
//
// # No Device Abstraction
//
// The toolkit treats models as black boxes, so tensors live on the CPU on
// this side of the model boundary. Converting to and from a framework's
// own tensor type is the job of a black-box wrapper (see the predict
// package), not of this package.
package tensor

package grad

import (
	"fmt"

	"github.com/xplain-ml/xplain/internal/tensor"
)

// Eps is the finite-difference step size: either a single value broadcast
// across every feature, or one value per flattened feature.
type Eps []float64

// Scalar returns a step size applied uniformly to every feature.
func Scalar(v float64) Eps {
	return Eps{v}
}

// expand resolves the step size to one entry per feature.
func (e Eps) expand(features int) ([]float64, error) {
	switch len(e) {
	case 1:
		row := make([]float64, features)
		for i := range row {
			row[i] = e[0]
		}
		return row, nil
	case features:
		return e, nil
	default:
		return nil, fmt.Errorf("eps length %d does not match feature count %d", len(e), features)
	}
}

// Perturb builds the symmetric perturbation batches used for central
// differences. Given an instance batch of shape (N, *F) with D flattened
// features per instance, it returns two batches of shape (N*D, *F): row
// i*D+j of each holds instance i with feature j offset by +eps / -eps and
// every other feature unchanged.
//
// With proba set, each diagonal step is compensated by -eps/(D-1) on the
// remaining features so a perturbed probability row keeps its original sum.
// D must exceed 1 in this mode: with a single feature the compensation
// divides by zero and the offsets come out infinite.
func Perturb(x *tensor.Dense, eps Eps, proba bool) (pos, neg *tensor.Dense, err error) {
	flat, err := x.Flatten2D()
	if err != nil {
		return nil, nil, fmt.Errorf("Perturb: %w", err)
	}
	n, dim := flat.Shape()[0], flat.Shape()[1]

	epsRow, err := eps.expand(dim)
	if err != nil {
		return nil, nil, fmt.Errorf("Perturb: %w", err)
	}

	// D×D perturbation block: eps on the diagonal, plus the simplex
	// compensation off the diagonal in proba mode.
	block, err := tensor.Eye(dim).ScaleCols(epsRow)
	if err != nil {
		return nil, nil, fmt.Errorf("Perturb: %w", err)
	}
	if proba {
		epsN := make([]float64, dim)
		for j := range epsN {
			epsN[j] = epsRow[j] / float64(dim-1)
		}
		offDiag, err := tensor.Sub(tensor.Eye(dim), tensor.Full(tensor.Shape{dim, dim}, 1))
		if err != nil {
			return nil, nil, fmt.Errorf("Perturb: %w", err)
		}
		corr, err := offDiag.ScaleCols(epsN)
		if err != nil {
			return nil, nil, fmt.Errorf("Perturb: %w", err)
		}
		block, err = tensor.Add(block, corr)
		if err != nil {
			return nil, nil, fmt.Errorf("Perturb: %w", err)
		}
	}

	// One block per instance, against the row-repeated batch: instance i
	// occupies rows i*D..(i+1)*D-1 of both outputs.
	pert, err := block.Tile(n)
	if err != nil {
		return nil, nil, fmt.Errorf("Perturb: %w", err)
	}
	rep, err := flat.Repeat(dim)
	if err != nil {
		return nil, nil, fmt.Errorf("Perturb: %w", err)
	}

	pos, err = tensor.Add(rep, pert)
	if err != nil {
		return nil, nil, fmt.Errorf("Perturb: %w", err)
	}
	neg, err = tensor.Sub(rep, pert)
	if err != nil {
		return nil, nil, fmt.Errorf("Perturb: %w", err)
	}

	outShape := append(tensor.Shape{n * dim}, x.Shape().FeatureShape()...)
	pos, err = pos.Reshape(outShape...)
	if err != nil {
		return nil, nil, fmt.Errorf("Perturb: %w", err)
	}
	neg, err = neg.Reshape(outShape...)
	if err != nil {
		return nil, nil, fmt.Errorf("Perturb: %w", err)
	}
	return pos, neg, nil
}

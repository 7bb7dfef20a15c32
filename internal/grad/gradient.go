package grad

import (
	"fmt"

	"github.com/xplain-ml/xplain/internal/tensor"
)

// Func is a black-box batch prediction function: it receives a batch of
// instances and returns one prediction row per instance. Any extra state
// the function needs (model handles, fixed arguments) is captured in its
// closure; framework-tensor conversion belongs in a wrapper at the model
// boundary, not here.
type Func func(x *tensor.Dense) (*tensor.Dense, error)

// NumGradBatch estimates the gradient of f at every instance in x via
// central differences, returning a tensor of shape (N, P, *F): one partial
// derivative per (instance, prediction class, feature) triple.
//
// f is evaluated once on the unperturbed batch to learn the number of
// prediction classes, then once on the concatenated positive and negative
// perturbation batches. The simplex-preserving perturbation mode is not
// used here: gradient probing steps off the probability simplex.
//
// eps must be nonzero; its magnitude trades truncation error (O(eps²))
// against round-off error. No automatic step-size selection is performed,
// and a prediction shape inconsistent with one row per instance surfaces as
// a reshape error rather than an explicit validation.
func NumGradBatch(f Func, x *tensor.Dense, eps Eps) (*tensor.Dense, error) {
	n, dim, err := x.Shape().SplitBatch()
	if err != nil {
		return nil, fmt.Errorf("NumGradBatch: %w", err)
	}

	// Probe evaluation, only to learn the prediction width P.
	preds, err := f(x)
	if err != nil {
		return nil, fmt.Errorf("NumGradBatch: probe evaluation: %w", err)
	}
	predsFlat, err := preds.Reshape(n, -1)
	if err != nil {
		return nil, fmt.Errorf("NumGradBatch: prediction shape %v does not split over %d instances: %w",
			preds.Shape(), n, err)
	}
	p := predsFlat.Shape()[1]

	pos, neg, err := Perturb(x, eps, false)
	if err != nil {
		return nil, fmt.Errorf("NumGradBatch: %w", err)
	}

	// One combined evaluation over both perturbation branches.
	both, err := tensor.Cat([]*tensor.Dense{pos, neg}, 0)
	if err != nil {
		return nil, fmt.Errorf("NumGradBatch: %w", err)
	}
	out, err := f(both)
	if err != nil {
		return nil, fmt.Errorf("NumGradBatch: perturbed evaluation: %w", err)
	}
	outFlat, err := out.Reshape(-1, p)
	if err != nil {
		return nil, fmt.Errorf("NumGradBatch: perturbed prediction shape %v is not %d columns wide: %w",
			out.Shape(), p, err)
	}
	posPreds, negPreds, err := outFlat.Split(n * dim)
	if err != nil {
		return nil, fmt.Errorf("NumGradBatch: perturbed prediction shape %v does not split at row %d: %w",
			out.Shape(), n*dim, err)
	}

	numerator, err := tensor.Sub(posPreds, negPreds)
	if err != nil {
		return nil, fmt.Errorf("NumGradBatch: %w", err)
	}

	epsRow, err := eps.expand(dim)
	if err != nil {
		return nil, fmt.Errorf("NumGradBatch: %w", err)
	}

	// numerator row i*D+j, column p holds f_p(x_i + eps e_j) - f_p(x_i - eps e_j);
	// reassemble as grad[i][p][j] = numerator[i*D+j][p] / (2*eps_j).
	gradShape := append(tensor.Shape{n, p}, x.Shape().FeatureShape()...)
	grad := tensor.Zeros(gradShape)
	gradData := grad.Data()
	numData := numerator.Data()
	for i := 0; i < n; i++ {
		for j := 0; j < dim; j++ {
			for c := 0; c < p; c++ {
				gradData[(i*p+c)*dim+j] = numData[(i*dim+j)*p+c] / (2 * epsRow[j])
			}
		}
	}
	return grad, nil
}

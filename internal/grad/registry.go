package grad

import "github.com/xplain-ml/xplain/internal/tensor"

// BatchGradFunc estimates per-instance gradients of a black-box function
// over a batch, using a finite-difference step eps.
type BatchGradFunc func(f Func, x *tensor.Dense, eps Eps) (*tensor.Dense, error)

// numericalGradients maps a framework name to the gradient implementations
// registered for it. Backends register here explicitly at startup. The map
// is read-only afterwards and is not synchronized; concurrent registration
// is not a supported usage pattern.
var numericalGradients = map[string][]BatchGradFunc{
	"pytorch":    nil,
	"tensorflow": nil,
}

// RegisterNumericalGradient appends fn to the implementations registered
// for framework. The name is not validated against the known frameworks, so
// a misspelled name silently creates an orphan entry.
func RegisterNumericalGradient(framework string, fn BatchGradFunc) {
	numericalGradients[framework] = append(numericalGradients[framework], fn)
}

// NumericalGradients returns the gradient implementations registered for
// framework, in registration order. The result is nil when nothing has been
// registered under that name.
func NumericalGradients(framework string) []BatchGradFunc {
	return numericalGradients[framework]
}

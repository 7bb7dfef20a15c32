package predict

import "fmt"

// Framework identifies the deep-learning framework a wrapped predictor is
// implemented in.
type Framework string

// Known frameworks.
const (
	PyTorch    Framework = "pytorch"
	TensorFlow Framework = "tensorflow"
)

// Wrapper adapts a predictor at the framework boundary: inputs arrive as
// plain arrays and outputs are converted from the framework's tensor type
// back to plain arrays.
type Wrapper func(PredictFunc) PredictFunc

// blackboxWrappers holds exactly one wrapper per known framework, nil until
// a backend registers one at startup. Not synchronized; concurrent
// registration is not a supported usage pattern.
var blackboxWrappers = map[Framework]Wrapper{
	PyTorch:    nil,
	TensorFlow: nil,
}

// RegisterBlackboxWrapper installs w as the wrapper for framework,
// replacing any previous registration. Unlike the gradient registry, the
// framework name is validated here: anything other than the known
// frameworks is rejected.
func RegisterBlackboxWrapper(framework Framework, w Wrapper) error {
	if blackboxWrappers == nil {
		return fmt.Errorf("RegisterBlackboxWrapper: wrapper registry is not initialized")
	}
	if framework != PyTorch && framework != TensorFlow {
		return fmt.Errorf("RegisterBlackboxWrapper: unknown framework %q, must be %q or %q",
			framework, TensorFlow, PyTorch)
	}
	blackboxWrappers[framework] = w
	return nil
}

// BlackboxWrapper returns the wrapper registered for framework, or nil when
// none has been registered.
func BlackboxWrapper(framework Framework) Wrapper {
	return blackboxWrappers[framework]
}

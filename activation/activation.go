// Package activation implements the closed family of geometric scalar
// activation functions a CPPN node may carry (spec.md §3). It is
// deliberately small and has no dependency on the graph packages: a
// Function is a pure value, not tied to any particular node or graph.
package activation

import "math"

// Function is a closed, tagged variant of the nine geometric activation
// functions CPPN nodes may carry. The zero value is Linear.
type Function uint8

// The nine members of the activation function family (spec.md §3).
const (
	Linear Function = iota
	LinearBipolarClipped
	Absolute
	Gaussian
	BipolarGaussian
	BipolarSigmoid
	Sine
	Cosine
	Constant1
)

// Calculate evaluates the function at x.
//
// Bipolar-valued members (LinearBipolarClipped, BipolarGaussian,
// BipolarSigmoid, Sine, Cosine) are clipped or asymptotically bounded to
// [-1,1] by their formulas; calculateBipolar additionally asserts the
// bound under the cppndebug build tag (spec.md §7: "debug-only assertion;
// release builds trust the formula").
func (f Function) Calculate(x float64) float64 {
	switch f {
	case Linear:
		return x
	case LinearBipolarClipped:
		return calculateBipolar(clip(x, -1, 1))
	case Absolute:
		return math.Abs(x)
	case Gaussian:
		return math.Exp(-((2.5 * x) * (2.5 * x)))
	case BipolarGaussian:
		return calculateBipolar(2.0*math.Exp(-((2.5*x)*(2.5*x))) - 1.0)
	case BipolarSigmoid:
		return calculateBipolar(2.0/(1.0+math.Exp(-4.9*x)) - 1.0)
	case Sine:
		return calculateBipolar(math.Sin(2 * math.Pi * x))
	case Cosine:
		return calculateBipolar(math.Cos(2 * math.Pi * x))
	case Constant1:
		return 1.0
	default:
		panic("activation: unknown Function value")
	}
}

// clip constrains x to [lo, hi].
func clip(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}

	return x
}

// Name returns the stable, human-readable name of f, used for plotting
// labels and config round-tripping (activation.Parse is its inverse).
func (f Function) Name() string {
	switch f {
	case Linear:
		return "Linear"
	case LinearBipolarClipped:
		return "LinearBipolarClipped"
	case Absolute:
		return "Absolute"
	case Gaussian:
		return "Gaussian"
	case BipolarGaussian:
		return "BipolarGaussian"
	case BipolarSigmoid:
		return "BipolarSigmoid"
	case Sine:
		return "Sine"
	case Cosine:
		return "Cosine"
	case Constant1:
		return "Constant1"
	default:
		return "Unknown"
	}
}

// FormulaGnuplot returns a gnuplot-compatible expression for f, with x
// substituted by the given expression string, for any caller wanting to
// embed the formula into a report or plot title. PlotPNG does not use it;
// it samples Calculate directly.
func (f Function) FormulaGnuplot(x string) string {
	switch f {
	case Linear:
		return x
	case LinearBipolarClipped:
		return "max(-1.0, min(1.0, " + x + "))"
	case Absolute:
		return "abs(" + x + ")"
	case Gaussian:
		return "exp(-((" + x + " * 2.5)**2.0))"
	case BipolarGaussian:
		return "2.0 * exp(-((" + x + " * 2.5)**2.0)) - 1.0"
	case BipolarSigmoid:
		return "2.0 / (1.0 + exp(-4.9 * (" + x + "))) - 1.0"
	case Sine:
		return "sin(2.0*pi*(" + x + "))"
	case Cosine:
		return "cos(2.0*pi*(" + x + "))"
	case Constant1:
		return "1.0"
	default:
		return "?"
	}
}

// All returns the nine members of the family in declaration order, chiefly
// useful for PlotPNG and for tests that exercise every member.
func All() []Function {
	return []Function{
		Linear, LinearBipolarClipped, Absolute, Gaussian,
		BipolarGaussian, BipolarSigmoid, Sine, Cosine, Constant1,
	}
}

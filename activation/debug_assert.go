//go:build cppndebug

package activation

// calculateBipolar panics if x leaves [-1,1] when built with the cppndebug
// tag. This mirrors the Rust original's debug_assert! on bipolar outputs
// (spec.md §7: ActivationRangeViolation is "debug-only assertion; release
// builds trust the formula"). Go has no separate debug/release build mode,
// so a build tag stands in for Rust's #[cfg(debug_assertions)].
func calculateBipolar(x float64) float64 {
	if x < -1.0 || x > 1.0 {
		panic("activation: bipolar value out of [-1,1] range")
	}

	return x
}

// Package factor: options and defaults for the factorization engine.
package factor

import "errors"

// Defaults are the engine's published constants, lifted into configuration
// so the engine stays testable with small caps.
const (
	// DefaultMaxIter bounds the number of multiplicative-update iterations.
	DefaultMaxIter = 300

	// DefaultEpsilon is the convergence threshold compared against the
	// SQUARED Frobenius delta between consecutive iterates (no square root).
	DefaultEpsilon = 1e-4

	// DefaultBeta is the update-rule mixing coefficient β in
	// (1−β) + β·(WH/HHtH). β=1 is the pure multiplicative rule; smaller
	// values damp each step.
	DefaultBeta = 0.5

	// DefaultSeed seeds the uniform H₀ initializer (InitH); a fixed value
	// keeps full pipeline runs reproducible.
	DefaultSeed = 1234
)

var (
	// ErrBadOptions indicates an Options field outside its documented domain
	// (MaxIter < 1, Epsilon ≤ 0 or non-finite, Beta outside (0,1]).
	ErrBadOptions = errors.New("factor: invalid options")

	// ErrBadRank indicates a requested factorization rank k < 1.
	ErrBadRank = errors.New("factor: rank must be >= 1")
)

// Options configures a Factorize call.
//
// Fields:
//   - MaxIter — hard cap on update iterations; reaching it is normal
//     termination, not an error.
//   - Epsilon — stop as soon as FrobeniusDelta(H, H_prev) < Epsilon.
//   - Beta    — mixing coefficient β of the update rule, in (0,1].
//
// The zero value is NOT usable; start from DefaultOptions() and override.
type Options struct {
	MaxIter int
	Epsilon float64
	Beta    float64
}

// DefaultOptions returns the standard configuration: 300 iterations,
// epsilon 1e-4, β=0.5.
func DefaultOptions() Options {
	return Options{
		MaxIter: DefaultMaxIter,
		Epsilon: DefaultEpsilon,
		Beta:    DefaultBeta,
	}
}

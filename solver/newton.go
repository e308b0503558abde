// Package solver finds the rate at which a cash-flow sequence's net present
// value is zero, using Newton-Raphson with an analytic derivative.
//
// The driver is parameterized over an (f, f') pair, so IRR and XIRR are the
// same machine fed different objectives. Every call allocates its own
// iteration state; the package holds no mutable state and is safe to call
// concurrently without coordination.
package solver

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	// maxIterations is the hard budget per solve. Exhausting it yields a
	// ConvergenceError, never an unbounded loop.
	maxIterations = 100

	divScale = 20
)

var (
	// tolerance is the absolute NPV residual below which the rate is
	// considered converged.
	tolerance = decimal.New(1, -7)

	// rateFloor and rateCeiling bound each Newton step. The floor keeps
	// (1+rate) positive so discounting stays defined; the ceiling stops
	// divergence past any practically meaningful rate.
	rateFloor   = decimal.RequireFromString("-0.99")
	rateCeiling = decimal.NewFromInt(100)

	one = decimal.NewFromInt(1)
)

// ErrInsufficientData is returned when fewer than two cash flows are
// supplied; a rate solve over fewer is meaningless and no iteration is
// attempted.
var ErrInsufficientData = errors.New("at least two cash flows are required")

// Objective evaluates the function being driven to zero and its derivative
// at the given rate.
type Objective func(rate decimal.Decimal) (value, derivative decimal.Decimal, err error)

// ConvergenceError reports a solve that terminated without the residual
// dropping below tolerance. It carries the iterations performed and the last
// residual so the caller can decide whether the result is close enough to
// use anyway.
type ConvergenceError struct {
	Solver     string
	Iterations int
	Residual   decimal.Decimal
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%s: did not converge after %d iterations (residual %s)", e.Solver, e.Iterations, e.Residual)
}

// newton drives the objective to zero starting from guess.
//
// Per iteration: converged when |f| < tolerance; a zero derivative fails
// immediately (no division by zero); otherwise the rate steps by -f/f',
// clamped into [rateFloor, rateCeiling] to suppress divergence into a domain
// where (1+rate) is non-positive.
func newton(name string, guess decimal.Decimal, fn Objective) (decimal.Decimal, error) {
	// A guess at or below -100% would make the very first evaluation
	// undefined; clamping only guards subsequent steps.
	if one.Add(guess).Sign() <= 0 {
		return decimal.Zero, &ConvergenceError{Solver: name, Iterations: 0, Residual: decimal.Zero}
	}

	rate := guess
	residual := decimal.Zero
	for iter := 0; iter < maxIterations; iter++ {
		value, deriv, err := fn(rate)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%s: %w", name, err)
		}
		residual = value.Abs()
		if residual.LessThan(tolerance) {
			return rate, nil
		}
		if deriv.IsZero() {
			return decimal.Zero, &ConvergenceError{Solver: name, Iterations: iter + 1, Residual: residual}
		}
		rate = clamp(rate.Sub(value.DivRound(deriv, divScale)), rateFloor, rateCeiling)
	}
	return decimal.Zero, &ConvergenceError{Solver: name, Iterations: maxIterations, Residual: residual}
}

func clamp(v, lo, hi decimal.Decimal) decimal.Decimal {
	if v.LessThan(lo) {
		return lo
	}
	if v.GreaterThan(hi) {
		return hi
	}
	return v
}

package decmath

import "github.com/shopspring/decimal"

const sqrtMaxIter = 40

// sqrtTolerance is the absolute change between successive guesses below which
// the iteration stops early.
var sqrtTolerance = decimal.New(1, -10)

// Sqrt returns the square root of x via Newton's method.
//
// Non-positive input returns 0: callers (volatility, standard deviation,
// Kelly growth) treat zero or negative variance as zero risk rather than an
// error, so Sqrt never fails. The iteration stops when successive guesses
// differ by less than 1e-10 or after sqrtMaxIter steps, whichever comes
// first, and the last guess is always returned.
func Sqrt(x decimal.Decimal) decimal.Decimal {
	if x.Sign() <= 0 {
		return decimal.Zero
	}

	guess := x.DivRound(two, divScale)
	if guess.IsZero() {
		guess = one
	}

	for i := 0; i < sqrtMaxIter; i++ {
		next := guess.Add(x.DivRound(guess, divScale)).DivRound(two, divScale)
		if next.Sub(guess).Abs().LessThan(sqrtTolerance) {
			return next
		}
		guess = next
	}
	return guess
}

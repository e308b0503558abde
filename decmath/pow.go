package decmath

import "github.com/shopspring/decimal"

// Pow returns base raised to exponent.
//
// Integer exponents are computed by exact repeated multiplication (negative
// integers as a fixed-scale reciprocal). Non-integer exponents use
// Exp(exponent * Ln(base)), which requires base > 0; a non-positive base
// degrades to 0 under the same permissive policy as Ln and Sqrt.
func Pow(base, exponent decimal.Decimal) decimal.Decimal {
	if base.Sign() <= 0 {
		return decimal.Zero
	}
	if exponent.IsZero() {
		return one
	}

	if exponent.Equal(exponent.Truncate(0)) {
		n := exponent.Truncate(0)
		if n.Sign() > 0 {
			return base.Pow(n)
		}
		return one.DivRound(base.Pow(n.Neg()), divScale)
	}

	return Exp(exponent.Mul(Ln(base)))
}

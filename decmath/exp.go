package decmath

import "github.com/shopspring/decimal"

// expSeriesTerms bounds the Maclaurin series on the reduced argument. After
// reduction |r| <= ln2/2, so term 20 is below r^20/20! < 1e-27.
const expSeriesTerms = 20

// Exp returns e raised to x.
//
// The argument is reduced as x = k*ln2 + r with |r| <= ln2/2, the series is
// summed on r, and the result is scaled by the exact integer power 2^k.
// Without the reduction the fixed-length series would diverge for the
// exponents produced by long-dated discounting (t * ln(1+rate) reaches the
// hundreds).
func Exp(x decimal.Decimal) decimal.Decimal {
	if x.IsZero() {
		return one
	}

	k := x.DivRound(ln2, 0).IntPart()
	r := x.Sub(ln2.Mul(decimal.NewFromInt(k)))

	sum := one
	term := one
	for i := 1; i <= expSeriesTerms; i++ {
		term = term.Mul(r).DivRound(decimal.NewFromInt(int64(i)), divScale)
		sum = sum.Add(term)
	}
	return sum.Mul(powerOfTwo(k)).Round(divScale)
}

// powerOfTwo returns 2^k. Positive k is exact; negative k is a fixed-scale
// reciprocal, which underflows to exactly zero once 2^-k is below the
// division scale — callers dividing by a discount factor must check for zero.
func powerOfTwo(k int64) decimal.Decimal {
	if k >= 0 {
		return two.Pow(decimal.NewFromInt(k))
	}
	return one.DivRound(two.Pow(decimal.NewFromInt(-k)), divScale)
}

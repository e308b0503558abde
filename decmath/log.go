package decmath

import "github.com/shopspring/decimal"

// lnSeriesTerms is the number of odd-power terms of the atanh series. With
// the reduced argument in [0.5, 2] the series term u^(2n+1)/(2n+1) is below
// 1e-20 well before n reaches 20, which is more than the division scale.
const lnSeriesTerms = 21

// Ln returns the natural logarithm of x.
//
// By convention Ln(1) == 0 and Ln of a non-positive input is 0. Call sites
// that need ln of a non-positive domain to be an error must check before
// calling; this primitive never fails.
//
// The argument is first halved or doubled into [0.5, 2] (tracking the integer
// multiplier k), then with u = (x-1)/(x+1):
//
//	ln(x_reduced) = 2 * (u + u^3/3 + u^5/5 + ...)
//	ln(x)         = ln(x_reduced) + k*ln(2)
func Ln(x decimal.Decimal) decimal.Decimal {
	if x.Sign() <= 0 || x.Equal(one) {
		return decimal.Zero
	}

	k := int64(0)
	for x.GreaterThan(two) {
		x = x.DivRound(two, divScale)
		k++
	}
	for x.LessThan(half) {
		x = x.Mul(two)
		k--
	}

	u := x.Sub(one).DivRound(x.Add(one), divScale)
	uSq := u.Mul(u)

	sum := u
	power := u
	for n := 1; n < lnSeriesTerms; n++ {
		power = power.Mul(uSq)
		sum = sum.Add(power.DivRound(decimal.NewFromInt(int64(2*n+1)), divScale))
	}

	result := two.Mul(sum)
	if k != 0 {
		result = result.Add(ln2.Mul(decimal.NewFromInt(k)))
	}
	return result
}

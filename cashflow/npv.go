package cashflow

import (
	"github.com/shopspring/decimal"

	"github.com/fincalc/fincalc/decmath"
)

// NPV returns the net present value of a whole-period sequence at the given
// rate: Σ flows[t] / (1+rate)^t. Fails with ErrInvalidRate when rate <= -1.
func NPV(rate decimal.Decimal, flows []decimal.Decimal) (decimal.Decimal, error) {
	pv, _, err := npv(rate, flows, false)
	return pv, err
}

// NPVWithDerivative returns the net present value together with its analytic
// derivative with respect to the rate:
//
//	dNPV/dr = Σ -t * flows[t] / (1+rate)^(t+1)
//
// The pair is what a Newton-Raphson rate solver consumes per iteration.
func NPVWithDerivative(rate decimal.Decimal, flows []decimal.Decimal) (pv, deriv decimal.Decimal, err error) {
	return npv(rate, flows, true)
}

func npv(rate decimal.Decimal, flows []decimal.Decimal, withDeriv bool) (pv, deriv decimal.Decimal, err error) {
	onePlus := one.Add(rate)
	if onePlus.Sign() <= 0 {
		return decimal.Zero, decimal.Zero, ErrInvalidRate
	}

	// df tracks (1+rate)^t exactly; multiplication never rounds, so
	// NPV(0, flows) is the plain sum with no discounting error.
	df := one
	for t, amount := range flows {
		if df.IsZero() {
			return decimal.Zero, decimal.Zero, ErrDivisionByZero
		}
		pv = pv.Add(amount.DivRound(df, divScale))
		if withDeriv && t > 0 {
			deriv = deriv.Sub(decimal.NewFromInt(int64(t)).Mul(amount).DivRound(df.Mul(onePlus), divScale))
		}
		df = df.Mul(onePlus)
	}
	return pv, deriv, nil
}

// ScheduledNPV returns the net present value of a dated sequence at the given
// rate. Each flow is discounted by (1+rate)^t with t the ACT/365.25 year
// fraction from the first flow's date; duplicate dates are legal and simply
// sum. Fails with ErrInvalidRate when rate <= -1 and with ErrDivisionByZero
// when a discount factor underflows to exactly zero.
func ScheduledNPV(rate decimal.Decimal, flows []DatedCashFlow) (decimal.Decimal, error) {
	pv, _, err := scheduledNPV(rate, flows, false)
	return pv, err
}

// ScheduledNPVWithDerivative is the dated analogue of NPVWithDerivative:
// dNPV/dr = Σ -t * amount / (1+rate)^(t+1).
func ScheduledNPVWithDerivative(rate decimal.Decimal, flows []DatedCashFlow) (pv, deriv decimal.Decimal, err error) {
	return scheduledNPV(rate, flows, true)
}

func scheduledNPV(rate decimal.Decimal, flows []DatedCashFlow, withDeriv bool) (pv, deriv decimal.Decimal, err error) {
	onePlus := one.Add(rate)
	if onePlus.Sign() <= 0 {
		return decimal.Zero, decimal.Zero, ErrInvalidRate
	}
	if len(flows) == 0 {
		return decimal.Zero, decimal.Zero, nil
	}

	base := flows[0].Date
	for _, flow := range flows {
		t := YearFraction(base, flow.Date)
		df := decmath.Pow(onePlus, t)
		if df.IsZero() {
			return decimal.Zero, decimal.Zero, ErrDivisionByZero
		}
		pv = pv.Add(flow.Amount.DivRound(df, divScale))
		if withDeriv {
			dfNext := decmath.Pow(onePlus, t.Add(one))
			if dfNext.IsZero() {
				return decimal.Zero, decimal.Zero, ErrDivisionByZero
			}
			deriv = deriv.Sub(t.Mul(flow.Amount).DivRound(dfNext, divScale))
		}
	}
	return pv, deriv, nil
}

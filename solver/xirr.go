package solver

import (
	"github.com/shopspring/decimal"

	"github.com/fincalc/fincalc/cashflow"
)

// XIRR returns the internal rate of return of a calendar-dated cash-flow
// sequence, discounting each flow by the fractional ACT/365.25 year count
// from the first flow's date. Duplicate dates are legal; flows sharing a
// date are implicitly summed by the discounting formula.
//
// Fails with ErrInsufficientData for fewer than two flows and with
// *ConvergenceError when (1+guess) is non-positive on entry or the iteration
// budget is exhausted.
func XIRR(flows []cashflow.DatedCashFlow, guess decimal.Decimal) (decimal.Decimal, error) {
	if len(flows) < 2 {
		return decimal.Zero, ErrInsufficientData
	}
	return newton("XIRR", guess, func(rate decimal.Decimal) (decimal.Decimal, decimal.Decimal, error) {
		return cashflow.ScheduledNPVWithDerivative(rate, flows)
	})
}

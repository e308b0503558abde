package solver

import (
	"github.com/shopspring/decimal"

	"github.com/fincalc/fincalc/cashflow"
)

// IRR returns the internal rate of return of a whole-period cash-flow
// sequence: the rate at which its net present value is zero. The slice index
// is the period; flows[0] is the initial flow. A guess of 0.10 is a common
// starting point.
//
// Fails with ErrInsufficientData for fewer than two flows and with
// *ConvergenceError when the iteration budget is exhausted.
func IRR(flows []decimal.Decimal, guess decimal.Decimal) (decimal.Decimal, error) {
	if len(flows) < 2 {
		return decimal.Zero, ErrInsufficientData
	}
	return newton("IRR", guess, func(rate decimal.Decimal) (decimal.Decimal, decimal.Decimal, error) {
		return cashflow.NPVWithDerivative(rate, flows)
	})
}

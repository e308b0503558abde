// Package cashflow evaluates the present value of cash-flow sequences on
// exact decimal arithmetic.
//
// Two shapes of sequence exist. Whole-period sequences are plain
// []decimal.Decimal where the slice index is the period (index 0 is the
// initial flow); discounting compounds by repeated multiplication and needs
// no transcendental primitive. Dated sequences carry a calendar date per
// flow; discount exponents are fractional years (ACT/365.25) and discounting
// goes through decmath.Pow.
//
// Sequences are owned by the caller and never mutated here.
package cashflow

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

const divScale = 20

var (
	// ErrInvalidRate is returned when a discount rate at or below -100%
	// makes discounting undefined.
	ErrInvalidRate = errors.New("rate must be greater than -1")
	// ErrDivisionByZero is returned when a discount factor evaluates to
	// exactly zero (pathological rate/horizon combination).
	ErrDivisionByZero = errors.New("discount factor is zero")

	one         = decimal.NewFromInt(1)
	daysPerYear = decimal.RequireFromString("365.25")
)

// DatedCashFlow is a signed amount occurring on a calendar date.
type DatedCashFlow struct {
	Date   time.Time
	Amount decimal.Decimal
}

// YearFraction returns the ACT day count from start to end over a 365.25-day
// year, as a fixed-scale decimal.
func YearFraction(start, end time.Time) decimal.Decimal {
	days := int64(end.Sub(start).Hours() / 24)
	return decimal.NewFromInt(days).DivRound(daysPerYear, divScale)
}

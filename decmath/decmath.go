// Package decmath provides deterministic math primitives over decimal numbers.
//
// The calculators in this repository must produce bit-for-bit identical output
// across platforms and invocations, so every primitive here is built from
// decimal add/sub/mul and fixed-scale division only — there is no binary
// floating point anywhere in the computation path. All iterative algorithms
// run with fixed series lengths or hard iteration caps, so each call has a
// statically known worst-case cost.
package decmath

import "github.com/shopspring/decimal"

// divScale is the fixed scale (decimal places) used for every division.
// Divisions are the only lossy operation; pinning their scale is what makes
// results reproducible.
const divScale = 20

var (
	one  = decimal.NewFromInt(1)
	two  = decimal.NewFromInt(2)
	half = decimal.RequireFromString("0.5")

	// ln2 to 50 decimal places. Used by Ln's range-reduction correction and
	// by Exp's argument reduction.
	ln2 = decimal.RequireFromString("0.69314718055994530941723212145817656807550013436026")
)

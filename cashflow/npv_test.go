package cashflow_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fincalc/fincalc/cashflow"
)

func flows(values ...string) []decimal.Decimal {
	out := make([]decimal.Decimal, 0, len(values))
	for _, v := range values {
		out = append(out, decimal.RequireFromString(v))
	}
	return out
}

func date(value string) time.Time {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return d
}

func TestNPV_ZeroRateIsExactSum(t *testing.T) {
	t.Parallel()

	got, err := cashflow.NPV(decimal.Zero, flows("-100", "50", "50", "50"))
	if err != nil {
		t.Fatalf("NPV error: %v", err)
	}
	if !got.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("NPV(0) = %s, want exactly 50", got)
	}
}

func TestNPV_KnownValue(t *testing.T) {
	t.Parallel()

	// 110 one period out at 10% discounts to exactly 100.
	got, err := cashflow.NPV(decimal.RequireFromString("0.1"), flows("-100", "110"))
	if err != nil {
		t.Fatalf("NPV error: %v", err)
	}
	if !got.Equal(decimal.Zero) {
		t.Fatalf("NPV = %s, want exactly 0", got)
	}
}

func TestNPV_InvalidRate(t *testing.T) {
	t.Parallel()

	for _, rate := range []string{"-1", "-1.5", "-100"} {
		_, err := cashflow.NPV(decimal.RequireFromString(rate), flows("-100", "110"))
		if !errors.Is(err, cashflow.ErrInvalidRate) {
			t.Fatalf("NPV(rate=%s) error = %v, want ErrInvalidRate", rate, err)
		}
	}
}

func TestNPVWithDerivative(t *testing.T) {
	t.Parallel()

	pv, deriv, err := cashflow.NPVWithDerivative(decimal.RequireFromString("0.1"), flows("-100", "110"))
	if err != nil {
		t.Fatalf("NPVWithDerivative error: %v", err)
	}
	if !pv.Equal(decimal.Zero) {
		t.Fatalf("pv = %s, want 0", pv)
	}
	// dNPV/dr = -1 * 110 / 1.1^2 = -90.9090...
	want := decimal.RequireFromString("-90.90909090909090909091")
	if deriv.Sub(want).Abs().GreaterThan(decimal.New(1, -10)) {
		t.Fatalf("deriv = %s, want %s", deriv, want)
	}
}

func TestScheduledNPV_SameDateIsSum(t *testing.T) {
	t.Parallel()

	d := date("2025-06-30")
	dated := []cashflow.DatedCashFlow{
		{Date: d, Amount: decimal.RequireFromString("-100")},
		{Date: d, Amount: decimal.RequireFromString("30")},
		{Date: d, Amount: decimal.RequireFromString("45.5")},
	}
	got, err := cashflow.ScheduledNPV(decimal.RequireFromString("0.08"), dated)
	if err != nil {
		t.Fatalf("ScheduledNPV error: %v", err)
	}
	if !got.Equal(decimal.RequireFromString("-24.5")) {
		t.Fatalf("ScheduledNPV = %s, want -24.5", got)
	}
}

func TestScheduledNPV_ZeroRateIsSum(t *testing.T) {
	t.Parallel()

	dated := []cashflow.DatedCashFlow{
		{Date: date("2024-01-01"), Amount: decimal.RequireFromString("-1000")},
		{Date: date("2025-03-15"), Amount: decimal.RequireFromString("400")},
		{Date: date("2026-11-02"), Amount: decimal.RequireFromString("700")},
	}
	got, err := cashflow.ScheduledNPV(decimal.Zero, dated)
	if err != nil {
		t.Fatalf("ScheduledNPV error: %v", err)
	}
	if !got.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("ScheduledNPV(0) = %s, want 100", got)
	}
}

func TestScheduledNPV_ExactYearMatchesWholePeriod(t *testing.T) {
	t.Parallel()

	// 1461 days is exactly 4 years ACT/365.25, so the dated discounting
	// must agree with the whole-period formula at t=4.
	rate := decimal.RequireFromString("0.05")
	dated := []cashflow.DatedCashFlow{
		{Date: date("2024-01-01"), Amount: decimal.RequireFromString("-100")},
		{Date: date("2028-01-01"), Amount: decimal.RequireFromString("121.550625")},
	}
	got, err := cashflow.ScheduledNPV(rate, dated)
	if err != nil {
		t.Fatalf("ScheduledNPV error: %v", err)
	}
	// 121.550625 / 1.05^4 == 100 exactly.
	if !got.Equal(decimal.Zero) {
		t.Fatalf("ScheduledNPV = %s, want exactly 0", got)
	}
}

func TestScheduledNPV_InvalidRate(t *testing.T) {
	t.Parallel()

	dated := []cashflow.DatedCashFlow{
		{Date: date("2024-01-01"), Amount: decimal.RequireFromString("-100")},
		{Date: date("2025-01-01"), Amount: decimal.RequireFromString("110")},
	}
	_, err := cashflow.ScheduledNPV(decimal.RequireFromString("-1"), dated)
	if !errors.Is(err, cashflow.ErrInvalidRate) {
		t.Fatalf("error = %v, want ErrInvalidRate", err)
	}
}

func TestScheduledNPV_UnderflowedDiscountFactor(t *testing.T) {
	t.Parallel()

	// At rate -0.99 a flow three decades out has discount factor
	// 0.01^t with fractional t, which underflows to exactly zero.
	dated := []cashflow.DatedCashFlow{
		{Date: date("2024-01-01"), Amount: decimal.RequireFromString("-100")},
		{Date: date("2024-01-01").AddDate(0, 0, 11140), Amount: decimal.RequireFromString("100")},
	}
	_, err := cashflow.ScheduledNPV(decimal.RequireFromString("-0.99"), dated)
	if !errors.Is(err, cashflow.ErrDivisionByZero) {
		t.Fatalf("error = %v, want ErrDivisionByZero", err)
	}
}

func TestYearFraction(t *testing.T) {
	t.Parallel()

	cases := []struct {
		start, end string
		want       string
	}{
		{"2024-01-01", "2024-01-01", "0"},
		{"2024-01-01", "2028-01-01", "4"}, // 1461 days
		{"2024-01-01", "2024-01-02", "0.00273785078713210130"},
	}

	for _, tc := range cases {
		got := cashflow.YearFraction(date(tc.start), date(tc.end))
		want := decimal.RequireFromString(tc.want)
		if got.Sub(want).Abs().GreaterThan(decimal.New(1, -18)) {
			t.Fatalf("YearFraction(%s, %s) = %s, want %s", tc.start, tc.end, got, want)
		}
	}
}

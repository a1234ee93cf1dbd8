package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bank-documents/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestMonthlyPayment_WithInterest(t *testing.T) {
	got := MonthlyPayment(dec("25000"), dec("3.5"), 36)

	assert.Equal(t, "732.55", RoundMoney(got).StringFixed(2))
	// Not rounded internally.
	assert.False(t, got.Equal(RoundMoney(got)))
}

func TestMonthlyPayment_KnownValues(t *testing.T) {
	cases := []struct {
		principal string
		rate      string
		term      int
		want      string
	}{
		{"10000", "12", 24, "470.73"},
		{"200000", "6", 360, "1199.10"},
		{"1000", "5", 1, "1004.17"},
	}
	for _, tc := range cases {
		got := MonthlyPayment(dec(tc.principal), dec(tc.rate), tc.term)
		assert.Equal(t, tc.want, RoundMoney(got).StringFixed(2), "%s at %s%% over %d", tc.principal, tc.rate, tc.term)
	}
}

func TestMonthlyPayment_ZeroRateIsStraightLine(t *testing.T) {
	for _, tc := range []struct {
		principal string
		term      int
	}{
		{"1200", 12},
		{"1000", 3},
		{"25000", 36},
		{"0.01", 7},
	} {
		p := dec(tc.principal)
		got := MonthlyPayment(p, decimal.Zero, tc.term)
		want := p.DivRound(decimal.NewFromInt(int64(tc.term)), rateScale)
		assert.True(t, want.Equal(got), "want %s got %s", want, got)
	}

	assert.Equal(t, "100.00", MonthlyPayment(dec("1200"), decimal.Zero, 12).StringFixed(2))
}

func TestMonthlyPayment_DegenerateInputsReturnZero(t *testing.T) {
	cases := []struct {
		name      string
		principal string
		rate      string
		term      int
	}{
		{"zero term", "25000", "3.5", 0},
		{"negative term", "25000", "3.5", -12},
		{"negative rate", "25000", "-0.1", 36},
		{"zero principal", "0", "3.5", 36},
		{"negative principal", "-100", "3.5", 36},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := MonthlyPayment(dec(tc.principal), dec(tc.rate), tc.term)
			assert.True(t, got.IsZero(), "got %s", got)
		})
	}
}

func TestMonthlyPayment_NonDecreasingInRate(t *testing.T) {
	principal := dec("25000")

	var rates []decimal.Decimal
	for exp := int32(-14); exp <= -3; exp++ {
		for _, mantissa := range []int64{1, 2, 3, 5, 7} {
			rates = append(rates, decimal.New(mantissa, exp))
		}
	}
	for bp := int64(25); bp <= 3000; bp += 25 {
		rates = append(rates, decimal.New(bp, -2))
	}

	for _, term := range []int{1, 12, 36, 240, 360} {
		prev := MonthlyPayment(principal, decimal.Zero, term)
		for _, rate := range rates {
			got := MonthlyPayment(principal, rate, term)
			require.True(t, got.GreaterThanOrEqual(prev),
				"term %d: payment at %s%% (%s) below previous (%s)", term, rate, got, prev)
			prev = got
		}
	}
}

func TestMonthlyPayment_TinyRateStaysAboveStraightLine(t *testing.T) {
	principal := dec("25000")
	straight := MonthlyPayment(principal, decimal.Zero, 360)

	got := MonthlyPayment(principal, dec("0.0000000000002"), 360)
	assert.True(t, got.GreaterThanOrEqual(straight), "got %s, straight line %s", got, straight)
	assert.Equal(t, "69.44", RoundMoney(got).StringFixed(2))
}

func TestMonthlyPayment_HugeGrowthDoesNotPanic(t *testing.T) {
	cases := []struct {
		principal string
		rate      string
		term      int
		want      string
	}{
		// (1+r)^n is far beyond float64 range; the payment tends to P*r.
		{"1000", "10000", 1000, "8333.33"},
		{"25000", "5000", 1200, "104166.67"},
		{"1000", "100000", 600, "83333.33"},
		{"1000", "1000", 600, "833.33"},
	}
	for _, tc := range cases {
		var got decimal.Decimal
		require.NotPanics(t, func() {
			got = MonthlyPayment(dec(tc.principal), dec(tc.rate), tc.term)
		})
		assert.Equal(t, tc.want, RoundMoney(got).StringFixed(2), "%s at %s%% over %d", tc.principal, tc.rate, tc.term)
	}
}

func TestMonthlyPayment_MatchesCompoundingAcrossShortcut(t *testing.T) {
	// ln(1+r)*n straddles the shortcut threshold between these terms.
	principal, rate := dec("10000"), dec("120")
	for _, term := range []int{1000, 1050, 1100} {
		got := MonthlyPayment(principal, rate, term)
		assert.Equal(t, "1000.00", RoundMoney(got).StringFixed(2), "term %d", term)
	}
}

func TestRoundMoney_HalfUp(t *testing.T) {
	assert.Equal(t, "0.13", RoundMoney(dec("0.125")).StringFixed(2))
	assert.Equal(t, "0.12", RoundMoney(dec("0.1249")).StringFixed(2))
	assert.Equal(t, "2.00", RoundMoney(dec("1.995")).StringFixed(2))
}

func TestAmortizationSchedule(t *testing.T) {
	terms := domain.LoanTerms{Principal: dec("25000"), AnnualRatePercent: dec("3.5"), TermMonths: 36}

	schedule := AmortizationSchedule(terms)
	require.Len(t, schedule, 36)

	first := schedule[0]
	assert.Equal(t, 1, first.Month)
	assert.Equal(t, "72.92", first.Interest.StringFixed(2))
	assert.Equal(t, "732.55", first.Payment.StringFixed(2))
	assert.True(t, first.Principal.Add(first.Interest).Equal(first.Payment))

	last := schedule[len(schedule)-1]
	assert.True(t, last.RemainingBalance.IsZero())

	paid := decimal.Zero
	for _, inst := range schedule {
		paid = paid.Add(inst.Principal)
	}
	assert.True(t, paid.Equal(terms.Principal), "principal repaid %s", paid)
}

func TestAmortizationSchedule_ZeroRateAndDegenerate(t *testing.T) {
	schedule := AmortizationSchedule(domain.LoanTerms{Principal: dec("1200"), AnnualRatePercent: decimal.Zero, TermMonths: 12})
	require.Len(t, schedule, 12)
	for _, inst := range schedule {
		assert.Equal(t, "100.00", inst.Payment.StringFixed(2))
		assert.True(t, inst.Interest.IsZero())
	}

	assert.Nil(t, AmortizationSchedule(domain.LoanTerms{Principal: dec("1200"), AnnualRatePercent: dec("3"), TermMonths: 0}))
}

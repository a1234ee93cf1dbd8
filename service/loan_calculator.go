package service

import (
	"math"

	"github.com/shopspring/decimal"

	"bank-documents/domain"
)

var (
	one           = decimal.NewFromInt(1)
	monthsPerRate = decimal.NewFromInt(1200)
)

const (
	// rateScale is the number of decimal places kept for the monthly rate
	// and for unrounded payments.
	rateScale = 32
	// growthScale bounds the digits carried while compounding.
	growthScale = 48
	// Past ln((1+r)^n) = maxGrowthLog the term 1/((1+r)^n - 1) is far below
	// rateScale and the payment is principal * r.
	maxGrowthLog = 100
)

// MonthlyPayment returns the amortized monthly payment
//
//	M = P * r * (1+r)^n / ((1+r)^n - 1),  r = rate / 100 / 12
//
// Degenerate terms (n <= 0, negative rate, non-positive principal) yield 0.
// A zero rate splits the principal evenly over the term.
// The result is not rounded; use RoundMoney for display.
func MonthlyPayment(principal, annualRatePercent decimal.Decimal, termMonths int) decimal.Decimal {
	if termMonths <= 0 || annualRatePercent.IsNegative() || !principal.IsPositive() {
		return decimal.Zero
	}

	r := monthlyRate(annualRatePercent)
	if r.IsZero() {
		return principal.DivRound(decimal.NewFromInt(int64(termMonths)), rateScale)
	}

	rf, _ := r.Float64()
	if float64(termMonths)*math.Log1p(rf) > maxGrowthLog {
		return principal.Mul(r).Round(rateScale)
	}

	growth := compoundGrowth(r, termMonths)
	return principal.Mul(r).Mul(growth).DivRound(growth.Sub(one), rateScale)
}

// compoundGrowth returns (1+r)^n by repeated squaring.
func compoundGrowth(r decimal.Decimal, n int) decimal.Decimal {
	result, base := one, one.Add(r)
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base).Round(growthScale)
		}
		n >>= 1
		if n > 0 {
			base = base.Mul(base).Round(growthScale)
		}
	}
	return result
}

// RoundMoney rounds half up to cents.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

func monthlyRate(annualRatePercent decimal.Decimal) decimal.Decimal {
	return annualRatePercent.DivRound(monthsPerRate, rateScale)
}

// AmortizationSchedule splits each rounded payment into interest and
// principal. The last installment settles whatever balance the rounding left.
func AmortizationSchedule(terms domain.LoanTerms) []domain.Installment {
	payment := RoundMoney(MonthlyPayment(terms.Principal, terms.AnnualRatePercent, terms.TermMonths))
	if payment.IsZero() {
		return nil
	}

	r := monthlyRate(terms.AnnualRatePercent)
	balance := terms.Principal
	schedule := make([]domain.Installment, 0, terms.TermMonths)

	for month := 1; month <= terms.TermMonths; month++ {
		interest := RoundMoney(balance.Mul(r))
		principalPart := payment.Sub(interest)
		amount := payment
		if month == terms.TermMonths || principalPart.GreaterThan(balance) {
			principalPart = balance
			amount = principalPart.Add(interest)
		}
		balance = balance.Sub(principalPart)

		schedule = append(schedule, domain.Installment{
			Month:            month,
			Payment:          amount,
			Principal:        principalPart,
			Interest:         interest,
			RemainingBalance: balance,
		})
		if balance.IsZero() {
			break
		}
	}
	return schedule
}

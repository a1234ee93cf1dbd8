package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"bank-documents/domain"
)

type TermOptionsService struct{}

func NewTermOptionsService() *TermOptionsService {
	return &TermOptionsService{}
}

// TermOptions lists every term in [MinTermMonths, MaxTermMonths] whose
// monthly payment fits under MaxMonthlyPayment, and recommends the shortest,
// which is also the one with the least interest.
func (s *TermOptionsService) TermOptions(
	ctx context.Context,
	input domain.TermOptionsInput,
) (domain.TermOptionsResult, error) {

	if err := validateTermOptions(input); err != nil {
		return domain.TermOptionsResult{}, err
	}

	options := []domain.TermOption{}
	for term := input.MinTermMonths; term <= input.MaxTermMonths; term++ {
		if err := ctx.Err(); err != nil {
			return domain.TermOptionsResult{}, err
		}

		monthly := MonthlyPayment(input.Principal, input.AnnualRatePercent, term)
		rounded := RoundMoney(monthly)
		if rounded.GreaterThan(input.MaxMonthlyPayment) {
			continue
		}

		total := monthly.Mul(decimal.NewFromInt(int64(term)))
		options = append(options, domain.TermOption{
			TermMonths:     term,
			MonthlyPayment: rounded,
			TotalInterest:  RoundMoney(total.Sub(input.Principal)),
		})
	}

	if len(options) == 0 {
		return domain.TermOptionsResult{}, fmt.Errorf("%w: no term fits the maximum monthly payment", ErrInvalidLoanTerms)
	}

	return domain.TermOptionsResult{
		RecommendedTerm: options[0].TermMonths,
		Options:         options,
	}, nil
}

func validateTermOptions(input domain.TermOptionsInput) error {
	if !input.Principal.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidLoanTerms)
	}
	if input.AnnualRatePercent.IsNegative() {
		return fmt.Errorf("%w: rate must not be negative", ErrInvalidLoanTerms)
	}
	if input.AnnualRatePercent.GreaterThan(decimal.NewFromInt(MaxInterestRate)) {
		return fmt.Errorf("%w: rate exceeds the maximum of %d%%", ErrInvalidLoanTerms, MaxInterestRate)
	}
	if input.MinTermMonths < MinTermMonths || input.MaxTermMonths < MinTermMonths {
		return fmt.Errorf("%w: terms must be at least %d month", ErrInvalidLoanTerms, MinTermMonths)
	}
	if input.MinTermMonths > input.MaxTermMonths {
		return fmt.Errorf("%w: minimum term is greater than maximum term", ErrInvalidLoanTerms)
	}
	if input.MaxTermMonths > MaxTermMonths {
		return fmt.Errorf("%w: maximum term exceeds %d months", ErrInvalidLoanTerms, MaxTermMonths)
	}
	if input.MaxTermMonths-input.MinTermMonths > MaxTermRangeMonths {
		return fmt.Errorf("%w: term range exceeds %d months", ErrInvalidLoanTerms, MaxTermRangeMonths)
	}
	if !input.MaxMonthlyPayment.IsPositive() {
		return fmt.Errorf("%w: maximum monthly payment must be positive", ErrInvalidLoanTerms)
	}
	return nil
}

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"bank-documents/domain"
	"bank-documents/repository"
)

type LoanService struct {
	cache    repository.CacheRepository
	cacheTTL time.Duration
}

// NewLoanService creates a LoanService that caches quotes for cacheTTL.
func NewLoanService(cache repository.CacheRepository, cacheTTL time.Duration) *LoanService {
	return &LoanService{cache: cache, cacheTTL: cacheTTL}
}

// Quote prices a loan. Unlike MonthlyPayment, it rejects out-of-range terms
// so API callers get an explicit error instead of a zero payment.
func (s *LoanService) Quote(
	ctx context.Context,
	terms domain.LoanTerms,
	withSchedule bool,
) (domain.LoanQuote, error) {

	if err := validateLoanTerms(terms); err != nil {
		return domain.LoanQuote{}, err
	}

	key := quoteCacheKey(terms, withSchedule)
	if cached, ok := s.cachedQuote(ctx, key); ok {
		return cached, nil
	}

	monthly := MonthlyPayment(terms.Principal, terms.AnnualRatePercent, terms.TermMonths)
	total := monthly.Mul(decimal.NewFromInt(int64(terms.TermMonths)))

	quote := domain.LoanQuote{
		Terms:          terms,
		MonthlyPayment: RoundMoney(monthly),
		TotalPayment:   RoundMoney(total),
		TotalInterest:  RoundMoney(total.Sub(terms.Principal)),
	}
	if withSchedule {
		quote.Schedule = AmortizationSchedule(terms)
	}

	// Caching is best effort.
	if s.cache != nil {
		if data, err := json.Marshal(quote); err == nil {
			if err := s.cache.Set(ctx, key, string(data), s.cacheTTL); err != nil {
				log.Printf("Warning: failed to cache loan quote: %v", err)
			}
		}
	}

	return quote, nil
}

func (s *LoanService) cachedQuote(ctx context.Context, key string) (domain.LoanQuote, bool) {
	if s.cache == nil {
		return domain.LoanQuote{}, false
	}
	raw, ok := s.cache.Get(ctx, key)
	if !ok {
		return domain.LoanQuote{}, false
	}
	var quote domain.LoanQuote
	if err := json.Unmarshal([]byte(raw), &quote); err != nil {
		log.Printf("Warning: discarding unreadable cached quote %s: %v", key, err)
		return domain.LoanQuote{}, false
	}
	return quote, true
}

func quoteCacheKey(terms domain.LoanTerms, withSchedule bool) string {
	key := fmt.Sprintf("loan:%s:%s:%d",
		terms.Principal.String(), terms.AnnualRatePercent.String(), terms.TermMonths)
	if withSchedule {
		key += ":schedule"
	}
	return key
}

func validateLoanTerms(terms domain.LoanTerms) error {
	if !terms.Principal.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidLoanTerms)
	}
	if terms.Principal.GreaterThan(decimal.NewFromInt(MaxLoanAmount)) {
		return fmt.Errorf("%w: amount exceeds the maximum of %d", ErrInvalidLoanTerms, MaxLoanAmount)
	}
	if terms.AnnualRatePercent.IsNegative() {
		return fmt.Errorf("%w: rate must not be negative", ErrInvalidLoanTerms)
	}
	if terms.AnnualRatePercent.GreaterThan(decimal.NewFromInt(MaxInterestRate)) {
		return fmt.Errorf("%w: rate exceeds the maximum of %d%%", ErrInvalidLoanTerms, MaxInterestRate)
	}
	if terms.TermMonths < MinTermMonths {
		return fmt.Errorf("%w: term must be at least %d month", ErrInvalidLoanTerms, MinTermMonths)
	}
	if terms.TermMonths > MaxTermMonths {
		return fmt.Errorf("%w: term exceeds the maximum of %d months", ErrInvalidLoanTerms, MaxTermMonths)
	}
	return nil
}

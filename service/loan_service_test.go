package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bank-documents/domain"
	"bank-documents/repository"
)

type MockCache struct {
	Data       map[string]string
	GetCalls   int
	SetCalls   int
	ForceError bool
}

func NewMockCache() *MockCache {
	return &MockCache{Data: map[string]string{}}
}

func (m *MockCache) Get(_ context.Context, key string) (string, bool) {
	m.GetCalls++
	v, ok := m.Data[key]
	return v, ok
}

func (m *MockCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	m.SetCalls++
	if m.ForceError {
		return errors.New("set error")
	}
	m.Data[key] = value
	return nil
}

func TestQuote_WithInterest(t *testing.T) {
	cache := NewMockCache()
	svc := NewLoanService(cache, time.Minute)

	quote, err := svc.Quote(context.Background(), domain.LoanTerms{
		Principal:         dec("25000"),
		AnnualRatePercent: dec("3.5"),
		TermMonths:        36,
	}, false)
	require.NoError(t, err)

	assert.Equal(t, "732.55", quote.MonthlyPayment.StringFixed(2))
	assert.Equal(t, "26371.87", quote.TotalPayment.StringFixed(2))
	assert.Equal(t, "1371.87", quote.TotalInterest.StringFixed(2))
	assert.Nil(t, quote.Schedule)
	assert.Equal(t, 1, cache.SetCalls)
}

func TestQuote_ZeroInterest(t *testing.T) {
	svc := NewLoanService(NewMockCache(), 0)

	quote, err := svc.Quote(context.Background(), domain.LoanTerms{
		Principal:         dec("1200"),
		AnnualRatePercent: decimal.Zero,
		TermMonths:        12,
	}, true)
	require.NoError(t, err)

	assert.Equal(t, "100.00", quote.MonthlyPayment.StringFixed(2))
	assert.True(t, quote.TotalInterest.IsZero())
	assert.Len(t, quote.Schedule, 12)
}

func TestQuote_ServedFromCache(t *testing.T) {
	cache := repository.NewMemoryCache()
	svc := NewLoanService(cache, time.Minute)
	terms := domain.LoanTerms{Principal: dec("10000"), AnnualRatePercent: dec("12"), TermMonths: 24}

	first, err := svc.Quote(context.Background(), terms, false)
	require.NoError(t, err)
	require.Equal(t, 1, cache.Len())

	second, err := svc.Quote(context.Background(), terms, false)
	require.NoError(t, err)
	assert.True(t, first.MonthlyPayment.Equal(second.MonthlyPayment))
	assert.Equal(t, 1, cache.Len())

	_, err = svc.Quote(context.Background(), terms, true)
	require.NoError(t, err)
	assert.Equal(t, 2, cache.Len())
}

func TestQuote_CacheFailureIsNotFatal(t *testing.T) {
	cache := NewMockCache()
	cache.ForceError = true
	svc := NewLoanService(cache, time.Minute)

	_, err := svc.Quote(context.Background(), domain.LoanTerms{
		Principal: dec("5000"), AnnualRatePercent: dec("4"), TermMonths: 12,
	}, false)
	assert.NoError(t, err)
}

func TestQuote_UnreadableCacheEntryIsRecomputed(t *testing.T) {
	cache := NewMockCache()
	terms := domain.LoanTerms{Principal: dec("5000"), AnnualRatePercent: dec("4"), TermMonths: 12}
	cache.Data[quoteCacheKey(terms, false)] = "{not json"
	svc := NewLoanService(cache, time.Minute)

	quote, err := svc.Quote(context.Background(), terms, false)
	require.NoError(t, err)
	assert.True(t, quote.MonthlyPayment.IsPositive())
}

func TestQuote_InvalidTerms(t *testing.T) {
	cache := NewMockCache()
	svc := NewLoanService(cache, time.Minute)

	cases := []domain.LoanTerms{
		{Principal: decimal.Zero, AnnualRatePercent: dec("3"), TermMonths: 12},
		{Principal: dec("2000000000"), AnnualRatePercent: dec("3"), TermMonths: 12},
		{Principal: dec("1000"), AnnualRatePercent: dec("-1"), TermMonths: 12},
		{Principal: dec("1000"), AnnualRatePercent: dec("1001"), TermMonths: 12},
		{Principal: dec("1000"), AnnualRatePercent: dec("3"), TermMonths: 0},
		{Principal: dec("1000"), AnnualRatePercent: dec("3"), TermMonths: 601},
	}
	for _, terms := range cases {
		_, err := svc.Quote(context.Background(), terms, false)
		assert.ErrorIs(t, err, ErrInvalidLoanTerms, "%+v", terms)
	}
	assert.Zero(t, cache.SetCalls)
}

func TestTermOptions(t *testing.T) {
	svc := NewTermOptionsService()

	result, err := svc.TermOptions(context.Background(), domain.TermOptionsInput{
		Principal:         dec("25000"),
		AnnualRatePercent: dec("3.5"),
		MinTermMonths:     12,
		MaxTermMonths:     48,
		MaxMonthlyPayment: dec("800"),
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.Options)

	assert.Equal(t, result.Options[0].TermMonths, result.RecommendedTerm)
	for _, opt := range result.Options {
		assert.True(t, opt.MonthlyPayment.LessThanOrEqual(dec("800")))
	}
	// 32 months costs 819.41, 33 months is the first term under 800.
	assert.Equal(t, 33, result.RecommendedTerm)
	assert.Equal(t, 48, result.Options[len(result.Options)-1].TermMonths)
}

func TestTermOptions_Invalid(t *testing.T) {
	svc := NewTermOptionsService()
	base := domain.TermOptionsInput{
		Principal:         dec("1000"),
		AnnualRatePercent: dec("5"),
		MinTermMonths:     6,
		MaxTermMonths:     12,
		MaxMonthlyPayment: dec("500"),
	}

	mutations := []func(*domain.TermOptionsInput){
		func(in *domain.TermOptionsInput) { in.Principal = decimal.Zero },
		func(in *domain.TermOptionsInput) { in.AnnualRatePercent = dec("-1") },
		func(in *domain.TermOptionsInput) { in.AnnualRatePercent = dec("100000") },
		func(in *domain.TermOptionsInput) { in.MinTermMonths = 0 },
		func(in *domain.TermOptionsInput) { in.MinTermMonths = 13 },
		func(in *domain.TermOptionsInput) { in.MaxTermMonths = 700 },
		func(in *domain.TermOptionsInput) { in.MinTermMonths, in.MaxTermMonths = 1, 200 },
		func(in *domain.TermOptionsInput) { in.MaxMonthlyPayment = decimal.Zero },
		func(in *domain.TermOptionsInput) { in.MaxMonthlyPayment = dec("10") },
	}
	for i, mutate := range mutations {
		input := base
		mutate(&input)
		_, err := svc.TermOptions(context.Background(), input)
		assert.ErrorIs(t, err, ErrInvalidLoanTerms, "case %d", i)
	}
}

func TestTermOptions_HighRateLongTerms(t *testing.T) {
	svc := NewTermOptionsService()

	var result domain.TermOptionsResult
	var err error
	require.NotPanics(t, func() {
		result, err = svc.TermOptions(context.Background(), domain.TermOptionsInput{
			Principal:         dec("1000"),
			AnnualRatePercent: dec("1000"),
			MinTermMonths:     480,
			MaxTermMonths:     600,
			MaxMonthlyPayment: dec("900"),
		})
	})
	require.NoError(t, err)
	assert.Equal(t, 480, result.RecommendedTerm)
	assert.Len(t, result.Options, 121)
	assert.Equal(t, "833.33", result.Options[0].MonthlyPayment.StringFixed(2))
}

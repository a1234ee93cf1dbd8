package domain

import "github.com/shopspring/decimal"

type TermOptionsInput struct {
	Principal         decimal.Decimal `json:"principal"`
	AnnualRatePercent decimal.Decimal `json:"annualRatePercent"`
	MinTermMonths     int             `json:"minTermMonths"`
	MaxTermMonths     int             `json:"maxTermMonths"`
	MaxMonthlyPayment decimal.Decimal `json:"maxMonthlyPayment"`
}

type TermOption struct {
	TermMonths     int             `json:"termMonths"`
	MonthlyPayment decimal.Decimal `json:"monthlyPayment"`
	TotalInterest  decimal.Decimal `json:"totalInterest"`
}

type TermOptionsResult struct {
	RecommendedTerm int          `json:"recommendedTerm"`
	Options         []TermOption `json:"options"`
}

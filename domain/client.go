package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how a client settles orders.
type PaymentMethod string

const (
	Cash   PaymentMethod = "Cash"
	Credit PaymentMethod = "Credit"
)

// ParsePaymentMethod accepts the legacy "Comptant" for cash.
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	switch s {
	case "Cash", "Comptant":
		return Cash, true
	case "Credit":
		return Credit, true
	}
	return "", false
}

type Client struct {
	ID                       string           `json:"id"`
	Name                     string           `json:"name"`
	Email                    string           `json:"email"`
	Category                 ClientCategory   `json:"category"`
	PaymentMethod            PaymentMethod    `json:"paymentMethod"`
	DefaultTermMonths        *int             `json:"defaultTermMonths,omitempty"`
	DefaultAnnualRatePercent *decimal.Decimal `json:"defaultAnnualRatePercent,omitempty"`
}

type Order struct {
	ID                string           `json:"id"`
	ClientID          string           `json:"clientId"`
	CreatedAt         time.Time        `json:"createdAt"`
	Amount            decimal.Decimal  `json:"amount"`
	Vehicle           string           `json:"vehicle"`
	PaymentMethod     PaymentMethod    `json:"paymentMethod"`
	TermMonths        *int             `json:"termMonths,omitempty"`
	AnnualRatePercent *decimal.Decimal `json:"annualRatePercent,omitempty"`
	MonthlyPayment    *decimal.Decimal `json:"monthlyPayment,omitempty"`
}

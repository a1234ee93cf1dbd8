package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"bank-documents/domain"
)

// SeedDemoData loads the two demo clients and one cash order the service
// ships with.
func SeedDemoData(ctx context.Context, clients ClientRepository, orders OrderRepository, now time.Time) error {
	individual, err := clients.Create(ctx, domain.Client{
		Name:          "Jean Dupont",
		Email:         "jean@example.com",
		Category:      domain.Individual,
		PaymentMethod: domain.Cash,
	})
	if err != nil {
		return err
	}

	term := 36
	rate := decimal.RequireFromString("3.5")
	if _, err := clients.Create(ctx, domain.Client{
		Name:                     "SARL Tech",
		Email:                    "tech@example.com",
		Category:                 domain.Professional,
		PaymentMethod:            domain.Credit,
		DefaultTermMonths:        &term,
		DefaultAnnualRatePercent: &rate,
	}); err != nil {
		return err
	}

	_, err = orders.Create(ctx, domain.Order{
		ClientID:      individual.ID,
		CreatedAt:     now.AddDate(0, 0, -5),
		Amount:        decimal.NewFromInt(25000),
		Vehicle:       "Peugeot 208",
		PaymentMethod: domain.Cash,
	})
	return err
}

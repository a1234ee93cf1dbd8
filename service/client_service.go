package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"bank-documents/domain"
	"bank-documents/repository"
)

// ClientInput is the writable part of a client record. Category and
// PaymentMethod are raw wire values.
type ClientInput struct {
	Name                     string           `json:"name"`
	Email                    string           `json:"email"`
	Category                 string           `json:"category"`
	PaymentMethod            string           `json:"paymentMethod"`
	DefaultTermMonths        *int             `json:"defaultTermMonths,omitempty"`
	DefaultAnnualRatePercent *decimal.Decimal `json:"defaultAnnualRatePercent,omitempty"`
}

type ClientService struct {
	repo repository.ClientRepository
}

func NewClientService(repo repository.ClientRepository) *ClientService {
	return &ClientService{repo: repo}
}

func (s *ClientService) List(ctx context.Context) ([]domain.Client, error) {
	return s.repo.List(ctx)
}

func (s *ClientService) Get(ctx context.Context, id string) (domain.Client, error) {
	return s.repo.Get(ctx, id)
}

func (s *ClientService) Create(ctx context.Context, input ClientInput) (domain.Client, error) {
	client, err := clientFromInput(input)
	if err != nil {
		return domain.Client{}, err
	}
	return s.repo.Create(ctx, client)
}

func (s *ClientService) Update(ctx context.Context, id string, input ClientInput) (domain.Client, error) {
	client, err := clientFromInput(input)
	if err != nil {
		return domain.Client{}, err
	}
	client.ID = id
	return s.repo.Update(ctx, client)
}

func (s *ClientService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func clientFromInput(input ClientInput) (domain.Client, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return domain.Client{}, fmt.Errorf("%w: name is required", ErrInvalidClient)
	}

	category, ok := domain.ParseClientCategory(input.Category)
	if !ok {
		return domain.Client{}, fmt.Errorf("%w: unknown category %q", ErrInvalidClient, input.Category)
	}

	method, ok := domain.ParsePaymentMethod(input.PaymentMethod)
	if !ok {
		return domain.Client{}, fmt.Errorf("%w: unknown payment method %q", ErrInvalidClient, input.PaymentMethod)
	}

	if term := input.DefaultTermMonths; term != nil && (*term <= 0 || *term > MaxTermMonths) {
		return domain.Client{}, fmt.Errorf("%w: default term must be between 1 and %d months", ErrInvalidClient, MaxTermMonths)
	}
	if rate := input.DefaultAnnualRatePercent; rate != nil &&
		(rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(MaxInterestRate))) {
		return domain.Client{}, fmt.Errorf("%w: default rate must be between 0 and %d%%", ErrInvalidClient, MaxInterestRate)
	}

	return domain.Client{
		Name:                     name,
		Email:                    strings.TrimSpace(input.Email),
		Category:                 category,
		PaymentMethod:            method,
		DefaultTermMonths:        input.DefaultTermMonths,
		DefaultAnnualRatePercent: input.DefaultAnnualRatePercent,
	}, nil
}

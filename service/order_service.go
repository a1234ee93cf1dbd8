package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"bank-documents/domain"
	"bank-documents/repository"
)

type CreateOrderInput struct {
	ClientID          string           `json:"clientId"`
	Amount            decimal.Decimal  `json:"amount"`
	Vehicle           string           `json:"vehicle"`
	TermMonths        *int             `json:"termMonths,omitempty"`
	AnnualRatePercent *decimal.Decimal `json:"annualRatePercent,omitempty"`
}

// CreditDefaults apply to credit orders when neither the order nor the
// client sets a term or rate.
type CreditDefaults struct {
	TermMonths        int
	AnnualRatePercent decimal.Decimal
}

func DefaultCreditDefaults() CreditDefaults {
	return CreditDefaults{
		TermMonths:        DefaultCreditTermMonths,
		AnnualRatePercent: decimal.RequireFromString(DefaultCreditRate),
	}
}

type OrderService struct {
	clients  repository.ClientRepository
	orders   repository.OrderRepository
	clock    Clock
	defaults CreditDefaults
}

func NewOrderService(
	clients repository.ClientRepository,
	orders repository.OrderRepository,
	clock Clock,
	defaults CreditDefaults,
) *OrderService {
	if clock == nil {
		clock = DefaultClock
	}
	return &OrderService{clients: clients, orders: orders, clock: clock, defaults: defaults}
}

func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.orders.List(ctx)
}

func (s *OrderService) ListByClient(ctx context.Context, clientID string) ([]domain.Order, error) {
	return s.orders.ListByClient(ctx, clientID)
}

func (s *OrderService) Get(ctx context.Context, id string) (domain.Order, error) {
	return s.orders.Get(ctx, id)
}

func (s *OrderService) Delete(ctx context.Context, id string) error {
	return s.orders.Delete(ctx, id)
}

// CreateOrder records a vehicle purchase. Orders from credit clients carry
// the effective term, rate and monthly payment.
func (s *OrderService) CreateOrder(ctx context.Context, input CreateOrderInput) (domain.Order, error) {
	client, err := s.clients.Get(ctx, input.ClientID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("create order: %w", err)
	}
	if !input.Amount.IsPositive() {
		return domain.Order{}, fmt.Errorf("%w: amount must be positive", ErrInvalidOrder)
	}
	vehicle := strings.TrimSpace(input.Vehicle)
	if vehicle == "" {
		return domain.Order{}, fmt.Errorf("%w: vehicle is required", ErrInvalidOrder)
	}

	order := domain.Order{
		ClientID:      client.ID,
		CreatedAt:     s.clock(),
		Amount:        input.Amount,
		Vehicle:       vehicle,
		PaymentMethod: client.PaymentMethod,
	}

	if client.PaymentMethod == domain.Credit {
		term := s.defaults.TermMonths
		switch {
		case input.TermMonths != nil:
			term = *input.TermMonths
		case client.DefaultTermMonths != nil:
			term = *client.DefaultTermMonths
		}

		rate := s.defaults.AnnualRatePercent
		switch {
		case input.AnnualRatePercent != nil:
			rate = *input.AnnualRatePercent
		case client.DefaultAnnualRatePercent != nil:
			rate = *client.DefaultAnnualRatePercent
		}

		if term > MaxTermMonths {
			return domain.Order{}, fmt.Errorf("%w: term exceeds %d months", ErrInvalidOrder, MaxTermMonths)
		}
		if rate.GreaterThan(decimal.NewFromInt(MaxInterestRate)) {
			return domain.Order{}, fmt.Errorf("%w: rate exceeds the maximum of %d%%", ErrInvalidOrder, MaxInterestRate)
		}

		monthly := MonthlyPayment(order.Amount, rate, term)
		order.TermMonths = &term
		order.AnnualRatePercent = &rate
		order.MonthlyPayment = &monthly
	}

	return s.orders.Create(ctx, order)
}

// PaymentSummary describes how the order is settled.
func PaymentSummary(order domain.Order) string {
	if order.PaymentMethod != domain.Credit || order.MonthlyPayment == nil || order.TermMonths == nil {
		return fmt.Sprintf("Paiement comptant de %s€ pour le véhicule %s",
			order.Amount.StringFixed(2), order.Vehicle)
	}
	return fmt.Sprintf("Paiement par crédit de %s€ pour le véhicule %s\nMensualité: %s€ sur %d mois",
		order.Amount.StringFixed(2), order.Vehicle,
		RoundMoney(*order.MonthlyPayment).StringFixed(2), *order.TermMonths)
}

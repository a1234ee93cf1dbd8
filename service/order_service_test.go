package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bank-documents/domain"
	"bank-documents/repository"
)

func newOrderFixture(t *testing.T) (*OrderService, *ClientService) {
	t.Helper()
	clients := repository.NewMemoryClientRepository()
	orders := repository.NewMemoryOrderRepository()
	return NewOrderService(clients, orders, fixedClock, DefaultCreditDefaults()), NewClientService(clients)
}

func TestCreateOrder_CashClient(t *testing.T) {
	ctx := context.Background()
	orders, clients := newOrderFixture(t)

	c, err := clients.Create(ctx, ClientInput{Name: "Jean Dupont", Category: "Individual", PaymentMethod: "Cash"})
	require.NoError(t, err)

	o, err := orders.CreateOrder(ctx, CreateOrderInput{ClientID: c.ID, Amount: dec("25000"), Vehicle: "Peugeot 208"})
	require.NoError(t, err)

	assert.NotEmpty(t, o.ID)
	assert.Equal(t, domain.Cash, o.PaymentMethod)
	assert.Nil(t, o.MonthlyPayment)
	assert.Nil(t, o.TermMonths)
	assert.Equal(t, fixedNow, o.CreatedAt)
	assert.Equal(t, "Paiement comptant de 25000.00€ pour le véhicule Peugeot 208", PaymentSummary(o))
}

func TestCreateOrder_CreditUsesDefaults(t *testing.T) {
	ctx := context.Background()
	orders, clients := newOrderFixture(t)

	c, err := clients.Create(ctx, ClientInput{Name: "SARL Tech", Category: "Professional", PaymentMethod: "Credit"})
	require.NoError(t, err)

	o, err := orders.CreateOrder(ctx, CreateOrderInput{ClientID: c.ID, Amount: dec("25000"), Vehicle: "Renault Clio"})
	require.NoError(t, err)

	require.NotNil(t, o.TermMonths)
	require.NotNil(t, o.AnnualRatePercent)
	require.NotNil(t, o.MonthlyPayment)
	assert.Equal(t, 36, *o.TermMonths)
	assert.Equal(t, "3.5", o.AnnualRatePercent.String())
	assert.Equal(t, "732.55", RoundMoney(*o.MonthlyPayment).StringFixed(2))
	assert.Equal(t,
		"Paiement par crédit de 25000.00€ pour le véhicule Renault Clio\nMensualité: 732.55€ sur 36 mois",
		PaymentSummary(o))
}

func TestCreateOrder_CreditPrecedence(t *testing.T) {
	ctx := context.Background()
	orders, clients := newOrderFixture(t)

	clientTerm := 24
	clientRate := dec("2")
	c, err := clients.Create(ctx, ClientInput{
		Name: "Credit client", Category: "Individual", PaymentMethod: "Credit",
		DefaultTermMonths: &clientTerm, DefaultAnnualRatePercent: &clientRate,
	})
	require.NoError(t, err)

	o, err := orders.CreateOrder(ctx, CreateOrderInput{ClientID: c.ID, Amount: dec("1200"), Vehicle: "Bike"})
	require.NoError(t, err)
	assert.Equal(t, 24, *o.TermMonths)
	assert.Equal(t, "2", o.AnnualRatePercent.String())

	orderTerm := 12
	orderRate := dec("0")
	o, err = orders.CreateOrder(ctx, CreateOrderInput{
		ClientID: c.ID, Amount: dec("1200"), Vehicle: "Bike",
		TermMonths: &orderTerm, AnnualRatePercent: &orderRate,
	})
	require.NoError(t, err)
	assert.Equal(t, 12, *o.TermMonths)
	assert.Equal(t, "100.00", o.MonthlyPayment.StringFixed(2))

	list, err := orders.ListByClient(ctx, c.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestCreateOrder_DegenerateCreditTermsYieldZeroPayment(t *testing.T) {
	ctx := context.Background()
	orders, clients := newOrderFixture(t)

	c, err := clients.Create(ctx, ClientInput{Name: "X", Category: "Individual", PaymentMethod: "Credit"})
	require.NoError(t, err)

	zero := 0
	o, err := orders.CreateOrder(ctx, CreateOrderInput{ClientID: c.ID, Amount: dec("25000"), Vehicle: "Car", TermMonths: &zero})
	require.NoError(t, err)
	assert.True(t, o.MonthlyPayment.IsZero())
}

func TestCreateOrder_CreditTermsOutOfRange(t *testing.T) {
	ctx := context.Background()
	orders, clients := newOrderFixture(t)

	c, err := clients.Create(ctx, ClientInput{Name: "X", Category: "Individual", PaymentMethod: "Credit"})
	require.NoError(t, err)

	rate := dec("5000")
	term := 1200
	_, err = orders.CreateOrder(ctx, CreateOrderInput{ClientID: c.ID, Amount: dec("25000"), Vehicle: "Car", AnnualRatePercent: &rate})
	assert.ErrorIs(t, err, ErrInvalidOrder)

	_, err = orders.CreateOrder(ctx, CreateOrderInput{ClientID: c.ID, Amount: dec("25000"), Vehicle: "Car", TermMonths: &term})
	assert.ErrorIs(t, err, ErrInvalidOrder)

	maxRate := dec("1000")
	maxTerm := MaxTermMonths
	var o domain.Order
	require.NotPanics(t, func() {
		o, err = orders.CreateOrder(ctx, CreateOrderInput{
			ClientID: c.ID, Amount: dec("25000"), Vehicle: "Car",
			AnnualRatePercent: &maxRate, TermMonths: &maxTerm,
		})
	})
	require.NoError(t, err)
	assert.Equal(t, "20833.33", RoundMoney(*o.MonthlyPayment).StringFixed(2))
}

func TestCreateOrder_Errors(t *testing.T) {
	ctx := context.Background()
	orders, clients := newOrderFixture(t)

	_, err := orders.CreateOrder(ctx, CreateOrderInput{ClientID: "missing", Amount: dec("10"), Vehicle: "Car"})
	assert.ErrorIs(t, err, repository.ErrClientNotFound)

	c, err := clients.Create(ctx, ClientInput{Name: "X", Category: "Particulier", PaymentMethod: "Comptant"})
	require.NoError(t, err)
	assert.Equal(t, domain.Individual, c.Category)
	assert.Equal(t, domain.Cash, c.PaymentMethod)

	_, err = orders.CreateOrder(ctx, CreateOrderInput{ClientID: c.ID, Amount: dec("0"), Vehicle: "Car"})
	assert.ErrorIs(t, err, ErrInvalidOrder)

	_, err = orders.CreateOrder(ctx, CreateOrderInput{ClientID: c.ID, Amount: dec("10"), Vehicle: "  "})
	assert.ErrorIs(t, err, ErrInvalidOrder)
}

func TestClientService_Validation(t *testing.T) {
	ctx := context.Background()
	svc := NewClientService(repository.NewMemoryClientRepository())

	bad := []ClientInput{
		{Name: "", Category: "Individual", PaymentMethod: "Cash"},
		{Name: "A", Category: "Corporate", PaymentMethod: "Cash"},
		{Name: "A", Category: "Individual", PaymentMethod: "Barter"},
	}
	for _, in := range bad {
		_, err := svc.Create(ctx, in)
		assert.ErrorIs(t, err, ErrInvalidClient, "%+v", in)
	}

	negative := -1
	_, err := svc.Create(ctx, ClientInput{Name: "A", Category: "Individual", PaymentMethod: "Credit", DefaultTermMonths: &negative})
	assert.ErrorIs(t, err, ErrInvalidClient)

	tooLong := MaxTermMonths + 1
	_, err = svc.Create(ctx, ClientInput{Name: "A", Category: "Individual", PaymentMethod: "Credit", DefaultTermMonths: &tooLong})
	assert.ErrorIs(t, err, ErrInvalidClient)

	for _, rate := range []string{"-0.5", "1000.01", "5000"} {
		r := dec(rate)
		_, err = svc.Create(ctx, ClientInput{Name: "A", Category: "Individual", PaymentMethod: "Credit", DefaultAnnualRatePercent: &r})
		assert.ErrorIs(t, err, ErrInvalidClient, "rate %s", rate)
	}

	c, err := svc.Create(ctx, ClientInput{Name: " A ", Email: "a@example.com", Category: "Individual", PaymentMethod: "Cash"})
	require.NoError(t, err)
	assert.Equal(t, "A", c.Name)

	updated, err := svc.Update(ctx, c.ID, ClientInput{Name: "A", Category: "Professional", PaymentMethod: "Credit"})
	require.NoError(t, err)
	assert.Equal(t, c.ID, updated.ID)
	assert.Equal(t, domain.Professional, updated.Category)

	_, err = svc.Update(ctx, "missing", ClientInput{Name: "A", Category: "Professional", PaymentMethod: "Credit"})
	assert.ErrorIs(t, err, repository.ErrClientNotFound)

	require.NoError(t, svc.Delete(ctx, c.ID))
	assert.ErrorIs(t, svc.Delete(ctx, c.ID), repository.ErrClientNotFound)
}

package booking

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskhive/models"
)

func TestCheckoutCardWithoutStripeKey(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	booking := createPending(t, svc)

	result, err := svc.Checkout(ctx, booking.ID, "card")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, result.PaymentStatus)
	assert.True(t, strings.HasPrefix(result.PaymentID, "pi_"))
	assert.InDelta(t, booking.EstimatedPrice, result.Amount, 0.001)

	got, err := svc.GetBooking(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, got.PaymentStatus)
	assert.Equal(t, "card", got.PaymentMethod)
}

func TestCheckoutCashStaysPending(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	booking := createPending(t, svc)

	result, err := svc.Checkout(ctx, booking.ID, "cash")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPending, result.PaymentStatus)
	assert.True(t, strings.HasPrefix(result.PaymentID, "cash_"))

	got, err := svc.GetBooking(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, "cash", got.PaymentMethod)
}

func TestCheckoutUsesFinalPriceWhenSet(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	booking := createPending(t, svc)

	_, err := svc.Accept(ctx, booking.ID, "tasker-1")
	require.NoError(t, err)
	_, err = svc.Start(ctx, booking.ID)
	require.NoError(t, err)
	_, err = svc.Complete(ctx, booking.ID, 130)
	require.NoError(t, err)

	result, err := svc.Checkout(ctx, booking.ID, "card")
	require.NoError(t, err)
	assert.InDelta(t, 130, result.Amount, 0.001)
}

func TestCheckoutRejectsUnknownMethod(t *testing.T) {
	svc, _, _ := newTestService()
	booking := createPending(t, svc)

	_, err := svc.Checkout(context.Background(), booking.ID, "barter")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestCheckoutRejectsDoublePayment(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	booking := createPending(t, svc)

	_, err := svc.Checkout(ctx, booking.ID, "card")
	require.NoError(t, err)

	_, err = svc.Checkout(ctx, booking.ID, "card")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
}

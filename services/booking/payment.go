package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"taskhive/config"
	"taskhive/models"
)

// PaymentResult reports the outcome of a checkout.
type PaymentResult struct {
	BookingID     string  `json:"booking_id"`
	PaymentID     string  `json:"payment_id"`
	Amount        float64 `json:"amount"`
	Method        string  `json:"method"`
	PaymentStatus string  `json:"payment_status"`
	ClientSecret  string  `json:"client_secret,omitempty"`
}

// Checkout records payment for a booking. Card payments go through Stripe
// when a key is configured; otherwise a simulated payment id is issued.
// Cash payments stay pending until collected in person.
func (s *DefaultBookingService) Checkout(ctx context.Context, bookingID, method string) (*PaymentResult, error) {
	if method != "card" && method != "cash" {
		return nil, &ValidationError{Message: "unsupported payment method: " + method}
	}

	booking, err := s.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.PaymentStatus == models.PaymentPaid {
		return nil, &ValidationError{Message: "booking is already paid"}
	}

	amount := booking.FinalPrice
	if amount == 0 {
		amount = booking.EstimatedPrice
	}

	result := &PaymentResult{
		BookingID: booking.ID,
		Amount:    amount,
		Method:    method,
	}

	switch method {
	case "card":
		if config.AppConfig.StripeKey != "" {
			intent, err := s.createStripeIntent(ctx, booking, amount)
			if err != nil {
				return nil, &UpstreamError{Op: "create stripe payment intent", Err: err}
			}
			result.PaymentID = intent.ID
			result.ClientSecret = intent.ClientSecret
		} else {
			result.PaymentID = "pi_" + uuid.New().String()
		}
		result.PaymentStatus = models.PaymentPaid
	case "cash":
		result.PaymentID = "cash_" + uuid.New().String()
		result.PaymentStatus = models.PaymentPending
	}

	set := bson.M{
		"payment_status": result.PaymentStatus,
		"payment_method": method,
	}
	if err := s.Repo.UpdateFields(ctx, booking.ID, set); err != nil {
		return nil, &UpstreamError{Op: "record payment", Err: err}
	}

	s.Logger.Info("checkout processed",
		zap.String("booking_id", booking.ID),
		zap.String("method", method),
		zap.String("payment_id", result.PaymentID))
	return result, nil
}

func (s *DefaultBookingService) createStripeIntent(ctx context.Context, booking *models.Booking, amount float64) (*stripe.PaymentIntent, error) {
	if amount <= 0 {
		return nil, errors.New("payment amount must be positive")
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(amount * 100)),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		Metadata: map[string]string{
			"booking_id": booking.ID,
			"service_id": booking.ServiceID,
		},
	}
	params.Context = ctx
	return paymentintent.New(params)
}

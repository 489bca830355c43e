package payment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	paymentRepo "deltaclinic/database/repository/payment"
	"deltaclinic/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrInvalidAmount is returned for a non-positive price.
	ErrInvalidAmount = errors.New("invalid payment amount")
	// ErrInvalidPayment is returned when a payment record lacks its booking or transaction.
	ErrInvalidPayment = errors.New("invalid payment")
)

// Currency charged for every appointment.
const Currency = "usd"

// BookingMarker flips a booking to paid.
type BookingMarker interface {
	MarkPaid(ctx context.Context, id, transactionID string) (*models.WriteResult, error)
}

type PaymentService interface {
	CreateIntent(ctx context.Context, price float64) (*models.PaymentIntentResponse, error)
	Record(ctx context.Context, payment models.Payment) (*models.WriteResult, error)
}

// DefaultPaymentService implements PaymentService.
type DefaultPaymentService struct {
	Gateway  IntentGateway
	Repo     paymentRepo.PaymentRepository
	Bookings BookingMarker
	Logger   *zap.Logger
}

// AmountInCents converts a price in dollars to the smallest currency unit.
func AmountInCents(price float64) int64 {
	return int64(math.Round(price * 100))
}

// CreateIntent creates a card payment intent for price and returns its client secret.
func (s *DefaultPaymentService) CreateIntent(ctx context.Context, price float64) (*models.PaymentIntentResponse, error) {
	amount := AmountInCents(price)
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	secret, err := s.Gateway.CreateIntent(ctx, amount, Currency)
	if err != nil {
		return nil, err
	}
	s.logger().Info("payment intent created", zap.Int64("amount", amount))
	return &models.PaymentIntentResponse{ClientSecret: secret}, nil
}

// Record stores the payment and marks its booking paid.
func (s *DefaultPaymentService) Record(ctx context.Context, p models.Payment) (*models.WriteResult, error) {
	if p.BookingID == "" || p.TransactionID == "" {
		return nil, ErrInvalidPayment
	}

	p.ID = uuid.New().String()
	p.CreatedAt = time.Now()
	if err := s.Repo.Create(ctx, &p); err != nil {
		return nil, err
	}

	if _, err := s.Bookings.MarkPaid(ctx, p.BookingID, p.TransactionID); err != nil {
		return nil, fmt.Errorf("payment %s recorded but booking update failed: %w", p.ID, err)
	}

	s.logger().Info("payment recorded",
		zap.String("booking", p.BookingID),
		zap.String("transaction", p.TransactionID))
	return &models.WriteResult{Acknowledged: true, InsertedID: p.ID}, nil
}

func (s *DefaultPaymentService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

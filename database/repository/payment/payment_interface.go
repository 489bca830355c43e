package paymentRepo

import (
	"context"

	"deltaclinic/models"
)

// PaymentRepository persists payment records.
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
}

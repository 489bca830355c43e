package paymentRepo

import (
	"context"
	"fmt"

	"deltaclinic/database/repository"
	"deltaclinic/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CollectionName is the payments collection.
const CollectionName = "payments"

// MongoPaymentRepo implements PaymentRepository using MongoDB.
type MongoPaymentRepo struct {
	coll *mongo.Collection
}

func NewMongoPaymentRepo(db *mongo.Database) *MongoPaymentRepo {
	return &MongoPaymentRepo{coll: db.Collection(CollectionName)}
}

// Create inserts a payment document.
func (r *MongoPaymentRepo) Create(ctx context.Context, payment *models.Payment) error {
	ctx, cancel := repository.WithTimeout(ctx, repository.WriteTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, payment); err != nil {
		return fmt.Errorf("failed to record payment for booking %s: %w", payment.BookingID, err)
	}
	return nil
}

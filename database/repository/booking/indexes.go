package bookingRepo

import (
	"context"
	"fmt"

	"deltaclinic/database/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the booking indexes. The two unique indexes make the
// insert itself the availability check, so concurrent requests for the same
// slot cannot both succeed.
func (r *MongoBookingRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := repository.WithTimeout(ctx, repository.IndexTimeout)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "treatment", Value: 1}, {Key: "appointmentDate", Value: 1}, {Key: "slot", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_treatment_date_slot"),
		},
		{
			Keys:    bson.D{{Key: "appointmentDate", Value: 1}, {Key: "email", Value: 1}, {Key: "treatment", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_date_email_treatment"),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("email_idx"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}

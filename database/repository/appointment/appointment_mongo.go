package appointmentRepo

import (
	"context"
	"fmt"

	"deltaclinic/database/repository"
	"deltaclinic/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionName is the catalog collection.
const CollectionName = "appointmentOptions"

// MongoAppointmentOptionRepo implements AppointmentOptionRepository using MongoDB.
type MongoAppointmentOptionRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentOptionRepo creates the catalog repository on db.
func NewMongoAppointmentOptionRepo(db *mongo.Database) AppointmentOptionRepository {
	return &MongoAppointmentOptionRepo{coll: db.Collection(CollectionName)}
}

// GetAll retrieves all appointment options.
func (r *MongoAppointmentOptionRepo) GetAll(ctx context.Context) ([]models.AppointmentOption, error) {
	ctx, cancel := repository.WithTimeout(ctx, repository.ReadTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve appointment options: %w", err)
	}
	defer cursor.Close(ctx)

	opts := []models.AppointmentOption{}
	if err := cursor.All(ctx, &opts); err != nil {
		return nil, fmt.Errorf("failed to decode appointment options: %w", err)
	}
	return opts, nil
}

// GetSpecialties retrieves the option names using a projection.
func (r *MongoAppointmentOptionRepo) GetSpecialties(ctx context.Context) ([]models.Specialty, error) {
	ctx, cancel := repository.WithTimeout(ctx, repository.ReadTimeout)
	defer cancel()

	findOpts := options.Find().SetProjection(bson.M{"name": 1})
	cursor, err := r.coll.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve specialties: %w", err)
	}
	defer cursor.Close(ctx)

	specialties := []models.Specialty{}
	if err := cursor.All(ctx, &specialties); err != nil {
		return nil, fmt.Errorf("failed to decode specialties: %w", err)
	}
	return specialties, nil
}

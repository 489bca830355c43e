package bookingRepo

import (
	"context"
	"errors"
	"fmt"

	"deltaclinic/database/repository"
	"deltaclinic/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CollectionName is the bookings collection.
const CollectionName = "booking"

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates the booking repository on db.
func NewMongoBookingRepo(db *mongo.Database) *MongoBookingRepo {
	return &MongoBookingRepo{coll: db.Collection(CollectionName)}
}

// Create inserts a new booking document.
func (r *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := repository.WithTimeout(ctx, repository.WriteTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateBooking
		}
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by its id.
func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

// FindExisting looks up the patient's booking for a date and treatment.
func (r *MongoBookingRepo) FindExisting(ctx context.Context, date, email, treatment string) (*models.Booking, error) {
	return r.findOne(ctx, bson.M{
		"appointmentDate": date,
		"email":           email,
		"treatment":       treatment,
	})
}

// GetByDate retrieves the bookings on an appointment date.
func (r *MongoBookingRepo) GetByDate(ctx context.Context, date string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"appointmentDate": date})
}

// GetByEmail retrieves the bookings made with an email.
func (r *MongoBookingRepo) GetByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"email": email})
}

// MarkPaid flips the paid flag for a booking.
func (r *MongoBookingRepo) MarkPaid(ctx context.Context, id, transactionID string) (int64, error) {
	ctx, cancel := repository.WithTimeout(ctx, repository.WriteTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"paid": true, "transactionId": transactionID}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return 0, fmt.Errorf("failed to mark booking %s paid: %w", id, err)
	}
	return result.MatchedCount, nil
}

func (r *MongoBookingRepo) findOne(ctx context.Context, filter bson.M) (*models.Booking, error) {
	ctx, cancel := repository.WithTimeout(ctx, repository.ReadTimeout)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, filter).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	return &booking, nil
}

func (r *MongoBookingRepo) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := repository.WithTimeout(ctx, repository.ReadTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// AppointmentOption is a treatment offered by the clinic together with its
// fixed catalog of daily time slots. Options are seeded out of band.
type AppointmentOption struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Price float64            `bson:"price" json:"price"`
	Slots []string           `bson:"slots" json:"slots"`
}

// Specialty is the projection of an option returned by the specialty listing.
type Specialty struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name string             `bson:"name" json:"name"`
}

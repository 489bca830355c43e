package models

import "time"

// Booking is a patient's reservation of one slot of one treatment on one date.
type Booking struct {
	ID              string    `bson:"id" json:"_id"`
	Treatment       string    `bson:"treatment" json:"treatment" binding:"required"`
	AppointmentDate string    `bson:"appointmentDate" json:"appointmentDate" binding:"required"`
	Slot            string    `bson:"slot" json:"slot" binding:"required"`
	Patient         string    `bson:"patient" json:"patient"`
	Email           string    `bson:"email" json:"email" binding:"required"`
	Phone           string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Price           float64   `bson:"price" json:"price"`
	Paid            bool      `bson:"paid" json:"paid"`
	TransactionID   string    `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}

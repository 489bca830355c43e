package models

import "time"

// Payment records a confirmed card payment for a booking.
type Payment struct {
	ID            string    `bson:"id" json:"_id"`
	BookingID     string    `bson:"bookingId" json:"bookingId" binding:"required"`
	TransactionID string    `bson:"transactionId" json:"transactionId" binding:"required"`
	Price         float64   `bson:"price" json:"price"`
	Email         string    `bson:"email" json:"email"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}

// PaymentIntentRequest is the body of POST /create-payment-intent.
type PaymentIntentRequest struct {
	Price float64 `json:"price"`
}

// PaymentIntentResponse carries the client secret back to the browser.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

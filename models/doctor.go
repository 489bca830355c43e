package models

import "time"

type Doctor struct {
	ID        string    `bson:"id" json:"_id"`
	Name      string    `bson:"name" json:"name" binding:"required"`
	Email     string    `bson:"email" json:"email" binding:"required"`
	Specialty string    `bson:"specialty" json:"specialty" binding:"required"`
	Image     string    `bson:"image,omitempty" json:"image,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

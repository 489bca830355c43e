package models

import "time"

// RoleAdmin is the role granted by PUT /users/admin/:id.
const RoleAdmin = "admin"

// User is a registered clinic web-app user.
type User struct {
	ID        string    `bson:"id" json:"_id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email" binding:"required"`
	Role      string    `bson:"role,omitempty" json:"role,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

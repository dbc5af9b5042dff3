package model

import (
	"time"
)

// User represents a registered identity. The password hash is excluded from
// every JSON representation.
type User struct {
	ID           int64     `json:"id" bson:"id"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	FirstName    string    `json:"firstName,omitempty" bson:"first_name,omitempty"`
	LastName     string    `json:"lastName,omitempty" bson:"last_name,omitempty"`
	CreatedAt    time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updated_at"`
}

package models

import "time"

// User represents a registered account, either a customer or a back-office admin.
type User struct {
	Name             string     `json:"name" bson:"name"`
	Email            string     `json:"email" bson:"email"`
	Password         string     `json:"-" bson:"password"` // bcrypt hash, never serialized
	Address          *string    `json:"address,omitempty" bson:"address,omitempty"`
	Phone            *string    `json:"phone,omitempty" bson:"phone,omitempty"`
	IsAdmin          bool       `json:"isAdmin" bson:"isAdmin"`
	Role             string     `json:"role" bson:"role"`
	ResetToken       *string    `json:"-" bson:"resetToken,omitempty"`
	ResetTokenExpiry *time.Time `json:"-" bson:"resetTokenExpiry,omitempty"`
	CreatedAt        time.Time  `json:"created_at" bson:"createdAt"`
	UpdatedAt        time.Time  `json:"updated_at" bson:"updatedAt"`
}

package models

import "time"

// User is a store customer or admin account.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	Name         string    `bson:"name,omitempty" json:"name,omitempty"`
	Role         string    `bson:"role,omitempty" json:"role,omitempty"` // "admin" or empty
	PasswordHash string    `bson:"password_hash,omitempty" json:"-"`     // bcrypt hash, never serialized
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// UserCreateRequest is the inbound payload for POST /users.
type UserCreateRequest struct {
	Email    string `json:"email" binding:"required"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

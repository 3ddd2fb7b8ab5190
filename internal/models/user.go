package models

import (
	"time"

	"github.com/google/uuid"
)

// Roles a user can hold. The first registered user is the admin;
// everyone after that is a regular user.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User stores login credentials and role info. Password holds the
// bcrypt hash, never the plaintext.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:120;not null;uniqueIndex" json:"email"`
	Password  string    `gorm:"size:200;not null" json:"-"`
	Role      string    `gorm:"size:20;default:'user'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel represents the users table. Role stays empty until an admin
// assigns one; only "admin" and "instructor" are meaningful to the gates.
type UserModel struct {
	ID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name            string    `gorm:"size:100;not null" json:"name"`
	Email           string    `gorm:"size:255;unique;not null" json:"email"`
	Photo           *string   `gorm:"size:512" json:"photo,omitempty"`
	Role            string    `gorm:"type:varchar(20);not null;default:''" json:"role"`
	StudentsInClass int       `gorm:"not null;default:0" json:"students_in_class"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

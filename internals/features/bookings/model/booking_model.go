package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// BookingModel represents one student's booking of one class. The same class
// may be booked twice; there is no uniqueness constraint. ClassSnapshot keeps
// the class details as they looked at booking time.
type BookingModel struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email         string         `gorm:"size:255;not null;index" json:"email"`
	ClassID       uuid.UUID      `gorm:"type:uuid;not null" json:"class_id"`
	ClassName     string         `gorm:"size:150;not null" json:"class_name"`
	Price         float64        `gorm:"not null" json:"price"`
	ClassSnapshot datatypes.JSON `gorm:"type:jsonb" json:"class_snapshot,omitempty"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (BookingModel) TableName() string {
	return "bookings"
}

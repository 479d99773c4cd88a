package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ClassModel represents a published class. Rows are created by promoting an
// approved submission (a copy; the submission keeps living in its own table).
// Invariant: available_seats never goes below zero, and total_enroll only
// moves together with an available_seats decrement.
type ClassModel struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name            string         `gorm:"size:150;not null" json:"name"`
	Image           *string        `gorm:"size:512" json:"image,omitempty"`
	Price           float64        `gorm:"not null" json:"price"`
	Description     string         `gorm:"type:text" json:"description"`
	InstructorName  string         `gorm:"size:100" json:"instructor_name"`
	InstructorEmail string         `gorm:"size:255;index" json:"instructor_email"`
	Days            pq.StringArray `gorm:"type:text[]" json:"days"`
	TotalEnroll     int            `gorm:"not null;default:0" json:"total_enroll"`
	AvailableSeats  int            `gorm:"not null;check:available_seats >= 0" json:"available_seats"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (ClassModel) TableName() string {
	return "classes"
}

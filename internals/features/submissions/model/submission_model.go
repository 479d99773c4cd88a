package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Submission review states. Transitions are admin-set and freely reversible;
// there is no terminal state.
const (
	StatusPending = "Pending"
	StatusApprove = "Approve"
	StatusDeny    = "Deny"
)

// NormalizeStatus keeps the historical tie-break: the literal string
// "Approve" approves, every other input denies.
func NormalizeStatus(input string) string {
	if input == StatusApprove {
		return StatusApprove
	}
	return StatusDeny
}

// SubmissionModel represents an instructor-submitted class awaiting review.
// Approval copies it into the catalog; the row itself is never promoted away.
type SubmissionModel struct {
	ID             uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SubmitterEmail string         `gorm:"size:255;not null;index" json:"submitter_email"`
	SubmitterName  string         `gorm:"size:100" json:"submitter_name"`
	Name           string         `gorm:"size:150;not null" json:"name"`
	Image          *string        `gorm:"size:512" json:"image,omitempty"`
	Price          float64        `gorm:"not null" json:"price"`
	Description    string         `gorm:"type:text" json:"description"`
	Days           pq.StringArray `gorm:"type:text[]" json:"days"`
	AvailableSeats int            `gorm:"not null" json:"available_seats"`
	Status         string         `gorm:"type:varchar(10);not null;default:'Pending'" json:"status"`
	Feedback       *string        `gorm:"type:text" json:"feedback,omitempty"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SubmissionModel) TableName() string {
	return "class_submissions"
}

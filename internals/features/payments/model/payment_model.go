package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// PaymentModel records a completed payment as reported by the client after
// the processor confirms the intent. Rows are immutable once created.
type PaymentModel struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email         string         `gorm:"size:255;not null;index" json:"email"`
	TransactionID string         `gorm:"size:100;not null" json:"transaction_id"`
	Amount        float64        `gorm:"not null" json:"amount"`
	ClassNames    pq.StringArray `gorm:"type:text[]" json:"class_names"`
	Date          time.Time      `gorm:"not null" json:"date"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (PaymentModel) TableName() string {
	return "payments"
}

package dto

import "time"

// CreateIntentRequest is the POST /create-payment-intent body. Price is in
// major currency units; the processor is charged price * 100 minor units.
type CreateIntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

// RecordPaymentRequest is the POST /payments body.
type RecordPaymentRequest struct {
	Email         string    `json:"email" validate:"required,email"`
	TransactionID string    `json:"transaction_id" validate:"required"`
	Amount        float64   `json:"amount" validate:"gte=0"`
	ClassNames    []string  `json:"class_names,omitempty"`
	Date          time.Time `json:"date" validate:"required"`
}

package dto

import "gorm.io/datatypes"

// BookClassRequest is the POST /bookingclasses body.
type BookClassRequest struct {
	Email         string         `json:"email" validate:"required,email"`
	ClassID       string         `json:"class_id" validate:"required,uuid4"`
	ClassName     string         `json:"class_name" validate:"required"`
	Price         float64        `json:"price" validate:"gte=0"`
	ClassSnapshot datatypes.JSON `json:"class_snapshot,omitempty"`
}

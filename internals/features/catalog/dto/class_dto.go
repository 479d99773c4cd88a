package dto

// PublishClassRequest is the POST /classes body, normally copied by the
// admin client from an approved submission.
type PublishClassRequest struct {
	Name            string   `json:"name" validate:"required,min=1,max=150"`
	Image           *string  `json:"image,omitempty" validate:"omitempty,url"`
	Price           float64  `json:"price" validate:"gte=0"`
	Description     string   `json:"description"`
	InstructorName  string   `json:"instructor_name"`
	InstructorEmail string   `json:"instructor_email" validate:"omitempty,email"`
	Days            []string `json:"days,omitempty"`
	AvailableSeats  int      `json:"available_seats" validate:"gte=0"`
}

// EnrollClassRequest is the PATCH /classes/:id body. The client sends the
// seat count it read; the update itself is guarded server-side.
type EnrollClassRequest struct {
	AvailableSeats int `json:"available_seats" validate:"gte=0"`
}

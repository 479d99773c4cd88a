package dto

// SubmitClassRequest is the POST /addedClasses body. The submitter email is
// taken from the token, never from the body.
type SubmitClassRequest struct {
	SubmitterName  string   `json:"submitter_name"`
	Name           string   `json:"name" validate:"required,min=1,max=150"`
	Image          *string  `json:"image,omitempty" validate:"omitempty,url"`
	Price          float64  `json:"price" validate:"gte=0"`
	Description    string   `json:"description"`
	Days           []string `json:"days,omitempty"`
	AvailableSeats int      `json:"available_seats" validate:"gte=0"`
}

// EditSubmissionRequest is the PUT /addedClasses/:id body: exactly the three
// editable fields, all overwritten.
type EditSubmissionRequest struct {
	Name           string  `json:"name" validate:"required,min=1,max=150"`
	Price          float64 `json:"price" validate:"gte=0"`
	AvailableSeats int     `json:"available_seats" validate:"gte=0"`
}

// FeedbackRequest is the PATCH /addedClasses/:id body.
type FeedbackRequest struct {
	Feedback string `json:"feedback" validate:"required"`
}

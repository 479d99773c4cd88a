package dto

// RegisterUserRequest is the POST /users body.
type RegisterUserRequest struct {
	Name  string  `json:"name" validate:"required,min=1,max=100"`
	Email string  `json:"email" validate:"required,email"`
	Photo *string `json:"photo,omitempty" validate:"omitempty,url"`
}

// IssueTokenRequest is the POST /jwt body. Extra claim fields are allowed
// alongside the required email.
type IssueTokenRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name,omitempty"`
}

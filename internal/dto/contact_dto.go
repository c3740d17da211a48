package dto

// ContactRequest is a contact-form submission. Bounds mirror what the form
// itself enforces; the handler re-checks them before any external call.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Email   string `json:"email" validate:"required,max=255,email"`
	Message string `json:"message" validate:"required,min=1,max=2000"`
}

type ContactErrorResponse struct {
	Error      string `json:"error"`
	RetryAfter string `json:"retryAfter,omitempty"`
}

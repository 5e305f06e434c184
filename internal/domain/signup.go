package domain

import (
	"context"
	"io"
)

// Signup is a single name and email pair received from the signup form.
type Signup struct {
	Name  string `form:"name,required"`
	Email string `form:"email,required"`
}

// Validate reports the first empty field, wrapped in ErrMissingField.
func (s Signup) Validate() error {
	if s.Name == "" {
		return &FieldError{Field: "name"}
	}
	if s.Email == "" {
		return &FieldError{Field: "email"}
	}
	return nil
}

// Payload builds the JSON body sent to the forward URL.
func (s Signup) Payload() ForwardPayload {
	return ForwardPayload{
		Name:  s.Name,
		Email: s.Email,
	}
}

type ForwardPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// FieldError names the form field that failed validation.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return "missing field: " + e.Field
}

func (e *FieldError) Unwrap() error {
	return ErrMissingField
}

type Forwarder interface {
	Forward(ctx context.Context, payload ForwardPayload) error
}

type PageRenderer interface {
	Render(w io.Writer, year string) error
}

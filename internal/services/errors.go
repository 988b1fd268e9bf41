package services

import (
	"errors"
	"fmt"
	"strings"
)

// InvalidModelError is returned when the requested model is not in the catalog.
type InvalidModelError struct {
	Model   string
	Allowed []string
}

func (e *InvalidModelError) Error() string {
	return "Model must be one of: " + strings.Join(e.Allowed, ", ")
}

// MalformedRequestError is returned when the inbound body does not match the
// request schema.
type MalformedRequestError struct{ Message string }

func (e *MalformedRequestError) Error() string { return e.Message }

// UpstreamError is returned when Groq answers with a non-2xx status.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("Groq API Error: %d - %s", e.Status, e.Body)
}

// TransportError is returned when Groq could not be reached at all.
type TransportError struct{ Message string }

func (e *TransportError) Error() string {
	return "Error communicating with Groq API: " + e.Message
}

// ErrEmptyUpstreamResponse means Groq answered 2xx without usable content.
var ErrEmptyUpstreamResponse = errors.New("Invalid response from Groq API")

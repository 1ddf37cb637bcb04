package upstream

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusError is a non-2xx response from the HorPlus API. Message carries
// the upstream error body when one was sent.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("upstream returned %d", e.Status)
}

// TransportError is a network failure or an unreadable response; no status
// classification applies.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("upstream unreachable: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusOf returns the HTTP status of err, or 0 when err is not a StatusError.
func StatusOf(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status
	}
	return 0
}

func IsBadRequest(err error) bool {
	return StatusOf(err) == http.StatusBadRequest
}

func IsNotFound(err error) bool {
	return StatusOf(err) == http.StatusNotFound
}

func IsServerFault(err error) bool {
	return StatusOf(err) >= 500
}

// MessageOf returns the upstream error body message, if any.
func MessageOf(err error) string {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Message
	}
	return ""
}

// Describe classifies err into a notification title and text. fallback is
// used when the upstream sent no message of its own.
func Describe(err error, fallback string) (string, string) {
	var se *StatusError
	if errors.As(err, &se) {
		text := se.Message
		if text == "" {
			text = fallback
		}
		switch {
		case se.Status == http.StatusBadRequest:
			return "Invalid input", text
		case se.Status == http.StatusNotFound:
			return "Record not found [404]", text
		case se.Status >= 500:
			return fmt.Sprintf("Server error [%d]", se.Status), text
		default:
			return fmt.Sprintf("Error [%d]", se.Status), text
		}
	}
	return "Connection failed", "Could not reach the server, please try again"
}

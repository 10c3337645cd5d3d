package backend

import (
	"errors"
	"fmt"
)

// Kind splits client failures into the two branches callers must handle:
// transport errors (the request never produced a response) and api errors
// (the backend answered with a non-2xx status).
type Kind string

const (
	KindTransport Kind = "transport"
	KindAPI       Kind = "api"
)

// Error is the typed failure returned by every client call. Callers branch on
// Kind, never on the shape of the response body.
type Error struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Kind == KindTransport {
		return fmt.Sprintf("backend transport error: %s", e.Message)
	}
	return fmt.Sprintf("backend api error (status %d): %s", e.Status, e.Message)
}

func transportErr(err error) *Error {
	return &Error{Kind: KindTransport, Message: err.Error()}
}

func apiErr(status int, message string) *Error {
	return &Error{Kind: KindAPI, Status: status, Message: message}
}

// AsError unwraps err into *Error when it originated from this client.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

package backend

import (
	"errors"
	"fmt"

	apperrors "github.com/xyz-asif/findme/pkg/errors"
)

const genericFailure = "Failed to submit request. Please try again."

// Failure is a submission error paired with the message a user sees.
type Failure struct {
	Message string
	Err     error
}

func (f *Failure) Error() string { return f.Message + ": " + f.Err.Error() }

func (f *Failure) Unwrap() []error { return []error{apperrors.ErrUpstream, f.Err} }

// Classify turns err into a Failure. baseURL is named in the message when
// the backend could not be reached at all.
func Classify(err error, baseURL string) *Failure {
	var f *Failure
	if errors.As(err, &f) {
		return f
	}

	msg := genericFailure
	var apiErr *APIError
	switch {
	case errors.Is(err, ErrUnreachable):
		msg = fmt.Sprintf("Cannot connect to server. Make sure the backend is running on %s", baseURL)
	case errors.As(err, &apiErr) && apiErr.Detail != "":
		msg = apiErr.Detail
	}
	return &Failure{Message: msg, Err: err}
}

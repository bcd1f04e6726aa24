package report

import (
	"fmt"

	"github.com/xyz-asif/findme/internal/features/intake"
	"github.com/xyz-asif/findme/internal/pkg/form"
	apperrors "github.com/xyz-asif/findme/pkg/errors"
)

// Field names, shared by the JSON API and the upload wire format.
const (
	FieldFullName              = "fullName"
	FieldAge                   = "age"
	FieldCityLastSeen          = "cityLastSeen"
	FieldDateLastSeen          = "dateLastSeen"
	FieldContactPhone          = "contactPhone"
	FieldNearbyPoliceStation   = "nearbyPoliceStation"
	FieldAdditionalDescription = "additionalDescription"
)

var (
	ErrNoImages       = fmt.Errorf("%w: add at least one image before submitting", apperrors.ErrConflict)
	ErrSubmitInFlight = fmt.Errorf("%w: a submission is already in progress", apperrors.ErrConflict)
)

// Submission is the validated payload handed to a Submitter.
type Submission struct {
	FullName              string           `json:"fullName"`
	Age                   int              `json:"age"`
	CityLastSeen          string           `json:"cityLastSeen"`
	DateLastSeen          string           `json:"dateLastSeen"`
	ContactPhone          string           `json:"contactPhone"`
	NearbyPoliceStation   string           `json:"nearbyPoliceStation"`
	AdditionalDescription string           `json:"additionalDescription,omitempty"`
	Images                []intake.Preview `json:"images"`
}

// Receipt is what a transport reports back after a successful submission.
type Receipt struct {
	DocumentID      string `json:"documentId,omitempty" example:"3f9c2a"`
	Message         string `json:"message,omitempty" example:"Upload successful"`
	ImagesProcessed int    `json:"imagesProcessed" example:"2"`
	FacesDetected   int    `json:"facesDetected" example:"2"`
	Simulated       bool   `json:"simulated"`
}

type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
)

// View is the draft as the client renders it.
type View struct {
	Values     form.Values      `json:"values"`
	Errors     form.Errors      `json:"errors"`
	Images     []intake.Preview `json:"images"`
	ImageCount int              `json:"imageCount" example:"2"`
	MaxImages  int              `json:"maxImages" example:"10"`
	State      State            `json:"state" example:"idle"`
	Submitting bool             `json:"submitting"`
	CanSubmit  bool             `json:"canSubmit"`
}

// FieldsRequest sets any subset of the form fields.
type FieldsRequest map[string]string

type ImagesResponse struct {
	Outcome intake.Outcome `json:"outcome"`
	Draft   View           `json:"draft"`
}

type SubmitResponse struct {
	Receipt Receipt `json:"receipt"`
	Draft   View    `json:"draft"`
}

package consultation

import (
	"fmt"

	"github.com/xyz-asif/findme/internal/pkg/form"
	apperrors "github.com/xyz-asif/findme/pkg/errors"
)

const (
	FieldName    = "name"
	FieldPhone   = "phone"
	FieldMessage = "message"
)

var ErrSendInFlight = fmt.Errorf("%w: a request is already being sent", apperrors.ErrConflict)

// CallbackRequest asks a support specialist to call back.
type CallbackRequest struct {
	Name    string `json:"name" example:"Ravi Kumar"`
	Phone   string `json:"phone" example:"9876543210"`
	Message string `json:"message" example:"Please call me about my missing brother"`
}

// Ack is the backend's answer to an accepted request.
type Ack struct {
	Success    bool   `json:"success"`
	Message    string `json:"message,omitempty" example:"Counselor request submitted successfully"`
	DocumentID string `json:"documentId,omitempty"`
}

type State string

const (
	StateIdle    State = "idle"
	StateSending State = "sending"
	StateSuccess State = "success"
	StateFailed  State = "failed"
)

type View struct {
	Values    form.Values `json:"values"`
	Errors    form.Errors `json:"errors"`
	State     State       `json:"state" example:"idle"`
	Sending   bool        `json:"sending"`
	LastError string      `json:"lastError,omitempty"`
}

type FieldsRequest map[string]string

type SubmitResponse struct {
	Ack  Ack  `json:"ack"`
	Form View `json:"form"`
}

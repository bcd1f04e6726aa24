package consultation

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/findme/internal/middleware"
	"github.com/xyz-asif/findme/internal/pkg/backend"
	"github.com/xyz-asif/findme/internal/pkg/form"
	"github.com/xyz-asif/findme/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetForm godoc
// @Summary Get consultation form
// @Tags consultation
// @Produce json
// @Success 200 {object} response.APIResponse{data=View}
// @Router /consultation [get]
func (h *Handler) GetForm(c *gin.Context) {
	response.Success(c, h.service.Form(middleware.SessionID(c)))
}

// SetFields godoc
// @Summary Set consultation fields
// @Tags consultation
// @Accept json
// @Produce json
// @Param body body FieldsRequest true "Field values"
// @Success 200 {object} response.APIResponse{data=View}
// @Failure 400 {object} response.APIResponse
// @Router /consultation/fields [patch]
func (h *Handler) SetFields(c *gin.Context) {
	var req FieldsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}
	response.Success(c, h.service.SetFields(middleware.SessionID(c), form.Values(req)))
}

// Submit godoc
// @Summary Request a callback
// @Description Validate the form and send it to the counselor endpoint
// @Tags consultation
// @Accept json
// @Produce json
// @Param body body FieldsRequest false "Field values to apply first"
// @Success 200 {object} response.APIResponse{data=SubmitResponse}
// @Failure 409 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse{data=form.Errors}
// @Failure 429 {object} response.APIResponse
// @Failure 502 {object} response.APIResponse{data=View}
// @Router /consultation/submit [post]
func (h *Handler) Submit(c *gin.Context) {
	var req FieldsRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			response.BindJSONError(c, err)
			return
		}
	}

	ack, view, err := h.service.Submit(c.Request.Context(), middleware.SessionID(c), form.Values(req))
	if err != nil {
		var fieldErrs form.Errors
		var failure *backend.Failure
		switch {
		case errors.As(err, &fieldErrs):
			response.ValidationFailed(c, fieldErrs)
		case errors.Is(err, ErrSendInFlight):
			response.Conflict(c, "Request already being sent", "SEND_IN_FLIGHT")
		case errors.As(err, &failure):
			response.ErrorWithData(c, http.StatusBadGateway, failure.Message, "SUBMIT_FAILED", view)
		default:
			response.InternalServerError(c, "Failed to submit request. Please try again.", "SUBMIT_FAILED")
		}
		return
	}

	response.Success(c, SubmitResponse{Ack: ack, Form: view}, "Request Submitted")
}

package report

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/findme/internal/features/intake"
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

// GetDraft godoc
// @Summary Get report draft
// @Description Current fields, field errors, image previews and submit state of this session's report
// @Tags report
// @Produce json
// @Success 200 {object} response.APIResponse{data=View}
// @Router /report [get]
func (h *Handler) GetDraft(c *gin.Context) {
	response.Success(c, h.service.Draft(middleware.SessionID(c)))
}

// SetFields godoc
// @Summary Set report fields
// @Description Store field values without validating them
// @Tags report
// @Accept json
// @Produce json
// @Param body body FieldsRequest true "Field values"
// @Success 200 {object} response.APIResponse{data=View}
// @Failure 400 {object} response.APIResponse
// @Router /report/fields [patch]
func (h *Handler) SetFields(c *gin.Context) {
	var req FieldsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}
	response.Success(c, h.service.SetFields(middleware.SessionID(c), form.Values(req)))
}

// AddImages godoc
// @Summary Add images
// @Description Screen and decode a batch of images; the outcome is also announced through notifications
// @Tags report
// @Accept multipart/form-data
// @Produce json
// @Param images formData file false "Image files; an empty batch changes nothing"
// @Success 200 {object} response.APIResponse{data=ImagesResponse}
// @Failure 400 {object} response.APIResponse
// @Router /report/images [post]
func (h *Handler) AddImages(c *gin.Context) {
	mf, err := c.MultipartForm()
	if err != nil {
		response.BadRequest(c, "Images must be sent as multipart/form-data", "MISSING_FILE")
		return
	}
	defer mf.RemoveAll()

	// an empty batch is a no-op, not an error
	headers := mf.File["images"]
	files := make([]intake.File, len(headers))
	for i, fh := range headers {
		files[i] = newUploadedFile(fh)
	}

	outcome, view := h.service.AddImages(c.Request.Context(), middleware.SessionID(c), files)
	response.Success(c, ImagesResponse{Outcome: outcome, Draft: view})
}

// RemoveImage godoc
// @Summary Remove one image
// @Tags report
// @Produce json
// @Param index path int true "Position of the preview"
// @Success 200 {object} response.APIResponse{data=View}
// @Failure 404 {object} response.APIResponse
// @Router /report/images/{index} [delete]
func (h *Handler) RemoveImage(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.BadRequest(c, "Invalid image index", "INVALID_INDEX")
		return
	}

	view, err := h.service.RemoveImage(middleware.SessionID(c), index)
	if err != nil {
		response.NotFound(c, "Image not found", "IMAGE_NOT_FOUND")
		return
	}
	response.Success(c, view)
}

// ClearImages godoc
// @Summary Remove all images
// @Tags report
// @Produce json
// @Success 200 {object} response.APIResponse{data=View}
// @Router /report/images [delete]
func (h *Handler) ClearImages(c *gin.Context) {
	response.Success(c, h.service.ClearImages(middleware.SessionID(c)))
}

// Submit godoc
// @Summary Submit report
// @Description Optionally set fields, validate and submit the report with its images
// @Tags report
// @Accept json
// @Produce json
// @Param body body FieldsRequest false "Field values to apply first"
// @Success 200 {object} response.APIResponse{data=SubmitResponse}
// @Failure 409 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse{data=form.Errors}
// @Failure 502 {object} response.APIResponse
// @Router /report/submit [post]
func (h *Handler) Submit(c *gin.Context) {
	var req FieldsRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			response.BindJSONError(c, err)
			return
		}
	}

	receipt, view, err := h.service.Submit(c.Request.Context(), middleware.SessionID(c), form.Values(req))
	if err != nil {
		var fieldErrs form.Errors
		var failure *backend.Failure
		switch {
		case errors.As(err, &fieldErrs):
			response.ValidationFailed(c, fieldErrs)
		case errors.Is(err, ErrNoImages):
			response.Conflict(c, "Please upload at least one image", "NO_IMAGES")
		case errors.Is(err, ErrSubmitInFlight):
			response.Conflict(c, "Submission already in progress", "SUBMIT_IN_FLIGHT")
		case errors.As(err, &failure):
			response.ErrorWithData(c, http.StatusBadGateway, failure.Message, "SUBMIT_FAILED", view)
		default:
			response.InternalServerError(c, "Failed to submit report", "SUBMIT_FAILED")
		}
		return
	}

	response.Success(c, SubmitResponse{Receipt: receipt, Draft: view}, "Submission Successful")
}

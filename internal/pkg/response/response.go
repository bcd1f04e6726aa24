package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse is the single envelope every endpoint answers with
type APIResponse struct {
	Success    bool        `json:"success" example:"true"`
	StatusCode int         `json:"statusCode" example:"200"`
	Message    string      `json:"message,omitempty" example:"ok"`
	Data       interface{} `json:"data,omitempty"`
	Code       string      `json:"code,omitempty" example:"VALIDATION_FAILED"`
}

func write(c *gin.Context, statusCode int, resp APIResponse) {
	resp.StatusCode = statusCode
	c.JSON(statusCode, resp)
}

func firstOr(values []string, fallback string) string {
	if len(values) > 0 {
		return values[0]
	}
	return fallback
}

// Success sends a 200 OK response with data and an optional message
func Success(c *gin.Context, data interface{}, message ...string) {
	write(c, http.StatusOK, APIResponse{Success: true, Data: data, Message: firstOr(message, "")})
}

// Error sends an error response with custom status code and message
func Error(c *gin.Context, statusCode int, message string, errorCode ...string) {
	write(c, statusCode, APIResponse{Message: message, Code: firstOr(errorCode, "")})
}

// ErrorWithData sends an error response that also carries a payload, e.g.
// the per-field messages of a failed form.
func ErrorWithData(c *gin.Context, statusCode int, message, errorCode string, data interface{}) {
	write(c, statusCode, APIResponse{Message: message, Code: errorCode, Data: data})
}

// BadRequest sends a 400 Bad Request error
func BadRequest(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusBadRequest, message, errorCode...)
}

// NotFound sends a 404 Not Found error
func NotFound(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusNotFound, message, errorCode...)
}

// Conflict sends a 409 Conflict error
func Conflict(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusConflict, message, errorCode...)
}

// InternalServerError sends a 500 Internal Server Error
func InternalServerError(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusInternalServerError, message, errorCode...)
}

// BindJSONError handles JSON decode errors in request body
func BindJSONError(c *gin.Context, err error) {
	BadRequest(c, "Invalid request format", "INVALID_JSON")
}

// ValidationFailed sends 422 with the field -> message map
func ValidationFailed(c *gin.Context, fields interface{}) {
	ErrorWithData(c, http.StatusUnprocessableEntity, "Please correct the highlighted fields", "VALIDATION_FAILED", fields)
}

package responses

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/scoutkz/pkg/apperr"
	"github.com/DhavalSuthar-24/scoutkz/pkg/validator"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error  string            `json:"error" example:"player not found"`
	Fields map[string]string `json:"fields,omitempty"`
}

// MessageResponse is returned by operations with nothing else to report.
type MessageResponse struct {
	Message string `json:"message" example:"Video deleted"`
}

// HealthResponse is the body of the health check.
type HealthResponse struct {
	Status    string `json:"status" example:"OK"`
	Timestamp string `json:"timestamp" example:"2026-01-01T00:00:00Z"`
}

// SendError aborts the request with a JSON error body.
func SendError(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, ErrorResponse{Error: message})
}

// SendMessage sends {"message": msg}.
func SendMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, MessageResponse{Message: message})
}

// ValidationFailed reports a bind/validation error with per-field details.
func ValidationFailed(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
		Error:  "validation failed",
		Fields: validator.ParseError(err),
	})
}

// HandleError is the single translation point from service errors to HTTP.
// Internal causes are logged and never sent to the client.
func HandleError(c *gin.Context, err error) {
	status, message := apperr.Status(err)
	if status >= http.StatusInternalServerError {
		log.Printf("ERROR %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	SendError(c, status, message)
}

// NotFound sends a 404 Not Found error response.
func NotFound(c *gin.Context, resourceName string) {
	SendError(c, http.StatusNotFound, resourceName+" not found")
}

// BadRequest sends a 400 Bad Request error response.
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request payload or parameters"
	}
	SendError(c, http.StatusBadRequest, message)
}

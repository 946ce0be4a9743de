// internal/utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes returned in the "error" field.
const (
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeBadRequest          = "BAD_REQUEST"
	CodeValidationError     = "VALIDATION_ERROR"
	CodeNotFound            = "NOT_FOUND"
	CodeNoLines             = "NO_LINES"
	CodeInvalidCredentials  = "INVALID_CREDENTIALS"
	CodeTokenError          = "TOKEN_ERROR"
	CodeServerNotConfigured = "SERVER_NOT_CONFIGURED"
	CodeCurateFailed        = "CURATE_FAILED"
	CodeIngestFailed        = "INGEST_FAILED"
)

// ErrorResponse writes {"error": code} with an optional detail payload.
func ErrorResponse(c *gin.Context, statusCode int, code string, detail interface{}) {
	body := gin.H{"error": code}
	if detail != nil {
		body["detail"] = detail
	}
	c.JSON(statusCode, body)
}

func UnauthorizedResponse(c *gin.Context) {
	ErrorResponse(c, http.StatusUnauthorized, CodeUnauthorized, nil)
}

func BadRequestResponse(c *gin.Context, code string, detail interface{}) {
	ErrorResponse(c, http.StatusBadRequest, code, detail)
}

func NotFoundResponse(c *gin.Context) {
	ErrorResponse(c, http.StatusNotFound, CodeNotFound, nil)
}

func ServerErrorResponse(c *gin.Context, code string, detail interface{}) {
	ErrorResponse(c, http.StatusInternalServerError, code, detail)
}

func ValidationErrorResponse(c *gin.Context, errors map[string]string) {
	ErrorResponse(c, http.StatusBadRequest, CodeValidationError, errors)
}

// Package response defines consistent HTTP response structures and renders
// service Results onto the wire. All API responses should use these types
// for consistency.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogapi/src/core/result"
)

// Success represents a successful response with data.
type Success struct {
	Data any `json:"data"`
}

// Error represents an error response.
type Error struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	// Code is a machine-readable error code (e.g., "NOT_FOUND", "CONFLICT")
	Code string `json:"code"`

	// Message is a human-readable error description
	Message string `json:"message"`

	// RequestID is the request ID for debugging
	RequestID string `json:"request_id,omitempty"`
}

// Render writes a service Result to the wire: failures become an error
// envelope, 204 has no body, and every other success wraps its payload
// under "data". This is the single translation point between the core's
// result contract and HTTP.
func Render[T any](c *gin.Context, res result.Result[T], requestID string) {
	if res.Failed() {
		c.JSON(res.StatusCode, Error{
			Error: ErrorDetail{
				Code:      codeFor(res.StatusCode),
				Message:   res.Err,
				RequestID: requestID,
			},
		})
		return
	}

	if res.StatusCode == http.StatusNoContent {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(res.StatusCode, Success{Data: res.Data})
}

// codeFor maps a status code to its machine-readable error code.
func codeFor(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "BAD_REQUEST"
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusForbidden:
		return "FORBIDDEN"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusConflict:
		return "CONFLICT"
	default:
		return "INTERNAL_ERROR"
	}
}

// OK sends a 200 response with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Success{Data: data})
}

// BadRequest sends a 400 response.
func BadRequest(c *gin.Context, message string, requestID string) {
	c.JSON(http.StatusBadRequest, Error{
		Error: ErrorDetail{
			Code:      "BAD_REQUEST",
			Message:   message,
			RequestID: requestID,
		},
	})
}

// Unauthorized sends a 401 response.
func Unauthorized(c *gin.Context, message, requestID string) {
	c.JSON(http.StatusUnauthorized, Error{
		Error: ErrorDetail{
			Code:      "UNAUTHORIZED",
			Message:   message,
			RequestID: requestID,
		},
	})
}

// InternalError sends a 500 response.
func InternalError(c *gin.Context, requestID string) {
	c.JSON(http.StatusInternalServerError, Error{
		Error: ErrorDetail{
			Code:      "INTERNAL_ERROR",
			Message:   "An unexpected error occurred",
			RequestID: requestID,
		},
	})
}

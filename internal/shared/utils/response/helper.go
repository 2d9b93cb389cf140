package response

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"waitwise/internal/shared/apperror"
	"waitwise/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// RequestIDKey is the gin context key holding the caller's request id
const RequestIDKey = "request_id"

// DefaultRequestID is used when the client sent no X-Request-ID
const DefaultRequestID = "req-local"

// RespondJSON writes the resource as the bare body
func RespondJSON(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

// RespondError maps an error to its status and writes the error body
func RespondError(c *gin.Context, err error) {
	appErr := apperror.From(err)
	status := apperror.HTTPStatus(appErr.Kind)
	if status >= http.StatusInternalServerError {
		logger.GetDefault().LogHTTPError(c, err, status)
	}
	writeError(c, status, appErr.Code, appErr.Message, appErr.Details)
}

// RespondBindError writes a 400 for a body or query that failed binding
func RespondBindError(c *gin.Context, err error) {
	details := map[string]any{}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			details[lowerFirst(fe.Field())] = fe.Tag()
		}
	} else {
		details["body"] = err.Error()
	}

	writeError(c, http.StatusBadRequest, apperror.CodeValidation, "Request validation failed", details)
}

// RespondStatusError writes an error body with an explicit status and code
func RespondStatusError(c *gin.Context, status int, code, message string) {
	writeError(c, status, code, message, nil)
}

func writeError(c *gin.Context, status int, code, message string, details map[string]any) {
	if len(details) == 0 {
		details = nil
	}
	c.AbortWithStatusJSON(status, ErrorResponse{
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now().UTC(),
		RequestID: RequestID(c),
	})
}

// RequestID returns the request id recorded by middleware, or the header, or the default
func RequestID(c *gin.Context) string {
	if id := c.GetString(RequestIDKey); id != "" {
		return id
	}
	if id := c.GetHeader("X-Request-ID"); id != "" {
		return id
	}
	return DefaultRequestID
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

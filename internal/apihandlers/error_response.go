package apihandlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"quest/internal/models"
	"quest/internal/store"
)

// APIError defines the standard error response.
// Example: { "error": { "code": "not_found", "message": "question 42 not found" } }
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error APIError `json:"error"`
}

// Classify is the single total mapping from a classified failure to the
// HTTP outcome, regardless of which component raised it. The message side
// is deliberately stable and generic: raw database diagnostics and
// upstream response text never cross the boundary, they are only logged.
func Classify(err error) (int, APIError) {
	var e *models.Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError, APIError{Code: "internal_error", Message: "internal error"}
	}

	switch e.Kind {
	case models.KindValidation:
		return http.StatusUnprocessableEntity, APIError{Code: "invalid_parameters", Message: "missing or invalid parameters"}
	case models.KindUnauthorized:
		return http.StatusUnauthorized, APIError{Code: "unauthorized", Message: "not authorized"}
	case models.KindNotFound:
		return http.StatusNotFound, APIError{Code: "not_found", Message: fmt.Sprintf("question %d not found", e.ResourceID)}
	case models.KindStore:
		if errors.Is(e, store.ErrDuplicate) {
			return http.StatusUnprocessableEntity, APIError{Code: "already_exists", Message: "resource already exists"}
		}
		return http.StatusUnprocessableEntity, APIError{Code: "store_error", Message: "cannot update data"}
	case models.KindUpstreamClient, models.KindUpstreamServer, models.KindUpstreamTransport:
		return http.StatusInternalServerError, APIError{Code: "internal_error", Message: "internal error"}
	}
	return http.StatusInternalServerError, APIError{Code: "internal_error", Message: "internal error"}
}

// RespondError logs the full failure for operators and writes the stable
// (status, message) pair for the caller.
func RespondError(c *gin.Context, err error) {
	status, apiErr := Classify(err)

	fields := log.Fields{
		"request_id": RequestID(c),
		"status":     status,
		"path":       c.FullPath(),
	}
	var e *models.Error
	if errors.As(err, &e) && e.Status != 0 {
		fields["upstream_status"] = e.Status
		fields["upstream_message"] = e.Message
	}
	log.WithFields(fields).WithError(err).Error("request failed")

	c.AbortWithStatusJSON(status, errorResponse{Error: apiErr})
}

// RouteNotFound handles requests that match no registered route.
func RouteNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, errorResponse{
		Error: APIError{Code: "not_found", Message: "route not found"},
	})
}

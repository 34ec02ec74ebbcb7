package delivery

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"catalog_service/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// ErrorResponse is the body written for every failed request.
type ErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Path      string    `json:"path"`
}

var now = time.Now

func mapErrorToStatus(err error) int {
	switch domain.KindOf(err) {
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict, domain.KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandler turns the last error a handler attached with c.Error into
// an ErrorResponse. Unclassified errors are logged and reported as 500
// without their text.
func ErrorHandler(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		status := mapErrorToStatus(err)

		message := domain.MessageOf(err)
		if status == http.StatusInternalServerError {
			logger.WithField("path", c.Request.URL.Path).Errorf("Handler: Unhandled error: %v", err)
			message = http.StatusText(http.StatusInternalServerError)
		}

		c.JSON(status, ErrorResponse{
			Timestamp: now().UTC(),
			Status:    status,
			Error:     message,
			Path:      c.Request.URL.Path,
		})
	}
}

// bindingError converts a gin binding failure into a validation error with
// a readable message.
func bindingError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
		}
		return domain.Validation("Invalid request body: %s", strings.Join(fields, ", "))
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		return domain.Validation("Malformed JSON request")
	case errors.As(err, &typeErr):
		return domain.Validation("Invalid value for field '%s'", typeErr.Field)
	}
	return domain.Validation("Invalid request body: %v", err)
}

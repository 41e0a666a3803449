// Package apierror translates failures into the three kinds of client
// response the API knows about.
package apierror

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Keoroanthony/go-cornerstore/internal/logger"
	"github.com/Keoroanthony/go-cornerstore/internal/repository"
)

const InvalidDataMessage = "Invalid data submitted"

// NotFound answers 404 with an empty body.
func NotFound(c *gin.Context) {
	c.Status(http.StatusNotFound)
}

// MalformedInput answers 400 with a descriptive message.
func MalformedInput(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

// ConstraintViolation answers 400 with the generic invalid-data message and
// logs the underlying cause.
func ConstraintViolation(c *gin.Context, err error) {

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make([]string, 0, len(validationErrs))
		for _, fe := range validationErrs {
			fields = append(fields, fe.Namespace()+":"+fe.Tag())
		}
		logger.Warn(c, "request failed validation", zap.Strings("fields", fields))
	} else {
		logger.Warn(c, "request rejected", zap.Error(err))
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": InvalidDataMessage})
}

// Respond maps a repository error onto its response. Anything that is not a
// missing row is reported as a constraint violation.
func Respond(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		NotFound(c)
		return
	}
	if !errors.Is(err, repository.ErrConstraint) {
		logger.Error(c, "unexpected storage failure", err)
	}
	ConstraintViolation(c, err)
}

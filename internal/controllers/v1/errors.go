package v1

import (
	"errors"
	"net/http"

	"github.com/centavo/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate HTTP status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) || errors.Is(err, models.ErrRegisterMissing) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrRegisterNotAllowed) {
		return http.StatusForbidden
	}

	return http.StatusBadRequest
}

// Summary errors
var (
	errYearOutOfRange  = errors.New("the year must be between 1900 and 2100")
	errMonthOutOfRange = errors.New("the month must be between 0 (January) and 11 (December)")
)

// Register errors
var errRegisterValueNegative = errors.New("the register value must not be negative")

package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/mpdx/staff-report/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the account query parameter must be set"`
}

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errAccountParameter   = errors.New("the account query parameter must be set")
	errMonthRangeNotSet   = errors.New("the startMonth and endMonth query parameters must be set")
	errAccountID          = errors.New("the accountId must be set")
	errMonthRangeBody     = errors.New("the startMonth and endMonth must be set")
	errInvalidSortField   = errors.New("the sortField must be one of date, amount")
	errInvalidSortOrder   = errors.New("the sortDirection must be one of asc, desc")
	errInvalidPage        = errors.New("the page must not be negative")
	errCategoryNotGrouped = fmt.Errorf("%w transaction of this category in the report", models.ErrResourceNotFound)
)

package httputil

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/go-sqlite"
	"github.com/mpdx/staff-report/internal/models"
	"github.com/rs/zerolog/log"
)

// HTTPError is used for error responses that contain a body.
type HTTPError struct {
	Error string `json:"error" example:"the query string contains unparseable data"`
}

// NewError writes an HTTPError with the given status.
func NewError(c *gin.Context, status int, err error) {
	c.JSON(status, HTTPError{
		Error: err.Error(),
	})
}

// ErrorHandler writes the response for errors that are not specific to
// a single endpoint.
func ErrorHandler(c *gin.Context, err error) {
	// No record found => 404
	if errors.Is(err, models.ErrResourceNotFound) {
		NewError(c, http.StatusNotFound, err)

		// Database error
	} else if reflect.TypeOf(err) == reflect.TypeOf(&sqlite.Error{}) || errors.Is(err, models.ErrGeneral) {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		NewError(c, http.StatusInternalServerError, fmt.Errorf("a database error occurred during your request, please contact your server administrator. The request id is '%v'", requestid.Get(c)))

		// End of file reached when reading
	} else if errors.Is(err, io.EOF) {
		NewError(c, http.StatusBadRequest, ErrRequestBodyEmpty)

		// Time could not be parsed. The error string tells the problem very well
	} else if reflect.TypeOf(err) == reflect.TypeOf(&time.ParseError{}) {
		NewError(c, http.StatusBadRequest, err)

		// All other errors
	} else {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		NewError(c, http.StatusInternalServerError, fmt.Errorf("an error occurred on the server during your request, please contact your server administrator. The request id is '%v', send this to your server administrator to help them finding the problem", requestid.Get(c)))
	}
}

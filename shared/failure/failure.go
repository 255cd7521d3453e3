package failure

import (
	"errors"
	"eventzone/shared/constant"
	"eventzone/shared/timezone"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var RouteNotFound = &Failure{Code: http.StatusNotFound, Message: constant.ResponseErrorRouteNotFound}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// FromTimezone maps the normalizer's typed errors to bad requests and leaves anything else untouched.
func FromTimezone(err error) error {
	if errors.Is(err, timezone.ErrUnknownTimezone) || errors.Is(err, timezone.ErrInvalidInstant) {
		return BadRequest(err)
	}

	return err
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

package errors

import (
	"net/http"

	"github.com/Abros3006/business-tracker/internal/errors"
)

// AsAppError extracts the first AppError in err's chain.
func AsAppError(err error) (AppError, bool) {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}

	return nil, false
}

// HTTPStatus returns the status code an error should surface with.
func HTTPStatus(err error) int {
	if appErr, ok := AsAppError(err); ok {
		return appErr.HTTPCode()
	}

	return http.StatusInternalServerError
}

// IsClientError reports whether err maps to a 4xx status.
func IsClientError(err error) bool {
	status := HTTPStatus(err)

	return status >= http.StatusBadRequest && status < http.StatusInternalServerError
}

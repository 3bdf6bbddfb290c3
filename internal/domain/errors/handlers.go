package errors

import "punchclock/internal/errors"

// AsAppError extracts the first AppError from err's chain.
func AsAppError(err error) (AppError, bool) {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}

	return nil, false
}

// HasCode reports whether err carries an AppError with the given business code.
func HasCode(err error, code string) bool {
	appErr, ok := AsAppError(err)

	return ok && appErr.ErrorCode() == code
}

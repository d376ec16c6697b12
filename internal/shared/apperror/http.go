package apperror

import (
	"errors"
	"net/http"
)

// HTTPError is the transport-neutral view of an error that handlers render.
type HTTPError struct {
	Status  int
	Code    string
	Message string
}

// ToHTTP translates any error into a status, code and message. AppErrors
// keep their own status and message; everything else is a 500 that
// surfaces the raw error text.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.HTTPStatus
		if status == 0 {
			status = http.StatusInternalServerError
		}
		return HTTPError{
			Status:  status,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
	}

	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: msg,
	}
}

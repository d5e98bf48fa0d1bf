package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yanqian/wellness-tips/pkg/errors"
)

// HTTPError is the rendered form of a failed request.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *HTTPError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewHTTPError builds an HTTPError.
func NewHTTPError(status int, code, message string, err error) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message, Err: err}
}

// domainStatus lists the service error codes exposed to clients.
var domainStatus = map[string]int{
	"invalid_input":     http.StatusBadRequest,
	"not_found":         http.StatusNotFound,
	"llm_error":         http.StatusBadGateway,
	"translation_error": http.StatusBadGateway,
	"storage_error":     http.StatusInternalServerError,
	"settings_error":    http.StatusInternalServerError,
}

// fromDomainError maps an AppError chain onto a response. Unknown codes become internal_error.
func fromDomainError(err error) *HTTPError {
	code := apperrors.CodeOf(err)
	status, ok := domainStatus[code]
	if !ok {
		return NewHTTPError(http.StatusInternalServerError, "internal_error", "something went wrong", err)
	}
	return NewHTTPError(status, code, apperrors.MessageOf(err), err)
}

func asHTTPError(err error) *HTTPError {
	if err == nil {
		return nil
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return fromDomainError(err)
}

func abortWithError(c *gin.Context, err *HTTPError) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func abortWithDomainError(c *gin.Context, err error) {
	abortWithError(c, fromDomainError(err))
}

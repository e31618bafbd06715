package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrEmailTaken is returned when registering with an email that already exists.
	ErrEmailTaken = errors.New("email already registered")
	// ErrUserNotFound is returned when no user matches the given email or id.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidPassword is returned when the password does not match the stored hash.
	ErrInvalidPassword = errors.New("invalid password")
	// ErrEmptyComment is returned when a comment is submitted without text.
	ErrEmptyComment = errors.New("comment text is required")
	// ErrCategoryNotFound is returned when the catalog has no such category.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrBookNotFound is returned when the catalog has no such book.
	ErrBookNotFound = errors.New("book not found")
)

var (
	// ErrTokenMissing is returned when no bearer token is supplied.
	ErrTokenMissing = errors.New("no token provided")
	// ErrTokenMalformed is returned when the token is not a well-formed JWT.
	ErrTokenMalformed = errors.New("token is malformed")
	// ErrTokenExpired is returned when the token is past its expiry.
	ErrTokenExpired = errors.New("token is expired")
	// ErrTokenSignature is returned when the token signature does not verify.
	ErrTokenSignature = errors.New("token signature is invalid")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. The registration
// and login failures map to 400 rather than 409/401 to stay compatible
// with the responses the frontend already handles.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrInvalidPassword):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_PASSWORD")
	case errors.Is(err, ErrEmptyComment):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMPTY_TEXT")
	case errors.Is(err, ErrCategoryNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CATEGORY_NOT_FOUND")
	case errors.Is(err, ErrBookNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "BOOK_NOT_FOUND")
	case errors.Is(err, ErrTokenMissing):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "TOKEN_MISSING")
	case errors.Is(err, ErrTokenMalformed):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "TOKEN_MALFORMED")
	case errors.Is(err, ErrTokenExpired):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "TOKEN_EXPIRED")
	case errors.Is(err, ErrTokenSignature):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "TOKEN_INVALID_SIGNATURE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}

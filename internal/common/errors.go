package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Sentinel error kinds for the extraction pipeline. Job runners use
// Retryable to decide whether a failed attempt is re-enqueued.
var (
	// ErrUnsupportedFormat: blank or unrecognized media type. Never retried.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrMalformedSource: the blob could not be read as its declared format.
	// Treated as permanent for that blob.
	ErrMalformedSource = errors.New("malformed source")
	// ErrLimitReached: monthly AI extraction quota hit. Not an extraction
	// failure; callers must leave extraction status untouched.
	ErrLimitReached = errors.New("extraction limit reached")
	// ErrResponseParse: the model response was not decodable JSON. Retryable.
	ErrResponseParse = errors.New("unparseable model response")

	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
)

// Retryable reports whether a bounded retry is worth attempting.
// Everything is retryable except the explicitly permanent kinds.
func Retryable(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, ErrUnsupportedFormat),
		errors.Is(err, ErrMalformedSource),
		errors.Is(err, ErrLimitReached),
		errors.Is(err, ErrNotFound),
		errors.Is(err, ErrInvalidInput):
		return false
	default:
		return true
	}
}

// AppError carries a stable code alongside a message and cause.
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func NewAppError(code, message string, cause error) *AppError {
	return &AppError{Code: code, Message: message, Cause: cause}
}

// gRPC error helpers
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}

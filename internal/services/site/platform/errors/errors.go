// Package errors defines typed site failures and their HTTP mapping.
package errors

import (
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/baucmind/site/internal/lead"
	"github.com/baucmind/site/internal/studio/shell"
)

// Kind classifies failures for consistent HTTP mapping.
type Kind string

const (
	KindUnknown       Kind = "unknown"
	KindInvalidInput  Kind = "invalid_input"
	KindNotFound      Kind = "not_found"
	KindConflict      Kind = "conflict"
	KindUnprocessable Kind = "unprocessable"
	KindUnavailable   Kind = "unavailable"
	KindConfiguration Kind = "configuration"
)

// Error is a typed site failure.
type Error struct {
	Kind    Kind
	Key     string
	Message string
	Err     error
}

func (e Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e Error) Unwrap() error {
	return e.Err
}

// E builds a typed Error.
func E(kind Kind, message string) error {
	return Error{Kind: kind, Message: message}
}

// EK builds a typed Error with a localization key.
func EK(kind Kind, key string, message string) error {
	return Error{Kind: kind, Key: strings.TrimSpace(key), Message: message}
}

// Wrap classifies err under kind with a localization key.
func Wrap(kind Kind, key string, err error) error {
	if err == nil {
		return nil
	}
	return Error{Kind: kind, Key: strings.TrimSpace(key), Err: err}
}

// KindOf classifies err. Domain errors map onto their kinds.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var appErr Error
	if stderrors.As(err, &appErr) {
		return appErr.Kind
	}
	var configErr *shell.ConfigurationError
	if stderrors.As(err, &configErr) {
		return KindConfiguration
	}
	var fieldErr *lead.FieldError
	if stderrors.As(err, &fieldErr) {
		return KindInvalidInput
	}
	var submitErr *lead.SubmissionError
	if stderrors.As(err, &submitErr) {
		return KindUnavailable
	}
	return KindUnknown
}

// LocalizationKey returns the message key for err, if any.
func LocalizationKey(err error) string {
	if err == nil {
		return ""
	}
	var appErr Error
	if stderrors.As(err, &appErr) && strings.TrimSpace(appErr.Key) != "" {
		return strings.TrimSpace(appErr.Key)
	}
	switch KindOf(err) {
	case KindConfiguration:
		return "core.error.configuration"
	case KindUnavailable:
		return "core.error.unavailable"
	}
	return ""
}

// HTTPStatus maps err to a response status.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	switch KindOf(err) {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnprocessable:
		return http.StatusUnprocessableEntity
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

package domain

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	CodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	CodeNotFound        ErrorCode = "NOT_FOUND"
	CodeUnavailable     ErrorCode = "UNAVAILABLE"
	CodeFailedPrecond   ErrorCode = "FAILED_PRECONDITION"
	CodeInternal        ErrorCode = "INTERNAL"
	CodeCanceled        ErrorCode = "CANCELED"
)

type Error struct {
	Code    ErrorCode
	Op      string
	Message string
	Cause   error
	Meta    map[string]string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Message
	if msg == "" && e.Cause != nil {
		msg = e.Cause.Error()
	}
	if e.Op == "" {
		if msg == "" {
			return string(e.Code)
		}
		return fmt.Sprintf("%s: %s", e.Code, msg)
	}
	if msg == "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Code)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Code, msg)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Detail returns the message followed by the underlying cause, if any.
// It is the form shown to users on the final output line.
func (e *Error) Detail() string {
	if e == nil {
		return ""
	}
	if e.Message == "" {
		if e.Cause != nil {
			return e.Cause.Error()
		}
		return string(e.Code)
	}
	if e.Cause == nil || e.Cause.Error() == e.Message {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, e.Cause.Error())
}

func E(code ErrorCode, op, msg string, cause error) *Error {
	if msg == "" && cause != nil {
		msg = cause.Error()
	}
	return &Error{
		Code:    code,
		Op:      op,
		Message: msg,
		Cause:   cause,
	}
}

func Wrap(code ErrorCode, op string, err error) *Error {
	if err == nil {
		return nil
	}
	var existing *Error
	if errors.As(err, &existing) {
		if existing.Op != "" || op == "" {
			return existing
		}
		return &Error{
			Code:    existing.Code,
			Op:      op,
			Message: existing.Message,
			Cause:   existing.Cause,
			Meta:    existing.Meta,
		}
	}
	return E(code, op, "", err)
}

func CodeFrom(err error) (ErrorCode, bool) {
	if err == nil {
		return "", false
	}
	var domainErr *Error
	if errors.As(err, &domainErr) && domainErr.Code != "" {
		return domainErr.Code, true
	}
	switch {
	case errors.Is(err, ErrUnsupportedFormat), errors.Is(err, ErrMalformedLine):
		return CodeInvalidArgument, true
	case errors.Is(err, ErrProfileNotFound), errors.Is(err, ErrNoProfiles):
		return CodeNotFound, true
	case errors.Is(err, ErrUnsupportedOS), errors.Is(err, ErrUnsupportedLocale):
		return CodeFailedPrecond, true
	case errors.Is(err, ErrCommandUnavailable), errors.Is(err, ErrProfileCommandFailed):
		return CodeUnavailable, true
	default:
		return "", false
	}
}

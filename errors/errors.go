package errors

import (
	stderrors "errors"
	"fmt"
)

var (
	ErrWorkerPanic        = fmt.Errorf("worker panic")
	ErrInvalidPayload     = fmt.Errorf("invalid event payload")
	ErrConnectionFailed   = fmt.Errorf("connection failed")
	ErrConnectionClosed   = fmt.Errorf("%w: connection closed", ErrConnectionFailed)
	ErrNotConnected       = fmt.Errorf("not connected")
	ErrAuthRequired       = fmt.Errorf("authentication required")
	ErrAlreadyLoggedIn    = fmt.Errorf("already logged in")
	ErrLoginFailed        = fmt.Errorf("login failed")
	ErrInvalidNickname    = fmt.Errorf("nickname must be between 3 and 16 characters")
	ErrNotFound           = fmt.Errorf("file not found")
	ErrNotFile            = fmt.Errorf("path is not a regular file")
	ErrPermissionRequired = fmt.Errorf("permission denied")
	ErrFileRead           = fmt.Errorf("file read failed")
	ErrFrameTooLarge      = fmt.Errorf("frame exceeds maximum size")
	ErrInvalidUTF8        = fmt.Errorf("payload is not valid UTF-8")
	ErrUnknownMessageType = fmt.Errorf("unknown message type")
	ErrQuitRequested      = fmt.Errorf("quit requested")
)

// Code is the machine-readable error identifier carried by failure events.
type Code string

const (
	CodeConnectionFailed   Code = "CONNECTION_FAILED"
	CodeNotConnected       Code = "NOT_CONNECTED"
	CodeAuthRequired       Code = "AUTH_REQUIRED"
	CodeLoginFailure       Code = "LOGIN_FAILURE"
	CodeInvalidNickname    Code = "INVALID_NICKNAME"
	CodeNotFound           Code = "NOT_FOUND"
	CodeNotFile            Code = "NOT_FILE"
	CodePermissionRequired Code = "PERMISSION_REQUIRED"
	CodeFileReadFailed     Code = "FILE_READ_FAILED"
	CodeTransportError     Code = "TRANSPORT_ERROR"
	CodeUnknown            Code = "UNKNOWN"
)

var codes = []struct {
	err  error
	code Code
}{
	{ErrConnectionFailed, CodeConnectionFailed},
	{ErrNotConnected, CodeNotConnected},
	{ErrAuthRequired, CodeAuthRequired},
	{ErrAlreadyLoggedIn, CodeLoginFailure},
	{ErrLoginFailed, CodeLoginFailure},
	{ErrInvalidNickname, CodeInvalidNickname},
	{ErrNotFound, CodeNotFound},
	{ErrNotFile, CodeNotFile},
	{ErrPermissionRequired, CodePermissionRequired},
	{ErrFileRead, CodeFileReadFailed},
	{ErrFrameTooLarge, CodeTransportError},
}

// CodeOf returns the code of the first known sentinel wrapped by err.
// Anything else is UNKNOWN.
func CodeOf(err error) Code {
	for _, c := range codes {
		if stderrors.Is(err, c.err) {
			return c.code
		}
	}
	return CodeUnknown
}

// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 The owl-go authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package owl

import (
	"errors"
	"log/slog"
	"strings"
)

var (
	// ErrConfiguration indicates that the configuration is invalid.
	ErrConfiguration = ErrCodeConfiguration.New("")

	// ErrMalformedRequest indicates that an incoming request failed structural or curve-validity checks.
	ErrMalformedRequest = ErrCodeMalformedRequest.New("")

	// ErrMalformedResponse indicates that an incoming response failed structural or curve-validity checks.
	ErrMalformedResponse = ErrCodeMalformedResponse.New("")

	// ErrZKPVerification indicates that a Schnorr proof did not verify.
	ErrZKPVerification = ErrCodeZKPVerification.New("")

	// ErrAuthentication indicates that the password check or the key confirmation failed.
	ErrAuthentication = ErrCodeAuthentication.New("")

	// ErrUnknownUser indicates that the server holds no credentials for the user.
	// Deployments should mask this as an authentication failure after running the
	// exchange on FakeUserCredentials to equalize timing.
	ErrUnknownUser = ErrCodeUnknownUser.New("")

	// ErrWeakPassword indicates that the password verifier evaluated to zero.
	ErrWeakPassword = ErrCodeWeakPassword.New("")

	// ErrUninitialisedClient indicates that no authentication is in progress on this client.
	ErrUninitialisedClient = ErrCodeClientState.New("no authentication in progress")

	// ErrInternal indicates that the arithmetic layer reported an impossible condition.
	ErrInternal = ErrCodeInternal.New("")
)

// ErrorCode categorizes the failures of the Owl protocol. The server must not
// leak which of unknown-user, malformed-input, proof-failure, or
// password-mismatch occurred: surface all of them externally as a generic
// authentication failure.
type ErrorCode byte //nolint:errname // This is an error code, not an error type.

const (
	// ErrCodeUnknown represents an unknown error.
	ErrCodeUnknown ErrorCode = iota

	// ErrCodeConfiguration represents an error related to the configuration.
	ErrCodeConfiguration

	// ErrCodeMalformedRequest represents a structurally invalid request.
	ErrCodeMalformedRequest

	// ErrCodeMalformedResponse represents a structurally invalid response.
	ErrCodeMalformedResponse

	// ErrCodeZKPVerification represents a Schnorr proof verification failure.
	ErrCodeZKPVerification

	// ErrCodeAuthentication represents a failed password check or key confirmation.
	ErrCodeAuthentication

	// ErrCodeUnknownUser represents a missing credential record.
	ErrCodeUnknownUser

	// ErrCodeWeakPassword represents a zero password verifier.
	ErrCodeWeakPassword

	// ErrCodeClientState represents an error related to the client's state.
	ErrCodeClientState

	// ErrCodeInternal represents an impossible condition in the arithmetic layer.
	ErrCodeInternal
)

// New creates a new Error with the given message and errors.
func (c ErrorCode) New(message string, errs ...error) *Error {
	if message == "" {
		message = strings.ReplaceAll(c.String(), "_", " ")
	}

	return &Error{
		Code:    c,
		Message: message,
		Err:     errors.Join(errs...),
	}
}

// String returns the string representation of the ErrorCode.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeConfiguration:
		return "configuration_error"
	case ErrCodeMalformedRequest:
		return "malformed_request"
	case ErrCodeMalformedResponse:
		return "malformed_response"
	case ErrCodeZKPVerification:
		return "zkp_verification_failure"
	case ErrCodeAuthentication:
		return "authentication_failure"
	case ErrCodeUnknownUser:
		return "unknown_user"
	case ErrCodeWeakPassword:
		return "weak_password"
	case ErrCodeClientState:
		return "client_state_error"
	case ErrCodeInternal:
		return "internal_error"
	default:
		return "unknown_error"
	}
}

// Error implements the error interface for the ErrorCode type.
func (c ErrorCode) Error() string {
	return c.String()
}

// Is implements the errors.Is method for the ErrorCode type.
func (c ErrorCode) Is(target error) bool {
	var errCode ErrorCode
	if errors.As(target, &errCode) {
		return c == errCode
	}

	var protocolErr *Error
	if errors.As(target, &protocolErr) {
		return c == protocolErr.Code
	}

	return false
}

// Error represents an error in the Owl protocol.
type Error struct {
	Err     error
	Message string
	Code    ErrorCode
}

// Error implements the error interface for the Error type. By convention, only
// the concise form of the current error is returned; the cause can be retrieved
// with the Unwrap() method.
func (e *Error) Error() string { return e.Message }

// Unwrap implements the errors.Unwrap method for the Error type.
func (e *Error) Unwrap() error { return e.Err }

// Is implements the errors.Is method for the Error type. Two protocol errors
// match when their codes match, whatever their messages.
func (e *Error) Is(target error) bool {
	var errCode ErrorCode
	if errors.As(target, &errCode) {
		return e.Code == errCode
	}

	var protocolErr *Error
	if errors.As(target, &protocolErr) {
		return e.Code == protocolErr.Code
	}

	return false
}

// As implements the errors.As method for the Error type.
func (e *Error) As(target any) bool {
	switch t := target.(type) {
	case *ErrorCode:
		*t = e.Code
		return true
	case **Error:
		*t = e
		return true
	default:
		return false
	}
}

// LogValue implements the slog.LogValuer interface for the Error type.
func (e *Error) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("code", int(e.Code)),
		slog.String("code_name", e.Code.String()),
		slog.String("message", e.Message),
	}
	if e.Err != nil {
		attrs = append(attrs, slog.Any("error", e.Err))
	}

	return slog.GroupValue(attrs...)
}

// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2026 Phosphobot

package phosphobot

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrorKind discriminates the failure classes a client operation can return.
//
// The set is closed: every terminal failure maps to exactly one kind, and
// kinds never wrap each other.
type ErrorKind int

const (
	// ErrorValidation indicates a command field violated the active
	// movement limits before any request was sent.
	ErrorValidation ErrorKind = iota

	// ErrorHTTP indicates the controller returned a status >= 400.
	ErrorHTTP

	// ErrorTimeout indicates all retry attempts failed with a transient
	// error (request timeout or connection failure).
	ErrorTimeout

	// ErrorDecode indicates the response body was not a JSON object.
	ErrorDecode

	// ErrorTransport indicates a non-retryable request-side failure such
	// as a malformed URL or a response body read error.
	ErrorTransport
)

// String returns the string representation of an ErrorKind
func (k ErrorKind) String() string {
	switch k {
	case ErrorValidation:
		return "validation"
	case ErrorHTTP:
		return "http"
	case ErrorTimeout:
		return "timeout"
	case ErrorDecode:
		return "decode"
	case ErrorTransport:
		return "transport"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// MaxBodySnippetLength caps the raw response body carried by HTTP errors.
const MaxBodySnippetLength = 200

// ClientError is the structured error returned by all client operations.
//
// The Kind field discriminates the failure class; the remaining fields carry
// the diagnostic payload for that class and are zero otherwise:
//
//   - ErrorValidation: Field, Message
//   - ErrorHTTP:       StatusCode, Message, Body (capped at 200 characters)
//   - ErrorTimeout:    Attempts, Message
//   - ErrorDecode:     Message
//   - ErrorTransport:  Message, Cause
//
// Example:
//
//	res, err := client.MoveAbsolute(ctx, pose)
//	if err != nil {
//	    var cerr *phosphobot.ClientError
//	    if errors.As(err, &cerr) && cerr.Kind == phosphobot.ErrorHTTP {
//	        log.Printf("controller rejected move: %d %s", cerr.StatusCode, cerr.Message)
//	    }
//	}
type ClientError struct {
	// Kind is the failure class
	Kind ErrorKind

	// Operation name that failed (move_init, move_absolute)
	Operation string

	// Field is the offending command field for validation errors
	Field string

	// StatusCode is the HTTP status for ErrorHTTP
	StatusCode int

	// Message is the human-readable error message
	Message string

	// Body is the raw response body snippet for ErrorHTTP
	Body string

	// Attempts is the number of attempts performed for ErrorTimeout
	Attempts int

	// Cause is the underlying error for ErrorTransport
	Cause error
}

// Error implements the error interface
func (e *ClientError) Error() string {
	switch e.Kind {
	case ErrorValidation:
		return fmt.Sprintf("phosphobot: %s failed: invalid %s: %s", e.Operation, e.Field, e.Message)
	case ErrorHTTP:
		return fmt.Sprintf("phosphobot: %s failed: HTTP %d: %s", e.Operation, e.StatusCode, e.Message)
	case ErrorTimeout:
		return fmt.Sprintf("phosphobot: %s failed: %s (attempts: %d)", e.Operation, e.Message, e.Attempts)
	case ErrorTransport:
		return fmt.Sprintf("phosphobot: %s failed: %s: %v", e.Operation, e.Message, e.Cause)
	default:
		return fmt.Sprintf("phosphobot: %s failed: %s", e.Operation, e.Message)
	}
}

// Unwrap returns the underlying cause for transport errors, or nil.
func (e *ClientError) Unwrap() error {
	return e.Cause
}

// IsValidation reports whether err is a ClientError of kind ErrorValidation.
func IsValidation(err error) bool { return hasKind(err, ErrorValidation) }

// IsHTTP reports whether err is a ClientError of kind ErrorHTTP.
func IsHTTP(err error) bool { return hasKind(err, ErrorHTTP) }

// IsTimeout reports whether err is a ClientError of kind ErrorTimeout.
func IsTimeout(err error) bool { return hasKind(err, ErrorTimeout) }

// IsDecode reports whether err is a ClientError of kind ErrorDecode.
func IsDecode(err error) bool { return hasKind(err, ErrorDecode) }

// IsTransport reports whether err is a ClientError of kind ErrorTransport.
func IsTransport(err error) bool { return hasKind(err, ErrorTransport) }

func hasKind(err error, kind ErrorKind) bool {
	var cerr *ClientError
	if errors.As(err, &cerr) {
		return cerr.Kind == kind
	}
	return false
}

// isTimeoutError checks if a transport-level error is a request timeout
//
// Covers the per-attempt context deadline and net.Error timeouts reported by
// the HTTP transport.
func isTimeoutError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return false
}

// isTransientError checks if an error belongs to the transient failure class
// eligible for retry: request timeouts and connection-level failures.
//
// HTTP status errors and decode errors are never transient; they terminate
// the retry loop before this check. Context cancellation is also not
// transient: a canceled parent context must abort the operation, not
// schedule another attempt.
func isTransientError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	if isTimeoutError(err) {
		return true
	}
	// Everything else surfaced by http.Client.Do is a connection-level
	// failure (refused, reset, DNS, EOF on a dead keep-alive connection).
	return true
}

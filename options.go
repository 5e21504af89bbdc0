// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2026 Phosphobot

package phosphobot

import (
	"net/http"
	"time"
)

// Client configuration options using the functional options pattern

// Timeout sets the per-attempt request timeout (default: 5s)
func Timeout(duration time.Duration) func(*Client) {
	return func(c *Client) {
		c.Timeout = duration
	}
}

// MaxRetries sets the maximum number of attempts per request (default: 3)
//
// Values below 1 are clamped to 1 at construction time: the client always
// performs at least one attempt.
func MaxRetries(attempts int) func(*Client) {
	return func(c *Client) {
		c.MaxAttempts = attempts
	}
}

// Limits sets the safety envelope applied to move commands
// (default: DefaultLimits)
//
// Example:
//
//	limits, err := phosphobot.LoadLimitsFile("limits.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client, _ := phosphobot.NewClient("http://robot.local",
//	    phosphobot.Limits(limits))
func Limits(limits MovementLimits) func(*Client) {
	return func(c *Client) {
		c.Limits = limits
	}
}

// HTTPClient sets a custom HTTP client, replacing the default persistent
// transport. Useful for tests and for callers that need custom TLS or proxy
// configuration. The supplied client should not set its own Timeout; the
// per-attempt timeout is applied through the request context.
func HTTPClient(httpClient *http.Client) func(*Client) {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithLogger configures a custom logger for the client
//
// By default the client uses NoOpLogger, which discards all log messages.
// Use this option to enable logging with DefaultLogger or a custom adapter.
//
// Example:
//
//	logger := phosphobot.NewDefaultLogger(phosphobot.LogLevelInfo)
//	client, _ := phosphobot.NewClient("http://robot.local",
//	    phosphobot.WithLogger(logger))
func WithLogger(logger Logger) func(*Client) {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

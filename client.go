// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2026 Phosphobot

package phosphobot

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"
)

// Default client configuration values
const (
	DefaultBaseURL     = "http://localhost"
	DefaultTimeout     = 5 * time.Second
	DefaultMaxAttempts = 3
)

// EnvBaseURL is the environment variable consulted for the controller base
// URL when none is passed to NewClient.
const EnvBaseURL = "PHOSPHOBOT_BASE_URL"

// Backoff parameters. The delay after failed attempt n doubles from
// BackoffBaseDelay and snaps to BackoffMaxDelay once another doubling would
// pass it: 250ms, 500ms, 1s, 2s, then 5s for every later attempt.
const (
	BackoffBaseDelay = 250 * time.Millisecond
	BackoffMaxDelay  = 5 * time.Second
)

// Transport tuning for the persistent connection to the controller.
const (
	defaultConnectTimeout  = 10 * time.Second
	defaultKeepAlive       = 30 * time.Second
	defaultIdleConnTimeout = 90 * time.Second
)

// Client is an HTTP client for a Phosphobot SO-101 arm controller.
//
// A Client owns one persistent HTTP transport, acquired at construction and
// released exactly once by Close. The exported configuration fields are
// fixed by NewClient and must not be mutated afterwards; the underlying
// transport is safe for concurrent use, so concurrent calls on one Client
// are allowed.
type Client struct {
	// BaseURL is the controller base URL without a trailing slash
	BaseURL string

	// Timeout is the per-attempt request timeout
	Timeout time.Duration

	// MaxAttempts is the maximum number of attempts per request (>= 1)
	MaxAttempts int

	// Limits is the active safety envelope for move commands
	Limits MovementLimits

	// httpClient is the persistent transport handle
	httpClient *http.Client

	// logger receives structured client logs (NoOpLogger by default)
	logger Logger

	// mu guards the closed flag
	mu     sync.Mutex
	closed bool
}

// NewClient creates a new controller client with the specified base URL and
// options.
//
// An empty baseURL falls back to the PHOSPHOBOT_BASE_URL environment
// variable and then to http://localhost. A configured MaxRetries below 1 is
// clamped to 1 rather than rejected, so a client always performs at least
// one attempt.
//
// Example:
//
//	client, err := phosphobot.NewClient(
//	    "http://robot.local",
//	    phosphobot.Timeout(10*time.Second),
//	    phosphobot.MaxRetries(5),
//	    phosphobot.Limits(limits),
//	)
//	if err != nil {
//	    log.Fatal(err)  // Configuration error
//	}
//	defer client.Close()
//
// Returns a configured Client or an error if configuration validation fails.
func NewClient(baseURL string, opts ...func(*Client)) (*Client, error) {
	if baseURL == "" {
		baseURL = os.Getenv(EnvBaseURL)
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := &Client{
		BaseURL:     strings.TrimRight(baseURL, "/"),
		Timeout:     DefaultTimeout,
		MaxAttempts: DefaultMaxAttempts,
		Limits:      DefaultLimits(),
		logger:      &NoOpLogger{},
	}

	// Apply functional options
	for _, opt := range opts {
		opt(client)
	}

	// A client always performs at least one attempt (leniency over
	// construction failure)
	if client.MaxAttempts < 1 {
		client.MaxAttempts = 1
	}

	if err := client.validateConfig(); err != nil {
		return nil, err
	}

	if client.httpClient == nil {
		client.httpClient = &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   defaultConnectTimeout,
					KeepAlive: defaultKeepAlive,
				}).DialContext,
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     defaultIdleConnTimeout,
			},
		}
	}

	client.logger.Info(context.Background(), "phosphobot client created",
		"base_url", client.BaseURL,
		"timeout", client.Timeout.String(),
		"max_attempts", client.MaxAttempts)

	return client, nil
}

// validateConfig validates client configuration at construction time
//
// Validates:
//   - BaseURL parses as an absolute http(s) URL
//   - Timeout is positive
//
// Returns an error if validation fails.
func (c *Client) validateConfig() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL %q: %w", c.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid base URL %q: scheme must be http or https", c.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid base URL %q: missing host", c.BaseURL)
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got: %v", c.Timeout)
	}

	return nil
}

// Backoff calculates the delay inserted after the given failed attempt
// (1-indexed) and before the next one. The delay doubles per attempt from
// BackoffBaseDelay; once another doubling would pass BackoffMaxDelay the
// delay snaps to the ceiling, so attempt 5 and beyond wait the full 5s.
func (c *Client) Backoff(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	delay := BackoffBaseDelay
	for i := 1; i < attempt; i++ {
		delay *= 2
		if delay*2 > BackoffMaxDelay {
			return BackoffMaxDelay
		}
	}
	return delay
}

// Close releases the client's transport resources.
//
// Safe to call multiple times; subsequent calls are no-ops. After Close the
// client must not be used for further operations.
//
// Example:
//
//	client, err := phosphobot.NewClient("http://robot.local")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	c.httpClient.CloseIdleConnections()

	c.logger.Info(context.Background(), "phosphobot client closed",
		"base_url", c.BaseURL)

	return nil
}

// isClosed reports whether Close has been called.
func (c *Client) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

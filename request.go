// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2026 Phosphobot

package phosphobot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// MaxResponseBodySize caps how much of a response body is read (1MB). The
// controller's responses are small JSON objects; anything larger indicates a
// misbehaving endpoint.
const MaxResponseBodySize = 1 * 1024 * 1024

// errorMessageKeys are probed in priority order when extracting a
// human-readable message from an HTTP error body.
var errorMessageKeys = []string{"message", "error", "detail", "reason"}

// do sends one logical request through the retry state machine.
//
// Each attempt runs to completion under its own timeout. Transient failures
// (attempt timeout, connection failure) are retried with exponential backoff
// until MaxAttempts is exhausted, which surfaces as ErrorTimeout carrying
// the attempt count. Non-transient failures (status >= 400, non-object JSON
// body, request-side errors) terminate immediately.
func (c *Client) do(ctx context.Context, operation, method, path string, payload []byte, req Req) (Res, error) {
	if c.isClosed() {
		return Res{}, &ClientError{
			Kind:      ErrorTransport,
			Operation: operation,
			Message:   "client is closed",
			Cause:     fmt.Errorf("operations are not allowed after Close"),
		}
	}

	url := c.BaseURL + "/" + strings.TrimLeft(path, "/")

	timeout := c.Timeout
	if req.Timeout > 0 {
		timeout = req.Timeout
	}

	var lastErr error
	for attempt := 1; attempt <= c.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return Res{}, &ClientError{
				Kind:      ErrorTransport,
				Operation: operation,
				Message:   "request canceled",
				Cause:     err,
			}
		}

		c.logger.Debug(ctx, "phosphobot request",
			"operation", operation,
			"method", method,
			"url", url,
			"payload", string(payload),
			"attempt", attempt,
			"max_attempts", c.MaxAttempts)

		res, err := c.attempt(ctx, operation, method, url, payload, timeout)
		if err == nil {
			c.logger.Debug(ctx, "phosphobot response",
				"operation", operation,
				"status", res.StatusCode,
				"payload", res.Raw)
			return res, nil
		}

		// Terminal failures come back already classified; pass them through
		var cerr *ClientError
		if errors.As(err, &cerr) {
			c.logger.Error(ctx, "phosphobot request failed",
				"operation", operation,
				"url", url,
				"error", err.Error())
			return Res{}, err
		}

		// Raw transport error: retry if transient, otherwise surface it
		if !isTransientError(err) {
			c.logger.Error(ctx, "phosphobot request failed",
				"operation", operation,
				"url", url,
				"error", err.Error())
			return Res{}, &ClientError{
				Kind:      ErrorTransport,
				Operation: operation,
				Message:   "request failed",
				Cause:     err,
			}
		}

		lastErr = err
		if attempt == c.MaxAttempts {
			// Final attempt: no backoff, fall through to timeout error
			break
		}

		backoff := c.Backoff(attempt)
		c.logger.Warn(ctx, "transient error, retrying",
			"operation", operation,
			"attempt", attempt,
			"max_attempts", c.MaxAttempts,
			"backoff", backoff.String(),
			"error", err.Error())

		select {
		case <-time.After(backoff):
			// Backoff complete, continue to next attempt
		case <-ctx.Done():
			return Res{}, &ClientError{
				Kind:      ErrorTransport,
				Operation: operation,
				Message:   "request canceled during backoff",
				Cause:     ctx.Err(),
			}
		}
	}

	c.logger.Error(ctx, "phosphobot request failed after all attempts",
		"operation", operation,
		"url", url,
		"attempts", c.MaxAttempts,
		"error", lastErr.Error())

	message := "request failed repeatedly; check that the controller is reachable"
	if isTimeoutError(lastErr) {
		message = "request timed out repeatedly; check that the controller is reachable and consider increasing the timeout"
	}
	return Res{}, &ClientError{
		Kind:      ErrorTimeout,
		Operation: operation,
		Message:   message,
		Attempts:  c.MaxAttempts,
	}
}

// attempt executes a single HTTP attempt under its own timeout and
// classifies the outcome. Transport-level errors from http.Client.Do are
// returned raw so the retry loop can apply the transient check; everything
// else comes back as a classified *ClientError.
func (c *Client) attempt(ctx context.Context, operation, method, url string, payload []byte, timeout time.Duration) (Res, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(attemptCtx, method, url, body)
	if err != nil {
		return Res{}, &ClientError{
			Kind:      ErrorTransport,
			Operation: operation,
			Message:   "failed to build request",
			Cause:     err,
		}
	}
	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Res{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBodySize))
	if err != nil {
		return Res{}, &ClientError{
			Kind:      ErrorTransport,
			Operation: operation,
			Message:   "failed to read response body",
			Cause:     err,
		}
	}

	if resp.StatusCode >= 400 {
		return Res{}, &ClientError{
			Kind:       ErrorHTTP,
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Message:    extractErrorMessage(raw),
			Body:       bodySnippet(raw),
		}
	}

	if !gjson.ValidBytes(raw) {
		return Res{}, &ClientError{
			Kind:      ErrorDecode,
			Operation: operation,
			Message:   "controller returned a response that is not valid JSON; check the controller logs or update the client",
		}
	}
	if !gjson.ParseBytes(raw).IsObject() {
		return Res{}, &ClientError{
			Kind:      ErrorDecode,
			Operation: operation,
			Message:   "controller returned JSON that is not an object; update the client if the API contract has changed",
		}
	}

	return Res{StatusCode: resp.StatusCode, Raw: string(raw)}, nil
}

// extractErrorMessage pulls a helpful message out of an HTTP error body.
//
// JSON object bodies are probed for the keys message, error, detail and
// reason in priority order; the first string value wins. Otherwise the
// trimmed raw body (capped at 200 characters) is used, and as a last resort
// a generic fallback.
func extractErrorMessage(raw []byte) string {
	if gjson.ValidBytes(raw) {
		parsed := gjson.ParseBytes(raw)
		if parsed.IsObject() {
			for _, key := range errorMessageKeys {
				if v := parsed.Get(key); v.Type == gjson.String {
					return v.String()
				}
			}
		}
	}

	if text := bodySnippet(raw); text != "" {
		return text
	}
	return "controller returned an error"
}

// bodySnippet trims a response body and caps it at MaxBodySnippetLength
// characters so terminal errors stay loggable without a second round-trip.
func bodySnippet(raw []byte) string {
	text := strings.TrimSpace(string(raw))
	if len(text) > MaxBodySnippetLength {
		text = text[:MaxBodySnippetLength]
	}
	return text
}

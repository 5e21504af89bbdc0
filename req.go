// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2026 Phosphobot

package phosphobot

import "time"

// Req represents per-request modifiers applied via functional options.
//
// Operation parameters (the pose) are passed directly to methods; Req only
// carries overrides for a single call.
//
// Example:
//
//	res, err := client.MoveAbsolute(ctx, pose,
//	    phosphobot.RequestTimeout(10*time.Second),
//	    phosphobot.WithLimits(widerLimits))
type Req struct {
	// Timeout is the request-specific per-attempt timeout.
	// Overrides the client default timeout if set.
	Timeout time.Duration

	// Limits overrides the client's safety envelope for this call only.
	Limits *MovementLimits
}

// RequestTimeout returns a request modifier that sets a custom per-attempt
// timeout for the operation, taking precedence over the client's Timeout.
func RequestTimeout(duration time.Duration) func(*Req) {
	return func(req *Req) {
		req.Timeout = duration
	}
}

// WithLimits returns a request modifier that overrides the client's safety
// envelope for a single MoveAbsolute call. The override replaces the
// configured envelope entirely; it is not merged with it.
func WithLimits(limits MovementLimits) func(*Req) {
	return func(req *Req) {
		req.Limits = &limits
	}
}

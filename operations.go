// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2026 Phosphobot

package phosphobot

import (
	"context"
	"net/http"
)

// API paths consumed by the client.
const (
	pathMoveInit     = "/move/init"
	pathMoveAbsolute = "/move/absolute"
)

// MoveInit commands the arm to move into its safe initialization pose.
//
// The request carries no payload and needs no validation; it goes through
// the same retry rules as every other request.
//
// Example:
//
//	res, err := client.MoveInit(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.String())
func (c *Client) MoveInit(ctx context.Context, mods ...func(*Req)) (Res, error) {
	req := Req{}
	for _, mod := range mods {
		mod(&req)
	}

	c.logger.Info(ctx, "requesting move to initialization pose",
		"base_url", c.BaseURL)

	return c.do(ctx, "move_init", http.MethodPost, pathMoveInit, nil, req)
}

// MoveAbsolute commands the arm to an absolute TCP pose and gripper opening.
//
// The pose is validated against the active safety envelope (the WithLimits
// override if supplied, the client's configured limits otherwise) before any
// request is sent; a validation failure returns immediately with no network
// call. On success the validated payload is posted to /move/absolute.
//
// Example:
//
//	res, err := client.MoveAbsolute(ctx, phosphobot.Pose{
//	    XCm:      25,
//	    ZCm:      15,
//	    PitchDeg: -30,
//	    Grip:     50,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
func (c *Client) MoveAbsolute(ctx context.Context, pose Pose, mods ...func(*Req)) (Res, error) {
	req := Req{}
	for _, mod := range mods {
		mod(&req)
	}

	limits := c.Limits
	if req.Limits != nil {
		limits = *req.Limits
	}

	body, err := validateMove(pose, limits)
	if err != nil {
		if cerr, ok := err.(*ClientError); ok {
			cerr.Operation = "move_absolute"
		}
		c.logger.Error(ctx, "move command rejected by validation",
			"error", err.Error())
		return Res{}, err
	}

	payload, err := body.Bytes()
	if err != nil {
		return Res{}, &ClientError{
			Kind:      ErrorTransport,
			Operation: "move_absolute",
			Message:   "failed to build move payload",
			Cause:     err,
		}
	}

	c.logger.Info(ctx, "sending absolute move command",
		"x_cm", pose.XCm,
		"y_cm", pose.YCm,
		"z_cm", pose.ZCm,
		"roll_deg", pose.RollDeg,
		"pitch_deg", pose.PitchDeg,
		"yaw_deg", pose.YawDeg,
		"grip", pose.Grip)

	return c.do(ctx, "move_absolute", http.MethodPost, pathMoveAbsolute, payload, req)
}

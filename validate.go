// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2026 Phosphobot

package phosphobot

import (
	"fmt"
	"math"
)

// Pose is an absolute target for the arm's tool center point plus the
// gripper opening percentage. Position is in centimetres, orientation in
// degrees, grip in percent.
//
// A Pose is a transient value: it is created per call, validated against the
// active MovementLimits and discarded once the request completes.
type Pose struct {
	XCm      float64
	YCm      float64
	ZCm      float64
	RollDeg  float64
	PitchDeg float64
	YawDeg   float64
	Grip     int
}

// validateNumeric ensures a pose field is finite and, if a range is
// configured for its axis, within [min, max]. Bounds are inclusive; a nil
// range means the axis is unconstrained.
func validateNumeric(name string, value float64, r *Range) (float64, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, &ClientError{
			Kind:    ErrorValidation,
			Field:   name,
			Message: fmt.Sprintf("%s must be a finite number", name),
		}
	}
	if r != nil && (value < r.Min || value > r.Max) {
		return 0, &ClientError{
			Kind:  ErrorValidation,
			Field: name,
			Message: fmt.Sprintf("%s=%.2f is outside the safe range [%.2f, %.2f]; adjust the command or update the configured limits",
				name, value, r.Min, r.Max),
		}
	}
	return value, nil
}

// validateGrip ensures the gripper command is within the mandatory grip
// range. Unlike the pose axes, the grip range is never unconstrained.
func validateGrip(grip int, r GripRange) (int, error) {
	if grip < r.Min || grip > r.Max {
		return 0, &ClientError{
			Kind:  ErrorValidation,
			Field: "grip",
			Message: fmt.Sprintf("grip=%d is outside the safe range [%d, %d]; adjust the command or update the configured limits",
				grip, r.Min, r.Max),
		}
	}
	return grip, nil
}

// validateMove checks every pose field against the limits and builds the
// wire payload. Fields are checked in a fixed order (x, y, z, roll, pitch,
// yaw, grip) and the first failure wins; no partial payload is ever
// returned. This runs entirely locally, before any request is sent.
func validateMove(pose Pose, limits MovementLimits) (Body, error) {
	fields := []struct {
		name  string
		value float64
	}{
		{"x_cm", pose.XCm},
		{"y_cm", pose.YCm},
		{"z_cm", pose.ZCm},
		{"roll_deg", pose.RollDeg},
		{"pitch_deg", pose.PitchDeg},
		{"yaw_deg", pose.YawDeg},
	}

	body := Body{}
	for _, f := range fields {
		value, err := validateNumeric(f.name, f.value, limits.RangeFor(f.name))
		if err != nil {
			return Body{}, err
		}
		body = body.Set(f.name, value)
	}

	grip, err := validateGrip(pose.Grip, limits.Grip)
	if err != nil {
		return Body{}, err
	}
	body = body.Set("grip", grip)

	return body, nil
}

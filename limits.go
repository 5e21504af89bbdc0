// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2026 Phosphobot

package phosphobot

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Range is an inclusive [Min, Max] interval.
type Range struct {
	Min float64
	Max float64
}

// GripRange is an inclusive integer [Min, Max] interval for the gripper
// opening percentage.
type GripRange struct {
	Min int
	Max int
}

// MovementLimits is the safety envelope applied to move commands: optional
// per-axis ranges for the TCP position (centimetres) and orientation
// (degrees), plus a mandatory range for the gripper percentage.
//
// A nil axis range means that axis is unconstrained. The struct is a plain
// immutable value: construct it once (or use DefaultLimits) and pass it into
// the client; never mutate it afterwards.
type MovementLimits struct {
	XCm      *Range
	YCm      *Range
	ZCm      *Range
	RollDeg  *Range
	PitchDeg *Range
	YawDeg   *Range
	Grip     GripRange
}

// DefaultLimits returns the documented default safety envelope:
// x,y in [-80,80] cm, z in [0,90] cm, each angle in [-180,180] deg and
// grip in [0,100] %.
func DefaultLimits() MovementLimits {
	return MovementLimits{
		XCm:      &Range{Min: -80, Max: 80},
		YCm:      &Range{Min: -80, Max: 80},
		ZCm:      &Range{Min: 0, Max: 90},
		RollDeg:  &Range{Min: -180, Max: 180},
		PitchDeg: &Range{Min: -180, Max: 180},
		YawDeg:   &Range{Min: -180, Max: 180},
		Grip:     GripRange{Min: 0, Max: 100},
	}
}

// RangeFor returns the configured range for the named pose axis, or nil if
// the axis is unconstrained. Valid axis names are the wire field names:
// x_cm, y_cm, z_cm, roll_deg, pitch_deg, yaw_deg.
func (l MovementLimits) RangeFor(axis string) *Range {
	switch axis {
	case "x_cm":
		return l.XCm
	case "y_cm":
		return l.YCm
	case "z_cm":
		return l.ZCm
	case "roll_deg":
		return l.RollDeg
	case "pitch_deg":
		return l.PitchDeg
	case "yaw_deg":
		return l.YawDeg
	default:
		return nil
	}
}

// limitsDoc is the on-disk shape of a limits document. Axis entries may be
// null (or absent) to leave that axis unconstrained; grip may be absent to
// keep the default grip range.
type limitsDoc struct {
	XCm      *rangeDoc `yaml:"x_cm"`
	YCm      *rangeDoc `yaml:"y_cm"`
	ZCm      *rangeDoc `yaml:"z_cm"`
	RollDeg  *rangeDoc `yaml:"roll_deg"`
	PitchDeg *rangeDoc `yaml:"pitch_deg"`
	YawDeg   *rangeDoc `yaml:"yaw_deg"`
	Grip     *gripDoc  `yaml:"grip"`
}

type rangeDoc struct {
	Min *float64 `yaml:"min"`
	Max *float64 `yaml:"max"`
}

type gripDoc struct {
	Min *int `yaml:"min"`
	Max *int `yaml:"max"`
}

// ParseLimits parses a limits document and validates every supplied range.
//
// The document format is YAML (JSON documents parse unchanged):
//
//	x_cm: {min: -40, max: 40}
//	y_cm: {min: -40, max: 40}
//	z_cm: null
//	grip: {min: 0, max: 80}
//
// Construction fails only if a supplied range is incomplete or has
// min > max; this surfaces misconfiguration at load time, not at call time.
func ParseLimits(data []byte) (MovementLimits, error) {
	var doc limitsDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return MovementLimits{}, fmt.Errorf("failed to parse limits document: %w", err)
	}

	limits := MovementLimits{Grip: DefaultLimits().Grip}

	axes := []struct {
		name string
		doc  *rangeDoc
		dst  **Range
	}{
		{"x_cm", doc.XCm, &limits.XCm},
		{"y_cm", doc.YCm, &limits.YCm},
		{"z_cm", doc.ZCm, &limits.ZCm},
		{"roll_deg", doc.RollDeg, &limits.RollDeg},
		{"pitch_deg", doc.PitchDeg, &limits.PitchDeg},
		{"yaw_deg", doc.YawDeg, &limits.YawDeg},
	}
	for _, axis := range axes {
		if axis.doc == nil {
			// Absent or null: axis is unconstrained
			continue
		}
		if axis.doc.Min == nil || axis.doc.Max == nil {
			return MovementLimits{}, fmt.Errorf("limits for %q require numeric min and max values", axis.name)
		}
		if *axis.doc.Min > *axis.doc.Max {
			return MovementLimits{}, fmt.Errorf("limits for %q have min (%.2f) greater than max (%.2f)",
				axis.name, *axis.doc.Min, *axis.doc.Max)
		}
		*axis.dst = &Range{Min: *axis.doc.Min, Max: *axis.doc.Max}
	}

	if doc.Grip != nil {
		if doc.Grip.Min == nil || doc.Grip.Max == nil {
			return MovementLimits{}, fmt.Errorf("limits for \"grip\" require integer min and max values")
		}
		if *doc.Grip.Min > *doc.Grip.Max {
			return MovementLimits{}, fmt.Errorf("limits for \"grip\" have min (%d) greater than max (%d)",
				*doc.Grip.Min, *doc.Grip.Max)
		}
		limits.Grip = GripRange{Min: *doc.Grip.Min, Max: *doc.Grip.Max}
	}

	return limits, nil
}

// LoadLimitsFile reads and parses a limits document from disk.
func LoadLimitsFile(path string) (MovementLimits, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return MovementLimits{}, fmt.Errorf("failed to read limits file: %w", err)
	}
	return ParseLimits(data)
}

// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2026 Phosphobot

package phosphobot

import (
	"testing"

	"github.com/tidwall/gjson"
)

// TestBodySet tests building a payload with chained Set calls
func TestBodySet(t *testing.T) {
	body := Body{}.
		Set("x_cm", 25.0).
		Set("z_cm", 15.0).
		Set("grip", 50)

	payload, err := body.String()
	if err != nil {
		t.Fatalf("String() unexpected error: %v", err)
	}

	if gjson.Get(payload, "x_cm").Float() != 25 {
		t.Errorf("x_cm = %v, want 25", gjson.Get(payload, "x_cm").Value())
	}
	if gjson.Get(payload, "grip").Int() != 50 {
		t.Errorf("grip = %v, want 50", gjson.Get(payload, "grip").Value())
	}
	if !gjson.Parse(payload).IsObject() {
		t.Errorf("payload is not an object: %s", payload)
	}
}

// TestBodyDelete tests removing a field
func TestBodyDelete(t *testing.T) {
	body := Body{}.
		Set("x_cm", 1.0).
		Set("y_cm", 2.0).
		Delete("y_cm")

	payload, err := body.String()
	if err != nil {
		t.Fatalf("String() unexpected error: %v", err)
	}
	if gjson.Get(payload, "y_cm").Exists() {
		t.Errorf("y_cm still present after Delete: %s", payload)
	}
	if !gjson.Get(payload, "x_cm").Exists() {
		t.Errorf("x_cm missing after Delete of other field: %s", payload)
	}
}

// TestBodyErrorLatch tests that errors short-circuit later operations
func TestBodyErrorLatch(t *testing.T) {
	// An empty path is invalid for sjson and latches an error
	body := Body{}.Set("", 1).Set("x_cm", 25.0)

	if body.Err() == nil {
		t.Fatal("Err() = nil, want latched error")
	}
	if _, err := body.String(); err == nil {
		t.Error("String() error = nil, want latched error")
	}
	if _, err := body.Bytes(); err == nil {
		t.Error("Bytes() error = nil, want latched error")
	}
}

// TestBodyBytes tests the byte slice accessor
func TestBodyBytes(t *testing.T) {
	data, err := Body{}.Set("grip", 10).Bytes()
	if err != nil {
		t.Fatalf("Bytes() unexpected error: %v", err)
	}
	if gjson.GetBytes(data, "grip").Int() != 10 {
		t.Errorf("grip = %v, want 10", gjson.GetBytes(data, "grip").Value())
	}
}

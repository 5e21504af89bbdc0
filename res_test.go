// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2026 Phosphobot

package phosphobot

import "testing"

// TestResGetValue tests gjson path lookups on a response
func TestResGetValue(t *testing.T) {
	res := Res{
		StatusCode: 200,
		Raw:        `{"status":"moved","pose":{"x_cm":25,"grip":50}}`,
	}

	if got := res.GetValue("status").String(); got != "moved" {
		t.Errorf("GetValue(status) = %q, want moved", got)
	}
	if got := res.GetValue("pose.x_cm").Float(); got != 25 {
		t.Errorf("GetValue(pose.x_cm) = %v, want 25", got)
	}
	if got := res.GetValue("pose.grip").Int(); got != 50 {
		t.Errorf("GetValue(pose.grip) = %v, want 50", got)
	}
	if res.GetValue("missing").Exists() {
		t.Error("GetValue(missing) should not exist")
	}
}

// TestResString tests the raw body accessor
func TestResString(t *testing.T) {
	res := Res{StatusCode: 200, Raw: `{"ok":true}`}
	if res.String() != `{"ok":true}` {
		t.Errorf("String() = %q, want raw body", res.String())
	}
}

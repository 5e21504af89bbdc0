// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2026 Phosphobot

package phosphobot

import "github.com/tidwall/gjson"

// Res represents a decoded controller response. Raw always holds a JSON
// object; responses whose bodies are not JSON objects never produce a Res,
// they produce a decode error instead.
type Res struct {
	// StatusCode is the HTTP status of the response
	StatusCode int

	// Raw is the response body (a JSON object)
	Raw string
}

// GetValue retrieves a value from the response body using a gjson path.
//
// Example:
//
//	res, err := client.MoveInit(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	status := res.GetValue("status").String()
func (r Res) GetValue(path string) gjson.Result {
	return gjson.Get(r.Raw, path)
}

// String returns the raw response body.
func (r Res) String() string {
	return r.Raw
}

// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2026 Phosphobot

package phosphobot

import (
	"fmt"

	"github.com/tidwall/sjson"
)

// Body provides a fluent interface for building JSON payloads using sjson
// for path-based manipulation. The client uses it internally to assemble
// validated move payloads; it is exported so callers can build custom
// command bodies the same way.
//
// The builder tracks errors internally to enable method chaining while
// providing error checking through String() or Err().
//
// Example:
//
//	body := phosphobot.Body{}.
//	    Set("x_cm", 25.0).
//	    Set("z_cm", 15.0).
//	    Set("grip", 50)
//
//	payload, err := body.String()
//	if err != nil {
//	    log.Fatal(err)
//	}
type Body struct {
	// str contains the JSON string being built
	str string
	// err tracks the first error encountered during building
	err error
}

// Set sets a value at the specified JSON path and returns a new Body
//
// The path uses dot notation for nested fields. If an error occurs, it is
// stored and returned by String() or Err(); subsequent operations become
// no-ops that preserve the error.
//
// Returns the Body for method chaining.
func (b Body) Set(path string, value any) Body {
	// Short-circuit if already in error state
	if b.err != nil {
		return b
	}

	result, err := sjson.Set(b.str, path, value)
	if err != nil {
		return Body{str: b.str, err: fmt.Errorf("Set(%q): %w", path, err)}
	}
	return Body{str: result}
}

// Delete removes a value at the specified JSON path and returns a new Body
//
// Returns the Body for method chaining.
func (b Body) Delete(path string) Body {
	if b.err != nil {
		return b
	}

	result, err := sjson.Delete(b.str, path)
	if err != nil {
		return Body{str: b.str, err: fmt.Errorf("Delete(%q): %w", path, err)}
	}
	return Body{str: result}
}

// String returns the JSON string representation and any error encountered
// during building.
func (b Body) String() (string, error) {
	return b.str, b.err
}

// Err returns any error that occurred during the building process
func (b Body) Err() error {
	return b.err
}

// Bytes returns the JSON byte slice representation and any error
// encountered during building.
func (b Body) Bytes() ([]byte, error) {
	if b.err != nil {
		return nil, b.err
	}
	return []byte(b.str), nil
}

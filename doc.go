// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2026 Phosphobot

// Package phosphobot is an HTTP client for Phosphobot-controlled SO-101
// robotic arms.
//
// The client validates every move command against a configurable safety
// envelope before transmission, retries transient transport failures with
// exponential backoff, and maps every failure path to a flat, typed error
// taxonomy.
//
// # Basic usage
//
//	client, err := phosphobot.NewClient("http://robot.local")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	ctx := context.Background()
//	if _, err := client.MoveInit(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := client.MoveAbsolute(ctx, phosphobot.Pose{
//	    XCm: 25, ZCm: 15, PitchDeg: -30, Grip: 50,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.GetValue("status").String())
//
// # Safety envelope
//
// Movement limits default to the documented SO-101 working envelope and can
// be replaced per client (the Limits option) or per call (the WithLimits
// request modifier). Limits documents in YAML or JSON are loaded with
// LoadLimitsFile; range violations are rejected at load time.
//
// # Error handling
//
// All operations return *ClientError with a Kind tag discriminating
// validation, HTTP, timeout, decode and transport failures. Validation
// failures never reach the network; HTTP and decode failures are never
// retried; timeouts and connection failures are retried up to the configured
// maximum attempts with exponential backoff (250ms doubling per attempt,
// capped at 5s from the fifth attempt on).
//
// # Concurrency
//
// A Client owns one persistent HTTP transport that is safe for concurrent
// use. Each operation blocks its caller until success or terminal failure;
// backoff delays block the calling goroutine.
package phosphobot

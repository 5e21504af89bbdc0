// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2026 Phosphobot

package phosphobot

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
)

// TestConcurrentMoves tests that one client handles concurrent calls safely.
// The transport is shared and safe for concurrent use; each call still
// blocks its own goroutine until success or terminal failure.
func TestConcurrentMoves(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Write([]byte(`{"status":"moved"}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := client.MoveAbsolute(context.Background(), Pose{XCm: 10, ZCm: 20, Grip: 50})
			errs[i] = err
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Errorf("worker %d: unexpected error: %v", i, err)
		}
	}
	if got := requests.Load(); got != workers {
		t.Errorf("request count = %d, want %d", got, workers)
	}
}

// TestConcurrentClose tests that Close races cleanly with itself
func TestConcurrentClose(t *testing.T) {
	client, err := NewClient("http://robot.local")
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := client.Close(); err != nil {
				t.Errorf("Close() error: %v", err)
			}
		}()
	}
	wg.Wait()
}

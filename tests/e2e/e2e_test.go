// Copyright 2026 ChurchOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package e2e

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"
)

// TestStatusEndpoint verifies the service reports itself alive without authentication.
func TestStatusEndpoint(t *testing.T) {
	client := &http.Client{Timeout: 10 * time.Second}

	resp, err := client.Get(testBaseURL() + "/api/v0/status")
	if err != nil {
		t.Fatalf("failed to get status: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var status struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		t.Fatalf("failed to decode status response: %v", err)
	}
	if status.Status != "ok" {
		t.Errorf("expected status ok, got %s", status.Status)
	}
}

// TestHTTPAuthentication tests that admin endpoints require authentication
func TestHTTPAuthentication(t *testing.T) {
	client := &http.Client{Timeout: 10 * time.Second}
	ctx := context.Background()

	t.Run("Request Without Auth Should Fail", func(t *testing.T) {
		req, err := http.NewRequestWithContext(ctx, "GET", testBaseURL()+"/api/v0/tenants", nil)
		if err != nil {
			t.Fatalf("failed to create request: %v", err)
		}

		resp, err := client.Do(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusOK {
			t.Error("expected non-OK status when calling without authentication")
		}
	})

	t.Run("Request With Auth Should Succeed", func(t *testing.T) {
		token, err := getAuthToken(ctx)
		if err != nil {
			t.Fatalf("failed to get token: %v", err)
		}

		req, err := http.NewRequestWithContext(ctx, "GET", testBaseURL()+"/api/v0/tenants", nil)
		if err != nil {
			t.Fatalf("failed to create request: %v", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := client.Do(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Errorf("expected status 200 with valid token, got %d", resp.StatusCode)
		}
	})
}

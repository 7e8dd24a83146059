// Copyright 2026 ChurchOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"
)

var (
	cachedToken string
	tokenExpiry time.Time
	tokenMutex  sync.RWMutex
)

// getAuthToken returns a JWT token either from environment or by exchanging client credentials.
// Tokens are cached to avoid unnecessary token endpoint requests.
func getAuthToken(ctx context.Context) (string, error) {
	// Check cache first (read lock)
	tokenMutex.RLock()
	if cachedToken != "" && time.Now().Before(tokenExpiry) {
		defer tokenMutex.RUnlock()
		return cachedToken, nil
	}
	tokenMutex.RUnlock()

	// Acquire write lock for token refresh
	tokenMutex.Lock()
	defer tokenMutex.Unlock()

	// Double-check after acquiring write lock (another goroutine may have refreshed)
	if cachedToken != "" && time.Now().Before(tokenExpiry) {
		return cachedToken, nil
	}

	// Use JWT token from environment if provided
	if token := os.Getenv("JWT_TOKEN"); token != "" {
		// JWT tokens from env should also be cached, set reasonable cache duration
		cachedToken = token
		tokenExpiry = time.Now().Add(5 * time.Minute)
		return token, nil
	}

	// Otherwise, use client credentials from env or test globals
	cID := os.Getenv("CLIENT_ID")
	if cID == "" {
		cID = clientId
	}
	cSecret := os.Getenv("CLIENT_SECRET")
	if cSecret == "" {
		cSecret = clientSecret
	}

	if cID == "" || cSecret == "" {
		return "", fmt.Errorf("no authentication credentials available")
	}

	// Exchange for token
	token, expiresIn, err := getJWTTokenWithExpiry(ctx, cID, cSecret)
	if err != nil {
		return "", err
	}

	// Cache with safety margin (refresh 60 seconds before actual expiry)
	cachedToken = token
	safetyMargin := 60
	if expiresIn > safetyMargin {
		tokenExpiry = time.Now().Add(time.Duration(expiresIn-safetyMargin) * time.Second)
	} else {
		tokenExpiry = time.Now().Add(time.Duration(expiresIn) * time.Second)
	}

	return token, nil
}

// Tenant mirrors the wire representation the admin API returns.
type Tenant struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

// TenantUser mirrors the wire representation of a tenant member.
type TenantUser struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// adminClient drives the admin JSON API with Bearer token authentication.
type adminClient struct {
	baseURL  string
	http     *http.Client
	getToken func(context.Context) (string, error)
}

func newAdminClient(baseURL string) *adminClient {
	return &adminClient{
		baseURL:  baseURL,
		http:     &http.Client{Timeout: 10 * time.Second},
		getToken: getAuthToken,
	}
}

func testBaseURL() string {
	if baseURL := os.Getenv("HTTP_BASE_URL"); baseURL != "" {
		return baseURL
	}
	if testEnv != nil {
		return testEnv.BaseURL
	}
	return defaultBaseURL
}

func (c *adminClient) do(ctx context.Context, method, path string, body, out interface{}) (int, error) {
	var reqBody *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	token, err := c.getToken(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get token: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
			return resp.StatusCode, fmt.Errorf("%s (status %d)", apiErr.Message, resp.StatusCode)
		}
		return resp.StatusCode, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return resp.StatusCode, nil
}

func (c *adminClient) CreateTenant(ctx context.Context, name string) (string, error) {
	var tenant Tenant
	_, err := c.do(ctx, "POST", "/api/v0/tenants", map[string]string{"name": name}, &tenant)
	if err != nil {
		return "", err
	}
	return tenant.ID, nil
}

func (c *adminClient) ListTenants(ctx context.Context) ([]Tenant, error) {
	var tenants []Tenant
	_, err := c.do(ctx, "GET", "/api/v0/tenants", nil, &tenants)
	return tenants, err
}

func (c *adminClient) UpdateTenant(ctx context.Context, id, name string) error {
	_, err := c.do(ctx, "PATCH", "/api/v0/tenants/"+id, map[string]string{"name": name}, nil)
	return err
}

func (c *adminClient) SetTenantEnabled(ctx context.Context, id string, enabled bool) error {
	_, err := c.do(ctx, "PATCH", "/api/v0/tenants/"+id, map[string]bool{"enabled": enabled}, nil)
	return err
}

func (c *adminClient) DeleteTenant(ctx context.Context, id string) error {
	_, err := c.do(ctx, "DELETE", "/api/v0/tenants/"+id, nil, nil)
	return err
}

func (c *adminClient) ListTenantUsers(ctx context.Context, tenantID string) ([]TenantUser, error) {
	var users []TenantUser
	_, err := c.do(ctx, "GET", "/api/v0/tenants/"+tenantID+"/users", nil, &users)
	return users, err
}

func (c *adminClient) ProvisionUser(ctx context.Context, tenantID, email, role string) error {
	_, err := c.do(ctx, "POST", "/api/v0/tenants/"+tenantID+"/users",
		map[string]string{"email": email, "role": role}, nil)
	return err
}

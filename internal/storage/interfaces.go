// Copyright 2025 ChurchOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/churchops/appcontext-service/internal/types"
)

type StorageInterface interface {
	// Tenants
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	UpdateTenant(ctx context.Context, tenant *types.Tenant, paths []string) error
	DeleteTenant(ctx context.Context, id string) error
	SetTenantStatus(ctx context.Context, id string, enabled bool) error

	// Memberships
	AddMember(ctx context.Context, tenantID, identityID, role string) (string, error)
	UpdateMember(ctx context.Context, tenantID, identityID, role string) error
	RemoveMember(ctx context.Context, tenantID, identityID string) error
	HasMembership(ctx context.Context, identityID, tenantID string) (bool, error)
	ListMembershipsByIdentityID(ctx context.Context, identityID string) ([]*types.Membership, error)
	ListMembersByTenantID(ctx context.Context, tenantID string) ([]*types.Membership, error)
	ListActiveTenantsByIdentityID(ctx context.Context, identityID string) ([]*types.Tenant, error)
	SetPrimaryMembership(ctx context.Context, identityID, tenantID string) error

	// Permissions
	ListPermissionsByIdentityID(ctx context.Context, identityID string) ([]string, error)

	// Navigation entries
	ListNavigationEntriesByType(ctx context.Context, navType string) ([]*types.NavigationEntry, error)
	GetNavigationEntryByID(ctx context.Context, id string) (*types.NavigationEntry, error)
	CreateNavigationEntry(ctx context.Context, e *types.NavigationEntry) (*types.NavigationEntry, error)
	UpdateNavigationEntry(ctx context.Context, e *types.NavigationEntry, paths []string) error
	DeleteNavigationEntry(ctx context.Context, id string) error
	SwapNavigationPositions(ctx context.Context, idA, idB string) error

	// Sessions
	CreateSession(ctx context.Context, s *types.Session) (*types.Session, error)
	GetSessionByToken(ctx context.Context, token string) (*types.Session, error)
	SetSessionActiveTenant(ctx context.Context, token, tenantID string) error
	ClearSessionActiveTenant(ctx context.Context, token string) error
	DeleteSession(ctx context.Context, token string) error
	DeleteExpiredSessions(ctx context.Context) (int64, error)
}

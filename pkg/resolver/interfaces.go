// Copyright 2026 ChurchOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package resolver

import (
	"context"

	"github.com/churchops/appcontext-service/internal/types"
)

// DirectoryInterface is the slice of tenant storage the resolver needs.
type DirectoryInterface interface {
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	HasMembership(ctx context.Context, identityID, tenantID string) (bool, error)
	ListMembershipsByIdentityID(ctx context.Context, identityID string) ([]*types.Membership, error)
}

// AuthzInterface is the slice of the relation store the resolver needs.
// With authorization disabled the noop client answers every check with true.
type AuthzInterface interface {
	CheckTenantAccess(ctx context.Context, tenantID, identityID, relation string) (bool, error)
}

// SessionStateInterface is the per-session active tenant value. It is the
// only state the resolver mutates.
type SessionStateInterface interface {
	ActiveTenantID() string
	SetActiveTenant(ctx context.Context, tenantID string) error
	ClearActiveTenant(ctx context.Context) error
}

type ResolverInterface interface {
	Resolve(ctx context.Context, identityID string, sess SessionStateInterface, override string) *types.Tenant
}

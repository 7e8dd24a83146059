// Copyright 2026 ChurchOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"

	ory "github.com/ory/client-go"

	"github.com/churchops/appcontext-service/internal/openfga"
	"github.com/churchops/appcontext-service/internal/types"
)

type ServiceInterface interface {
	CreateTenant(ctx context.Context, name string) (*types.Tenant, error)
	GetTenant(ctx context.Context, id string) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	UpdateTenant(ctx context.Context, tenant *types.Tenant, paths []string) (*types.Tenant, error)
	DeleteTenant(ctx context.Context, id string) error

	InviteMember(ctx context.Context, tenantID, email, role string) (string, string, error)
	ProvisionUser(ctx context.Context, tenantID, email, role string) error
	RemoveMember(ctx context.Context, tenantID, identityID string) error
	UpdateTenantUser(ctx context.Context, tenantID, identityID, role string) (*types.TenantUser, error)
	ListTenantUsers(ctx context.Context, tenantID string) ([]*types.TenantUser, error)
	SetPrimaryTenant(ctx context.Context, identityID, tenantID string) error
}

type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	UpdateTenant(ctx context.Context, tenant *types.Tenant, paths []string) error
	DeleteTenant(ctx context.Context, id string) error

	AddMember(ctx context.Context, tenantID, identityID, role string) (string, error)
	UpdateMember(ctx context.Context, tenantID, identityID, role string) error
	RemoveMember(ctx context.Context, tenantID, identityID string) error
	ListMembersByTenantID(ctx context.Context, tenantID string) ([]*types.Membership, error)
	SetPrimaryMembership(ctx context.Context, identityID, tenantID string) error
}

type AuthzInterface interface {
	Check(ctx context.Context, user, relation, object string, tuples ...openfga.Tuple) (bool, error)
	CheckTenantAccess(ctx context.Context, tenantID, identityID, relation string) (bool, error)
	AssignTenantOwner(ctx context.Context, tenantID, identityID string) error
	AssignTenantMember(ctx context.Context, tenantID, identityID string) error
	RemoveTenantOwner(ctx context.Context, tenantID, identityID string) error
	RemoveTenantMember(ctx context.Context, tenantID, identityID string) error
	DeleteTenant(ctx context.Context, tenantID string) error
}

type KratosClientInterface interface {
	GetIdentityIDByEmail(ctx context.Context, email string) (string, error)
	CreateIdentity(ctx context.Context, email string) (string, error)
	GetIdentity(ctx context.Context, id string) (*ory.Identity, error)
	CreateRecoveryLink(ctx context.Context, identityID string, expiresIn string) (string, string, error)
}

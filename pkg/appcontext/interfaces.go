// Copyright 2026 ChurchOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package appcontext

import (
	"context"

	"github.com/churchops/appcontext-service/internal/types"
	"github.com/churchops/appcontext-service/pkg/resolver"
)

type ServiceInterface interface {
	Build(ctx context.Context, identityID string, sess resolver.SessionStateInterface, override string) (*Context, error)
	SwitchTenant(ctx context.Context, identityID string, sess resolver.SessionStateInterface, tenantID string) (*types.Tenant, error)
	MyTenants(ctx context.Context, identityID string) ([]*types.Tenant, error)
}

type StorageInterface interface {
	ListActiveTenantsByIdentityID(ctx context.Context, identityID string) ([]*types.Tenant, error)
}

// NavigationInterface is the read side of the navigation service.
type NavigationInterface interface {
	NavigationForIdentity(ctx context.Context, identityID, navType string) ([]*types.AssembledNode, error)
	PermissionsForIdentity(ctx context.Context, identityID string) ([]string, error)
}

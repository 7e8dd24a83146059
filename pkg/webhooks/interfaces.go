// Copyright 2026 ChurchOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/ory/hydra/v2/oauth2"

	"github.com/churchops/appcontext-service/internal/types"
)

type ServiceInterface interface {
	HandleRegistration(ctx context.Context, identityID, email string) error
	HandleTokenHook(ctx context.Context, req *oauth2.TokenHookRequest) (*TokenHookResponse, error)
}

type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	AddMember(ctx context.Context, tenantID, identityID, role string) (string, error)
	ListActiveTenantsByIdentityID(ctx context.Context, identityID string) ([]*types.Tenant, error)
}

type AuthorizerInterface interface {
	AssignTenantOwner(ctx context.Context, tenantID, identityID string) error
}

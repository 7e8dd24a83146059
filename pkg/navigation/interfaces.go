// Copyright 2026 ChurchOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package navigation

import (
	"context"

	"github.com/churchops/appcontext-service/internal/types"
)

type ServiceInterface interface {
	NavigationForIdentity(ctx context.Context, identityID, navType string) ([]*types.AssembledNode, error)
	PermissionsForIdentity(ctx context.Context, identityID string) ([]string, error)

	ListEntries(ctx context.Context, navType string) ([]*types.NavigationEntry, error)
	GetEntry(ctx context.Context, id string) (*types.NavigationEntry, error)
	CreateEntry(ctx context.Context, e *types.NavigationEntry) (*types.NavigationEntry, error)
	UpdateEntry(ctx context.Context, e *types.NavigationEntry, paths []string) (*types.NavigationEntry, error)
	DeleteEntry(ctx context.Context, id string) error
	Reorder(ctx context.Context, idA, idB string) error
}

type StorageInterface interface {
	ListPermissionsByIdentityID(ctx context.Context, identityID string) ([]string, error)
	ListNavigationEntriesByType(ctx context.Context, navType string) ([]*types.NavigationEntry, error)
	GetNavigationEntryByID(ctx context.Context, id string) (*types.NavigationEntry, error)
	CreateNavigationEntry(ctx context.Context, e *types.NavigationEntry) (*types.NavigationEntry, error)
	UpdateNavigationEntry(ctx context.Context, e *types.NavigationEntry, paths []string) error
	DeleteNavigationEntry(ctx context.Context, id string) error
	SwapNavigationPositions(ctx context.Context, idA, idB string) error
}

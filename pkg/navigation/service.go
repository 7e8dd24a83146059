// Copyright 2026 ChurchOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package navigation

import (
	"context"

	"github.com/churchops/appcontext-service/internal/logging"
	"github.com/churchops/appcontext-service/internal/monitoring"
	"github.com/churchops/appcontext-service/internal/tracing"
	"github.com/churchops/appcontext-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// NavigationForIdentity loads the identity's effective permissions and the
// enabled entries of the given type, then assembles the visible tree.
func (s *Service) NavigationForIdentity(ctx context.Context, identityID, navType string) ([]*types.AssembledNode, error) {
	ctx, span := s.tracer.Start(ctx, "navigation.Service.NavigationForIdentity")
	defer span.End()

	permissions, err := s.storage.ListPermissionsByIdentityID(ctx, identityID)
	if err != nil {
		return nil, err
	}

	entries, err := s.storage.ListNavigationEntriesByType(ctx, navType)
	if err != nil {
		return nil, err
	}

	enabled := make([]*types.NavigationEntry, 0, len(entries))
	for _, e := range entries {
		if e.Enabled {
			enabled = append(enabled, e)
		}
	}

	return Assemble(permissions, enabled, navType), nil
}

func (s *Service) PermissionsForIdentity(ctx context.Context, identityID string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "navigation.Service.PermissionsForIdentity")
	defer span.End()

	return s.storage.ListPermissionsByIdentityID(ctx, identityID)
}

func (s *Service) ListEntries(ctx context.Context, navType string) ([]*types.NavigationEntry, error) {
	ctx, span := s.tracer.Start(ctx, "navigation.Service.ListEntries")
	defer span.End()

	return s.storage.ListNavigationEntriesByType(ctx, navType)
}

func (s *Service) GetEntry(ctx context.Context, id string) (*types.NavigationEntry, error) {
	ctx, span := s.tracer.Start(ctx, "navigation.Service.GetEntry")
	defer span.End()

	return s.storage.GetNavigationEntryByID(ctx, id)
}

func (s *Service) CreateEntry(ctx context.Context, e *types.NavigationEntry) (*types.NavigationEntry, error) {
	ctx, span := s.tracer.Start(ctx, "navigation.Service.CreateEntry")
	defer span.End()

	return s.storage.CreateNavigationEntry(ctx, e)
}

func (s *Service) UpdateEntry(ctx context.Context, e *types.NavigationEntry, paths []string) (*types.NavigationEntry, error) {
	ctx, span := s.tracer.Start(ctx, "navigation.Service.UpdateEntry")
	defer span.End()

	if err := s.storage.UpdateNavigationEntry(ctx, e, paths); err != nil {
		return nil, err
	}

	return s.storage.GetNavigationEntryByID(ctx, e.ID)
}

func (s *Service) DeleteEntry(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "navigation.Service.DeleteEntry")
	defer span.End()

	return s.storage.DeleteNavigationEntry(ctx, id)
}

// Reorder swaps the position values of two entries, the administrative
// counterpart of the read-only assembler.
func (s *Service) Reorder(ctx context.Context, idA, idB string) error {
	ctx, span := s.tracer.Start(ctx, "navigation.Service.Reorder")
	defer span.End()

	return s.storage.SwapNavigationPositions(ctx, idA, idB)
}

func NewService(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}

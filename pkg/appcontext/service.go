// Copyright 2026 ChurchOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package appcontext aggregates the per-request view of the application:
// the active tenant, the permission-filtered navigation trees and the
// caller's effective permissions. It is the first call a frontend makes
// after login and again after every tenant switch.
package appcontext

import (
	"context"
	"errors"

	"github.com/churchops/appcontext-service/internal/logging"
	"github.com/churchops/appcontext-service/internal/monitoring"
	"github.com/churchops/appcontext-service/internal/tracing"
	"github.com/churchops/appcontext-service/internal/types"
	"github.com/churchops/appcontext-service/pkg/resolver"
)

// ErrSwitchDenied is returned when the requested tenant cannot be
// activated for the caller.
var ErrSwitchDenied = errors.New("tenant switch denied")

type Navigation struct {
	Main   []*types.AssembledNode `json:"main"`
	Footer []*types.AssembledNode `json:"footer"`
	User   []*types.AssembledNode `json:"user"`
}

type Context struct {
	Tenant      *types.Tenant `json:"tenant,omitempty"`
	Navigation  Navigation    `json:"navigation"`
	Permissions []string      `json:"permissions"`
}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	resolver   resolver.ResolverInterface
	navigation NavigationInterface
	storage    StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Build resolves the active tenant and assembles the full context
// payload. Tenant resolution degrades to no tenant, navigation and
// permission loading do not.
func (s *Service) Build(ctx context.Context, identityID string, sess resolver.SessionStateInterface, override string) (*Context, error) {
	ctx, span := s.tracer.Start(ctx, "appcontext.Service.Build")
	defer span.End()

	tenant := s.resolver.Resolve(ctx, identityID, sess, override)

	permissions, err := s.navigation.PermissionsForIdentity(ctx, identityID)
	if err != nil {
		return nil, err
	}

	var nav Navigation
	for _, target := range []struct {
		navType string
		dest    *[]*types.AssembledNode
	}{
		{types.NavTypeMain, &nav.Main},
		{types.NavTypeFooter, &nav.Footer},
		{types.NavTypeUser, &nav.User},
	} {
		nodes, err := s.navigation.NavigationForIdentity(ctx, identityID, target.navType)
		if err != nil {
			return nil, err
		}
		*target.dest = nodes
	}

	return &Context{
		Tenant:      tenant,
		Navigation:  nav,
		Permissions: permissions,
	}, nil
}

// SwitchTenant activates the given tenant on the session. The session
// value is cleared first so the resolver considers the override instead
// of the stale session value.
func (s *Service) SwitchTenant(ctx context.Context, identityID string, sess resolver.SessionStateInterface, tenantID string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "appcontext.Service.SwitchTenant")
	defer span.End()

	if sess.ActiveTenantID() != "" {
		if err := sess.ClearActiveTenant(ctx); err != nil {
			return nil, err
		}
	}

	tenant := s.resolver.Resolve(ctx, identityID, sess, tenantID)
	if tenant == nil || tenant.ID != tenantID {
		return nil, ErrSwitchDenied
	}

	return tenant, nil
}

// MyTenants lists the enabled tenants the identity is a member of,
// regardless of which one is currently active.
func (s *Service) MyTenants(ctx context.Context, identityID string) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "appcontext.Service.MyTenants")
	defer span.End()

	return s.storage.ListActiveTenantsByIdentityID(ctx, identityID)
}

func NewService(res resolver.ResolverInterface, nav NavigationInterface, storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.resolver = res
	s.navigation = nav
	s.storage = storage

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}

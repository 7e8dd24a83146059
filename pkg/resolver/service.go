// Copyright 2026 ChurchOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package resolver

import (
	"context"

	"github.com/churchops/appcontext-service/internal/authorization"
	"github.com/churchops/appcontext-service/internal/logging"
	"github.com/churchops/appcontext-service/internal/monitoring"
	"github.com/churchops/appcontext-service/internal/tracing"
	"github.com/churchops/appcontext-service/internal/types"
)

var _ ResolverInterface = (*Service)(nil)

type Service struct {
	directory DirectoryInterface
	authz     AuthzInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Resolve determines the active tenant for the request. Candidate
// precedence is session value, then explicit override, then the primary
// membership, then the first membership. The candidate is validated on
// every call, a stale or forged session value never wins. Every failure
// degrades to nil so callers can render a tenant-less page, the only
// side effect is the session write or clear.
func (s *Service) Resolve(ctx context.Context, identityID string, sess SessionStateInterface, override string) *types.Tenant {
	ctx, span := s.tracer.Start(ctx, "resolver.Service.Resolve")
	defer span.End()

	if identityID == "" {
		return nil
	}

	candidate := ""
	fromSession := false

	switch {
	case sess.ActiveTenantID() != "":
		candidate = sess.ActiveTenantID()
		fromSession = true
	case override != "":
		candidate = override
	default:
		memberships, err := s.directory.ListMembershipsByIdentityID(ctx, identityID)
		if err != nil {
			s.logger.Errorf("failed to list memberships for %s: %s", identityID, err)
			return nil
		}
		candidate = pickMembership(memberships)
	}

	if candidate == "" {
		return nil
	}

	tenant := s.validate(ctx, identityID, candidate)
	if tenant == nil {
		if fromSession {
			s.clearSession(ctx, sess, identityID, candidate)
		}
		return nil
	}

	if !fromSession {
		if err := sess.SetActiveTenant(ctx, tenant.ID); err != nil {
			s.logger.Errorf("failed to persist active tenant %s for %s: %s", tenant.ID, identityID, err)
		}
	}

	return tenant
}

// validate re-checks access and loads the tenant record. Access denial and
// load failure both collapse to nil, the caller must not learn whether the
// tenant exists.
func (s *Service) validate(ctx context.Context, identityID, candidate string) *types.Tenant {
	ok, err := s.directory.HasMembership(ctx, identityID, candidate)
	if err != nil {
		s.logger.Errorf("membership check failed for %s on %s: %s", identityID, candidate, err)
		return nil
	}
	if !ok {
		s.logger.Security().TenantAccessDenied(identityID, candidate)
		return nil
	}

	// The membership row is necessary but not sufficient, the relation
	// store has the final say when authorization is enabled.
	allowed, err := s.authz.CheckTenantAccess(ctx, candidate, identityID, authorization.MEMBER_RELATION)
	if err != nil {
		s.logger.Errorf("relation check failed for %s on %s: %s", identityID, candidate, err)
		return nil
	}
	if !allowed {
		s.logger.Security().TenantAccessDenied(identityID, candidate)
		return nil
	}

	tenant, err := s.directory.GetTenantByID(ctx, candidate)
	if err != nil {
		// Access was confirmed but the record is gone, log distinctly for
		// operational alerting.
		s.logger.Errorf("tenant load failure for %s: %s", candidate, err)
		return nil
	}
	if !tenant.Enabled {
		s.logger.Security().TenantAccessDenied(identityID, candidate)
		return nil
	}

	return tenant
}

func (s *Service) clearSession(ctx context.Context, sess SessionStateInterface, identityID, candidate string) {
	if err := sess.ClearActiveTenant(ctx); err != nil {
		s.logger.Errorf("failed to clear active tenant for %s: %s", identityID, err)
		return
	}
	s.logger.Security().SessionTenantCleared(identityID, candidate, "candidate failed validation")
}

// pickMembership prefers the primary membership and falls back to the
// first one. With multiple primaries the first primary wins.
func pickMembership(memberships []*types.Membership) string {
	for _, m := range memberships {
		if m.IsPrimary {
			return m.TenantID
		}
	}
	if len(memberships) > 0 {
		return memberships[0].TenantID
	}
	return ""
}

func NewService(directory DirectoryInterface, authz AuthzInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.directory = directory
	s.authz = authz

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}

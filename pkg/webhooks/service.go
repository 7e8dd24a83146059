// Copyright 2026 ChurchOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package webhooks receives callbacks from the identity stack: Kratos
// posts here after self-registration, Hydra calls the token hook to
// enrich issued tokens with tenant claims.
package webhooks

import (
	"context"
	"fmt"

	"github.com/ory/hydra/v2/oauth2"

	"github.com/churchops/appcontext-service/internal/logging"
	"github.com/churchops/appcontext-service/internal/monitoring"
	"github.com/churchops/appcontext-service/internal/tracing"
	"github.com/churchops/appcontext-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	authz   AuthorizerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// HandleRegistration provisions a personal tenant for a freshly
// registered identity. The tenant starts disabled until an operator
// approves it, so it does not resolve as an active tenant yet.
func (s *Service) HandleRegistration(ctx context.Context, identityID, email string) error {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleRegistration")
	defer span.End()

	s.logger.Debugf("handling registration for identity %s with email %s", identityID, email)

	if identityID == "" {
		return fmt.Errorf("identity id is empty")
	}

	var tenantName string
	if email != "" {
		tenantName = fmt.Sprintf("%s's Org", email)
	}

	tenant, err := s.storage.CreateTenant(ctx, &types.Tenant{
		Name:    tenantName,
		Enabled: false,
	})
	if err != nil {
		return fmt.Errorf("failed to create tenant: %w", err)
	}

	if _, err := s.storage.AddMember(ctx, tenant.ID, identityID, "owner"); err != nil {
		return fmt.Errorf("failed to add member: %w", err)
	}

	if err := s.authz.AssignTenantOwner(ctx, tenant.ID, identityID); err != nil {
		return fmt.Errorf("failed to assign tenant owner: %w", err)
	}

	s.logger.Infof("provisioned tenant %s for identity %s", tenant.ID, identityID)
	return nil
}

// HandleTokenHook adds a "tenants" claim listing the subject's enabled
// tenants to both the ID and the access token.
func (s *Service) HandleTokenHook(ctx context.Context, req *oauth2.TokenHookRequest) (*TokenHookResponse, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleTokenHook")
	defer span.End()

	if req.Session == nil {
		return nil, fmt.Errorf("token hook request has no session")
	}

	subject := req.Session.GetSubject()
	if subject == "" {
		return nil, fmt.Errorf("token hook request has no subject")
	}

	tenants, err := s.storage.ListActiveTenantsByIdentityID(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants for subject: %w", err)
	}

	tenantIDs := make([]string, len(tenants))
	for i, t := range tenants {
		tenantIDs[i] = t.ID
	}

	resp := new(TokenHookResponse)
	resp.Session.IDToken = map[string]interface{}{"tenants": tenantIDs}
	resp.Session.AccessToken = map[string]interface{}{"tenants": tenantIDs}

	return resp, nil
}

func NewService(storage StorageInterface, authz AuthorizerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage
	s.authz = authz

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}

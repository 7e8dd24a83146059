// Copyright 2026 ChurchOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package tenant implements the administrative tenant lifecycle: CRUD,
// member provisioning and invitations. Storage is the source of truth
// for membership, the relation store mirrors it for permission checks.
package tenant

import (
	"context"
	"errors"
	"fmt"

	"github.com/churchops/appcontext-service/internal/logging"
	"github.com/churchops/appcontext-service/internal/monitoring"
	"github.com/churchops/appcontext-service/internal/storage"
	"github.com/churchops/appcontext-service/internal/tracing"
	"github.com/churchops/appcontext-service/internal/types"
)

const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleMember = "member"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	authz   AuthzInterface
	kratos  KratosClientInterface

	invitationLifetime string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) CreateTenant(ctx context.Context, name string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.CreateTenant")
	defer span.End()

	created, err := s.storage.CreateTenant(ctx, &types.Tenant{
		Name:    name,
		Enabled: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	return created, nil
}

func (s *Service) GetTenant(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.GetTenant")
	defer span.End()

	return s.storage.GetTenantByID(ctx, id)
}

func (s *Service) ListTenants(ctx context.Context) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListTenants")
	defer span.End()

	return s.storage.ListTenants(ctx)
}

func (s *Service) UpdateTenant(ctx context.Context, tenant *types.Tenant, paths []string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.UpdateTenant")
	defer span.End()

	if err := s.storage.UpdateTenant(ctx, tenant, paths); err != nil {
		return nil, fmt.Errorf("failed to update tenant: %w", err)
	}

	updated, err := s.storage.GetTenantByID(ctx, tenant.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated tenant: %w", err)
	}

	return updated, nil
}

func (s *Service) DeleteTenant(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.DeleteTenant")
	defer span.End()

	if err := s.storage.DeleteTenant(ctx, id); err != nil {
		return fmt.Errorf("failed to delete tenant from storage: %w", err)
	}

	// Storage row is gone, a stale relation tuple only denies access.
	if err := s.authz.DeleteTenant(ctx, id); err != nil {
		s.logger.Errorf("failed to delete tenant relations: %v", err)
	}

	return nil
}

// InviteMember provisions the member and returns a recovery link plus
// code the invitee uses to set their first password. Re-inviting an
// existing member issues a fresh link.
func (s *Service) InviteMember(ctx context.Context, tenantID, email, role string) (string, string, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.InviteMember")
	defer span.End()

	identityID, err := s.findOrCreateIdentity(ctx, email)
	if err != nil {
		return "", "", err
	}

	if _, err := s.storage.AddMember(ctx, tenantID, identityID, role); err != nil {
		if !errors.Is(err, storage.ErrDuplicateKey) {
			s.logger.Errorf("failed to add member: %v", err)
			return "", "", fmt.Errorf("failed to add member")
		}
	}

	if err := s.assignRole(ctx, tenantID, identityID, role); err != nil {
		s.logger.Errorf("failed to assign role: %v", err)
		return "", "", fmt.Errorf("failed to assign permissions")
	}

	link, code, err := s.kratos.CreateRecoveryLink(ctx, identityID, s.invitationLifetime)
	if err != nil {
		s.logger.Errorf("failed to create recovery link: %v", err)
		return "", "", fmt.Errorf("failed to generate invitation link")
	}

	return link, code, nil
}

func (s *Service) ProvisionUser(ctx context.Context, tenantID, email, role string) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ProvisionUser")
	defer span.End()

	identityID, err := s.findOrCreateIdentity(ctx, email)
	if err != nil {
		return err
	}

	if _, err := s.storage.AddMember(ctx, tenantID, identityID, role); err != nil {
		return fmt.Errorf("failed to add member: %w", err)
	}

	if err := s.assignRole(ctx, tenantID, identityID, role); err != nil {
		return fmt.Errorf("failed to assign role: %w", err)
	}

	return nil
}

func (s *Service) RemoveMember(ctx context.Context, tenantID, identityID string) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.RemoveMember")
	defer span.End()

	if err := s.storage.RemoveMember(ctx, tenantID, identityID); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	if err := s.authz.RemoveTenantMember(ctx, tenantID, identityID); err != nil {
		s.logger.Errorf("failed to remove member relation: %v", err)
	}
	if err := s.authz.RemoveTenantOwner(ctx, tenantID, identityID); err != nil {
		s.logger.Errorf("failed to remove owner relation: %v", err)
	}

	return nil
}

func (s *Service) UpdateTenantUser(ctx context.Context, tenantID, identityID, role string) (*types.TenantUser, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.UpdateTenantUser")
	defer span.End()

	members, err := s.storage.ListMembersByTenantID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to check current membership: %w", err)
	}

	var current *types.Membership
	for _, m := range members {
		if m.IdentityID == identityID {
			current = m
			break
		}
	}
	if current == nil {
		return nil, storage.ErrNotFound
	}

	if current.Role == role {
		return &types.TenantUser{UserID: identityID, Role: role, Email: s.emailFor(ctx, identityID)}, nil
	}

	// Assign the new relation before dropping the old one so the user
	// never loses access mid-change.
	if err := s.assignRole(ctx, tenantID, identityID, role); err != nil {
		return nil, fmt.Errorf("failed to assign role: %w", err)
	}

	switch current.Role {
	case RoleOwner:
		if err := s.authz.RemoveTenantOwner(ctx, tenantID, identityID); err != nil {
			s.logger.Errorf("failed to remove old owner relation: %v", err)
		}
	case RoleMember, RoleAdmin:
		if role == RoleOwner {
			if err := s.authz.RemoveTenantMember(ctx, tenantID, identityID); err != nil {
				s.logger.Errorf("failed to remove old member relation: %v", err)
			}
		}
	}

	if err := s.storage.UpdateMember(ctx, tenantID, identityID, role); err != nil {
		return nil, err
	}

	return &types.TenantUser{UserID: identityID, Role: role, Email: s.emailFor(ctx, identityID)}, nil
}

func (s *Service) ListTenantUsers(ctx context.Context, tenantID string) ([]*types.TenantUser, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListTenantUsers")
	defer span.End()

	members, err := s.storage.ListMembersByTenantID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	var users []*types.TenantUser
	for _, m := range members {
		email := s.emailFor(ctx, m.IdentityID)
		if email == "" {
			// Identity may be gone from Kratos while the membership row
			// survives, keep the row visible to the admin.
			email = "unknown"
		}

		users = append(users, &types.TenantUser{
			UserID: m.IdentityID,
			Email:  email,
			Role:   m.Role,
		})
	}

	return users, nil
}

func (s *Service) SetPrimaryTenant(ctx context.Context, identityID, tenantID string) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.SetPrimaryTenant")
	defer span.End()

	return s.storage.SetPrimaryMembership(ctx, identityID, tenantID)
}

func (s *Service) findOrCreateIdentity(ctx context.Context, email string) (string, error) {
	identityID, err := s.kratos.GetIdentityIDByEmail(ctx, email)
	if err != nil {
		s.logger.Errorf("failed to check identity existence: %v", err)
		return "", fmt.Errorf("failed to check identity")
	}
	if identityID != "" {
		return identityID, nil
	}

	s.logger.Infof("creating new identity for email %s", email)
	identityID, err = s.kratos.CreateIdentity(ctx, email)
	if err != nil {
		s.logger.Errorf("failed to create identity: %v", err)
		return "", fmt.Errorf("failed to provision user")
	}

	return identityID, nil
}

func (s *Service) assignRole(ctx context.Context, tenantID, identityID, role string) error {
	switch role {
	case RoleOwner:
		return s.authz.AssignTenantOwner(ctx, tenantID, identityID)
	case RoleMember, RoleAdmin:
		// The relation model does not distinguish admin from member yet.
		return s.authz.AssignTenantMember(ctx, tenantID, identityID)
	default:
		return fmt.Errorf("unknown role: %s", role)
	}
}

func (s *Service) emailFor(ctx context.Context, identityID string) string {
	identity, err := s.kratos.GetIdentity(ctx, identityID)
	if err != nil {
		s.logger.Warnf("failed to get identity %s: %v", identityID, err)
		return ""
	}

	if traits, ok := identity.Traits.(map[string]interface{}); ok {
		if e, ok := traits["email"].(string); ok {
			return e
		}
	}

	return ""
}

func NewService(storage StorageInterface, authz AuthzInterface, kratos KratosClientInterface, invitationLifetime string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage
	s.authz = authz
	s.kratos = kratos
	s.invitationLifetime = invitationLifetime

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}

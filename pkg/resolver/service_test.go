// Copyright 2026 ChurchOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package resolver

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/churchops/appcontext-service/internal/authorization"
	"github.com/churchops/appcontext-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package resolver -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package resolver -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package resolver -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package resolver -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func enabledTenant(id string) *types.Tenant {
	return &types.Tenant{
		ID:        id,
		Name:      "Tenant " + id,
		Enabled:   true,
		CreatedAt: time.Now(),
	}
}

func TestService_Resolve(t *testing.T) {
	identity := "user-1"
	tenantA := "11111111-1111-7111-8111-111111111111"
	tenantB := "22222222-2222-7222-8222-222222222222"
	tenantC := "33333333-3333-7333-8333-333333333333"

	testCases := []struct {
		name       string
		identityID string
		override   string
		setupMocks func(*MockDirectoryInterface, *MockSessionStateInterface, *MockLoggerInterface, *MockSecurityLoggerInterface)
		expectedID string
	}{
		{
			name:       "unauthenticated request resolves to nothing",
			identityID: "",
			setupMocks: func(d *MockDirectoryInterface, s *MockSessionStateInterface, l *MockLoggerInterface, sec *MockSecurityLoggerInterface) {
			},
			expectedID: "",
		},
		{
			name:       "session value wins and is not rewritten",
			identityID: identity,
			setupMocks: func(d *MockDirectoryInterface, s *MockSessionStateInterface, l *MockLoggerInterface, sec *MockSecurityLoggerInterface) {
				s.EXPECT().ActiveTenantID().Return(tenantA).AnyTimes()
				d.EXPECT().HasMembership(gomock.Any(), identity, tenantA).Return(true, nil)
				d.EXPECT().GetTenantByID(gomock.Any(), tenantA).Return(enabledTenant(tenantA), nil)
			},
			expectedID: tenantA,
		},
		{
			name:       "session value beats an explicit override",
			identityID: identity,
			override:   tenantB,
			setupMocks: func(d *MockDirectoryInterface, s *MockSessionStateInterface, l *MockLoggerInterface, sec *MockSecurityLoggerInterface) {
				s.EXPECT().ActiveTenantID().Return(tenantA).AnyTimes()
				d.EXPECT().HasMembership(gomock.Any(), identity, tenantA).Return(true, nil)
				d.EXPECT().GetTenantByID(gomock.Any(), tenantA).Return(enabledTenant(tenantA), nil)
			},
			expectedID: tenantA,
		},
		{
			name:       "revoked session tenant is cleared",
			identityID: identity,
			setupMocks: func(d *MockDirectoryInterface, s *MockSessionStateInterface, l *MockLoggerInterface, sec *MockSecurityLoggerInterface) {
				s.EXPECT().ActiveTenantID().Return(tenantA).AnyTimes()
				d.EXPECT().HasMembership(gomock.Any(), identity, tenantA).Return(false, nil)
				sec.EXPECT().TenantAccessDenied(identity, tenantA)
				s.EXPECT().ClearActiveTenant(gomock.Any()).Return(nil)
				sec.EXPECT().SessionTenantCleared(identity, tenantA, gomock.Any())
			},
			expectedID: "",
		},
		{
			name:       "session tenant vanished between check and load",
			identityID: identity,
			setupMocks: func(d *MockDirectoryInterface, s *MockSessionStateInterface, l *MockLoggerInterface, sec *MockSecurityLoggerInterface) {
				s.EXPECT().ActiveTenantID().Return(tenantA).AnyTimes()
				d.EXPECT().HasMembership(gomock.Any(), identity, tenantA).Return(true, nil)
				d.EXPECT().GetTenantByID(gomock.Any(), tenantA).Return(nil, errors.New("not found"))
				l.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())
				s.EXPECT().ClearActiveTenant(gomock.Any()).Return(nil)
				sec.EXPECT().SessionTenantCleared(identity, tenantA, gomock.Any())
			},
			expectedID: "",
		},
		{
			name:       "valid override is persisted",
			identityID: identity,
			override:   tenantB,
			setupMocks: func(d *MockDirectoryInterface, s *MockSessionStateInterface, l *MockLoggerInterface, sec *MockSecurityLoggerInterface) {
				s.EXPECT().ActiveTenantID().Return("").AnyTimes()
				d.EXPECT().HasMembership(gomock.Any(), identity, tenantB).Return(true, nil)
				d.EXPECT().GetTenantByID(gomock.Any(), tenantB).Return(enabledTenant(tenantB), nil)
				s.EXPECT().SetActiveTenant(gomock.Any(), tenantB).Return(nil)
			},
			expectedID: tenantB,
		},
		{
			name:       "denied override does not touch the session",
			identityID: identity,
			override:   tenantB,
			setupMocks: func(d *MockDirectoryInterface, s *MockSessionStateInterface, l *MockLoggerInterface, sec *MockSecurityLoggerInterface) {
				s.EXPECT().ActiveTenantID().Return("").AnyTimes()
				d.EXPECT().HasMembership(gomock.Any(), identity, tenantB).Return(false, nil)
				sec.EXPECT().TenantAccessDenied(identity, tenantB)
			},
			expectedID: "",
		},
		{
			name:       "primary membership wins over earlier memberships",
			identityID: identity,
			setupMocks: func(d *MockDirectoryInterface, s *MockSessionStateInterface, l *MockLoggerInterface, sec *MockSecurityLoggerInterface) {
				s.EXPECT().ActiveTenantID().Return("").AnyTimes()
				d.EXPECT().ListMembershipsByIdentityID(gomock.Any(), identity).Return([]*types.Membership{
					{TenantID: tenantA, IdentityID: identity, IsPrimary: false},
					{TenantID: tenantB, IdentityID: identity, IsPrimary: true},
				}, nil)
				d.EXPECT().HasMembership(gomock.Any(), identity, tenantB).Return(true, nil)
				d.EXPECT().GetTenantByID(gomock.Any(), tenantB).Return(enabledTenant(tenantB), nil)
				s.EXPECT().SetActiveTenant(gomock.Any(), tenantB).Return(nil)
			},
			expectedID: tenantB,
		},
		{
			name:       "no primary falls back to the first membership",
			identityID: identity,
			setupMocks: func(d *MockDirectoryInterface, s *MockSessionStateInterface, l *MockLoggerInterface, sec *MockSecurityLoggerInterface) {
				s.EXPECT().ActiveTenantID().Return("").AnyTimes()
				d.EXPECT().ListMembershipsByIdentityID(gomock.Any(), identity).Return([]*types.Membership{
					{TenantID: tenantA, IdentityID: identity, IsPrimary: false},
					{TenantID: tenantC, IdentityID: identity, IsPrimary: false},
				}, nil)
				d.EXPECT().HasMembership(gomock.Any(), identity, tenantA).Return(true, nil)
				d.EXPECT().GetTenantByID(gomock.Any(), tenantA).Return(enabledTenant(tenantA), nil)
				s.EXPECT().SetActiveTenant(gomock.Any(), tenantA).Return(nil)
			},
			expectedID: tenantA,
		},
		{
			name:       "multiple primaries pick the first primary",
			identityID: identity,
			setupMocks: func(d *MockDirectoryInterface, s *MockSessionStateInterface, l *MockLoggerInterface, sec *MockSecurityLoggerInterface) {
				s.EXPECT().ActiveTenantID().Return("").AnyTimes()
				d.EXPECT().ListMembershipsByIdentityID(gomock.Any(), identity).Return([]*types.Membership{
					{TenantID: tenantB, IdentityID: identity, IsPrimary: true},
					{TenantID: tenantC, IdentityID: identity, IsPrimary: true},
				}, nil)
				d.EXPECT().HasMembership(gomock.Any(), identity, tenantB).Return(true, nil)
				d.EXPECT().GetTenantByID(gomock.Any(), tenantB).Return(enabledTenant(tenantB), nil)
				s.EXPECT().SetActiveTenant(gomock.Any(), tenantB).Return(nil)
			},
			expectedID: tenantB,
		},
		{
			name:       "no memberships resolves to nothing",
			identityID: identity,
			setupMocks: func(d *MockDirectoryInterface, s *MockSessionStateInterface, l *MockLoggerInterface, sec *MockSecurityLoggerInterface) {
				s.EXPECT().ActiveTenantID().Return("").AnyTimes()
				d.EXPECT().ListMembershipsByIdentityID(gomock.Any(), identity).Return(nil, nil)
			},
			expectedID: "",
		},
		{
			name:       "directory error degrades to nothing",
			identityID: identity,
			setupMocks: func(d *MockDirectoryInterface, s *MockSessionStateInterface, l *MockLoggerInterface, sec *MockSecurityLoggerInterface) {
				s.EXPECT().ActiveTenantID().Return("").AnyTimes()
				d.EXPECT().ListMembershipsByIdentityID(gomock.Any(), identity).Return(nil, errors.New("db down"))
				l.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedID: "",
		},
		{
			name:       "disabled tenant is treated as denied",
			identityID: identity,
			setupMocks: func(d *MockDirectoryInterface, s *MockSessionStateInterface, l *MockLoggerInterface, sec *MockSecurityLoggerInterface) {
				s.EXPECT().ActiveTenantID().Return(tenantA).AnyTimes()
				d.EXPECT().HasMembership(gomock.Any(), identity, tenantA).Return(true, nil)
				disabled := enabledTenant(tenantA)
				disabled.Enabled = false
				d.EXPECT().GetTenantByID(gomock.Any(), tenantA).Return(disabled, nil)
				sec.EXPECT().TenantAccessDenied(identity, tenantA)
				s.EXPECT().ClearActiveTenant(gomock.Any()).Return(nil)
				sec.EXPECT().SessionTenantCleared(identity, tenantA, gomock.Any())
			},
			expectedID: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDirectory := NewMockDirectoryInterface(ctrl)
			mockAuthz := NewMockAuthzInterface(ctrl)
			mockSession := NewMockSessionStateInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "resolver.Service.Resolve").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			mockLogger.EXPECT().Security().Return(mockSecurity).AnyTimes()
			// Matches the noop relation store used when authorization is off.
			mockAuthz.EXPECT().CheckTenantAccess(gomock.Any(), gomock.Any(), identity, authorization.MEMBER_RELATION).
				Return(true, nil).AnyTimes()

			tc.setupMocks(mockDirectory, mockSession, mockLogger, mockSecurity)

			s := NewService(mockDirectory, mockAuthz, mockTracer, mockMonitor, mockLogger)

			tenant := s.Resolve(context.Background(), tc.identityID, mockSession, tc.override)

			if tc.expectedID == "" {
				if tenant != nil {
					t.Errorf("expected no tenant, got %v", tenant.ID)
				}
				return
			}
			if tenant == nil {
				t.Fatal("expected a tenant, got none")
			}
			if tenant.ID != tc.expectedID {
				t.Errorf("expected tenant %s, got %s", tc.expectedID, tenant.ID)
			}
		})
	}
}

// Re-resolution with a warm session must not mutate the session again.
func TestService_ResolveIdempotent(t *testing.T) {
	identity := "user-1"
	tenantA := "11111111-1111-7111-8111-111111111111"

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDirectory := NewMockDirectoryInterface(ctrl)
	mockAuthz := NewMockAuthzInterface(ctrl)
	mockSession := NewMockSessionStateInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), "resolver.Service.Resolve").
		Return(context.Background(), trace.SpanFromContext(context.Background())).Times(2)

	mockSession.EXPECT().ActiveTenantID().Return(tenantA).AnyTimes()
	mockDirectory.EXPECT().HasMembership(gomock.Any(), identity, tenantA).Return(true, nil).Times(2)
	mockAuthz.EXPECT().CheckTenantAccess(gomock.Any(), tenantA, identity, authorization.MEMBER_RELATION).Return(true, nil).Times(2)
	mockDirectory.EXPECT().GetTenantByID(gomock.Any(), tenantA).Return(enabledTenant(tenantA), nil).Times(2)

	s := NewService(mockDirectory, mockAuthz, mockTracer, mockMonitor, mockLogger)

	first := s.Resolve(context.Background(), identity, mockSession, "")
	second := s.Resolve(context.Background(), identity, mockSession, "")

	if first == nil || second == nil {
		t.Fatal("expected both resolutions to succeed")
	}
	if first.ID != second.ID {
		t.Errorf("expected stable resolution, got %s then %s", first.ID, second.ID)
	}
}

// A membership row alone must not grant access when the relation store
// disagrees, and a session-sourced candidate is cleared on denial.
func TestService_ResolveRelationDenied(t *testing.T) {
	identity := "user-1"
	tenantA := "11111111-1111-7111-8111-111111111111"

	testCases := []struct {
		name       string
		setupMocks func(*MockAuthzInterface, *MockSessionStateInterface, *MockLoggerInterface, *MockSecurityLoggerInterface)
	}{
		{
			name: "relation check denies",
			setupMocks: func(a *MockAuthzInterface, s *MockSessionStateInterface, l *MockLoggerInterface, sec *MockSecurityLoggerInterface) {
				a.EXPECT().CheckTenantAccess(gomock.Any(), tenantA, identity, authorization.MEMBER_RELATION).Return(false, nil)
				sec.EXPECT().TenantAccessDenied(identity, tenantA)
				s.EXPECT().ClearActiveTenant(gomock.Any()).Return(nil)
				sec.EXPECT().SessionTenantCleared(identity, tenantA, gomock.Any())
			},
		},
		{
			name: "relation check fails",
			setupMocks: func(a *MockAuthzInterface, s *MockSessionStateInterface, l *MockLoggerInterface, sec *MockSecurityLoggerInterface) {
				a.EXPECT().CheckTenantAccess(gomock.Any(), tenantA, identity, authorization.MEMBER_RELATION).Return(false, errors.New("fga unavailable"))
				l.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
				s.EXPECT().ClearActiveTenant(gomock.Any()).Return(nil)
				sec.EXPECT().SessionTenantCleared(identity, tenantA, gomock.Any())
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDirectory := NewMockDirectoryInterface(ctrl)
			mockAuthz := NewMockAuthzInterface(ctrl)
			mockSession := NewMockSessionStateInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "resolver.Service.Resolve").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			mockLogger.EXPECT().Security().Return(mockSecurity).AnyTimes()

			mockSession.EXPECT().ActiveTenantID().Return(tenantA).AnyTimes()
			mockDirectory.EXPECT().HasMembership(gomock.Any(), identity, tenantA).Return(true, nil)

			tc.setupMocks(mockAuthz, mockSession, mockLogger, mockSecurity)

			s := NewService(mockDirectory, mockAuthz, mockTracer, mockMonitor, mockLogger)

			if tenant := s.Resolve(context.Background(), identity, mockSession, ""); tenant != nil {
				t.Errorf("expected no tenant, got %v", tenant.ID)
			}
		})
	}
}

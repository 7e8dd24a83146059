// Copyright 2026 ChurchOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package appcontext

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/churchops/appcontext-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package appcontext -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package appcontext -destination ./mock_resolver.go -source=../resolver/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package appcontext -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package appcontext -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package appcontext -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func TestService_Build(t *testing.T) {
	identity := "user-1"
	tenantID := "11111111-1111-7111-8111-111111111111"
	tenant := &types.Tenant{ID: tenantID, Name: "First Parish", Enabled: true}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockResolver := NewMockResolverInterface(ctrl)
	mockNav := NewMockNavigationInterface(ctrl)
	mockStorage := NewMockStorageInterface(ctrl)
	mockSession := NewMockSessionStateInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), "appcontext.Service.Build").
		Return(context.Background(), trace.SpanFromContext(context.Background()))

	mockResolver.EXPECT().Resolve(gomock.Any(), identity, mockSession, "").Return(tenant)
	mockNav.EXPECT().PermissionsForIdentity(gomock.Any(), identity).
		Return([]string{"view_dashboard"}, nil)
	mockNav.EXPECT().NavigationForIdentity(gomock.Any(), identity, types.NavTypeMain).
		Return([]*types.AssembledNode{{Title: "dashboard", Href: "/dashboard"}}, nil)
	mockNav.EXPECT().NavigationForIdentity(gomock.Any(), identity, types.NavTypeFooter).
		Return(nil, nil)
	mockNav.EXPECT().NavigationForIdentity(gomock.Any(), identity, types.NavTypeUser).
		Return(nil, nil)

	s := NewService(mockResolver, mockNav, mockStorage, mockTracer, mockMonitor, mockLogger)

	appCtx, err := s.Build(context.Background(), identity, mockSession, "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if appCtx.Tenant == nil || appCtx.Tenant.ID != tenantID {
		t.Errorf("expected tenant %s, got %v", tenantID, appCtx.Tenant)
	}
	if len(appCtx.Navigation.Main) != 1 || appCtx.Navigation.Main[0].Title != "dashboard" {
		t.Errorf("expected main navigation with dashboard, got %v", appCtx.Navigation.Main)
	}
	if len(appCtx.Permissions) != 1 {
		t.Errorf("expected one permission, got %v", appCtx.Permissions)
	}
}

func TestService_BuildWithoutTenant(t *testing.T) {
	identity := "user-1"

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockResolver := NewMockResolverInterface(ctrl)
	mockNav := NewMockNavigationInterface(ctrl)
	mockStorage := NewMockStorageInterface(ctrl)
	mockSession := NewMockSessionStateInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), "appcontext.Service.Build").
		Return(context.Background(), trace.SpanFromContext(context.Background()))

	mockResolver.EXPECT().Resolve(gomock.Any(), identity, mockSession, "").Return(nil)
	mockNav.EXPECT().PermissionsForIdentity(gomock.Any(), identity).Return(nil, nil)
	mockNav.EXPECT().NavigationForIdentity(gomock.Any(), identity, gomock.Any()).
		Return(nil, nil).Times(3)

	s := NewService(mockResolver, mockNav, mockStorage, mockTracer, mockMonitor, mockLogger)

	appCtx, err := s.Build(context.Background(), identity, mockSession, "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if appCtx.Tenant != nil {
		t.Errorf("expected no tenant, got %v", appCtx.Tenant)
	}
}

func TestService_BuildNavigationFailure(t *testing.T) {
	identity := "user-1"

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockResolver := NewMockResolverInterface(ctrl)
	mockNav := NewMockNavigationInterface(ctrl)
	mockStorage := NewMockStorageInterface(ctrl)
	mockSession := NewMockSessionStateInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), "appcontext.Service.Build").
		Return(context.Background(), trace.SpanFromContext(context.Background()))

	mockResolver.EXPECT().Resolve(gomock.Any(), identity, mockSession, "").Return(nil)
	mockNav.EXPECT().PermissionsForIdentity(gomock.Any(), identity).Return(nil, nil)
	mockNav.EXPECT().NavigationForIdentity(gomock.Any(), identity, types.NavTypeMain).
		Return(nil, errors.New("connection reset"))

	s := NewService(mockResolver, mockNav, mockStorage, mockTracer, mockMonitor, mockLogger)

	if _, err := s.Build(context.Background(), identity, mockSession, ""); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestService_SwitchTenant(t *testing.T) {
	identity := "user-1"
	tenantA := "11111111-1111-7111-8111-111111111111"
	tenantB := "22222222-2222-7222-8222-222222222222"

	testCases := []struct {
		name        string
		target      string
		setupMocks  func(*MockResolverInterface, *MockSessionStateInterface)
		expectedErr error
	}{
		{
			name:   "switch clears the session value first",
			target: tenantB,
			setupMocks: func(r *MockResolverInterface, s *MockSessionStateInterface) {
				s.EXPECT().ActiveTenantID().Return(tenantA)
				s.EXPECT().ClearActiveTenant(gomock.Any()).Return(nil)
				r.EXPECT().Resolve(gomock.Any(), identity, s, tenantB).
					Return(&types.Tenant{ID: tenantB, Enabled: true})
			},
		},
		{
			name:   "switch without an active tenant skips the clear",
			target: tenantB,
			setupMocks: func(r *MockResolverInterface, s *MockSessionStateInterface) {
				s.EXPECT().ActiveTenantID().Return("")
				r.EXPECT().Resolve(gomock.Any(), identity, s, tenantB).
					Return(&types.Tenant{ID: tenantB, Enabled: true})
			},
		},
		{
			name:   "denied switch reports the denial",
			target: tenantB,
			setupMocks: func(r *MockResolverInterface, s *MockSessionStateInterface) {
				s.EXPECT().ActiveTenantID().Return("")
				r.EXPECT().Resolve(gomock.Any(), identity, s, tenantB).Return(nil)
			},
			expectedErr: ErrSwitchDenied,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockResolver := NewMockResolverInterface(ctrl)
			mockNav := NewMockNavigationInterface(ctrl)
			mockStorage := NewMockStorageInterface(ctrl)
			mockSession := NewMockSessionStateInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "appcontext.Service.SwitchTenant").
				Return(context.Background(), trace.SpanFromContext(context.Background()))

			tc.setupMocks(mockResolver, mockSession)

			s := NewService(mockResolver, mockNav, mockStorage, mockTracer, mockMonitor, mockLogger)

			tenant, err := s.SwitchTenant(context.Background(), identity, mockSession, tc.target)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if tenant.ID != tc.target {
				t.Errorf("expected tenant %s, got %s", tc.target, tenant.ID)
			}
		})
	}
}

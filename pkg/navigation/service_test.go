// Copyright 2026 ChurchOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package navigation

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/churchops/appcontext-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package navigation -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package navigation -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package navigation -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package navigation -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func TestService_NavigationForIdentity(t *testing.T) {
	identity := "user-1"

	entries := []*types.NavigationEntry{
		entry("1", "dashboard", "view_dashboard", "", 1, types.NavTypeMain),
		entry("2", "admin", "view_admin", "", 2, types.NavTypeMain),
		entry("3", "drafts", "", "", 3, types.NavTypeMain),
	}
	entries[2].Enabled = false

	testCases := []struct {
		name           string
		setupMocks     func(*MockStorageInterface)
		expectedTitles []string
		expectedErr    bool
	}{
		{
			name: "disabled entries never reach the assembler",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().ListPermissionsByIdentityID(gomock.Any(), identity).
					Return([]string{"view_dashboard", "view_admin"}, nil)
				s.EXPECT().ListNavigationEntriesByType(gomock.Any(), types.NavTypeMain).
					Return(entries, nil)
			},
			expectedTitles: []string{"dashboard", "admin"},
		},
		{
			name: "permissions gate the result",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().ListPermissionsByIdentityID(gomock.Any(), identity).
					Return([]string{"view_dashboard"}, nil)
				s.EXPECT().ListNavigationEntriesByType(gomock.Any(), types.NavTypeMain).
					Return(entries, nil)
			},
			expectedTitles: []string{"dashboard"},
		},
		{
			name: "permission lookup failure is returned",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().ListPermissionsByIdentityID(gomock.Any(), identity).
					Return(nil, errors.New("connection reset"))
			},
			expectedErr: true,
		},
		{
			name: "entry lookup failure is returned",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().ListPermissionsByIdentityID(gomock.Any(), identity).
					Return([]string{"view_dashboard"}, nil)
				s.EXPECT().ListNavigationEntriesByType(gomock.Any(), types.NavTypeMain).
					Return(nil, errors.New("connection reset"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "navigation.Service.NavigationForIdentity").
				Return(context.Background(), trace.SpanFromContext(context.Background()))

			tc.setupMocks(mockStorage)

			s := NewService(mockStorage, mockTracer, mockMonitor, mockLogger)

			nodes, err := s.NavigationForIdentity(context.Background(), identity, types.NavTypeMain)

			if tc.expectedErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(nodes) != len(tc.expectedTitles) {
				t.Fatalf("expected %d nodes, got %d", len(tc.expectedTitles), len(nodes))
			}
			for i, title := range tc.expectedTitles {
				if nodes[i].Title != title {
					t.Errorf("node %d: expected %q, got %q", i, title, nodes[i].Title)
				}
			}
		})
	}
}

func TestService_UpdateEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), "navigation.Service.UpdateEntry").
		Return(context.Background(), trace.SpanFromContext(context.Background()))

	updated := entry("1", "renamed", "", "", 1, types.NavTypeMain)

	mockStorage.EXPECT().UpdateNavigationEntry(gomock.Any(), gomock.Any(), []string{"name"}).Return(nil)
	mockStorage.EXPECT().GetNavigationEntryByID(gomock.Any(), "1").Return(updated, nil)

	s := NewService(mockStorage, mockTracer, mockMonitor, mockLogger)

	e, err := s.UpdateEntry(context.Background(), &types.NavigationEntry{ID: "1", Name: "renamed"}, []string{"name"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if e.Name != "renamed" {
		t.Errorf("expected the refreshed entry, got %v", e)
	}
}

func TestService_Reorder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), "navigation.Service.Reorder").
		Return(context.Background(), trace.SpanFromContext(context.Background()))

	mockStorage.EXPECT().SwapNavigationPositions(gomock.Any(), "1", "2").Return(nil)

	s := NewService(mockStorage, mockTracer, mockMonitor, mockLogger)

	if err := s.Reorder(context.Background(), "1", "2"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

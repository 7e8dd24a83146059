// Code generated by MockGen. DO NOT EDIT.
// Source: ./interfaces.go
//
// Generated by this command:
//
//	mockgen -build_flags=--mod=mod -package appcontext -destination ./mock_interfaces.go -source=./interfaces.go
//

// Package appcontext is a generated GoMock package.
package appcontext

import (
	context "context"
	reflect "reflect"

	types "github.com/churchops/appcontext-service/internal/types"
	resolver "github.com/churchops/appcontext-service/pkg/resolver"
	gomock "go.uber.org/mock/gomock"
)

// MockServiceInterface is a mock of ServiceInterface interface.
type MockServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockServiceInterfaceMockRecorder
	isgomock struct{}
}

// MockServiceInterfaceMockRecorder is the mock recorder for MockServiceInterface.
type MockServiceInterfaceMockRecorder struct {
	mock *MockServiceInterface
}

// NewMockServiceInterface creates a new mock instance.
func NewMockServiceInterface(ctrl *gomock.Controller) *MockServiceInterface {
	mock := &MockServiceInterface{ctrl: ctrl}
	mock.recorder = &MockServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockServiceInterface) EXPECT() *MockServiceInterfaceMockRecorder {
	return m.recorder
}

// Build mocks base method.
func (m *MockServiceInterface) Build(ctx context.Context, identityID string, sess resolver.SessionStateInterface, override string) (*Context, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Build", ctx, identityID, sess, override)
	ret0, _ := ret[0].(*Context)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Build indicates an expected call of Build.
func (mr *MockServiceInterfaceMockRecorder) Build(ctx, identityID, sess, override any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Build", reflect.TypeOf((*MockServiceInterface)(nil).Build), ctx, identityID, sess, override)
}

// MyTenants mocks base method.
func (m *MockServiceInterface) MyTenants(ctx context.Context, identityID string) ([]*types.Tenant, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MyTenants", ctx, identityID)
	ret0, _ := ret[0].([]*types.Tenant)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// MyTenants indicates an expected call of MyTenants.
func (mr *MockServiceInterfaceMockRecorder) MyTenants(ctx, identityID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MyTenants", reflect.TypeOf((*MockServiceInterface)(nil).MyTenants), ctx, identityID)
}

// SwitchTenant mocks base method.
func (m *MockServiceInterface) SwitchTenant(ctx context.Context, identityID string, sess resolver.SessionStateInterface, tenantID string) (*types.Tenant, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SwitchTenant", ctx, identityID, sess, tenantID)
	ret0, _ := ret[0].(*types.Tenant)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SwitchTenant indicates an expected call of SwitchTenant.
func (mr *MockServiceInterfaceMockRecorder) SwitchTenant(ctx, identityID, sess, tenantID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SwitchTenant", reflect.TypeOf((*MockServiceInterface)(nil).SwitchTenant), ctx, identityID, sess, tenantID)
}

// MockStorageInterface is a mock of StorageInterface interface.
type MockStorageInterface struct {
	ctrl     *gomock.Controller
	recorder *MockStorageInterfaceMockRecorder
	isgomock struct{}
}

// MockStorageInterfaceMockRecorder is the mock recorder for MockStorageInterface.
type MockStorageInterfaceMockRecorder struct {
	mock *MockStorageInterface
}

// NewMockStorageInterface creates a new mock instance.
func NewMockStorageInterface(ctrl *gomock.Controller) *MockStorageInterface {
	mock := &MockStorageInterface{ctrl: ctrl}
	mock.recorder = &MockStorageInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockStorageInterface) EXPECT() *MockStorageInterfaceMockRecorder {
	return m.recorder
}

// ListActiveTenantsByIdentityID mocks base method.
func (m *MockStorageInterface) ListActiveTenantsByIdentityID(ctx context.Context, identityID string) ([]*types.Tenant, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListActiveTenantsByIdentityID", ctx, identityID)
	ret0, _ := ret[0].([]*types.Tenant)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListActiveTenantsByIdentityID indicates an expected call of ListActiveTenantsByIdentityID.
func (mr *MockStorageInterfaceMockRecorder) ListActiveTenantsByIdentityID(ctx, identityID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListActiveTenantsByIdentityID", reflect.TypeOf((*MockStorageInterface)(nil).ListActiveTenantsByIdentityID), ctx, identityID)
}

// MockNavigationInterface is a mock of NavigationInterface interface.
type MockNavigationInterface struct {
	ctrl     *gomock.Controller
	recorder *MockNavigationInterfaceMockRecorder
	isgomock struct{}
}

// MockNavigationInterfaceMockRecorder is the mock recorder for MockNavigationInterface.
type MockNavigationInterfaceMockRecorder struct {
	mock *MockNavigationInterface
}

// NewMockNavigationInterface creates a new mock instance.
func NewMockNavigationInterface(ctrl *gomock.Controller) *MockNavigationInterface {
	mock := &MockNavigationInterface{ctrl: ctrl}
	mock.recorder = &MockNavigationInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockNavigationInterface) EXPECT() *MockNavigationInterfaceMockRecorder {
	return m.recorder
}

// NavigationForIdentity mocks base method.
func (m *MockNavigationInterface) NavigationForIdentity(ctx context.Context, identityID, navType string) ([]*types.AssembledNode, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "NavigationForIdentity", ctx, identityID, navType)
	ret0, _ := ret[0].([]*types.AssembledNode)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// NavigationForIdentity indicates an expected call of NavigationForIdentity.
func (mr *MockNavigationInterfaceMockRecorder) NavigationForIdentity(ctx, identityID, navType any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "NavigationForIdentity", reflect.TypeOf((*MockNavigationInterface)(nil).NavigationForIdentity), ctx, identityID, navType)
}

// PermissionsForIdentity mocks base method.
func (m *MockNavigationInterface) PermissionsForIdentity(ctx context.Context, identityID string) ([]string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PermissionsForIdentity", ctx, identityID)
	ret0, _ := ret[0].([]string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// PermissionsForIdentity indicates an expected call of PermissionsForIdentity.
func (mr *MockNavigationInterfaceMockRecorder) PermissionsForIdentity(ctx, identityID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PermissionsForIdentity", reflect.TypeOf((*MockNavigationInterface)(nil).PermissionsForIdentity), ctx, identityID)
}

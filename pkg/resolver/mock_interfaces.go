// Code generated by MockGen. DO NOT EDIT.
// Source: ./interfaces.go
//
// Generated by this command:
//
//	mockgen -build_flags=--mod=mod -package resolver -destination ./mock_interfaces.go -source=./interfaces.go
//

// Package resolver is a generated GoMock package.
package resolver

import (
	context "context"
	reflect "reflect"

	types "github.com/churchops/appcontext-service/internal/types"
	gomock "go.uber.org/mock/gomock"
)

// MockDirectoryInterface is a mock of DirectoryInterface interface.
type MockDirectoryInterface struct {
	ctrl     *gomock.Controller
	recorder *MockDirectoryInterfaceMockRecorder
	isgomock struct{}
}

// MockDirectoryInterfaceMockRecorder is the mock recorder for MockDirectoryInterface.
type MockDirectoryInterfaceMockRecorder struct {
	mock *MockDirectoryInterface
}

// NewMockDirectoryInterface creates a new mock instance.
func NewMockDirectoryInterface(ctrl *gomock.Controller) *MockDirectoryInterface {
	mock := &MockDirectoryInterface{ctrl: ctrl}
	mock.recorder = &MockDirectoryInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockDirectoryInterface) EXPECT() *MockDirectoryInterfaceMockRecorder {
	return m.recorder
}

// GetTenantByID mocks base method.
func (m *MockDirectoryInterface) GetTenantByID(ctx context.Context, id string) (*types.Tenant, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetTenantByID", ctx, id)
	ret0, _ := ret[0].(*types.Tenant)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetTenantByID indicates an expected call of GetTenantByID.
func (mr *MockDirectoryInterfaceMockRecorder) GetTenantByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTenantByID", reflect.TypeOf((*MockDirectoryInterface)(nil).GetTenantByID), ctx, id)
}

// HasMembership mocks base method.
func (m *MockDirectoryInterface) HasMembership(ctx context.Context, identityID, tenantID string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HasMembership", ctx, identityID, tenantID)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// HasMembership indicates an expected call of HasMembership.
func (mr *MockDirectoryInterfaceMockRecorder) HasMembership(ctx, identityID, tenantID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HasMembership", reflect.TypeOf((*MockDirectoryInterface)(nil).HasMembership), ctx, identityID, tenantID)
}

// ListMembershipsByIdentityID mocks base method.
func (m *MockDirectoryInterface) ListMembershipsByIdentityID(ctx context.Context, identityID string) ([]*types.Membership, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListMembershipsByIdentityID", ctx, identityID)
	ret0, _ := ret[0].([]*types.Membership)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListMembershipsByIdentityID indicates an expected call of ListMembershipsByIdentityID.
func (mr *MockDirectoryInterfaceMockRecorder) ListMembershipsByIdentityID(ctx, identityID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListMembershipsByIdentityID", reflect.TypeOf((*MockDirectoryInterface)(nil).ListMembershipsByIdentityID), ctx, identityID)
}

// MockAuthzInterface is a mock of AuthzInterface interface.
type MockAuthzInterface struct {
	ctrl     *gomock.Controller
	recorder *MockAuthzInterfaceMockRecorder
	isgomock struct{}
}

// MockAuthzInterfaceMockRecorder is the mock recorder for MockAuthzInterface.
type MockAuthzInterfaceMockRecorder struct {
	mock *MockAuthzInterface
}

// NewMockAuthzInterface creates a new mock instance.
func NewMockAuthzInterface(ctrl *gomock.Controller) *MockAuthzInterface {
	mock := &MockAuthzInterface{ctrl: ctrl}
	mock.recorder = &MockAuthzInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAuthzInterface) EXPECT() *MockAuthzInterfaceMockRecorder {
	return m.recorder
}

// CheckTenantAccess mocks base method.
func (m *MockAuthzInterface) CheckTenantAccess(ctx context.Context, tenantID, identityID, relation string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CheckTenantAccess", ctx, tenantID, identityID, relation)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CheckTenantAccess indicates an expected call of CheckTenantAccess.
func (mr *MockAuthzInterfaceMockRecorder) CheckTenantAccess(ctx, tenantID, identityID, relation any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CheckTenantAccess", reflect.TypeOf((*MockAuthzInterface)(nil).CheckTenantAccess), ctx, tenantID, identityID, relation)
}

// MockSessionStateInterface is a mock of SessionStateInterface interface.
type MockSessionStateInterface struct {
	ctrl     *gomock.Controller
	recorder *MockSessionStateInterfaceMockRecorder
	isgomock struct{}
}

// MockSessionStateInterfaceMockRecorder is the mock recorder for MockSessionStateInterface.
type MockSessionStateInterfaceMockRecorder struct {
	mock *MockSessionStateInterface
}

// NewMockSessionStateInterface creates a new mock instance.
func NewMockSessionStateInterface(ctrl *gomock.Controller) *MockSessionStateInterface {
	mock := &MockSessionStateInterface{ctrl: ctrl}
	mock.recorder = &MockSessionStateInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSessionStateInterface) EXPECT() *MockSessionStateInterfaceMockRecorder {
	return m.recorder
}

// ActiveTenantID mocks base method.
func (m *MockSessionStateInterface) ActiveTenantID() string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ActiveTenantID")
	ret0, _ := ret[0].(string)
	return ret0
}

// ActiveTenantID indicates an expected call of ActiveTenantID.
func (mr *MockSessionStateInterfaceMockRecorder) ActiveTenantID() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ActiveTenantID", reflect.TypeOf((*MockSessionStateInterface)(nil).ActiveTenantID))
}

// ClearActiveTenant mocks base method.
func (m *MockSessionStateInterface) ClearActiveTenant(ctx context.Context) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ClearActiveTenant", ctx)
	ret0, _ := ret[0].(error)
	return ret0
}

// ClearActiveTenant indicates an expected call of ClearActiveTenant.
func (mr *MockSessionStateInterfaceMockRecorder) ClearActiveTenant(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ClearActiveTenant", reflect.TypeOf((*MockSessionStateInterface)(nil).ClearActiveTenant), ctx)
}

// SetActiveTenant mocks base method.
func (m *MockSessionStateInterface) SetActiveTenant(ctx context.Context, tenantID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetActiveTenant", ctx, tenantID)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetActiveTenant indicates an expected call of SetActiveTenant.
func (mr *MockSessionStateInterfaceMockRecorder) SetActiveTenant(ctx, tenantID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetActiveTenant", reflect.TypeOf((*MockSessionStateInterface)(nil).SetActiveTenant), ctx, tenantID)
}

// MockResolverInterface is a mock of ResolverInterface interface.
type MockResolverInterface struct {
	ctrl     *gomock.Controller
	recorder *MockResolverInterfaceMockRecorder
	isgomock struct{}
}

// MockResolverInterfaceMockRecorder is the mock recorder for MockResolverInterface.
type MockResolverInterfaceMockRecorder struct {
	mock *MockResolverInterface
}

// NewMockResolverInterface creates a new mock instance.
func NewMockResolverInterface(ctrl *gomock.Controller) *MockResolverInterface {
	mock := &MockResolverInterface{ctrl: ctrl}
	mock.recorder = &MockResolverInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockResolverInterface) EXPECT() *MockResolverInterfaceMockRecorder {
	return m.recorder
}

// Resolve mocks base method.
func (m *MockResolverInterface) Resolve(ctx context.Context, identityID string, sess SessionStateInterface, override string) *types.Tenant {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Resolve", ctx, identityID, sess, override)
	ret0, _ := ret[0].(*types.Tenant)
	return ret0
}

// Resolve indicates an expected call of Resolve.
func (mr *MockResolverInterfaceMockRecorder) Resolve(ctx, identityID, sess, override any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Resolve", reflect.TypeOf((*MockResolverInterface)(nil).Resolve), ctx, identityID, sess, override)
}

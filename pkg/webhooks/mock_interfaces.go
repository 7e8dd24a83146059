// Code generated by MockGen. DO NOT EDIT.
// Source: ./interfaces.go
//
// Generated by this command:
//
//	mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_interfaces.go -source=./interfaces.go
//

// Package webhooks is a generated GoMock package.
package webhooks

import (
	context "context"
	reflect "reflect"

	types "github.com/churchops/appcontext-service/internal/types"
	oauth2 "github.com/ory/hydra/v2/oauth2"
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

// HandleRegistration mocks base method.
func (m *MockServiceInterface) HandleRegistration(ctx context.Context, identityID, email string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HandleRegistration", ctx, identityID, email)
	ret0, _ := ret[0].(error)
	return ret0
}

// HandleRegistration indicates an expected call of HandleRegistration.
func (mr *MockServiceInterfaceMockRecorder) HandleRegistration(ctx, identityID, email any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HandleRegistration", reflect.TypeOf((*MockServiceInterface)(nil).HandleRegistration), ctx, identityID, email)
}

// HandleTokenHook mocks base method.
func (m *MockServiceInterface) HandleTokenHook(ctx context.Context, req *oauth2.TokenHookRequest) (*TokenHookResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HandleTokenHook", ctx, req)
	ret0, _ := ret[0].(*TokenHookResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// HandleTokenHook indicates an expected call of HandleTokenHook.
func (mr *MockServiceInterfaceMockRecorder) HandleTokenHook(ctx, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HandleTokenHook", reflect.TypeOf((*MockServiceInterface)(nil).HandleTokenHook), ctx, req)
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

// AddMember mocks base method.
func (m *MockStorageInterface) AddMember(ctx context.Context, tenantID, identityID, role string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddMember", ctx, tenantID, identityID, role)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AddMember indicates an expected call of AddMember.
func (mr *MockStorageInterfaceMockRecorder) AddMember(ctx, tenantID, identityID, role any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddMember", reflect.TypeOf((*MockStorageInterface)(nil).AddMember), ctx, tenantID, identityID, role)
}

// CreateTenant mocks base method.
func (m *MockStorageInterface) CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateTenant", ctx, t)
	ret0, _ := ret[0].(*types.Tenant)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateTenant indicates an expected call of CreateTenant.
func (mr *MockStorageInterfaceMockRecorder) CreateTenant(ctx, t any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateTenant", reflect.TypeOf((*MockStorageInterface)(nil).CreateTenant), ctx, t)
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

// MockAuthorizerInterface is a mock of AuthorizerInterface interface.
type MockAuthorizerInterface struct {
	ctrl     *gomock.Controller
	recorder *MockAuthorizerInterfaceMockRecorder
	isgomock struct{}
}

// MockAuthorizerInterfaceMockRecorder is the mock recorder for MockAuthorizerInterface.
type MockAuthorizerInterfaceMockRecorder struct {
	mock *MockAuthorizerInterface
}

// NewMockAuthorizerInterface creates a new mock instance.
func NewMockAuthorizerInterface(ctrl *gomock.Controller) *MockAuthorizerInterface {
	mock := &MockAuthorizerInterface{ctrl: ctrl}
	mock.recorder = &MockAuthorizerInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAuthorizerInterface) EXPECT() *MockAuthorizerInterfaceMockRecorder {
	return m.recorder
}

// AssignTenantOwner mocks base method.
func (m *MockAuthorizerInterface) AssignTenantOwner(ctx context.Context, tenantID, identityID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AssignTenantOwner", ctx, tenantID, identityID)
	ret0, _ := ret[0].(error)
	return ret0
}

// AssignTenantOwner indicates an expected call of AssignTenantOwner.
func (mr *MockAuthorizerInterfaceMockRecorder) AssignTenantOwner(ctx, tenantID, identityID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AssignTenantOwner", reflect.TypeOf((*MockAuthorizerInterface)(nil).AssignTenantOwner), ctx, tenantID, identityID)
}

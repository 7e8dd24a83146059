// Code generated by MockGen. DO NOT EDIT.
// Source: ./interfaces.go
//
// Generated by this command:
//
//	mockgen -build_flags=--mod=mod -package tenant -destination ./mock_interfaces.go -source=./interfaces.go
//

// Package tenant is a generated GoMock package.
package tenant

import (
	context "context"
	reflect "reflect"

	openfga "github.com/churchops/appcontext-service/internal/openfga"
	types "github.com/churchops/appcontext-service/internal/types"
	client "github.com/ory/client-go"
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

// CreateTenant mocks base method.
func (m *MockServiceInterface) CreateTenant(ctx context.Context, name string) (*types.Tenant, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateTenant", ctx, name)
	ret0, _ := ret[0].(*types.Tenant)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateTenant indicates an expected call of CreateTenant.
func (mr *MockServiceInterfaceMockRecorder) CreateTenant(ctx, name any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateTenant", reflect.TypeOf((*MockServiceInterface)(nil).CreateTenant), ctx, name)
}

// DeleteTenant mocks base method.
func (m *MockServiceInterface) DeleteTenant(ctx context.Context, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteTenant", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteTenant indicates an expected call of DeleteTenant.
func (mr *MockServiceInterfaceMockRecorder) DeleteTenant(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteTenant", reflect.TypeOf((*MockServiceInterface)(nil).DeleteTenant), ctx, id)
}

// GetTenant mocks base method.
func (m *MockServiceInterface) GetTenant(ctx context.Context, id string) (*types.Tenant, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetTenant", ctx, id)
	ret0, _ := ret[0].(*types.Tenant)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetTenant indicates an expected call of GetTenant.
func (mr *MockServiceInterfaceMockRecorder) GetTenant(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTenant", reflect.TypeOf((*MockServiceInterface)(nil).GetTenant), ctx, id)
}

// InviteMember mocks base method.
func (m *MockServiceInterface) InviteMember(ctx context.Context, tenantID, email, role string) (string, string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InviteMember", ctx, tenantID, email, role)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(string)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// InviteMember indicates an expected call of InviteMember.
func (mr *MockServiceInterfaceMockRecorder) InviteMember(ctx, tenantID, email, role any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InviteMember", reflect.TypeOf((*MockServiceInterface)(nil).InviteMember), ctx, tenantID, email, role)
}

// ListTenantUsers mocks base method.
func (m *MockServiceInterface) ListTenantUsers(ctx context.Context, tenantID string) ([]*types.TenantUser, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListTenantUsers", ctx, tenantID)
	ret0, _ := ret[0].([]*types.TenantUser)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListTenantUsers indicates an expected call of ListTenantUsers.
func (mr *MockServiceInterfaceMockRecorder) ListTenantUsers(ctx, tenantID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListTenantUsers", reflect.TypeOf((*MockServiceInterface)(nil).ListTenantUsers), ctx, tenantID)
}

// ListTenants mocks base method.
func (m *MockServiceInterface) ListTenants(ctx context.Context) ([]*types.Tenant, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListTenants", ctx)
	ret0, _ := ret[0].([]*types.Tenant)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListTenants indicates an expected call of ListTenants.
func (mr *MockServiceInterfaceMockRecorder) ListTenants(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListTenants", reflect.TypeOf((*MockServiceInterface)(nil).ListTenants), ctx)
}

// ProvisionUser mocks base method.
func (m *MockServiceInterface) ProvisionUser(ctx context.Context, tenantID, email, role string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ProvisionUser", ctx, tenantID, email, role)
	ret0, _ := ret[0].(error)
	return ret0
}

// ProvisionUser indicates an expected call of ProvisionUser.
func (mr *MockServiceInterfaceMockRecorder) ProvisionUser(ctx, tenantID, email, role any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ProvisionUser", reflect.TypeOf((*MockServiceInterface)(nil).ProvisionUser), ctx, tenantID, email, role)
}

// RemoveMember mocks base method.
func (m *MockServiceInterface) RemoveMember(ctx context.Context, tenantID, identityID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RemoveMember", ctx, tenantID, identityID)
	ret0, _ := ret[0].(error)
	return ret0
}

// RemoveMember indicates an expected call of RemoveMember.
func (mr *MockServiceInterfaceMockRecorder) RemoveMember(ctx, tenantID, identityID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RemoveMember", reflect.TypeOf((*MockServiceInterface)(nil).RemoveMember), ctx, tenantID, identityID)
}

// SetPrimaryTenant mocks base method.
func (m *MockServiceInterface) SetPrimaryTenant(ctx context.Context, identityID, tenantID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetPrimaryTenant", ctx, identityID, tenantID)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetPrimaryTenant indicates an expected call of SetPrimaryTenant.
func (mr *MockServiceInterfaceMockRecorder) SetPrimaryTenant(ctx, identityID, tenantID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetPrimaryTenant", reflect.TypeOf((*MockServiceInterface)(nil).SetPrimaryTenant), ctx, identityID, tenantID)
}

// UpdateTenant mocks base method.
func (m *MockServiceInterface) UpdateTenant(ctx context.Context, tenant *types.Tenant, paths []string) (*types.Tenant, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateTenant", ctx, tenant, paths)
	ret0, _ := ret[0].(*types.Tenant)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateTenant indicates an expected call of UpdateTenant.
func (mr *MockServiceInterfaceMockRecorder) UpdateTenant(ctx, tenant, paths any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateTenant", reflect.TypeOf((*MockServiceInterface)(nil).UpdateTenant), ctx, tenant, paths)
}

// UpdateTenantUser mocks base method.
func (m *MockServiceInterface) UpdateTenantUser(ctx context.Context, tenantID, identityID, role string) (*types.TenantUser, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateTenantUser", ctx, tenantID, identityID, role)
	ret0, _ := ret[0].(*types.TenantUser)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateTenantUser indicates an expected call of UpdateTenantUser.
func (mr *MockServiceInterfaceMockRecorder) UpdateTenantUser(ctx, tenantID, identityID, role any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateTenantUser", reflect.TypeOf((*MockServiceInterface)(nil).UpdateTenantUser), ctx, tenantID, identityID, role)
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

// DeleteTenant mocks base method.
func (m *MockStorageInterface) DeleteTenant(ctx context.Context, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteTenant", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteTenant indicates an expected call of DeleteTenant.
func (mr *MockStorageInterfaceMockRecorder) DeleteTenant(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteTenant", reflect.TypeOf((*MockStorageInterface)(nil).DeleteTenant), ctx, id)
}

// GetTenantByID mocks base method.
func (m *MockStorageInterface) GetTenantByID(ctx context.Context, id string) (*types.Tenant, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetTenantByID", ctx, id)
	ret0, _ := ret[0].(*types.Tenant)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetTenantByID indicates an expected call of GetTenantByID.
func (mr *MockStorageInterfaceMockRecorder) GetTenantByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTenantByID", reflect.TypeOf((*MockStorageInterface)(nil).GetTenantByID), ctx, id)
}

// ListMembersByTenantID mocks base method.
func (m *MockStorageInterface) ListMembersByTenantID(ctx context.Context, tenantID string) ([]*types.Membership, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListMembersByTenantID", ctx, tenantID)
	ret0, _ := ret[0].([]*types.Membership)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListMembersByTenantID indicates an expected call of ListMembersByTenantID.
func (mr *MockStorageInterfaceMockRecorder) ListMembersByTenantID(ctx, tenantID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListMembersByTenantID", reflect.TypeOf((*MockStorageInterface)(nil).ListMembersByTenantID), ctx, tenantID)
}

// ListTenants mocks base method.
func (m *MockStorageInterface) ListTenants(ctx context.Context) ([]*types.Tenant, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListTenants", ctx)
	ret0, _ := ret[0].([]*types.Tenant)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListTenants indicates an expected call of ListTenants.
func (mr *MockStorageInterfaceMockRecorder) ListTenants(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListTenants", reflect.TypeOf((*MockStorageInterface)(nil).ListTenants), ctx)
}

// RemoveMember mocks base method.
func (m *MockStorageInterface) RemoveMember(ctx context.Context, tenantID, identityID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RemoveMember", ctx, tenantID, identityID)
	ret0, _ := ret[0].(error)
	return ret0
}

// RemoveMember indicates an expected call of RemoveMember.
func (mr *MockStorageInterfaceMockRecorder) RemoveMember(ctx, tenantID, identityID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RemoveMember", reflect.TypeOf((*MockStorageInterface)(nil).RemoveMember), ctx, tenantID, identityID)
}

// SetPrimaryMembership mocks base method.
func (m *MockStorageInterface) SetPrimaryMembership(ctx context.Context, identityID, tenantID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetPrimaryMembership", ctx, identityID, tenantID)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetPrimaryMembership indicates an expected call of SetPrimaryMembership.
func (mr *MockStorageInterfaceMockRecorder) SetPrimaryMembership(ctx, identityID, tenantID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetPrimaryMembership", reflect.TypeOf((*MockStorageInterface)(nil).SetPrimaryMembership), ctx, identityID, tenantID)
}

// UpdateMember mocks base method.
func (m *MockStorageInterface) UpdateMember(ctx context.Context, tenantID, identityID, role string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateMember", ctx, tenantID, identityID, role)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateMember indicates an expected call of UpdateMember.
func (mr *MockStorageInterfaceMockRecorder) UpdateMember(ctx, tenantID, identityID, role any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateMember", reflect.TypeOf((*MockStorageInterface)(nil).UpdateMember), ctx, tenantID, identityID, role)
}

// UpdateTenant mocks base method.
func (m *MockStorageInterface) UpdateTenant(ctx context.Context, tenant *types.Tenant, paths []string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateTenant", ctx, tenant, paths)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateTenant indicates an expected call of UpdateTenant.
func (mr *MockStorageInterfaceMockRecorder) UpdateTenant(ctx, tenant, paths any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateTenant", reflect.TypeOf((*MockStorageInterface)(nil).UpdateTenant), ctx, tenant, paths)
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

// AssignTenantMember mocks base method.
func (m *MockAuthzInterface) AssignTenantMember(ctx context.Context, tenantID, identityID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AssignTenantMember", ctx, tenantID, identityID)
	ret0, _ := ret[0].(error)
	return ret0
}

// AssignTenantMember indicates an expected call of AssignTenantMember.
func (mr *MockAuthzInterfaceMockRecorder) AssignTenantMember(ctx, tenantID, identityID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AssignTenantMember", reflect.TypeOf((*MockAuthzInterface)(nil).AssignTenantMember), ctx, tenantID, identityID)
}

// AssignTenantOwner mocks base method.
func (m *MockAuthzInterface) AssignTenantOwner(ctx context.Context, tenantID, identityID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AssignTenantOwner", ctx, tenantID, identityID)
	ret0, _ := ret[0].(error)
	return ret0
}

// AssignTenantOwner indicates an expected call of AssignTenantOwner.
func (mr *MockAuthzInterfaceMockRecorder) AssignTenantOwner(ctx, tenantID, identityID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AssignTenantOwner", reflect.TypeOf((*MockAuthzInterface)(nil).AssignTenantOwner), ctx, tenantID, identityID)
}

// Check mocks base method.
func (m *MockAuthzInterface) Check(ctx context.Context, user, relation, object string, tuples ...openfga.Tuple) (bool, error) {
	m.ctrl.T.Helper()
	varargs := []any{ctx, user, relation, object}
	for _, a := range tuples {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "Check", varargs...)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Check indicates an expected call of Check.
func (mr *MockAuthzInterfaceMockRecorder) Check(ctx, user, relation, object any, tuples ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{ctx, user, relation, object}, tuples...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Check", reflect.TypeOf((*MockAuthzInterface)(nil).Check), varargs...)
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

// DeleteTenant mocks base method.
func (m *MockAuthzInterface) DeleteTenant(ctx context.Context, tenantID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteTenant", ctx, tenantID)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteTenant indicates an expected call of DeleteTenant.
func (mr *MockAuthzInterfaceMockRecorder) DeleteTenant(ctx, tenantID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteTenant", reflect.TypeOf((*MockAuthzInterface)(nil).DeleteTenant), ctx, tenantID)
}

// RemoveTenantMember mocks base method.
func (m *MockAuthzInterface) RemoveTenantMember(ctx context.Context, tenantID, identityID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RemoveTenantMember", ctx, tenantID, identityID)
	ret0, _ := ret[0].(error)
	return ret0
}

// RemoveTenantMember indicates an expected call of RemoveTenantMember.
func (mr *MockAuthzInterfaceMockRecorder) RemoveTenantMember(ctx, tenantID, identityID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RemoveTenantMember", reflect.TypeOf((*MockAuthzInterface)(nil).RemoveTenantMember), ctx, tenantID, identityID)
}

// RemoveTenantOwner mocks base method.
func (m *MockAuthzInterface) RemoveTenantOwner(ctx context.Context, tenantID, identityID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RemoveTenantOwner", ctx, tenantID, identityID)
	ret0, _ := ret[0].(error)
	return ret0
}

// RemoveTenantOwner indicates an expected call of RemoveTenantOwner.
func (mr *MockAuthzInterfaceMockRecorder) RemoveTenantOwner(ctx, tenantID, identityID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RemoveTenantOwner", reflect.TypeOf((*MockAuthzInterface)(nil).RemoveTenantOwner), ctx, tenantID, identityID)
}

// MockKratosClientInterface is a mock of KratosClientInterface interface.
type MockKratosClientInterface struct {
	ctrl     *gomock.Controller
	recorder *MockKratosClientInterfaceMockRecorder
	isgomock struct{}
}

// MockKratosClientInterfaceMockRecorder is the mock recorder for MockKratosClientInterface.
type MockKratosClientInterfaceMockRecorder struct {
	mock *MockKratosClientInterface
}

// NewMockKratosClientInterface creates a new mock instance.
func NewMockKratosClientInterface(ctrl *gomock.Controller) *MockKratosClientInterface {
	mock := &MockKratosClientInterface{ctrl: ctrl}
	mock.recorder = &MockKratosClientInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockKratosClientInterface) EXPECT() *MockKratosClientInterfaceMockRecorder {
	return m.recorder
}

// CreateIdentity mocks base method.
func (m *MockKratosClientInterface) CreateIdentity(ctx context.Context, email string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateIdentity", ctx, email)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateIdentity indicates an expected call of CreateIdentity.
func (mr *MockKratosClientInterfaceMockRecorder) CreateIdentity(ctx, email any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateIdentity", reflect.TypeOf((*MockKratosClientInterface)(nil).CreateIdentity), ctx, email)
}

// CreateRecoveryLink mocks base method.
func (m *MockKratosClientInterface) CreateRecoveryLink(ctx context.Context, identityID, expiresIn string) (string, string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateRecoveryLink", ctx, identityID, expiresIn)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(string)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// CreateRecoveryLink indicates an expected call of CreateRecoveryLink.
func (mr *MockKratosClientInterfaceMockRecorder) CreateRecoveryLink(ctx, identityID, expiresIn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateRecoveryLink", reflect.TypeOf((*MockKratosClientInterface)(nil).CreateRecoveryLink), ctx, identityID, expiresIn)
}

// GetIdentity mocks base method.
func (m *MockKratosClientInterface) GetIdentity(ctx context.Context, id string) (*client.Identity, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetIdentity", ctx, id)
	ret0, _ := ret[0].(*client.Identity)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetIdentity indicates an expected call of GetIdentity.
func (mr *MockKratosClientInterfaceMockRecorder) GetIdentity(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetIdentity", reflect.TypeOf((*MockKratosClientInterface)(nil).GetIdentity), ctx, id)
}

// GetIdentityIDByEmail mocks base method.
func (m *MockKratosClientInterface) GetIdentityIDByEmail(ctx context.Context, email string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetIdentityIDByEmail", ctx, email)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetIdentityIDByEmail indicates an expected call of GetIdentityIDByEmail.
func (mr *MockKratosClientInterfaceMockRecorder) GetIdentityIDByEmail(ctx, email any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetIdentityIDByEmail", reflect.TypeOf((*MockKratosClientInterface)(nil).GetIdentityIDByEmail), ctx, email)
}

// Code generated by MockGen. DO NOT EDIT.
// Source: ./interfaces.go
//
// Generated by this command:
//
//	mockgen -build_flags=--mod=mod -package authorization -destination ./mock_interfaces.go -source=./interfaces.go
//

// Package authorization is a generated GoMock package.
package authorization

import (
	context "context"
	reflect "reflect"

	openfga "github.com/churchops/appcontext-service/internal/openfga"
	openfga0 "github.com/openfga/go-sdk"
	client "github.com/openfga/go-sdk/client"
	gomock "go.uber.org/mock/gomock"
)

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

// AssignTenantMember mocks base method.
func (m *MockAuthorizerInterface) AssignTenantMember(arg0 context.Context, arg1, arg2 string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AssignTenantMember", arg0, arg1, arg2)
	ret0, _ := ret[0].(error)
	return ret0
}

// AssignTenantMember indicates an expected call of AssignTenantMember.
func (mr *MockAuthorizerInterfaceMockRecorder) AssignTenantMember(arg0, arg1, arg2 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AssignTenantMember", reflect.TypeOf((*MockAuthorizerInterface)(nil).AssignTenantMember), arg0, arg1, arg2)
}

// AssignTenantOwner mocks base method.
func (m *MockAuthorizerInterface) AssignTenantOwner(arg0 context.Context, arg1, arg2 string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AssignTenantOwner", arg0, arg1, arg2)
	ret0, _ := ret[0].(error)
	return ret0
}

// AssignTenantOwner indicates an expected call of AssignTenantOwner.
func (mr *MockAuthorizerInterfaceMockRecorder) AssignTenantOwner(arg0, arg1, arg2 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AssignTenantOwner", reflect.TypeOf((*MockAuthorizerInterface)(nil).AssignTenantOwner), arg0, arg1, arg2)
}

// Check mocks base method.
func (m *MockAuthorizerInterface) Check(arg0 context.Context, arg1, arg2, arg3 string, arg4 ...openfga.Tuple) (bool, error) {
	m.ctrl.T.Helper()
	varargs := []any{arg0, arg1, arg2, arg3}
	for _, a := range arg4 {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "Check", varargs...)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Check indicates an expected call of Check.
func (mr *MockAuthorizerInterfaceMockRecorder) Check(arg0, arg1, arg2, arg3 any, arg4 ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{arg0, arg1, arg2, arg3}, arg4...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Check", reflect.TypeOf((*MockAuthorizerInterface)(nil).Check), varargs...)
}

// CheckTenantAccess mocks base method.
func (m *MockAuthorizerInterface) CheckTenantAccess(arg0 context.Context, arg1, arg2, arg3 string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CheckTenantAccess", arg0, arg1, arg2, arg3)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CheckTenantAccess indicates an expected call of CheckTenantAccess.
func (mr *MockAuthorizerInterfaceMockRecorder) CheckTenantAccess(arg0, arg1, arg2, arg3 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CheckTenantAccess", reflect.TypeOf((*MockAuthorizerInterface)(nil).CheckTenantAccess), arg0, arg1, arg2, arg3)
}

// DeleteTenant mocks base method.
func (m *MockAuthorizerInterface) DeleteTenant(arg0 context.Context, arg1 string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteTenant", arg0, arg1)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteTenant indicates an expected call of DeleteTenant.
func (mr *MockAuthorizerInterfaceMockRecorder) DeleteTenant(arg0, arg1 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteTenant", reflect.TypeOf((*MockAuthorizerInterface)(nil).DeleteTenant), arg0, arg1)
}

// FilterObjects mocks base method.
func (m *MockAuthorizerInterface) FilterObjects(arg0 context.Context, arg1, arg2, arg3 string, arg4 []string) ([]string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FilterObjects", arg0, arg1, arg2, arg3, arg4)
	ret0, _ := ret[0].([]string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FilterObjects indicates an expected call of FilterObjects.
func (mr *MockAuthorizerInterfaceMockRecorder) FilterObjects(arg0, arg1, arg2, arg3, arg4 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FilterObjects", reflect.TypeOf((*MockAuthorizerInterface)(nil).FilterObjects), arg0, arg1, arg2, arg3, arg4)
}

// ListObjects mocks base method.
func (m *MockAuthorizerInterface) ListObjects(arg0 context.Context, arg1, arg2, arg3 string) ([]string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListObjects", arg0, arg1, arg2, arg3)
	ret0, _ := ret[0].([]string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListObjects indicates an expected call of ListObjects.
func (mr *MockAuthorizerInterfaceMockRecorder) ListObjects(arg0, arg1, arg2, arg3 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListObjects", reflect.TypeOf((*MockAuthorizerInterface)(nil).ListObjects), arg0, arg1, arg2, arg3)
}

// RemoveTenantMember mocks base method.
func (m *MockAuthorizerInterface) RemoveTenantMember(arg0 context.Context, arg1, arg2 string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RemoveTenantMember", arg0, arg1, arg2)
	ret0, _ := ret[0].(error)
	return ret0
}

// RemoveTenantMember indicates an expected call of RemoveTenantMember.
func (mr *MockAuthorizerInterfaceMockRecorder) RemoveTenantMember(arg0, arg1, arg2 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RemoveTenantMember", reflect.TypeOf((*MockAuthorizerInterface)(nil).RemoveTenantMember), arg0, arg1, arg2)
}

// RemoveTenantOwner mocks base method.
func (m *MockAuthorizerInterface) RemoveTenantOwner(arg0 context.Context, arg1, arg2 string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RemoveTenantOwner", arg0, arg1, arg2)
	ret0, _ := ret[0].(error)
	return ret0
}

// RemoveTenantOwner indicates an expected call of RemoveTenantOwner.
func (mr *MockAuthorizerInterfaceMockRecorder) RemoveTenantOwner(arg0, arg1, arg2 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RemoveTenantOwner", reflect.TypeOf((*MockAuthorizerInterface)(nil).RemoveTenantOwner), arg0, arg1, arg2)
}

// ValidateModel mocks base method.
func (m *MockAuthorizerInterface) ValidateModel(arg0 context.Context) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ValidateModel", arg0)
	ret0, _ := ret[0].(error)
	return ret0
}

// ValidateModel indicates an expected call of ValidateModel.
func (mr *MockAuthorizerInterfaceMockRecorder) ValidateModel(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ValidateModel", reflect.TypeOf((*MockAuthorizerInterface)(nil).ValidateModel), arg0)
}

// MockAuthzClientInterface is a mock of AuthzClientInterface interface.
type MockAuthzClientInterface struct {
	ctrl     *gomock.Controller
	recorder *MockAuthzClientInterfaceMockRecorder
	isgomock struct{}
}

// MockAuthzClientInterfaceMockRecorder is the mock recorder for MockAuthzClientInterface.
type MockAuthzClientInterfaceMockRecorder struct {
	mock *MockAuthzClientInterface
}

// NewMockAuthzClientInterface creates a new mock instance.
func NewMockAuthzClientInterface(ctrl *gomock.Controller) *MockAuthzClientInterface {
	mock := &MockAuthzClientInterface{ctrl: ctrl}
	mock.recorder = &MockAuthzClientInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAuthzClientInterface) EXPECT() *MockAuthzClientInterfaceMockRecorder {
	return m.recorder
}

// Check mocks base method.
func (m *MockAuthzClientInterface) Check(arg0 context.Context, arg1, arg2, arg3 string, arg4 ...openfga.Tuple) (bool, error) {
	m.ctrl.T.Helper()
	varargs := []any{arg0, arg1, arg2, arg3}
	for _, a := range arg4 {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "Check", varargs...)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Check indicates an expected call of Check.
func (mr *MockAuthzClientInterfaceMockRecorder) Check(arg0, arg1, arg2, arg3 any, arg4 ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{arg0, arg1, arg2, arg3}, arg4...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Check", reflect.TypeOf((*MockAuthzClientInterface)(nil).Check), varargs...)
}

// CompareModel mocks base method.
func (m *MockAuthzClientInterface) CompareModel(arg0 context.Context, arg1 openfga0.AuthorizationModel) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CompareModel", arg0, arg1)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CompareModel indicates an expected call of CompareModel.
func (mr *MockAuthzClientInterfaceMockRecorder) CompareModel(arg0, arg1 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CompareModel", reflect.TypeOf((*MockAuthzClientInterface)(nil).CompareModel), arg0, arg1)
}

// DeleteTuple mocks base method.
func (m *MockAuthzClientInterface) DeleteTuple(ctx context.Context, user, relation, object string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteTuple", ctx, user, relation, object)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteTuple indicates an expected call of DeleteTuple.
func (mr *MockAuthzClientInterfaceMockRecorder) DeleteTuple(ctx, user, relation, object any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteTuple", reflect.TypeOf((*MockAuthzClientInterface)(nil).DeleteTuple), ctx, user, relation, object)
}

// DeleteTuples mocks base method.
func (m *MockAuthzClientInterface) DeleteTuples(arg0 context.Context, arg1 ...openfga.Tuple) error {
	m.ctrl.T.Helper()
	varargs := []any{arg0}
	for _, a := range arg1 {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "DeleteTuples", varargs...)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteTuples indicates an expected call of DeleteTuples.
func (mr *MockAuthzClientInterfaceMockRecorder) DeleteTuples(arg0 any, arg1 ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{arg0}, arg1...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteTuples", reflect.TypeOf((*MockAuthzClientInterface)(nil).DeleteTuples), varargs...)
}

// ListObjects mocks base method.
func (m *MockAuthzClientInterface) ListObjects(arg0 context.Context, arg1, arg2, arg3 string) ([]string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListObjects", arg0, arg1, arg2, arg3)
	ret0, _ := ret[0].([]string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListObjects indicates an expected call of ListObjects.
func (mr *MockAuthzClientInterfaceMockRecorder) ListObjects(arg0, arg1, arg2, arg3 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListObjects", reflect.TypeOf((*MockAuthzClientInterface)(nil).ListObjects), arg0, arg1, arg2, arg3)
}

// ReadModel mocks base method.
func (m *MockAuthzClientInterface) ReadModel(arg0 context.Context) (*openfga0.AuthorizationModel, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ReadModel", arg0)
	ret0, _ := ret[0].(*openfga0.AuthorizationModel)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ReadModel indicates an expected call of ReadModel.
func (mr *MockAuthzClientInterfaceMockRecorder) ReadModel(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReadModel", reflect.TypeOf((*MockAuthzClientInterface)(nil).ReadModel), arg0)
}

// ReadTuples mocks base method.
func (m *MockAuthzClientInterface) ReadTuples(arg0 context.Context, arg1, arg2, arg3, arg4 string) (*client.ClientReadResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ReadTuples", arg0, arg1, arg2, arg3, arg4)
	ret0, _ := ret[0].(*client.ClientReadResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ReadTuples indicates an expected call of ReadTuples.
func (mr *MockAuthzClientInterfaceMockRecorder) ReadTuples(arg0, arg1, arg2, arg3, arg4 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReadTuples", reflect.TypeOf((*MockAuthzClientInterface)(nil).ReadTuples), arg0, arg1, arg2, arg3, arg4)
}

// WriteTuple mocks base method.
func (m *MockAuthzClientInterface) WriteTuple(ctx context.Context, user, relation, object string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "WriteTuple", ctx, user, relation, object)
	ret0, _ := ret[0].(error)
	return ret0
}

// WriteTuple indicates an expected call of WriteTuple.
func (mr *MockAuthzClientInterfaceMockRecorder) WriteTuple(ctx, user, relation, object any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WriteTuple", reflect.TypeOf((*MockAuthzClientInterface)(nil).WriteTuple), ctx, user, relation, object)
}

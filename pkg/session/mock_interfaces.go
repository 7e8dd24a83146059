// Code generated by MockGen. DO NOT EDIT.
// Source: ./interfaces.go
//
// Generated by this command:
//
//	mockgen -build_flags=--mod=mod -package session -destination ./mock_interfaces.go -source=./interfaces.go
//

// Package session is a generated GoMock package.
package session

import (
	context "context"
	reflect "reflect"

	types "github.com/churchops/appcontext-service/internal/types"
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

// ClearActiveTenant mocks base method.
func (m *MockServiceInterface) ClearActiveTenant(ctx context.Context, token string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ClearActiveTenant", ctx, token)
	ret0, _ := ret[0].(error)
	return ret0
}

// ClearActiveTenant indicates an expected call of ClearActiveTenant.
func (mr *MockServiceInterfaceMockRecorder) ClearActiveTenant(ctx, token any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ClearActiveTenant", reflect.TypeOf((*MockServiceInterface)(nil).ClearActiveTenant), ctx, token)
}

// EndSession mocks base method.
func (m *MockServiceInterface) EndSession(ctx context.Context, token string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "EndSession", ctx, token)
	ret0, _ := ret[0].(error)
	return ret0
}

// EndSession indicates an expected call of EndSession.
func (mr *MockServiceInterfaceMockRecorder) EndSession(ctx, token any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "EndSession", reflect.TypeOf((*MockServiceInterface)(nil).EndSession), ctx, token)
}

// GetSession mocks base method.
func (m *MockServiceInterface) GetSession(ctx context.Context, token string) (*types.Session, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetSession", ctx, token)
	ret0, _ := ret[0].(*types.Session)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetSession indicates an expected call of GetSession.
func (mr *MockServiceInterfaceMockRecorder) GetSession(ctx, token any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetSession", reflect.TypeOf((*MockServiceInterface)(nil).GetSession), ctx, token)
}

// PurgeExpired mocks base method.
func (m *MockServiceInterface) PurgeExpired(ctx context.Context) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PurgeExpired", ctx)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// PurgeExpired indicates an expected call of PurgeExpired.
func (mr *MockServiceInterfaceMockRecorder) PurgeExpired(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PurgeExpired", reflect.TypeOf((*MockServiceInterface)(nil).PurgeExpired), ctx)
}

// SetActiveTenant mocks base method.
func (m *MockServiceInterface) SetActiveTenant(ctx context.Context, token, tenantID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetActiveTenant", ctx, token, tenantID)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetActiveTenant indicates an expected call of SetActiveTenant.
func (mr *MockServiceInterfaceMockRecorder) SetActiveTenant(ctx, token, tenantID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetActiveTenant", reflect.TypeOf((*MockServiceInterface)(nil).SetActiveTenant), ctx, token, tenantID)
}

// StartSession mocks base method.
func (m *MockServiceInterface) StartSession(ctx context.Context, identityID, ip, userAgent string) (*types.Session, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "StartSession", ctx, identityID, ip, userAgent)
	ret0, _ := ret[0].(*types.Session)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// StartSession indicates an expected call of StartSession.
func (mr *MockServiceInterfaceMockRecorder) StartSession(ctx, identityID, ip, userAgent any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StartSession", reflect.TypeOf((*MockServiceInterface)(nil).StartSession), ctx, identityID, ip, userAgent)
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

// ClearSessionActiveTenant mocks base method.
func (m *MockStorageInterface) ClearSessionActiveTenant(ctx context.Context, token string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ClearSessionActiveTenant", ctx, token)
	ret0, _ := ret[0].(error)
	return ret0
}

// ClearSessionActiveTenant indicates an expected call of ClearSessionActiveTenant.
func (mr *MockStorageInterfaceMockRecorder) ClearSessionActiveTenant(ctx, token any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ClearSessionActiveTenant", reflect.TypeOf((*MockStorageInterface)(nil).ClearSessionActiveTenant), ctx, token)
}

// CreateSession mocks base method.
func (m *MockStorageInterface) CreateSession(ctx context.Context, sess *types.Session) (*types.Session, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateSession", ctx, sess)
	ret0, _ := ret[0].(*types.Session)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateSession indicates an expected call of CreateSession.
func (mr *MockStorageInterfaceMockRecorder) CreateSession(ctx, sess any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateSession", reflect.TypeOf((*MockStorageInterface)(nil).CreateSession), ctx, sess)
}

// DeleteExpiredSessions mocks base method.
func (m *MockStorageInterface) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteExpiredSessions", ctx)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DeleteExpiredSessions indicates an expected call of DeleteExpiredSessions.
func (mr *MockStorageInterfaceMockRecorder) DeleteExpiredSessions(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteExpiredSessions", reflect.TypeOf((*MockStorageInterface)(nil).DeleteExpiredSessions), ctx)
}

// DeleteSession mocks base method.
func (m *MockStorageInterface) DeleteSession(ctx context.Context, token string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteSession", ctx, token)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteSession indicates an expected call of DeleteSession.
func (mr *MockStorageInterfaceMockRecorder) DeleteSession(ctx, token any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteSession", reflect.TypeOf((*MockStorageInterface)(nil).DeleteSession), ctx, token)
}

// GetSessionByToken mocks base method.
func (m *MockStorageInterface) GetSessionByToken(ctx context.Context, token string) (*types.Session, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetSessionByToken", ctx, token)
	ret0, _ := ret[0].(*types.Session)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetSessionByToken indicates an expected call of GetSessionByToken.
func (mr *MockStorageInterfaceMockRecorder) GetSessionByToken(ctx, token any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetSessionByToken", reflect.TypeOf((*MockStorageInterface)(nil).GetSessionByToken), ctx, token)
}

// SetSessionActiveTenant mocks base method.
func (m *MockStorageInterface) SetSessionActiveTenant(ctx context.Context, token, tenantID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetSessionActiveTenant", ctx, token, tenantID)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetSessionActiveTenant indicates an expected call of SetSessionActiveTenant.
func (mr *MockStorageInterfaceMockRecorder) SetSessionActiveTenant(ctx, token, tenantID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetSessionActiveTenant", reflect.TypeOf((*MockStorageInterface)(nil).SetSessionActiveTenant), ctx, token, tenantID)
}

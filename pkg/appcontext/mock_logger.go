// Code generated by MockGen. DO NOT EDIT.
// Source: ../../internal/logging/interfaces.go
//
// Generated by this command:
//
//	mockgen -build_flags=--mod=mod -package appcontext -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//

// Package appcontext is a generated GoMock package.
package appcontext

import (
	reflect "reflect"

	logging "github.com/churchops/appcontext-service/internal/logging"
	gomock "go.uber.org/mock/gomock"
)

// MockLoggerInterface is a mock of LoggerInterface interface.
type MockLoggerInterface struct {
	ctrl     *gomock.Controller
	recorder *MockLoggerInterfaceMockRecorder
	isgomock struct{}
}

// MockLoggerInterfaceMockRecorder is the mock recorder for MockLoggerInterface.
type MockLoggerInterfaceMockRecorder struct {
	mock *MockLoggerInterface
}

// NewMockLoggerInterface creates a new mock instance.
func NewMockLoggerInterface(ctrl *gomock.Controller) *MockLoggerInterface {
	mock := &MockLoggerInterface{ctrl: ctrl}
	mock.recorder = &MockLoggerInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockLoggerInterface) EXPECT() *MockLoggerInterfaceMockRecorder {
	return m.recorder
}

// Debug mocks base method.
func (m *MockLoggerInterface) Debug(args ...any) {
	m.ctrl.T.Helper()
	varargs := []any{}
	for _, a := range args {
		varargs = append(varargs, a)
	}
	m.ctrl.Call(m, "Debug", varargs...)
}

// Debug indicates an expected call of Debug.
func (mr *MockLoggerInterfaceMockRecorder) Debug(args ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Debug", reflect.TypeOf((*MockLoggerInterface)(nil).Debug), args...)
}

// Debugf mocks base method.
func (m *MockLoggerInterface) Debugf(format string, args ...any) {
	m.ctrl.T.Helper()
	varargs := []any{format}
	for _, a := range args {
		varargs = append(varargs, a)
	}
	m.ctrl.Call(m, "Debugf", varargs...)
}

// Debugf indicates an expected call of Debugf.
func (mr *MockLoggerInterfaceMockRecorder) Debugf(format any, args ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{format}, args...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Debugf", reflect.TypeOf((*MockLoggerInterface)(nil).Debugf), varargs...)
}

// Error mocks base method.
func (m *MockLoggerInterface) Error(args ...any) {
	m.ctrl.T.Helper()
	varargs := []any{}
	for _, a := range args {
		varargs = append(varargs, a)
	}
	m.ctrl.Call(m, "Error", varargs...)
}

// Error indicates an expected call of Error.
func (mr *MockLoggerInterfaceMockRecorder) Error(args ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Error", reflect.TypeOf((*MockLoggerInterface)(nil).Error), args...)
}

// Errorf mocks base method.
func (m *MockLoggerInterface) Errorf(format string, args ...any) {
	m.ctrl.T.Helper()
	varargs := []any{format}
	for _, a := range args {
		varargs = append(varargs, a)
	}
	m.ctrl.Call(m, "Errorf", varargs...)
}

// Errorf indicates an expected call of Errorf.
func (mr *MockLoggerInterfaceMockRecorder) Errorf(format any, args ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{format}, args...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Errorf", reflect.TypeOf((*MockLoggerInterface)(nil).Errorf), varargs...)
}

// Fatalf mocks base method.
func (m *MockLoggerInterface) Fatalf(format string, args ...any) {
	m.ctrl.T.Helper()
	varargs := []any{format}
	for _, a := range args {
		varargs = append(varargs, a)
	}
	m.ctrl.Call(m, "Fatalf", varargs...)
}

// Fatalf indicates an expected call of Fatalf.
func (mr *MockLoggerInterfaceMockRecorder) Fatalf(format any, args ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{format}, args...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Fatalf", reflect.TypeOf((*MockLoggerInterface)(nil).Fatalf), varargs...)
}

// Info mocks base method.
func (m *MockLoggerInterface) Info(args ...any) {
	m.ctrl.T.Helper()
	varargs := []any{}
	for _, a := range args {
		varargs = append(varargs, a)
	}
	m.ctrl.Call(m, "Info", varargs...)
}

// Info indicates an expected call of Info.
func (mr *MockLoggerInterfaceMockRecorder) Info(args ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Info", reflect.TypeOf((*MockLoggerInterface)(nil).Info), args...)
}

// Infof mocks base method.
func (m *MockLoggerInterface) Infof(format string, args ...any) {
	m.ctrl.T.Helper()
	varargs := []any{format}
	for _, a := range args {
		varargs = append(varargs, a)
	}
	m.ctrl.Call(m, "Infof", varargs...)
}

// Infof indicates an expected call of Infof.
func (mr *MockLoggerInterfaceMockRecorder) Infof(format any, args ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{format}, args...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Infof", reflect.TypeOf((*MockLoggerInterface)(nil).Infof), varargs...)
}

// Security mocks base method.
func (m *MockLoggerInterface) Security() logging.SecurityLoggerInterface {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Security")
	ret0, _ := ret[0].(logging.SecurityLoggerInterface)
	return ret0
}

// Security indicates an expected call of Security.
func (mr *MockLoggerInterfaceMockRecorder) Security() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Security", reflect.TypeOf((*MockLoggerInterface)(nil).Security))
}

// Warn mocks base method.
func (m *MockLoggerInterface) Warn(args ...any) {
	m.ctrl.T.Helper()
	varargs := []any{}
	for _, a := range args {
		varargs = append(varargs, a)
	}
	m.ctrl.Call(m, "Warn", varargs...)
}

// Warn indicates an expected call of Warn.
func (mr *MockLoggerInterfaceMockRecorder) Warn(args ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Warn", reflect.TypeOf((*MockLoggerInterface)(nil).Warn), args...)
}

// Warnf mocks base method.
func (m *MockLoggerInterface) Warnf(format string, args ...any) {
	m.ctrl.T.Helper()
	varargs := []any{format}
	for _, a := range args {
		varargs = append(varargs, a)
	}
	m.ctrl.Call(m, "Warnf", varargs...)
}

// Warnf indicates an expected call of Warnf.
func (mr *MockLoggerInterfaceMockRecorder) Warnf(format any, args ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{format}, args...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Warnf", reflect.TypeOf((*MockLoggerInterface)(nil).Warnf), varargs...)
}

// MockSecurityLoggerInterface is a mock of SecurityLoggerInterface interface.
type MockSecurityLoggerInterface struct {
	ctrl     *gomock.Controller
	recorder *MockSecurityLoggerInterfaceMockRecorder
	isgomock struct{}
}

// MockSecurityLoggerInterfaceMockRecorder is the mock recorder for MockSecurityLoggerInterface.
type MockSecurityLoggerInterfaceMockRecorder struct {
	mock *MockSecurityLoggerInterface
}

// NewMockSecurityLoggerInterface creates a new mock instance.
func NewMockSecurityLoggerInterface(ctrl *gomock.Controller) *MockSecurityLoggerInterface {
	mock := &MockSecurityLoggerInterface{ctrl: ctrl}
	mock.recorder = &MockSecurityLoggerInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSecurityLoggerInterface) EXPECT() *MockSecurityLoggerInterfaceMockRecorder {
	return m.recorder
}

// AuthzFailure mocks base method.
func (m *MockSecurityLoggerInterface) AuthzFailure(subject, action string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "AuthzFailure", subject, action)
}

// AuthzFailure indicates an expected call of AuthzFailure.
func (mr *MockSecurityLoggerInterfaceMockRecorder) AuthzFailure(subject, action any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AuthzFailure", reflect.TypeOf((*MockSecurityLoggerInterface)(nil).AuthzFailure), subject, action)
}

// SessionTenantCleared mocks base method.
func (m *MockSecurityLoggerInterface) SessionTenantCleared(subject, tenantID, reason string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SessionTenantCleared", subject, tenantID, reason)
}

// SessionTenantCleared indicates an expected call of SessionTenantCleared.
func (mr *MockSecurityLoggerInterfaceMockRecorder) SessionTenantCleared(subject, tenantID, reason any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SessionTenantCleared", reflect.TypeOf((*MockSecurityLoggerInterface)(nil).SessionTenantCleared), subject, tenantID, reason)
}

// SystemShutdown mocks base method.
func (m *MockSecurityLoggerInterface) SystemShutdown() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SystemShutdown")
}

// SystemShutdown indicates an expected call of SystemShutdown.
func (mr *MockSecurityLoggerInterfaceMockRecorder) SystemShutdown() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SystemShutdown", reflect.TypeOf((*MockSecurityLoggerInterface)(nil).SystemShutdown))
}

// SystemStartup mocks base method.
func (m *MockSecurityLoggerInterface) SystemStartup() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SystemStartup")
}

// SystemStartup indicates an expected call of SystemStartup.
func (mr *MockSecurityLoggerInterfaceMockRecorder) SystemStartup() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SystemStartup", reflect.TypeOf((*MockSecurityLoggerInterface)(nil).SystemStartup))
}

// TenantAccessDenied mocks base method.
func (m *MockSecurityLoggerInterface) TenantAccessDenied(subject, tenantID string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "TenantAccessDenied", subject, tenantID)
}

// TenantAccessDenied indicates an expected call of TenantAccessDenied.
func (mr *MockSecurityLoggerInterfaceMockRecorder) TenantAccessDenied(subject, tenantID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TenantAccessDenied", reflect.TypeOf((*MockSecurityLoggerInterface)(nil).TenantAccessDenied), subject, tenantID)
}

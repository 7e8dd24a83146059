// Code generated by MockGen. DO NOT EDIT.
// Source: ../../internal/monitoring/interfaces.go
//
// Generated by this command:
//
//	mockgen -build_flags=--mod=mod -package tenant -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//

// Package tenant is a generated GoMock package.
package tenant

import (
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockMonitorInterface is a mock of MonitorInterface interface.
type MockMonitorInterface struct {
	ctrl     *gomock.Controller
	recorder *MockMonitorInterfaceMockRecorder
	isgomock struct{}
}

// MockMonitorInterfaceMockRecorder is the mock recorder for MockMonitorInterface.
type MockMonitorInterfaceMockRecorder struct {
	mock *MockMonitorInterface
}

// NewMockMonitorInterface creates a new mock instance.
func NewMockMonitorInterface(ctrl *gomock.Controller) *MockMonitorInterface {
	mock := &MockMonitorInterface{ctrl: ctrl}
	mock.recorder = &MockMonitorInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockMonitorInterface) EXPECT() *MockMonitorInterfaceMockRecorder {
	return m.recorder
}

// GetService mocks base method.
func (m *MockMonitorInterface) GetService() string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetService")
	ret0, _ := ret[0].(string)
	return ret0
}

// GetService indicates an expected call of GetService.
func (mr *MockMonitorInterfaceMockRecorder) GetService() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetService", reflect.TypeOf((*MockMonitorInterface)(nil).GetService))
}

// SetDependencyAvailability mocks base method.
func (m *MockMonitorInterface) SetDependencyAvailability(arg0 map[string]string, arg1 float64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetDependencyAvailability", arg0, arg1)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetDependencyAvailability indicates an expected call of SetDependencyAvailability.
func (mr *MockMonitorInterfaceMockRecorder) SetDependencyAvailability(arg0, arg1 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetDependencyAvailability", reflect.TypeOf((*MockMonitorInterface)(nil).SetDependencyAvailability), arg0, arg1)
}

// SetResponseTimeMetric mocks base method.
func (m *MockMonitorInterface) SetResponseTimeMetric(arg0 map[string]string, arg1 float64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetResponseTimeMetric", arg0, arg1)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetResponseTimeMetric indicates an expected call of SetResponseTimeMetric.
func (mr *MockMonitorInterfaceMockRecorder) SetResponseTimeMetric(arg0, arg1 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetResponseTimeMetric", reflect.TypeOf((*MockMonitorInterface)(nil).SetResponseTimeMetric), arg0, arg1)
}

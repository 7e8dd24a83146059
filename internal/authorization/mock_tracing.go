// Code generated by MockGen. DO NOT EDIT.
// Source: ../tracing/interfaces.go
//
// Generated by this command:
//
//	mockgen -build_flags=--mod=mod -package authorization -destination ./mock_tracing.go -source=../tracing/interfaces.go
//

// Package authorization is a generated GoMock package.
package authorization

import (
	context "context"
	reflect "reflect"

	trace "go.opentelemetry.io/otel/trace"
	gomock "go.uber.org/mock/gomock"
)

// MockTracingInterface is a mock of TracingInterface interface.
type MockTracingInterface struct {
	ctrl     *gomock.Controller
	recorder *MockTracingInterfaceMockRecorder
	isgomock struct{}
}

// MockTracingInterfaceMockRecorder is the mock recorder for MockTracingInterface.
type MockTracingInterfaceMockRecorder struct {
	mock *MockTracingInterface
}

// NewMockTracingInterface creates a new mock instance.
func NewMockTracingInterface(ctrl *gomock.Controller) *MockTracingInterface {
	mock := &MockTracingInterface{ctrl: ctrl}
	mock.recorder = &MockTracingInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTracingInterface) EXPECT() *MockTracingInterfaceMockRecorder {
	return m.recorder
}

// Start mocks base method.
func (m *MockTracingInterface) Start(ctx context.Context, spanName string) (context.Context, trace.Span) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Start", ctx, spanName)
	ret0, _ := ret[0].(context.Context)
	ret1, _ := ret[1].(trace.Span)
	return ret0, ret1
}

// Start indicates an expected call of Start.
func (mr *MockTracingInterfaceMockRecorder) Start(ctx, spanName any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Start", reflect.TypeOf((*MockTracingInterface)(nil).Start), ctx, spanName)
}

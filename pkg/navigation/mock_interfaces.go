// Code generated by MockGen. DO NOT EDIT.
// Source: ./interfaces.go
//
// Generated by this command:
//
//	mockgen -build_flags=--mod=mod -package navigation -destination ./mock_interfaces.go -source=./interfaces.go
//

// Package navigation is a generated GoMock package.
package navigation

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

// CreateEntry mocks base method.
func (m *MockServiceInterface) CreateEntry(ctx context.Context, e *types.NavigationEntry) (*types.NavigationEntry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateEntry", ctx, e)
	ret0, _ := ret[0].(*types.NavigationEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateEntry indicates an expected call of CreateEntry.
func (mr *MockServiceInterfaceMockRecorder) CreateEntry(ctx, e any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateEntry", reflect.TypeOf((*MockServiceInterface)(nil).CreateEntry), ctx, e)
}

// DeleteEntry mocks base method.
func (m *MockServiceInterface) DeleteEntry(ctx context.Context, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteEntry", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteEntry indicates an expected call of DeleteEntry.
func (mr *MockServiceInterfaceMockRecorder) DeleteEntry(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteEntry", reflect.TypeOf((*MockServiceInterface)(nil).DeleteEntry), ctx, id)
}

// GetEntry mocks base method.
func (m *MockServiceInterface) GetEntry(ctx context.Context, id string) (*types.NavigationEntry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetEntry", ctx, id)
	ret0, _ := ret[0].(*types.NavigationEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetEntry indicates an expected call of GetEntry.
func (mr *MockServiceInterfaceMockRecorder) GetEntry(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetEntry", reflect.TypeOf((*MockServiceInterface)(nil).GetEntry), ctx, id)
}

// ListEntries mocks base method.
func (m *MockServiceInterface) ListEntries(ctx context.Context, navType string) ([]*types.NavigationEntry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListEntries", ctx, navType)
	ret0, _ := ret[0].([]*types.NavigationEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListEntries indicates an expected call of ListEntries.
func (mr *MockServiceInterfaceMockRecorder) ListEntries(ctx, navType any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListEntries", reflect.TypeOf((*MockServiceInterface)(nil).ListEntries), ctx, navType)
}

// NavigationForIdentity mocks base method.
func (m *MockServiceInterface) NavigationForIdentity(ctx context.Context, identityID, navType string) ([]*types.AssembledNode, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "NavigationForIdentity", ctx, identityID, navType)
	ret0, _ := ret[0].([]*types.AssembledNode)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// NavigationForIdentity indicates an expected call of NavigationForIdentity.
func (mr *MockServiceInterfaceMockRecorder) NavigationForIdentity(ctx, identityID, navType any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "NavigationForIdentity", reflect.TypeOf((*MockServiceInterface)(nil).NavigationForIdentity), ctx, identityID, navType)
}

// PermissionsForIdentity mocks base method.
func (m *MockServiceInterface) PermissionsForIdentity(ctx context.Context, identityID string) ([]string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PermissionsForIdentity", ctx, identityID)
	ret0, _ := ret[0].([]string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// PermissionsForIdentity indicates an expected call of PermissionsForIdentity.
func (mr *MockServiceInterfaceMockRecorder) PermissionsForIdentity(ctx, identityID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PermissionsForIdentity", reflect.TypeOf((*MockServiceInterface)(nil).PermissionsForIdentity), ctx, identityID)
}

// Reorder mocks base method.
func (m *MockServiceInterface) Reorder(ctx context.Context, idA, idB string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Reorder", ctx, idA, idB)
	ret0, _ := ret[0].(error)
	return ret0
}

// Reorder indicates an expected call of Reorder.
func (mr *MockServiceInterfaceMockRecorder) Reorder(ctx, idA, idB any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Reorder", reflect.TypeOf((*MockServiceInterface)(nil).Reorder), ctx, idA, idB)
}

// UpdateEntry mocks base method.
func (m *MockServiceInterface) UpdateEntry(ctx context.Context, e *types.NavigationEntry, paths []string) (*types.NavigationEntry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateEntry", ctx, e, paths)
	ret0, _ := ret[0].(*types.NavigationEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateEntry indicates an expected call of UpdateEntry.
func (mr *MockServiceInterfaceMockRecorder) UpdateEntry(ctx, e, paths any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateEntry", reflect.TypeOf((*MockServiceInterface)(nil).UpdateEntry), ctx, e, paths)
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

// CreateNavigationEntry mocks base method.
func (m *MockStorageInterface) CreateNavigationEntry(ctx context.Context, e *types.NavigationEntry) (*types.NavigationEntry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateNavigationEntry", ctx, e)
	ret0, _ := ret[0].(*types.NavigationEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateNavigationEntry indicates an expected call of CreateNavigationEntry.
func (mr *MockStorageInterfaceMockRecorder) CreateNavigationEntry(ctx, e any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateNavigationEntry", reflect.TypeOf((*MockStorageInterface)(nil).CreateNavigationEntry), ctx, e)
}

// DeleteNavigationEntry mocks base method.
func (m *MockStorageInterface) DeleteNavigationEntry(ctx context.Context, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteNavigationEntry", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteNavigationEntry indicates an expected call of DeleteNavigationEntry.
func (mr *MockStorageInterfaceMockRecorder) DeleteNavigationEntry(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteNavigationEntry", reflect.TypeOf((*MockStorageInterface)(nil).DeleteNavigationEntry), ctx, id)
}

// GetNavigationEntryByID mocks base method.
func (m *MockStorageInterface) GetNavigationEntryByID(ctx context.Context, id string) (*types.NavigationEntry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetNavigationEntryByID", ctx, id)
	ret0, _ := ret[0].(*types.NavigationEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetNavigationEntryByID indicates an expected call of GetNavigationEntryByID.
func (mr *MockStorageInterfaceMockRecorder) GetNavigationEntryByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetNavigationEntryByID", reflect.TypeOf((*MockStorageInterface)(nil).GetNavigationEntryByID), ctx, id)
}

// ListNavigationEntriesByType mocks base method.
func (m *MockStorageInterface) ListNavigationEntriesByType(ctx context.Context, navType string) ([]*types.NavigationEntry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListNavigationEntriesByType", ctx, navType)
	ret0, _ := ret[0].([]*types.NavigationEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListNavigationEntriesByType indicates an expected call of ListNavigationEntriesByType.
func (mr *MockStorageInterfaceMockRecorder) ListNavigationEntriesByType(ctx, navType any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListNavigationEntriesByType", reflect.TypeOf((*MockStorageInterface)(nil).ListNavigationEntriesByType), ctx, navType)
}

// ListPermissionsByIdentityID mocks base method.
func (m *MockStorageInterface) ListPermissionsByIdentityID(ctx context.Context, identityID string) ([]string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListPermissionsByIdentityID", ctx, identityID)
	ret0, _ := ret[0].([]string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListPermissionsByIdentityID indicates an expected call of ListPermissionsByIdentityID.
func (mr *MockStorageInterfaceMockRecorder) ListPermissionsByIdentityID(ctx, identityID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListPermissionsByIdentityID", reflect.TypeOf((*MockStorageInterface)(nil).ListPermissionsByIdentityID), ctx, identityID)
}

// SwapNavigationPositions mocks base method.
func (m *MockStorageInterface) SwapNavigationPositions(ctx context.Context, idA, idB string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SwapNavigationPositions", ctx, idA, idB)
	ret0, _ := ret[0].(error)
	return ret0
}

// SwapNavigationPositions indicates an expected call of SwapNavigationPositions.
func (mr *MockStorageInterfaceMockRecorder) SwapNavigationPositions(ctx, idA, idB any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SwapNavigationPositions", reflect.TypeOf((*MockStorageInterface)(nil).SwapNavigationPositions), ctx, idA, idB)
}

// UpdateNavigationEntry mocks base method.
func (m *MockStorageInterface) UpdateNavigationEntry(ctx context.Context, e *types.NavigationEntry, paths []string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateNavigationEntry", ctx, e, paths)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateNavigationEntry indicates an expected call of UpdateNavigationEntry.
func (mr *MockStorageInterfaceMockRecorder) UpdateNavigationEntry(ctx, e, paths any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateNavigationEntry", reflect.TypeOf((*MockStorageInterface)(nil).UpdateNavigationEntry), ctx, e, paths)
}

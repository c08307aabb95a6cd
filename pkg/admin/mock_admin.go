// Code generated by MockGen. DO NOT EDIT.
// Source: ./interfaces.go
//
// Generated by this command:
//
//	mockgen -build_flags=--mod=mod -package admin -destination ./mock_admin.go -source=./interfaces.go
//

// Package admin is a generated GoMock package.
package admin

import (
	context "context"
	reflect "reflect"

	types "github.com/Lamb-Project/lamb-sub010/internal/types"
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

// GetActivity mocks base method.
func (m *MockServiceInterface) GetActivity(ctx context.Context, adminID, activityID string) (*types.Activity, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetActivity", ctx, adminID, activityID)
	ret0, _ := ret[0].(*types.Activity)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetActivity indicates an expected call of GetActivity.
func (mr *MockServiceInterfaceMockRecorder) GetActivity(ctx, adminID, activityID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetActivity", reflect.TypeOf((*MockServiceInterface)(nil).GetActivity), ctx, adminID, activityID)
}

// GetCredential mocks base method.
func (m *MockServiceInterface) GetCredential(ctx context.Context) (*types.GlobalCredential, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCredential", ctx)
	ret0, _ := ret[0].(*types.GlobalCredential)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCredential indicates an expected call of GetCredential.
func (mr *MockServiceInterfaceMockRecorder) GetCredential(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCredential", reflect.TypeOf((*MockServiceInterface)(nil).GetCredential), ctx)
}

// ListActivities mocks base method.
func (m *MockServiceInterface) ListActivities(ctx context.Context, adminID, organizationID string) ([]*types.Activity, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListActivities", ctx, adminID, organizationID)
	ret0, _ := ret[0].([]*types.Activity)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListActivities indicates an expected call of ListActivities.
func (mr *MockServiceInterfaceMockRecorder) ListActivities(ctx, adminID, organizationID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListActivities", reflect.TypeOf((*MockServiceInterface)(nil).ListActivities), ctx, adminID, organizationID)
}

// SetActivityStatus mocks base method.
func (m *MockServiceInterface) SetActivityStatus(ctx context.Context, adminID, activityID, status string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetActivityStatus", ctx, adminID, activityID, status)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetActivityStatus indicates an expected call of SetActivityStatus.
func (mr *MockServiceInterfaceMockRecorder) SetActivityStatus(ctx, adminID, activityID, status any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetActivityStatus", reflect.TypeOf((*MockServiceInterface)(nil).SetActivityStatus), ctx, adminID, activityID, status)
}

// UpdateActivity mocks base method.
func (m *MockServiceInterface) UpdateActivity(ctx context.Context, adminID, activityID, name string, chatVisibility bool) (*types.Activity, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateActivity", ctx, adminID, activityID, name, chatVisibility)
	ret0, _ := ret[0].(*types.Activity)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateActivity indicates an expected call of UpdateActivity.
func (mr *MockServiceInterfaceMockRecorder) UpdateActivity(ctx, adminID, activityID, name, chatVisibility any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateActivity", reflect.TypeOf((*MockServiceInterface)(nil).UpdateActivity), ctx, adminID, activityID, name, chatVisibility)
}

// UpdateCredential mocks base method.
func (m *MockServiceInterface) UpdateCredential(ctx context.Context, adminID, consumerKey, consumerSecret string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateCredential", ctx, adminID, consumerKey, consumerSecret)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateCredential indicates an expected call of UpdateCredential.
func (mr *MockServiceInterfaceMockRecorder) UpdateCredential(ctx, adminID, consumerKey, consumerSecret any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateCredential", reflect.TypeOf((*MockServiceInterface)(nil).UpdateCredential), ctx, adminID, consumerKey, consumerSecret)
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

// GetActivityByID mocks base method.
func (m *MockStorageInterface) GetActivityByID(ctx context.Context, id string) (*types.Activity, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetActivityByID", ctx, id)
	ret0, _ := ret[0].(*types.Activity)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetActivityByID indicates an expected call of GetActivityByID.
func (mr *MockStorageInterfaceMockRecorder) GetActivityByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetActivityByID", reflect.TypeOf((*MockStorageInterface)(nil).GetActivityByID), ctx, id)
}

// GetGlobalCredential mocks base method.
func (m *MockStorageInterface) GetGlobalCredential(ctx context.Context) (*types.GlobalCredential, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetGlobalCredential", ctx)
	ret0, _ := ret[0].(*types.GlobalCredential)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetGlobalCredential indicates an expected call of GetGlobalCredential.
func (mr *MockStorageInterfaceMockRecorder) GetGlobalCredential(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetGlobalCredential", reflect.TypeOf((*MockStorageInterface)(nil).GetGlobalCredential), ctx)
}

// ListActivitiesByOrganization mocks base method.
func (m *MockStorageInterface) ListActivitiesByOrganization(ctx context.Context, organizationID string) ([]*types.Activity, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListActivitiesByOrganization", ctx, organizationID)
	ret0, _ := ret[0].([]*types.Activity)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListActivitiesByOrganization indicates an expected call of ListActivitiesByOrganization.
func (mr *MockStorageInterfaceMockRecorder) ListActivitiesByOrganization(ctx, organizationID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListActivitiesByOrganization", reflect.TypeOf((*MockStorageInterface)(nil).ListActivitiesByOrganization), ctx, organizationID)
}

// SetActivityStatus mocks base method.
func (m *MockStorageInterface) SetActivityStatus(ctx context.Context, id, status string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetActivityStatus", ctx, id, status)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetActivityStatus indicates an expected call of SetActivityStatus.
func (mr *MockStorageInterfaceMockRecorder) SetActivityStatus(ctx, id, status any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetActivityStatus", reflect.TypeOf((*MockStorageInterface)(nil).SetActivityStatus), ctx, id, status)
}

// UpdateActivity mocks base method.
func (m *MockStorageInterface) UpdateActivity(ctx context.Context, id, name string, chatVisibility bool) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateActivity", ctx, id, name, chatVisibility)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateActivity indicates an expected call of UpdateActivity.
func (mr *MockStorageInterfaceMockRecorder) UpdateActivity(ctx, id, name, chatVisibility any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateActivity", reflect.TypeOf((*MockStorageInterface)(nil).UpdateActivity), ctx, id, name, chatVisibility)
}

// UpsertGlobalCredential mocks base method.
func (m *MockStorageInterface) UpsertGlobalCredential(ctx context.Context, c *types.GlobalCredential) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpsertGlobalCredential", ctx, c)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpsertGlobalCredential indicates an expected call of UpsertGlobalCredential.
func (mr *MockStorageInterfaceMockRecorder) UpsertGlobalCredential(ctx, c any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpsertGlobalCredential", reflect.TypeOf((*MockStorageInterface)(nil).UpsertGlobalCredential), ctx, c)
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

// IsOrganizationAdmin mocks base method.
func (m *MockAuthzInterface) IsOrganizationAdmin(ctx context.Context, accountID, organizationID string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsOrganizationAdmin", ctx, accountID, organizationID)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// IsOrganizationAdmin indicates an expected call of IsOrganizationAdmin.
func (mr *MockAuthzInterfaceMockRecorder) IsOrganizationAdmin(ctx, accountID, organizationID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsOrganizationAdmin", reflect.TypeOf((*MockAuthzInterface)(nil).IsOrganizationAdmin), ctx, accountID, organizationID)
}

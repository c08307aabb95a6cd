// Code generated by MockGen. DO NOT EDIT.
// Source: ./interfaces.go
//
// Generated by this command:
//
//	mockgen -build_flags=--mod=mod -package activity -destination ./mock_activity.go -source=./interfaces.go
//

// Package activity is a generated GoMock package.
package activity

import (
	context "context"
	reflect "reflect"

	types "github.com/Lamb-Project/lamb-sub010/internal/types"
	authentication "github.com/Lamb-Project/lamb-sub010/pkg/authentication"
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

// Configure mocks base method.
func (m *MockServiceInterface) Configure(ctx context.Context, claims *authentication.PageClaims, req *ConfigureRequest) (*types.Activity, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Configure", ctx, claims, req)
	ret0, _ := ret[0].(*types.Activity)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Configure indicates an expected call of Configure.
func (mr *MockServiceInterfaceMockRecorder) Configure(ctx, claims, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Configure", reflect.TypeOf((*MockServiceInterface)(nil).Configure), ctx, claims, req)
}

// GetConfiguration mocks base method.
func (m *MockServiceInterface) GetConfiguration(ctx context.Context, activityID string) (*Configuration, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetConfiguration", ctx, activityID)
	ret0, _ := ret[0].(*Configuration)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetConfiguration indicates an expected call of GetConfiguration.
func (mr *MockServiceInterfaceMockRecorder) GetConfiguration(ctx, activityID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetConfiguration", reflect.TypeOf((*MockServiceInterface)(nil).GetConfiguration), ctx, activityID)
}

// Reconfigure mocks base method.
func (m *MockServiceInterface) Reconfigure(ctx context.Context, claims *authentication.PageClaims, req *ReconfigureRequest) (*types.Activity, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Reconfigure", ctx, claims, req)
	ret0, _ := ret[0].(*types.Activity)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Reconfigure indicates an expected call of Reconfigure.
func (mr *MockServiceInterfaceMockRecorder) Reconfigure(ctx, claims, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Reconfigure", reflect.TypeOf((*MockServiceInterface)(nil).Reconfigure), ctx, claims, req)
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

// AddActivityAssistant mocks base method.
func (m *MockStorageInterface) AddActivityAssistant(ctx context.Context, activityID, assistantID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddActivityAssistant", ctx, activityID, assistantID)
	ret0, _ := ret[0].(error)
	return ret0
}

// AddActivityAssistant indicates an expected call of AddActivityAssistant.
func (mr *MockStorageInterfaceMockRecorder) AddActivityAssistant(ctx, activityID, assistantID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddActivityAssistant", reflect.TypeOf((*MockStorageInterface)(nil).AddActivityAssistant), ctx, activityID, assistantID)
}

// CreateActivity mocks base method.
func (m *MockStorageInterface) CreateActivity(ctx context.Context, a *types.Activity) (*types.Activity, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateActivity", ctx, a)
	ret0, _ := ret[0].(*types.Activity)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateActivity indicates an expected call of CreateActivity.
func (mr *MockStorageInterfaceMockRecorder) CreateActivity(ctx, a any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateActivity", reflect.TypeOf((*MockStorageInterface)(nil).CreateActivity), ctx, a)
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

// GetActivityByPlacementID mocks base method.
func (m *MockStorageInterface) GetActivityByPlacementID(ctx context.Context, placementID string) (*types.Activity, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetActivityByPlacementID", ctx, placementID)
	ret0, _ := ret[0].(*types.Activity)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetActivityByPlacementID indicates an expected call of GetActivityByPlacementID.
func (mr *MockStorageInterfaceMockRecorder) GetActivityByPlacementID(ctx, placementID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetActivityByPlacementID", reflect.TypeOf((*MockStorageInterface)(nil).GetActivityByPlacementID), ctx, placementID)
}

// GetAssistantsByIDs mocks base method.
func (m *MockStorageInterface) GetAssistantsByIDs(ctx context.Context, ids []string) ([]*types.Assistant, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAssistantsByIDs", ctx, ids)
	ret0, _ := ret[0].([]*types.Assistant)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAssistantsByIDs indicates an expected call of GetAssistantsByIDs.
func (mr *MockStorageInterfaceMockRecorder) GetAssistantsByIDs(ctx, ids any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAssistantsByIDs", reflect.TypeOf((*MockStorageInterface)(nil).GetAssistantsByIDs), ctx, ids)
}

// ListActivityAssistants mocks base method.
func (m *MockStorageInterface) ListActivityAssistants(ctx context.Context, activityID string) ([]*types.ActivityAssistant, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListActivityAssistants", ctx, activityID)
	ret0, _ := ret[0].([]*types.ActivityAssistant)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListActivityAssistants indicates an expected call of ListActivityAssistants.
func (mr *MockStorageInterfaceMockRecorder) ListActivityAssistants(ctx, activityID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListActivityAssistants", reflect.TypeOf((*MockStorageInterface)(nil).ListActivityAssistants), ctx, activityID)
}

// RemoveActivityAssistant mocks base method.
func (m *MockStorageInterface) RemoveActivityAssistant(ctx context.Context, activityID, assistantID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RemoveActivityAssistant", ctx, activityID, assistantID)
	ret0, _ := ret[0].(error)
	return ret0
}

// RemoveActivityAssistant indicates an expected call of RemoveActivityAssistant.
func (mr *MockStorageInterfaceMockRecorder) RemoveActivityAssistant(ctx, activityID, assistantID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RemoveActivityAssistant", reflect.TypeOf((*MockStorageInterface)(nil).RemoveActivityAssistant), ctx, activityID, assistantID)
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
func (m *MockResolverInterface) Resolve(ctx context.Context, ltiUserID, email string) ([]*types.AccountCandidate, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Resolve", ctx, ltiUserID, email)
	ret0, _ := ret[0].([]*types.AccountCandidate)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Resolve indicates an expected call of Resolve.
func (mr *MockResolverInterfaceMockRecorder) Resolve(ctx, ltiUserID, email any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Resolve", reflect.TypeOf((*MockResolverInterface)(nil).Resolve), ctx, ltiUserID, email)
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

// AssignActivityOwner mocks base method.
func (m *MockAuthzInterface) AssignActivityOwner(ctx context.Context, activityID, accountID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AssignActivityOwner", ctx, activityID, accountID)
	ret0, _ := ret[0].(error)
	return ret0
}

// AssignActivityOwner indicates an expected call of AssignActivityOwner.
func (mr *MockAuthzInterfaceMockRecorder) AssignActivityOwner(ctx, activityID, accountID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AssignActivityOwner", reflect.TypeOf((*MockAuthzInterface)(nil).AssignActivityOwner), ctx, activityID, accountID)
}

// CanManageActivity mocks base method.
func (m *MockAuthzInterface) CanManageActivity(ctx context.Context, accountID, activityID string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CanManageActivity", ctx, accountID, activityID)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CanManageActivity indicates an expected call of CanManageActivity.
func (mr *MockAuthzInterfaceMockRecorder) CanManageActivity(ctx, accountID, activityID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CanManageActivity", reflect.TypeOf((*MockAuthzInterface)(nil).CanManageActivity), ctx, accountID, activityID)
}

// LinkActivityToOrganization mocks base method.
func (m *MockAuthzInterface) LinkActivityToOrganization(ctx context.Context, activityID, organizationID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LinkActivityToOrganization", ctx, activityID, organizationID)
	ret0, _ := ret[0].(error)
	return ret0
}

// LinkActivityToOrganization indicates an expected call of LinkActivityToOrganization.
func (mr *MockAuthzInterfaceMockRecorder) LinkActivityToOrganization(ctx, activityID, organizationID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LinkActivityToOrganization", reflect.TypeOf((*MockAuthzInterface)(nil).LinkActivityToOrganization), ctx, activityID, organizationID)
}

// MockSessionsClientInterface is a mock of SessionsClientInterface interface.
type MockSessionsClientInterface struct {
	ctrl     *gomock.Controller
	recorder *MockSessionsClientInterfaceMockRecorder
	isgomock struct{}
}

// MockSessionsClientInterfaceMockRecorder is the mock recorder for MockSessionsClientInterface.
type MockSessionsClientInterfaceMockRecorder struct {
	mock *MockSessionsClientInterface
}

// NewMockSessionsClientInterface creates a new mock instance.
func NewMockSessionsClientInterface(ctrl *gomock.Controller) *MockSessionsClientInterface {
	mock := &MockSessionsClientInterface{ctrl: ctrl}
	mock.recorder = &MockSessionsClientInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSessionsClientInterface) EXPECT() *MockSessionsClientInterfaceMockRecorder {
	return m.recorder
}

// CreateGroup mocks base method.
func (m *MockSessionsClientInterface) CreateGroup(ctx context.Context, name string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateGroup", ctx, name)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateGroup indicates an expected call of CreateGroup.
func (mr *MockSessionsClientInterfaceMockRecorder) CreateGroup(ctx, name any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateGroup", reflect.TypeOf((*MockSessionsClientInterface)(nil).CreateGroup), ctx, name)
}

// GrantGroupToResource mocks base method.
func (m *MockSessionsClientInterface) GrantGroupToResource(ctx context.Context, resourceID, groupRef string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GrantGroupToResource", ctx, resourceID, groupRef)
	ret0, _ := ret[0].(error)
	return ret0
}

// GrantGroupToResource indicates an expected call of GrantGroupToResource.
func (mr *MockSessionsClientInterfaceMockRecorder) GrantGroupToResource(ctx, resourceID, groupRef any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GrantGroupToResource", reflect.TypeOf((*MockSessionsClientInterface)(nil).GrantGroupToResource), ctx, resourceID, groupRef)
}

// RevokeGroupFromResource mocks base method.
func (m *MockSessionsClientInterface) RevokeGroupFromResource(ctx context.Context, resourceID, groupRef string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RevokeGroupFromResource", ctx, resourceID, groupRef)
	ret0, _ := ret[0].(error)
	return ret0
}

// RevokeGroupFromResource indicates an expected call of RevokeGroupFromResource.
func (mr *MockSessionsClientInterfaceMockRecorder) RevokeGroupFromResource(ctx, resourceID, groupRef any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RevokeGroupFromResource", reflect.TypeOf((*MockSessionsClientInterface)(nil).RevokeGroupFromResource), ctx, resourceID, groupRef)
}

// MockTxRunnerInterface is a mock of TxRunnerInterface interface.
type MockTxRunnerInterface struct {
	ctrl     *gomock.Controller
	recorder *MockTxRunnerInterfaceMockRecorder
	isgomock struct{}
}

// MockTxRunnerInterfaceMockRecorder is the mock recorder for MockTxRunnerInterface.
type MockTxRunnerInterfaceMockRecorder struct {
	mock *MockTxRunnerInterface
}

// NewMockTxRunnerInterface creates a new mock instance.
func NewMockTxRunnerInterface(ctrl *gomock.Controller) *MockTxRunnerInterface {
	mock := &MockTxRunnerInterface{ctrl: ctrl}
	mock.recorder = &MockTxRunnerInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTxRunnerInterface) EXPECT() *MockTxRunnerInterfaceMockRecorder {
	return m.recorder
}

// WithTx mocks base method.
func (m *MockTxRunnerInterface) WithTx(ctx context.Context, f func(context.Context) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "WithTx", ctx, f)
	ret0, _ := ret[0].(error)
	return ret0
}

// WithTx indicates an expected call of WithTx.
func (mr *MockTxRunnerInterfaceMockRecorder) WithTx(ctx, f any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WithTx", reflect.TypeOf((*MockTxRunnerInterface)(nil).WithTx), ctx, f)
}

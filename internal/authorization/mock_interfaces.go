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

	openfga "github.com/Lamb-Project/lamb-sub010/internal/openfga"
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

// AssignActivityOwner mocks base method.
func (m *MockAuthorizerInterface) AssignActivityOwner(ctx context.Context, activityID, accountID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AssignActivityOwner", ctx, activityID, accountID)
	ret0, _ := ret[0].(error)
	return ret0
}

// AssignActivityOwner indicates an expected call of AssignActivityOwner.
func (mr *MockAuthorizerInterfaceMockRecorder) AssignActivityOwner(ctx, activityID, accountID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AssignActivityOwner", reflect.TypeOf((*MockAuthorizerInterface)(nil).AssignActivityOwner), ctx, activityID, accountID)
}

// AssignOrganizationAdmin mocks base method.
func (m *MockAuthorizerInterface) AssignOrganizationAdmin(ctx context.Context, organizationID, accountID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AssignOrganizationAdmin", ctx, organizationID, accountID)
	ret0, _ := ret[0].(error)
	return ret0
}

// AssignOrganizationAdmin indicates an expected call of AssignOrganizationAdmin.
func (mr *MockAuthorizerInterfaceMockRecorder) AssignOrganizationAdmin(ctx, organizationID, accountID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AssignOrganizationAdmin", reflect.TypeOf((*MockAuthorizerInterface)(nil).AssignOrganizationAdmin), ctx, organizationID, accountID)
}

// CanManageActivity mocks base method.
func (m *MockAuthorizerInterface) CanManageActivity(ctx context.Context, accountID, activityID string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CanManageActivity", ctx, accountID, activityID)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CanManageActivity indicates an expected call of CanManageActivity.
func (mr *MockAuthorizerInterfaceMockRecorder) CanManageActivity(ctx, accountID, activityID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CanManageActivity", reflect.TypeOf((*MockAuthorizerInterface)(nil).CanManageActivity), ctx, accountID, activityID)
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

// IsOrganizationAdmin mocks base method.
func (m *MockAuthorizerInterface) IsOrganizationAdmin(ctx context.Context, accountID, organizationID string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsOrganizationAdmin", ctx, accountID, organizationID)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// IsOrganizationAdmin indicates an expected call of IsOrganizationAdmin.
func (mr *MockAuthorizerInterfaceMockRecorder) IsOrganizationAdmin(ctx, accountID, organizationID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsOrganizationAdmin", reflect.TypeOf((*MockAuthorizerInterface)(nil).IsOrganizationAdmin), ctx, accountID, organizationID)
}

// LinkActivityToOrganization mocks base method.
func (m *MockAuthorizerInterface) LinkActivityToOrganization(ctx context.Context, activityID, organizationID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LinkActivityToOrganization", ctx, activityID, organizationID)
	ret0, _ := ret[0].(error)
	return ret0
}

// LinkActivityToOrganization indicates an expected call of LinkActivityToOrganization.
func (mr *MockAuthorizerInterfaceMockRecorder) LinkActivityToOrganization(ctx, activityID, organizationID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LinkActivityToOrganization", reflect.TypeOf((*MockAuthorizerInterface)(nil).LinkActivityToOrganization), ctx, activityID, organizationID)
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
func (m *MockAuthzClientInterface) CompareModel(arg0 context.Context, arg1 openfga0.WriteAuthorizationModelRequest) (bool, error) {
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

// CreateStore mocks base method.
func (m *MockAuthzClientInterface) CreateStore(arg0 context.Context, arg1 string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateStore", arg0, arg1)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateStore indicates an expected call of CreateStore.
func (mr *MockAuthzClientInterfaceMockRecorder) CreateStore(arg0, arg1 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateStore", reflect.TypeOf((*MockAuthzClientInterface)(nil).CreateStore), arg0, arg1)
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

// WriteModel mocks base method.
func (m *MockAuthzClientInterface) WriteModel(arg0 context.Context, arg1 openfga0.WriteAuthorizationModelRequest) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "WriteModel", arg0, arg1)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// WriteModel indicates an expected call of WriteModel.
func (mr *MockAuthzClientInterfaceMockRecorder) WriteModel(arg0, arg1 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WriteModel", reflect.TypeOf((*MockAuthzClientInterface)(nil).WriteModel), arg0, arg1)
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

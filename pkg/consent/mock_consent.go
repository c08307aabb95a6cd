// Code generated by MockGen. DO NOT EDIT.
// Source: ./interfaces.go
//
// Generated by this command:
//
//	mockgen -build_flags=--mod=mod -package consent -destination ./mock_consent.go -source=./interfaces.go
//

// Package consent is a generated GoMock package.
package consent

import (
	context "context"
	reflect "reflect"

	authentication "github.com/Lamb-Project/lamb-sub010/pkg/authentication"
	launch "github.com/Lamb-Project/lamb-sub010/pkg/launch"
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

// Accept mocks base method.
func (m *MockServiceInterface) Accept(ctx context.Context, claims *authentication.PageClaims) (*launch.Result, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Accept", ctx, claims)
	ret0, _ := ret[0].(*launch.Result)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Accept indicates an expected call of Accept.
func (mr *MockServiceInterfaceMockRecorder) Accept(ctx, claims any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Accept", reflect.TypeOf((*MockServiceInterface)(nil).Accept), ctx, claims)
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

// RecordConsent mocks base method.
func (m *MockStorageInterface) RecordConsent(ctx context.Context, activityID, syntheticAddress string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RecordConsent", ctx, activityID, syntheticAddress)
	ret0, _ := ret[0].(error)
	return ret0
}

// RecordConsent indicates an expected call of RecordConsent.
func (mr *MockStorageInterfaceMockRecorder) RecordConsent(ctx, activityID, syntheticAddress any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordConsent", reflect.TypeOf((*MockStorageInterface)(nil).RecordConsent), ctx, activityID, syntheticAddress)
}

// MockSessionEntryInterface is a mock of SessionEntryInterface interface.
type MockSessionEntryInterface struct {
	ctrl     *gomock.Controller
	recorder *MockSessionEntryInterfaceMockRecorder
	isgomock struct{}
}

// MockSessionEntryInterfaceMockRecorder is the mock recorder for MockSessionEntryInterface.
type MockSessionEntryInterfaceMockRecorder struct {
	mock *MockSessionEntryInterface
}

// NewMockSessionEntryInterface creates a new mock instance.
func NewMockSessionEntryInterface(ctrl *gomock.Controller) *MockSessionEntryInterface {
	mock := &MockSessionEntryInterface{ctrl: ctrl}
	mock.recorder = &MockSessionEntryInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSessionEntryInterface) EXPECT() *MockSessionEntryInterfaceMockRecorder {
	return m.recorder
}

// EnterSession mocks base method.
func (m *MockSessionEntryInterface) EnterSession(ctx context.Context, activityID, syntheticAddress string) (*launch.Result, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "EnterSession", ctx, activityID, syntheticAddress)
	ret0, _ := ret[0].(*launch.Result)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// EnterSession indicates an expected call of EnterSession.
func (mr *MockSessionEntryInterfaceMockRecorder) EnterSession(ctx, activityID, syntheticAddress any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "EnterSession", reflect.TypeOf((*MockSessionEntryInterface)(nil).EnterSession), ctx, activityID, syntheticAddress)
}

// MockPageTokenInterface is a mock of PageTokenInterface interface.
type MockPageTokenInterface struct {
	ctrl     *gomock.Controller
	recorder *MockPageTokenInterfaceMockRecorder
	isgomock struct{}
}

// MockPageTokenInterfaceMockRecorder is the mock recorder for MockPageTokenInterface.
type MockPageTokenInterfaceMockRecorder struct {
	mock *MockPageTokenInterface
}

// NewMockPageTokenInterface creates a new mock instance.
func NewMockPageTokenInterface(ctrl *gomock.Controller) *MockPageTokenInterface {
	mock := &MockPageTokenInterface{ctrl: ctrl}
	mock.recorder = &MockPageTokenInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPageTokenInterface) EXPECT() *MockPageTokenInterfaceMockRecorder {
	return m.recorder
}

// Verify mocks base method.
func (m *MockPageTokenInterface) Verify(rawToken, purpose string) (*authentication.PageClaims, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Verify", rawToken, purpose)
	ret0, _ := ret[0].(*authentication.PageClaims)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Verify indicates an expected call of Verify.
func (mr *MockPageTokenInterfaceMockRecorder) Verify(rawToken, purpose any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Verify", reflect.TypeOf((*MockPageTokenInterface)(nil).Verify), rawToken, purpose)
}

// Code generated by MockGen. DO NOT EDIT.
// Source: ./interfaces.go
//
// Generated by this command:
//
//	mockgen -build_flags=--mod=mod -package dashboard -destination ./mock_dashboard.go -source=./interfaces.go
//

// Package dashboard is a generated GoMock package.
package dashboard

import (
	context "context"
	reflect "reflect"
	time "time"

	sessions "github.com/Lamb-Project/lamb-sub010/internal/sessions"
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

// Participants mocks base method.
func (m *MockServiceInterface) Participants(ctx context.Context, claims *authentication.PageClaims, pageToken string, size uint64) (*ParticipantPage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Participants", ctx, claims, pageToken, size)
	ret0, _ := ret[0].(*ParticipantPage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Participants indicates an expected call of Participants.
func (mr *MockServiceInterfaceMockRecorder) Participants(ctx, claims, pageToken, size any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Participants", reflect.TypeOf((*MockServiceInterface)(nil).Participants), ctx, claims, pageToken, size)
}

// Summary mocks base method.
func (m *MockServiceInterface) Summary(ctx context.Context, claims *authentication.PageClaims) (*Summary, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Summary", ctx, claims)
	ret0, _ := ret[0].(*Summary)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Summary indicates an expected call of Summary.
func (mr *MockServiceInterfaceMockRecorder) Summary(ctx, claims any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Summary", reflect.TypeOf((*MockServiceInterface)(nil).Summary), ctx, claims)
}

// Transcript mocks base method.
func (m *MockServiceInterface) Transcript(ctx context.Context, claims *authentication.PageClaims, conversationID string) (*Transcript, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Transcript", ctx, claims, conversationID)
	ret0, _ := ret[0].(*Transcript)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Transcript indicates an expected call of Transcript.
func (mr *MockServiceInterfaceMockRecorder) Transcript(ctx, claims, conversationID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Transcript", reflect.TypeOf((*MockServiceInterface)(nil).Transcript), ctx, claims, conversationID)
}

// Transcripts mocks base method.
func (m *MockServiceInterface) Transcripts(ctx context.Context, claims *authentication.PageClaims, assistantID, pageToken string, size uint64) (*TranscriptPage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Transcripts", ctx, claims, assistantID, pageToken, size)
	ret0, _ := ret[0].(*TranscriptPage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Transcripts indicates an expected call of Transcripts.
func (mr *MockServiceInterfaceMockRecorder) Transcripts(ctx, claims, assistantID, pageToken, size any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Transcripts", reflect.TypeOf((*MockServiceInterface)(nil).Transcripts), ctx, claims, assistantID, pageToken, size)
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

// CountActiveParticipants mocks base method.
func (m *MockStorageInterface) CountActiveParticipants(ctx context.Context, activityID string, since time.Time) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountActiveParticipants", ctx, activityID, since)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountActiveParticipants indicates an expected call of CountActiveParticipants.
func (mr *MockStorageInterfaceMockRecorder) CountActiveParticipants(ctx, activityID, since any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountActiveParticipants", reflect.TypeOf((*MockStorageInterface)(nil).CountActiveParticipants), ctx, activityID, since)
}

// CountParticipants mocks base method.
func (m *MockStorageInterface) CountParticipants(ctx context.Context, activityID string) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountParticipants", ctx, activityID)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountParticipants indicates an expected call of CountParticipants.
func (mr *MockStorageInterfaceMockRecorder) CountParticipants(ctx, activityID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountParticipants", reflect.TypeOf((*MockStorageInterface)(nil).CountParticipants), ctx, activityID)
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

// GetAssistantsByResourceRefs mocks base method.
func (m *MockStorageInterface) GetAssistantsByResourceRefs(ctx context.Context, refs []string) ([]*types.Assistant, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAssistantsByResourceRefs", ctx, refs)
	ret0, _ := ret[0].([]*types.Assistant)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAssistantsByResourceRefs indicates an expected call of GetAssistantsByResourceRefs.
func (mr *MockStorageInterfaceMockRecorder) GetAssistantsByResourceRefs(ctx, refs any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAssistantsByResourceRefs", reflect.TypeOf((*MockStorageInterface)(nil).GetAssistantsByResourceRefs), ctx, refs)
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

// ListActivityUsersOrdered mocks base method.
func (m *MockStorageInterface) ListActivityUsersOrdered(ctx context.Context, activityID string) ([]*types.ActivityUser, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListActivityUsersOrdered", ctx, activityID)
	ret0, _ := ret[0].([]*types.ActivityUser)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListActivityUsersOrdered indicates an expected call of ListActivityUsersOrdered.
func (mr *MockStorageInterfaceMockRecorder) ListActivityUsersOrdered(ctx, activityID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListActivityUsersOrdered", reflect.TypeOf((*MockStorageInterface)(nil).ListActivityUsersOrdered), ctx, activityID)
}

// ListParticipants mocks base method.
func (m *MockStorageInterface) ListParticipants(ctx context.Context, activityID string, offset, limit uint64) ([]*types.Participant, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListParticipants", ctx, activityID, offset, limit)
	ret0, _ := ret[0].([]*types.Participant)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListParticipants indicates an expected call of ListParticipants.
func (mr *MockStorageInterfaceMockRecorder) ListParticipants(ctx, activityID, offset, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListParticipants", reflect.TypeOf((*MockStorageInterface)(nil).ListParticipants), ctx, activityID, offset, limit)
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

// GetConversation mocks base method.
func (m *MockSessionsClientInterface) GetConversation(ctx context.Context, id string) (*sessions.Conversation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetConversation", ctx, id)
	ret0, _ := ret[0].(*sessions.Conversation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetConversation indicates an expected call of GetConversation.
func (mr *MockSessionsClientInterfaceMockRecorder) GetConversation(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetConversation", reflect.TypeOf((*MockSessionsClientInterface)(nil).GetConversation), ctx, id)
}

// ListConversations mocks base method.
func (m *MockSessionsClientInterface) ListConversations(ctx context.Context, resourceIDs, userRefs []string) ([]*sessions.Conversation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListConversations", ctx, resourceIDs, userRefs)
	ret0, _ := ret[0].([]*sessions.Conversation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListConversations indicates an expected call of ListConversations.
func (mr *MockSessionsClientInterfaceMockRecorder) ListConversations(ctx, resourceIDs, userRefs any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListConversations", reflect.TypeOf((*MockSessionsClientInterface)(nil).ListConversations), ctx, resourceIDs, userRefs)
}

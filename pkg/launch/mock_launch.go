// Code generated by MockGen. DO NOT EDIT.
// Source: ./interfaces.go
//
// Generated by this command:
//
//	mockgen -build_flags=--mod=mod -package launch -destination ./mock_launch.go -source=./interfaces.go
//

// Package launch is a generated GoMock package.
package launch

import (
	context "context"
	http "net/http"
	reflect "reflect"

	lti "github.com/Lamb-Project/lamb-sub010/internal/lti"
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

// EnterSession mocks base method.
func (m *MockServiceInterface) EnterSession(ctx context.Context, activityID, syntheticAddress string) (*Result, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "EnterSession", ctx, activityID, syntheticAddress)
	ret0, _ := ret[0].(*Result)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// EnterSession indicates an expected call of EnterSession.
func (mr *MockServiceInterfaceMockRecorder) EnterSession(ctx, activityID, syntheticAddress any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "EnterSession", reflect.TypeOf((*MockServiceInterface)(nil).EnterSession), ctx, activityID, syntheticAddress)
}

// Launch mocks base method.
func (m *MockServiceInterface) Launch(ctx context.Context, r *http.Request) (*Result, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Launch", ctx, r)
	ret0, _ := ret[0].(*Result)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Launch indicates an expected call of Launch.
func (mr *MockServiceInterfaceMockRecorder) Launch(ctx, r any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Launch", reflect.TypeOf((*MockServiceInterface)(nil).Launch), ctx, r)
}

// LinkIdentity mocks base method.
func (m *MockServiceInterface) LinkIdentity(ctx context.Context, claims *authentication.PageClaims, email, password string) (*types.AccountCandidate, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LinkIdentity", ctx, claims, email, password)
	ret0, _ := ret[0].(*types.AccountCandidate)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// LinkIdentity indicates an expected call of LinkIdentity.
func (mr *MockServiceInterfaceMockRecorder) LinkIdentity(ctx, claims, email, password any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LinkIdentity", reflect.TypeOf((*MockServiceInterface)(nil).LinkIdentity), ctx, claims, email, password)
}

// SetupContext mocks base method.
func (m *MockServiceInterface) SetupContext(ctx context.Context, claims *authentication.PageClaims) (*SetupContext, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetupContext", ctx, claims)
	ret0, _ := ret[0].(*SetupContext)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SetupContext indicates an expected call of SetupContext.
func (mr *MockServiceInterfaceMockRecorder) SetupContext(ctx, claims any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetupContext", reflect.TypeOf((*MockServiceInterface)(nil).SetupContext), ctx, claims)
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

// Link mocks base method.
func (m *MockResolverInterface) Link(ctx context.Context, ltiUserID, email, password string) (*types.AccountCandidate, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Link", ctx, ltiUserID, email, password)
	ret0, _ := ret[0].(*types.AccountCandidate)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Link indicates an expected call of Link.
func (mr *MockResolverInterfaceMockRecorder) Link(ctx, ltiUserID, email, password any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Link", reflect.TypeOf((*MockResolverInterface)(nil).Link), ctx, ltiUserID, email, password)
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

// MockCredentialsInterface is a mock of CredentialsInterface interface.
type MockCredentialsInterface struct {
	ctrl     *gomock.Controller
	recorder *MockCredentialsInterfaceMockRecorder
	isgomock struct{}
}

// MockCredentialsInterfaceMockRecorder is the mock recorder for MockCredentialsInterface.
type MockCredentialsInterfaceMockRecorder struct {
	mock *MockCredentialsInterface
}

// NewMockCredentialsInterface creates a new mock instance.
func NewMockCredentialsInterface(ctrl *gomock.Controller) *MockCredentialsInterface {
	mock := &MockCredentialsInterface{ctrl: ctrl}
	mock.recorder = &MockCredentialsInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCredentialsInterface) EXPECT() *MockCredentialsInterfaceMockRecorder {
	return m.recorder
}

// Resolve mocks base method.
func (m *MockCredentialsInterface) Resolve(ctx context.Context) (string, string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Resolve", ctx)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(string)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// Resolve indicates an expected call of Resolve.
func (mr *MockCredentialsInterfaceMockRecorder) Resolve(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Resolve", reflect.TypeOf((*MockCredentialsInterface)(nil).Resolve), ctx)
}

// MockValidatorInterface is a mock of ValidatorInterface interface.
type MockValidatorInterface struct {
	ctrl     *gomock.Controller
	recorder *MockValidatorInterfaceMockRecorder
	isgomock struct{}
}

// MockValidatorInterfaceMockRecorder is the mock recorder for MockValidatorInterface.
type MockValidatorInterfaceMockRecorder struct {
	mock *MockValidatorInterface
}

// NewMockValidatorInterface creates a new mock instance.
func NewMockValidatorInterface(ctrl *gomock.Controller) *MockValidatorInterface {
	mock := &MockValidatorInterface{ctrl: ctrl}
	mock.recorder = &MockValidatorInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockValidatorInterface) EXPECT() *MockValidatorInterfaceMockRecorder {
	return m.recorder
}

// Validate mocks base method.
func (m *MockValidatorInterface) Validate(r *http.Request, launchURL, consumerKey, consumerSecret string) (*lti.LaunchParams, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Validate", r, launchURL, consumerKey, consumerSecret)
	ret0, _ := ret[0].(*lti.LaunchParams)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Validate indicates an expected call of Validate.
func (mr *MockValidatorInterfaceMockRecorder) Validate(r, launchURL, consumerKey, consumerSecret any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Validate", reflect.TypeOf((*MockValidatorInterface)(nil).Validate), r, launchURL, consumerKey, consumerSecret)
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

// CreateActivityUser mocks base method.
func (m *MockStorageInterface) CreateActivityUser(ctx context.Context, u *types.ActivityUser) (*types.ActivityUser, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateActivityUser", ctx, u)
	ret0, _ := ret[0].(*types.ActivityUser)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateActivityUser indicates an expected call of CreateActivityUser.
func (mr *MockStorageInterfaceMockRecorder) CreateActivityUser(ctx, u any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateActivityUser", reflect.TypeOf((*MockStorageInterface)(nil).CreateActivityUser), ctx, u)
}

// CreateIdentityLink mocks base method.
func (m *MockStorageInterface) CreateIdentityLink(ctx context.Context, link *types.IdentityLink) (*types.IdentityLink, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateIdentityLink", ctx, link)
	ret0, _ := ret[0].(*types.IdentityLink)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateIdentityLink indicates an expected call of CreateIdentityLink.
func (mr *MockStorageInterfaceMockRecorder) CreateIdentityLink(ctx, link any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateIdentityLink", reflect.TypeOf((*MockStorageInterface)(nil).CreateIdentityLink), ctx, link)
}

// FindIdentityLinks mocks base method.
func (m *MockStorageInterface) FindIdentityLinks(ctx context.Context, ltiUserID, email string) ([]*types.IdentityLink, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindIdentityLinks", ctx, ltiUserID, email)
	ret0, _ := ret[0].([]*types.IdentityLink)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindIdentityLinks indicates an expected call of FindIdentityLinks.
func (mr *MockStorageInterfaceMockRecorder) FindIdentityLinks(ctx, ltiUserID, email any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindIdentityLinks", reflect.TypeOf((*MockStorageInterface)(nil).FindIdentityLinks), ctx, ltiUserID, email)
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

// GetActivityUser mocks base method.
func (m *MockStorageInterface) GetActivityUser(ctx context.Context, activityID, syntheticAddress string) (*types.ActivityUser, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetActivityUser", ctx, activityID, syntheticAddress)
	ret0, _ := ret[0].(*types.ActivityUser)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetActivityUser indicates an expected call of GetActivityUser.
func (mr *MockStorageInterfaceMockRecorder) GetActivityUser(ctx, activityID, syntheticAddress any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetActivityUser", reflect.TypeOf((*MockStorageInterface)(nil).GetActivityUser), ctx, activityID, syntheticAddress)
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

// ListPublishedAssistants mocks base method.
func (m *MockStorageInterface) ListPublishedAssistants(ctx context.Context, organizationID string) ([]*types.Assistant, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListPublishedAssistants", ctx, organizationID)
	ret0, _ := ret[0].([]*types.Assistant)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListPublishedAssistants indicates an expected call of ListPublishedAssistants.
func (mr *MockStorageInterfaceMockRecorder) ListPublishedAssistants(ctx, organizationID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListPublishedAssistants", reflect.TypeOf((*MockStorageInterface)(nil).ListPublishedAssistants), ctx, organizationID)
}

// SetProviderUserRef mocks base method.
func (m *MockStorageInterface) SetProviderUserRef(ctx context.Context, id, ref string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetProviderUserRef", ctx, id, ref)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetProviderUserRef indicates an expected call of SetProviderUserRef.
func (mr *MockStorageInterfaceMockRecorder) SetProviderUserRef(ctx, id, ref any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetProviderUserRef", reflect.TypeOf((*MockStorageInterface)(nil).SetProviderUserRef), ctx, id, ref)
}

// TouchActivityUser mocks base method.
func (m *MockStorageInterface) TouchActivityUser(ctx context.Context, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "TouchActivityUser", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// TouchActivityUser indicates an expected call of TouchActivityUser.
func (mr *MockStorageInterfaceMockRecorder) TouchActivityUser(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TouchActivityUser", reflect.TypeOf((*MockStorageInterface)(nil).TouchActivityUser), ctx, id)
}

// MockKratosClientInterface is a mock of KratosClientInterface interface.
type MockKratosClientInterface struct {
	ctrl     *gomock.Controller
	recorder *MockKratosClientInterfaceMockRecorder
	isgomock struct{}
}

// MockKratosClientInterfaceMockRecorder is the mock recorder for MockKratosClientInterface.
type MockKratosClientInterfaceMockRecorder struct {
	mock *MockKratosClientInterface
}

// NewMockKratosClientInterface creates a new mock instance.
func NewMockKratosClientInterface(ctrl *gomock.Controller) *MockKratosClientInterface {
	mock := &MockKratosClientInterface{ctrl: ctrl}
	mock.recorder = &MockKratosClientInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockKratosClientInterface) EXPECT() *MockKratosClientInterfaceMockRecorder {
	return m.recorder
}

// FindAccountsByEmail mocks base method.
func (m *MockKratosClientInterface) FindAccountsByEmail(ctx context.Context, email string) ([]*types.AccountCandidate, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindAccountsByEmail", ctx, email)
	ret0, _ := ret[0].([]*types.AccountCandidate)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindAccountsByEmail indicates an expected call of FindAccountsByEmail.
func (mr *MockKratosClientInterfaceMockRecorder) FindAccountsByEmail(ctx, email any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindAccountsByEmail", reflect.TypeOf((*MockKratosClientInterface)(nil).FindAccountsByEmail), ctx, email)
}

// FindAccountsByLTILink mocks base method.
func (m *MockKratosClientInterface) FindAccountsByLTILink(ctx context.Context, ltiUserID string) ([]*types.AccountCandidate, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindAccountsByLTILink", ctx, ltiUserID)
	ret0, _ := ret[0].([]*types.AccountCandidate)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindAccountsByLTILink indicates an expected call of FindAccountsByLTILink.
func (mr *MockKratosClientInterfaceMockRecorder) FindAccountsByLTILink(ctx, ltiUserID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindAccountsByLTILink", reflect.TypeOf((*MockKratosClientInterface)(nil).FindAccountsByLTILink), ctx, ltiUserID)
}

// GetAccount mocks base method.
func (m *MockKratosClientInterface) GetAccount(ctx context.Context, accountID string) (*types.AccountCandidate, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAccount", ctx, accountID)
	ret0, _ := ret[0].(*types.AccountCandidate)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAccount indicates an expected call of GetAccount.
func (mr *MockKratosClientInterfaceMockRecorder) GetAccount(ctx, accountID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAccount", reflect.TypeOf((*MockKratosClientInterface)(nil).GetAccount), ctx, accountID)
}

// VerifyCredentials mocks base method.
func (m *MockKratosClientInterface) VerifyCredentials(ctx context.Context, email, password string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "VerifyCredentials", ctx, email, password)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// VerifyCredentials indicates an expected call of VerifyCredentials.
func (mr *MockKratosClientInterfaceMockRecorder) VerifyCredentials(ctx, email, password any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "VerifyCredentials", reflect.TypeOf((*MockKratosClientInterface)(nil).VerifyCredentials), ctx, email, password)
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

// AddUserToGroup mocks base method.
func (m *MockSessionsClientInterface) AddUserToGroup(ctx context.Context, userRef, groupRef string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddUserToGroup", ctx, userRef, groupRef)
	ret0, _ := ret[0].(error)
	return ret0
}

// AddUserToGroup indicates an expected call of AddUserToGroup.
func (mr *MockSessionsClientInterfaceMockRecorder) AddUserToGroup(ctx, userRef, groupRef any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddUserToGroup", reflect.TypeOf((*MockSessionsClientInterface)(nil).AddUserToGroup), ctx, userRef, groupRef)
}

// CreateOrGetUser mocks base method.
func (m *MockSessionsClientInterface) CreateOrGetUser(ctx context.Context, address, displayName string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateOrGetUser", ctx, address, displayName)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateOrGetUser indicates an expected call of CreateOrGetUser.
func (mr *MockSessionsClientInterfaceMockRecorder) CreateOrGetUser(ctx, address, displayName any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateOrGetUser", reflect.TypeOf((*MockSessionsClientInterface)(nil).CreateOrGetUser), ctx, address, displayName)
}

// SessionURL mocks base method.
func (m *MockSessionsClientInterface) SessionURL(userRef string) string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SessionURL", userRef)
	ret0, _ := ret[0].(string)
	return ret0
}

// SessionURL indicates an expected call of SessionURL.
func (mr *MockSessionsClientInterfaceMockRecorder) SessionURL(userRef any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SessionURL", reflect.TypeOf((*MockSessionsClientInterface)(nil).SessionURL), userRef)
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

// Issue mocks base method.
func (m *MockPageTokenInterface) Issue(claims authentication.PageClaims) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Issue", claims)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Issue indicates an expected call of Issue.
func (mr *MockPageTokenInterfaceMockRecorder) Issue(claims any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Issue", reflect.TypeOf((*MockPageTokenInterface)(nil).Issue), claims)
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

// Copyright 2026 LAMB Project
// SPDX-License-Identifier: AGPL-3.0

package launch

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Lamb-Project/lamb-sub010/internal/logging"
	"github.com/Lamb-Project/lamb-sub010/internal/lti"
	"github.com/Lamb-Project/lamb-sub010/internal/monitoring"
	"github.com/Lamb-Project/lamb-sub010/internal/storage"
	"github.com/Lamb-Project/lamb-sub010/internal/tracing"
	"github.com/Lamb-Project/lamb-sub010/internal/types"
	"github.com/Lamb-Project/lamb-sub010/pkg/authentication"
)

// Result is the outcome of a dispatched launch: where to send the browser.
type Result struct {
	RedirectURL string
}

// SetupContext is everything the configuration page needs: who the requester
// might be and which assistants each candidate organization offers.
type SetupContext struct {
	CourseID    string
	CourseTitle string
	Candidates  []*types.AccountCandidate
	// Assistants holds the published assistants per candidate organization.
	Assistants map[string][]*types.Assistant
}

type Service struct {
	storage     StorageInterface
	resolver    ResolverInterface
	credentials CredentialsInterface
	validator   ValidatorInterface
	sessions    SessionsClientInterface
	pageTokens  PageTokenInterface

	baseURL string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	resolver ResolverInterface,
	credentials CredentialsInterface,
	validator ValidatorInterface,
	sessions SessionsClientInterface,
	pageTokens PageTokenInterface,
	baseURL string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:     storage,
		resolver:    resolver,
		credentials: credentials,
		validator:   validator,
		sessions:    sessions,
		pageTokens:  pageTokens,
		baseURL:     baseURL,
		tracer:      tracer,
		monitor:     monitor,
		logger:      logger,
	}
}

// Launch validates and dispatches one inbound LTI POST. The signature check
// runs before any storage lookup so a forged request learns nothing about
// which placements exist.
func (s *Service) Launch(ctx context.Context, r *http.Request) (*Result, error) {
	ctx, span := s.tracer.Start(ctx, "launch.Service.Launch")
	defer span.End()

	key, secret, err := s.credentials.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	params, err := s.validator.Validate(r, s.baseURL+"/lti/launch", key, secret)
	if err != nil {
		s.logger.Security().AuthnFailure(r.PostFormValue("user_id"), "launch rejected: "+err.Error())
		return nil, err
	}

	activity, err := s.storage.GetActivityByPlacementID(ctx, params.PlacementID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up placement: %w", err)
	}

	if params.IsInstructor() {
		if activity == nil {
			return s.setupEntry(ctx, params)
		}
		return s.dashboardEntry(ctx, params, activity)
	}

	if activity == nil || activity.Status == types.ActivityStatusDisabled {
		return nil, ErrNotConfigured
	}

	return s.studentEntry(ctx, params, activity)
}

func (s *Service) setupEntry(ctx context.Context, params *lti.LaunchParams) (*Result, error) {
	ctx, span := s.tracer.Start(ctx, "launch.Service.setupEntry")
	defer span.End()

	token, err := s.pageTokens.Issue(authentication.PageClaims{
		Purpose:     authentication.PurposeSetup,
		PlacementID: params.PlacementID,
		Email:       params.Email,
		DisplayName: params.DisplayName,
		CourseID:    params.CourseID,
		CourseTitle: params.CourseTitle,
		RegisteredClaims: authentication.RegisteredClaims{
			Subject: params.UserID,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to issue setup token: %w", err)
	}

	return &Result{RedirectURL: s.pageURL("/ui/setup", token)}, nil
}

func (s *Service) dashboardEntry(ctx context.Context, params *lti.LaunchParams, activity *types.Activity) (*Result, error) {
	ctx, span := s.tracer.Start(ctx, "launch.Service.dashboardEntry")
	defer span.End()

	candidates, err := s.resolver.Resolve(ctx, params.UserID, params.Email)
	if err != nil {
		return nil, err
	}

	isOwner := false
	for _, c := range candidates {
		if c.AccountID == activity.OwnerID {
			isOwner = true
			break
		}
	}

	token, err := s.pageTokens.Issue(authentication.PageClaims{
		Purpose:     authentication.PurposeDashboard,
		PlacementID: params.PlacementID,
		ActivityID:  activity.ID,
		IsOwner:     isOwner,
		RegisteredClaims: authentication.RegisteredClaims{
			Subject: params.UserID,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to issue dashboard token: %w", err)
	}

	return &Result{RedirectURL: s.pageURL("/ui/dashboard", token)}, nil
}

func (s *Service) studentEntry(ctx context.Context, params *lti.LaunchParams, activity *types.Activity) (*Result, error) {
	ctx, span := s.tracer.Start(ctx, "launch.Service.studentEntry")
	defer span.End()

	address := types.SyntheticAddress(params.UserID, params.PlacementID)

	user, err := s.storage.GetActivityUser(ctx, activity.ID, address)
	switch {
	case err == nil:
		if err := s.storage.TouchActivityUser(ctx, user.ID); err != nil {
			return nil, err
		}
	case errors.Is(err, storage.ErrNotFound):
		user, err = s.storage.CreateActivityUser(ctx, &types.ActivityUser{
			ActivityID:       activity.ID,
			SyntheticAddress: address,
			DisplayName:      params.DisplayName,
			LTIUserID:        params.UserID,
		})
		if errors.Is(err, storage.ErrDuplicateKey) {
			// Concurrent first launch for the same user; the other request
			// created the row.
			user, err = s.storage.GetActivityUser(ctx, activity.ID, address)
		}
		if err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	// Consent is only required when the instructor can read transcripts.
	if activity.ChatVisibility && user.ConsentedAt == nil {
		token, err := s.pageTokens.Issue(authentication.PageClaims{
			Purpose:     authentication.PurposeConsent,
			PlacementID: params.PlacementID,
			ActivityID:  activity.ID,
			DisplayName: params.DisplayName,
			RegisteredClaims: authentication.RegisteredClaims{
				Subject: params.UserID,
			},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to issue consent token: %w", err)
		}
		return &Result{RedirectURL: s.pageURL("/ui/consent", token)}, nil
	}

	return s.enterSession(ctx, activity, user)
}

// EnterSession hands a known participant to the session provider. The consent
// flow calls this after recording consent; the direct student path goes
// through it on every launch.
func (s *Service) EnterSession(ctx context.Context, activityID, syntheticAddress string) (*Result, error) {
	ctx, span := s.tracer.Start(ctx, "launch.Service.EnterSession")
	defer span.End()

	activity, err := s.storage.GetActivityByID(ctx, activityID)
	if err != nil {
		return nil, err
	}
	if activity.Status == types.ActivityStatusDisabled {
		return nil, ErrNotConfigured
	}

	user, err := s.storage.GetActivityUser(ctx, activity.ID, syntheticAddress)
	if err != nil {
		return nil, err
	}

	return s.enterSession(ctx, activity, user)
}

func (s *Service) enterSession(ctx context.Context, activity *types.Activity, user *types.ActivityUser) (*Result, error) {
	ref := user.ProviderUserRef
	if ref == "" {
		var err error
		ref, err = s.sessions.CreateOrGetUser(ctx, user.SyntheticAddress, user.DisplayName)
		if err != nil {
			return nil, fmt.Errorf("failed to provision session user: %w", err)
		}
		if err := s.storage.SetProviderUserRef(ctx, user.ID, ref); err != nil {
			return nil, err
		}
	}

	// Idempotent on the provider side; repeating it heals a half-finished
	// earlier launch.
	if err := s.sessions.AddUserToGroup(ctx, ref, activity.GroupRef); err != nil {
		return nil, fmt.Errorf("failed to grant session access: %w", err)
	}

	return &Result{RedirectURL: s.sessions.SessionURL(ref)}, nil
}

func (s *Service) SetupContext(ctx context.Context, claims *authentication.PageClaims) (*SetupContext, error) {
	ctx, span := s.tracer.Start(ctx, "launch.Service.SetupContext")
	defer span.End()

	candidates, err := s.resolver.Resolve(ctx, claims.Subject, claims.Email)
	if err != nil {
		return nil, err
	}

	assistants := make(map[string][]*types.Assistant)
	for _, c := range candidates {
		if _, ok := assistants[c.OrganizationID]; ok {
			continue
		}
		list, err := s.storage.ListPublishedAssistants(ctx, c.OrganizationID)
		if err != nil {
			return nil, err
		}
		assistants[c.OrganizationID] = list
	}

	return &SetupContext{
		CourseID:    claims.CourseID,
		CourseTitle: claims.CourseTitle,
		Candidates:  candidates,
		Assistants:  assistants,
	}, nil
}

func (s *Service) LinkIdentity(ctx context.Context, claims *authentication.PageClaims, email, password string) (*types.AccountCandidate, error) {
	ctx, span := s.tracer.Start(ctx, "launch.Service.LinkIdentity")
	defer span.End()

	return s.resolver.Link(ctx, claims.Subject, email, password)
}

func (s *Service) pageURL(path, token string) string {
	return s.baseURL + path + "?token=" + url.QueryEscape(token)
}

// Copyright 2026 LAMB Project
// SPDX-License-Identifier: AGPL-3.0

package activity

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lamb-Project/lamb-sub010/internal/logging"
	"github.com/Lamb-Project/lamb-sub010/internal/monitoring"
	"github.com/Lamb-Project/lamb-sub010/internal/storage"
	"github.com/Lamb-Project/lamb-sub010/internal/tracing"
	"github.com/Lamb-Project/lamb-sub010/internal/types"
	"github.com/Lamb-Project/lamb-sub010/pkg/authentication"
)

type ConfigureRequest struct {
	AccountID      string
	Name           string
	AssistantIDs   []string
	ChatVisibility bool
}

type ReconfigureRequest struct {
	ActivityID     string
	Name           string
	AssistantIDs   []string
	ChatVisibility bool
}

// Configuration is the current state of an activity as shown on the
// management surface.
type Configuration struct {
	Activity   *types.Activity
	Assistants []*types.Assistant
}

type Service struct {
	storage  StorageInterface
	tx       TxRunnerInterface
	resolver ResolverInterface
	authz    AuthzInterface
	sessions SessionsClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tx TxRunnerInterface,
	resolver ResolverInterface,
	authz AuthzInterface,
	sessions SessionsClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		tx:       tx,
		resolver: resolver,
		authz:    authz,
		sessions: sessions,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// Configure turns an unconfigured placement into an activity. The activity
// row, its assistant associations and the session-provider grants all happen
// inside one attempt: a provider failure rolls the database write back, so a
// half-granted activity never becomes visible.
func (s *Service) Configure(ctx context.Context, claims *authentication.PageClaims, req *ConfigureRequest) (*types.Activity, error) {
	ctx, span := s.tracer.Start(ctx, "activity.Service.Configure")
	defer span.End()

	owner, err := s.candidateAccount(ctx, claims, req.AccountID)
	if err != nil {
		return nil, err
	}

	assistants, err := s.resolveAssistants(ctx, req.AssistantIDs, owner.OrganizationID)
	if err != nil {
		return nil, err
	}

	group, err := s.sessions.CreateGroup(ctx, "activity-"+claims.PlacementID)
	if err != nil {
		return nil, fmt.Errorf("failed to create session group: %w", err)
	}

	var created *types.Activity
	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		created, err = s.storage.CreateActivity(ctx, &types.Activity{
			PlacementID:    claims.PlacementID,
			OrganizationID: owner.OrganizationID,
			CourseID:       claims.CourseID,
			CourseTitle:    claims.CourseTitle,
			Name:           req.Name,
			OwnerID:        owner.AccountID,
			GroupRef:       group,
			ChatVisibility: req.ChatVisibility,
		})
		if err != nil {
			return err
		}

		for _, a := range assistants {
			if err := s.storage.AddActivityAssistant(ctx, created.ID, a.ID); err != nil {
				return err
			}
			if err := s.sessions.GrantGroupToResource(ctx, a.ResourceRef, group); err != nil {
				return fmt.Errorf("failed to grant group to assistant %s: %w", a.ID, err)
			}
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			// Another instructor finished configuration first.
			return nil, ErrAlreadyConfigured
		}
		return nil, err
	}

	if err := s.authz.AssignActivityOwner(ctx, created.ID, owner.AccountID); err != nil {
		return nil, fmt.Errorf("failed to assign activity owner: %w", err)
	}
	if err := s.authz.LinkActivityToOrganization(ctx, created.ID, owner.OrganizationID); err != nil {
		return nil, fmt.Errorf("failed to link activity to organization: %w", err)
	}

	s.logger.Infof("activity %s configured for placement %s by %s", created.ID, created.PlacementID, owner.AccountID)

	return created, nil
}

// Reconfigure updates name, visibility and the assistant set. Only the owner
// (or an organization admin) may call it. Toggling visibility never touches
// recorded consent: a participant who consented once stays consented.
func (s *Service) Reconfigure(ctx context.Context, claims *authentication.PageClaims, req *ReconfigureRequest) (*types.Activity, error) {
	ctx, span := s.tracer.Start(ctx, "activity.Service.Reconfigure")
	defer span.End()

	activity, err := s.storage.GetActivityByID(ctx, req.ActivityID)
	if err != nil {
		return nil, err
	}
	if activity.PlacementID != claims.PlacementID {
		// Token minted for a different placement.
		return nil, ErrNotOwner
	}

	if err := s.requireManager(ctx, claims, activity); err != nil {
		return nil, err
	}

	desired, err := s.resolveAssistants(ctx, req.AssistantIDs, activity.OrganizationID)
	if err != nil {
		return nil, err
	}

	current, err := s.storage.ListActivityAssistants(ctx, activity.ID)
	if err != nil {
		return nil, err
	}

	currentSet := make(map[string]bool, len(current))
	for _, aa := range current {
		currentSet[aa.AssistantID] = true
	}
	desiredSet := make(map[string]*types.Assistant, len(desired))
	for _, a := range desired {
		desiredSet[a.ID] = a
	}

	var removed []*types.ActivityAssistant
	for _, aa := range current {
		if _, keep := desiredSet[aa.AssistantID]; !keep {
			removed = append(removed, aa)
		}
	}
	var added []*types.Assistant
	for _, a := range desired {
		if !currentSet[a.ID] {
			added = append(added, a)
		}
	}

	removedAssistants, err := s.storage.GetAssistantsByIDs(ctx, assistantIDs(removed))
	if err != nil {
		return nil, err
	}

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		if err := s.storage.UpdateActivity(ctx, activity.ID, req.Name, req.ChatVisibility); err != nil {
			return err
		}

		for _, a := range added {
			if err := s.storage.AddActivityAssistant(ctx, activity.ID, a.ID); err != nil {
				return err
			}
			if err := s.sessions.GrantGroupToResource(ctx, a.ResourceRef, activity.GroupRef); err != nil {
				return fmt.Errorf("failed to grant group to assistant %s: %w", a.ID, err)
			}
		}

		for _, a := range removedAssistants {
			if err := s.storage.RemoveActivityAssistant(ctx, activity.ID, a.ID); err != nil {
				return err
			}
			if err := s.sessions.RevokeGroupFromResource(ctx, a.ResourceRef, activity.GroupRef); err != nil {
				return fmt.Errorf("failed to revoke group from assistant %s: %w", a.ID, err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.storage.GetActivityByID(ctx, activity.ID)
}

func (s *Service) GetConfiguration(ctx context.Context, activityID string) (*Configuration, error) {
	ctx, span := s.tracer.Start(ctx, "activity.Service.GetConfiguration")
	defer span.End()

	activity, err := s.storage.GetActivityByID(ctx, activityID)
	if err != nil {
		return nil, err
	}

	associations, err := s.storage.ListActivityAssistants(ctx, activityID)
	if err != nil {
		return nil, err
	}

	assistants, err := s.storage.GetAssistantsByIDs(ctx, assistantIDs(associations))
	if err != nil {
		return nil, err
	}

	return &Configuration{Activity: activity, Assistants: assistants}, nil
}

// candidateAccount checks that the chosen account is actually one of the
// requester's resolved candidates. The page token alone does not authorize
// acting as an arbitrary account.
func (s *Service) candidateAccount(ctx context.Context, claims *authentication.PageClaims, accountID string) (*types.AccountCandidate, error) {
	candidates, err := s.resolver.Resolve(ctx, claims.Subject, claims.Email)
	if err != nil {
		return nil, err
	}

	for _, c := range candidates {
		if c.AccountID == accountID {
			return c, nil
		}
	}

	s.logger.Security().AuthzFailure(claims.Subject, "configure as non-candidate account "+accountID)
	return nil, ErrUnknownAccount
}

func (s *Service) requireManager(ctx context.Context, claims *authentication.PageClaims, activity *types.Activity) error {
	candidates, err := s.resolver.Resolve(ctx, claims.Subject, claims.Email)
	if err != nil {
		return err
	}

	for _, c := range candidates {
		if c.AccountID == activity.OwnerID {
			return nil
		}
	}

	// Not the owner directly; an organization admin may still manage it.
	for _, c := range candidates {
		ok, err := s.authz.CanManageActivity(ctx, c.AccountID, activity.ID)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
	}

	s.logger.Security().AuthzFailure(claims.Subject, "reconfigure activity "+activity.ID)
	return ErrNotOwner
}

// resolveAssistants validates that every requested assistant is published in
// the given organization. Any miss fails the whole request.
func (s *Service) resolveAssistants(ctx context.Context, ids []string, organizationID string) ([]*types.Assistant, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	assistants, err := s.storage.GetAssistantsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*types.Assistant, len(assistants))
	for _, a := range assistants {
		byID[a.ID] = a
	}

	resolved := make([]*types.Assistant, 0, len(ids))
	for _, id := range ids {
		a, ok := byID[id]
		if !ok || !a.Published || a.OrganizationID != organizationID {
			return nil, fmt.Errorf("%w: %s", ErrForeignAssistant, id)
		}
		resolved = append(resolved, a)
	}

	return resolved, nil
}

func assistantIDs(associations []*types.ActivityAssistant) []string {
	ids := make([]string, 0, len(associations))
	for _, aa := range associations {
		ids = append(ids, aa.AssistantID)
	}
	return ids
}

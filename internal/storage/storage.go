// Copyright 2026 LAMB Project
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Lamb-Project/lamb-sub010/internal/db"
	"github.com/Lamb-Project/lamb-sub010/internal/logging"
	"github.com/Lamb-Project/lamb-sub010/internal/monitoring"
	"github.com/Lamb-Project/lamb-sub010/internal/tracing"
	"github.com/Lamb-Project/lamb-sub010/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

const activityColumns = "id, placement_id, organization_id, course_id, course_title, name, owner_id, group_ref, chat_visibility, status, created_at, updated_at"

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *Storage) CreateActivity(ctx context.Context, a *types.Activity) (*types.Activity, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateActivity")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate activity ID: %w", err)
	}

	var created types.Activity
	err = s.db.Statement(ctx).
		Insert("activities").
		Columns("id", "placement_id", "organization_id", "course_id", "course_title", "name", "owner_id", "group_ref", "chat_visibility", "status").
		Values(id.String(), a.PlacementID, a.OrganizationID, a.CourseID, a.CourseTitle, a.Name, a.OwnerID, a.GroupRef, a.ChatVisibility, types.ActivityStatusActive).
		Suffix("RETURNING " + activityColumns).
		QueryRowContext(ctx).
		Scan(activityFields(&created)...)

	if err != nil {
		if IsDuplicateKeyError(err) {
			// Another launch won the creation race on this placement.
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert activity: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetActivityByPlacementID(ctx context.Context, placementID string) (*types.Activity, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetActivityByPlacementID")
	defer span.End()

	return s.getActivity(ctx, sq.Eq{"placement_id": placementID})
}

func (s *Storage) GetActivityByID(ctx context.Context, id string) (*types.Activity, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetActivityByID")
	defer span.End()

	return s.getActivity(ctx, sq.Eq{"id": id})
}

func (s *Storage) getActivity(ctx context.Context, pred sq.Eq) (*types.Activity, error) {
	var a types.Activity
	err := s.db.Statement(ctx).
		Select(activityColumns).
		From("activities").
		Where(pred).
		QueryRowContext(ctx).
		Scan(activityFields(&a)...)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}

	return &a, nil
}

func (s *Storage) ListActivitiesByOrganization(ctx context.Context, organizationID string) ([]*types.Activity, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListActivitiesByOrganization")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(activityColumns).
		From("activities").
		Where(sq.Eq{"organization_id": organizationID}).
		OrderBy("created_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	var activities []*types.Activity
	for rows.Next() {
		var a types.Activity
		if err := rows.Scan(activityFields(&a)...); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return activities, nil
}

func (s *Storage) UpdateActivity(ctx context.Context, id, name string, chatVisibility bool) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateActivity")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("activities").
		Set("name", name).
		Set("chat_visibility", chatVisibility).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update activity: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) SetActivityStatus(ctx context.Context, id, status string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetActivityStatus")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("activities").
		Set("status", status).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to set activity status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) ListActivityAssistants(ctx context.Context, activityID string) ([]*types.ActivityAssistant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListActivityAssistants")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "activity_id", "assistant_id", "added_at").
		From("activity_assistants").
		Where(sq.Eq{"activity_id": activityID}).
		OrderBy("added_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity assistants: %w", err)
	}
	defer rows.Close()

	var assistants []*types.ActivityAssistant
	for rows.Next() {
		var aa types.ActivityAssistant
		if err := rows.Scan(&aa.ID, &aa.ActivityID, &aa.AssistantID, &aa.AddedAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity assistant: %w", err)
		}
		assistants = append(assistants, &aa)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return assistants, nil
}

func (s *Storage) AddActivityAssistant(ctx context.Context, activityID, assistantID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.AddActivityAssistant")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate ID: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("activity_assistants").
		Columns("id", "activity_id", "assistant_id").
		Values(id.String(), activityID, assistantID).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to add activity assistant: %w", err)
	}

	return nil
}

func (s *Storage) RemoveActivityAssistant(ctx context.Context, activityID, assistantID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.RemoveActivityAssistant")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("activity_assistants").
		Where(sq.Eq{"activity_id": activityID, "assistant_id": assistantID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to remove activity assistant: %w", err)
	}

	return nil
}

const activityUserColumns = "id, activity_id, synthetic_address, display_name, lti_user_id, provider_user_ref, consented_at, first_seen, last_seen, visits"

func (s *Storage) GetActivityUser(ctx context.Context, activityID, syntheticAddress string) (*types.ActivityUser, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetActivityUser")
	defer span.End()

	var u types.ActivityUser
	err := s.db.Statement(ctx).
		Select(activityUserColumns).
		From("activity_users").
		Where(sq.Eq{"activity_id": activityID, "synthetic_address": syntheticAddress}).
		QueryRowContext(ctx).
		Scan(activityUserFields(&u)...)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get activity user: %w", err)
	}

	return &u, nil
}

func (s *Storage) CreateActivityUser(ctx context.Context, u *types.ActivityUser) (*types.ActivityUser, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateActivityUser")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate ID: %w", err)
	}

	var created types.ActivityUser
	err = s.db.Statement(ctx).
		Insert("activity_users").
		Columns("id", "activity_id", "synthetic_address", "display_name", "lti_user_id", "provider_user_ref").
		Values(id.String(), u.ActivityID, u.SyntheticAddress, u.DisplayName, u.LTIUserID, u.ProviderUserRef).
		Suffix("RETURNING " + activityUserColumns).
		QueryRowContext(ctx).
		Scan(activityUserFields(&created)...)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert activity user: %w", err)
	}

	return &created, nil
}

// TouchActivityUser bumps last_seen and the visit counter in one statement so
// concurrent launches can only move both forward.
func (s *Storage) TouchActivityUser(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.TouchActivityUser")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("activity_users").
		Set("last_seen", sq.Expr("now()")).
		Set("visits", sq.Expr("visits + 1")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to touch activity user: %w", err)
	}

	return nil
}

func (s *Storage) SetProviderUserRef(ctx context.Context, id, ref string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetProviderUserRef")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("activity_users").
		Set("provider_user_ref", ref).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to set provider user ref: %w", err)
	}

	return nil
}

// RecordConsent transitions consented_at from null to now exactly once. A
// repeated call is a no-op, never an error, so refresh and back-button replays
// stay idempotent.
func (s *Storage) RecordConsent(ctx context.Context, activityID, syntheticAddress string) error {
	ctx, span := s.tracer.Start(ctx, "storage.RecordConsent")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("activity_users").
		Set("consented_at", sq.Expr("now()")).
		Where(sq.Eq{"activity_id": activityID, "synthetic_address": syntheticAddress}).
		Where("consented_at IS NULL").
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to record consent: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		// Either already consented (fine) or the row is missing.
		if _, err := s.GetActivityUser(ctx, activityID, syntheticAddress); err != nil {
			return err
		}
	}

	return nil
}

func (s *Storage) ListActivityUsersOrdered(ctx context.Context, activityID string) ([]*types.ActivityUser, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListActivityUsersOrdered")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(activityUserColumns).
		From("activity_users").
		Where(sq.Eq{"activity_id": activityID}).
		OrderBy("first_seen", "id").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity users: %w", err)
	}
	defer rows.Close()

	var users []*types.ActivityUser
	for rows.Next() {
		var u types.ActivityUser
		if err := rows.Scan(activityUserFields(&u)...); err != nil {
			return nil, fmt.Errorf("failed to scan activity user: %w", err)
		}
		users = append(users, &u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return users, nil
}

// ListParticipants returns the anonymized participant page. Labels are row
// numbers over (first_seen, id), computed here on every read; no label column
// exists anywhere.
func (s *Storage) ListParticipants(ctx context.Context, activityID string, offset, limit uint64) ([]*types.Participant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListParticipants")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(
			"ROW_NUMBER() OVER (ORDER BY first_seen, id) AS label",
			"first_seen",
			"last_seen",
			"visits",
			"consented_at IS NOT NULL AS consented",
		).
		From("activity_users").
		Where(sq.Eq{"activity_id": activityID}).
		OrderBy("first_seen", "id").
		Offset(offset).
		Limit(limit).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	defer rows.Close()

	var participants []*types.Participant
	for rows.Next() {
		var p types.Participant
		if err := rows.Scan(&p.Label, &p.FirstSeen, &p.LastSeen, &p.Visits, &p.Consented); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return participants, nil
}

func (s *Storage) CountParticipants(ctx context.Context, activityID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountParticipants")
	defer span.End()

	var count int64
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("activity_users").
		Where(sq.Eq{"activity_id": activityID}).
		QueryRowContext(ctx).
		Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count participants: %w", err)
	}

	return count, nil
}

func (s *Storage) CountActiveParticipants(ctx context.Context, activityID string, since time.Time) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountActiveParticipants")
	defer span.End()

	var count int64
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("activity_users").
		Where(sq.Eq{"activity_id": activityID}).
		Where(sq.GtOrEq{"last_seen": since}).
		QueryRowContext(ctx).
		Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active participants: %w", err)
	}

	return count, nil
}

func (s *Storage) FindIdentityLinks(ctx context.Context, ltiUserID, email string) ([]*types.IdentityLink, error) {
	ctx, span := s.tracer.Start(ctx, "storage.FindIdentityLinks")
	defer span.End()

	pred := sq.Or{sq.Eq{"lti_user_id": ltiUserID}}
	if email != "" {
		pred = append(pred, sq.Eq{"email": email})
	}

	rows, err := s.db.Statement(ctx).
		Select("id", "lti_user_id", "email", "account_id", "created_at").
		From("identity_links").
		Where(pred).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find identity links: %w", err)
	}
	defer rows.Close()

	var links []*types.IdentityLink
	for rows.Next() {
		var l types.IdentityLink
		if err := rows.Scan(&l.ID, &l.LTIUserID, &l.Email, &l.AccountID, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan identity link: %w", err)
		}
		links = append(links, &l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return links, nil
}

func (s *Storage) CreateIdentityLink(ctx context.Context, link *types.IdentityLink) (*types.IdentityLink, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateIdentityLink")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate ID: %w", err)
	}

	var created types.IdentityLink
	err = s.db.Statement(ctx).
		Insert("identity_links").
		Columns("id", "lti_user_id", "email", "account_id").
		Values(id.String(), link.LTIUserID, link.Email, link.AccountID).
		Suffix("RETURNING id, lti_user_id, email, account_id, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.LTIUserID, &created.Email, &created.AccountID, &created.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert identity link: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetGlobalCredential(ctx context.Context) (*types.GlobalCredential, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetGlobalCredential")
	defer span.End()

	var c types.GlobalCredential
	err := s.db.Statement(ctx).
		Select("consumer_key", "consumer_secret", "updated_at", "updated_by").
		From("global_credential").
		QueryRowContext(ctx).
		Scan(&c.ConsumerKey, &c.ConsumerSecret, &c.UpdatedAt, &c.UpdatedBy)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get global credential: %w", err)
	}

	return &c, nil
}

func (s *Storage) UpsertGlobalCredential(ctx context.Context, c *types.GlobalCredential) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertGlobalCredential")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("global_credential").
		Columns("singleton", "consumer_key", "consumer_secret", "updated_by").
		Values(true, c.ConsumerKey, c.ConsumerSecret, c.UpdatedBy).
		Suffix("ON CONFLICT (singleton) DO UPDATE SET consumer_key = EXCLUDED.consumer_key, consumer_secret = EXCLUDED.consumer_secret, updated_by = EXCLUDED.updated_by, updated_at = now()").
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert global credential: %w", err)
	}

	return nil
}

const assistantColumns = "id, organization_id, owner_id, name, published, resource_ref, created_at"

func (s *Storage) ListPublishedAssistants(ctx context.Context, organizationID string) ([]*types.Assistant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPublishedAssistants")
	defer span.End()

	return s.listAssistants(ctx, sq.Eq{"organization_id": organizationID, "published": true})
}

func (s *Storage) GetAssistantsByIDs(ctx context.Context, ids []string) ([]*types.Assistant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetAssistantsByIDs")
	defer span.End()

	if len(ids) == 0 {
		return nil, nil
	}

	return s.listAssistants(ctx, sq.Eq{"id": ids})
}

func (s *Storage) GetAssistantsByResourceRefs(ctx context.Context, refs []string) ([]*types.Assistant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetAssistantsByResourceRefs")
	defer span.End()

	if len(refs) == 0 {
		return nil, nil
	}

	return s.listAssistants(ctx, sq.Eq{"resource_ref": refs})
}

func (s *Storage) listAssistants(ctx context.Context, pred sq.Eq) ([]*types.Assistant, error) {
	rows, err := s.db.Statement(ctx).
		Select(assistantColumns).
		From("assistants").
		Where(pred).
		OrderBy("name").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assistants: %w", err)
	}
	defer rows.Close()

	var assistants []*types.Assistant
	for rows.Next() {
		var a types.Assistant
		if err := rows.Scan(&a.ID, &a.OrganizationID, &a.OwnerID, &a.Name, &a.Published, &a.ResourceRef, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan assistant: %w", err)
		}
		assistants = append(assistants, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return assistants, nil
}

func activityFields(a *types.Activity) []any {
	return []any{&a.ID, &a.PlacementID, &a.OrganizationID, &a.CourseID, &a.CourseTitle, &a.Name, &a.OwnerID, &a.GroupRef, &a.ChatVisibility, &a.Status, &a.CreatedAt, &a.UpdatedAt}
}

func activityUserFields(u *types.ActivityUser) []any {
	return []any{&u.ID, &u.ActivityID, &u.SyntheticAddress, &u.DisplayName, &u.LTIUserID, &u.ProviderUserRef, &u.ConsentedAt, &u.FirstSeen, &u.LastSeen, &u.Visits}
}

// Copyright 2026 LAMB Project
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

const (
	ActivityStatusActive   = "active"
	ActivityStatusDisabled = "disabled"
)

// Activity is one persisted tool placement. OrganizationID is bound on first
// configuration and never changes afterwards.
type Activity struct {
	ID             string     `db:"id"`
	PlacementID    string     `db:"placement_id"`
	OrganizationID string     `db:"organization_id"`
	CourseID       string     `db:"course_id"`
	CourseTitle    string     `db:"course_title"`
	Name           string     `db:"name"`
	OwnerID        string     `db:"owner_id"`
	GroupRef       string     `db:"group_ref"`
	ChatVisibility bool       `db:"chat_visibility"`
	Status         string     `db:"status"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

type ActivityAssistant struct {
	ID          string    `db:"id"`
	ActivityID  string    `db:"activity_id"`
	AssistantID string    `db:"assistant_id"`
	AddedAt     time.Time `db:"added_at"`
}

// ActivityUser is one synthetic identity inside one activity. ConsentedAt is
// write-once; nil means not yet consented or not required.
type ActivityUser struct {
	ID               string     `db:"id"`
	ActivityID       string     `db:"activity_id"`
	SyntheticAddress string     `db:"synthetic_address"`
	DisplayName      string     `db:"display_name"`
	LTIUserID        string     `db:"lti_user_id"`
	ProviderUserRef  string     `db:"provider_user_ref"`
	ConsentedAt      *time.Time `db:"consented_at"`
	FirstSeen        time.Time  `db:"first_seen"`
	LastSeen         time.Time  `db:"last_seen"`
	Visits           int64      `db:"visits"`
}

// IdentityLink records a manual account link. The same LTI user may hold links
// into different organizations, so (lti_user_id, email) is not unique on its own.
type IdentityLink struct {
	ID        string    `db:"id"`
	LTIUserID string    `db:"lti_user_id"`
	Email     string    `db:"email"`
	AccountID string    `db:"account_id"`
	CreatedAt time.Time `db:"created_at"`
}

// GlobalCredential is the single persisted override for the shared LTI
// consumer key/secret pair.
type GlobalCredential struct {
	ConsumerKey    string    `db:"consumer_key"`
	ConsumerSecret string    `db:"consumer_secret"`
	UpdatedAt      time.Time `db:"updated_at"`
	UpdatedBy      string    `db:"updated_by"`
}

// Assistant is the registry view of a published assistant. The catalog owns
// the full record; this service only needs organization scoping and the
// session-provider resource reference.
type Assistant struct {
	ID             string    `db:"id"`
	OrganizationID string    `db:"organization_id"`
	OwnerID        string    `db:"owner_id"`
	Name           string    `db:"name"`
	Published      bool      `db:"published"`
	ResourceRef    string    `db:"resource_ref"`
	CreatedAt      time.Time `db:"created_at"`
}

// AccountCandidate is one possible internal account for an inbound LMS
// identity, annotated with its organization.
type AccountCandidate struct {
	AccountID      string
	Email          string
	DisplayName    string
	OrganizationID string
}

// Participant is the anonymized dashboard row. Label is computed on read and
// never stored, so no reverse mapping exists.
type Participant struct {
	Label         int64
	FirstSeen     time.Time
	LastSeen      time.Time
	Visits        int64
	Consented     bool
}

// SyntheticAddress derives the per-(user, placement) contact address. The
// derivation is deterministic so repeated launches land on the same identity,
// and one-way so the address discloses nothing about the LMS user.
func SyntheticAddress(ltiUserID, placementID string) string {
	sum := sha256.Sum256([]byte(ltiUserID + ":" + placementID))
	return hex.EncodeToString(sum[:])[:20] + "@activity.lamb.local"
}

// Copyright 2026 LAMB Project
// SPDX-License-Identifier: AGPL-3.0

package sessions

import (
	"context"
	"time"
)

// ClientInterface is the boundary to the downstream session provider that
// actually renders conversations. All mutating calls are idempotent on the
// provider side, so transient failures are retried.
type ClientInterface interface {
	CreateOrGetUser(ctx context.Context, address, displayName string) (string, error)
	CreateGroup(ctx context.Context, name string) (string, error)
	GrantGroupToResource(ctx context.Context, resourceID, groupRef string) error
	RevokeGroupFromResource(ctx context.Context, resourceID, groupRef string) error
	AddUserToGroup(ctx context.Context, userRef, groupRef string) error
	ListConversations(ctx context.Context, resourceIDs, userRefs []string) ([]*Conversation, error)
	GetConversation(ctx context.Context, id string) (*Conversation, error)
	SessionURL(userRef string) string
}

type Conversation struct {
	ID           string    `json:"id"`
	ResourceID   string    `json:"resource_id"`
	UserRef      string    `json:"user_ref"`
	Title        string    `json:"title"`
	MessageCount int64     `json:"message_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Messages     []Message `json:"messages,omitempty"`
}

type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

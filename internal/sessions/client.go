// Copyright 2026 LAMB Project
// SPDX-License-Identifier: AGPL-3.0

package sessions

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/Lamb-Project/lamb-sub010/internal/logging"
	"github.com/Lamb-Project/lamb-sub010/internal/monitoring"
	"github.com/Lamb-Project/lamb-sub010/internal/tracing"
)

var _ ClientInterface = (*Client)(nil)

type Client struct {
	baseURL string
	apiKey  string
	http    *retryablehttp.Client

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(baseURL, apiKey string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 3
	rc.RetryWaitMin = 200 * time.Millisecond
	rc.RetryWaitMax = 2 * time.Second
	rc.HTTPClient.Timeout = 15 * time.Second
	rc.Logger = nil

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		http:    rc,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (c *Client) CreateOrGetUser(ctx context.Context, address, displayName string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "sessions.Client.CreateOrGetUser")
	defer span.End()

	var out struct {
		ID string `json:"id"`
	}
	body := map[string]string{"email": address, "name": displayName}
	if err := c.do(ctx, http.MethodPost, "/api/v1/users", body, &out); err != nil {
		return "", err
	}

	return out.ID, nil
}

func (c *Client) CreateGroup(ctx context.Context, name string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "sessions.Client.CreateGroup")
	defer span.End()

	var out struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/groups", map[string]string{"name": name}, &out); err != nil {
		return "", err
	}

	return out.ID, nil
}

func (c *Client) GrantGroupToResource(ctx context.Context, resourceID, groupRef string) error {
	ctx, span := c.tracer.Start(ctx, "sessions.Client.GrantGroupToResource")
	defer span.End()

	path := fmt.Sprintf("/api/v1/resources/%s/groups/%s", url.PathEscape(resourceID), url.PathEscape(groupRef))
	return c.do(ctx, http.MethodPut, path, nil, nil)
}

func (c *Client) RevokeGroupFromResource(ctx context.Context, resourceID, groupRef string) error {
	ctx, span := c.tracer.Start(ctx, "sessions.Client.RevokeGroupFromResource")
	defer span.End()

	path := fmt.Sprintf("/api/v1/resources/%s/groups/%s", url.PathEscape(resourceID), url.PathEscape(groupRef))
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) AddUserToGroup(ctx context.Context, userRef, groupRef string) error {
	ctx, span := c.tracer.Start(ctx, "sessions.Client.AddUserToGroup")
	defer span.End()

	path := fmt.Sprintf("/api/v1/groups/%s/users/%s", url.PathEscape(groupRef), url.PathEscape(userRef))
	return c.do(ctx, http.MethodPut, path, nil, nil)
}

func (c *Client) ListConversations(ctx context.Context, resourceIDs, userRefs []string) ([]*Conversation, error) {
	ctx, span := c.tracer.Start(ctx, "sessions.Client.ListConversations")
	defer span.End()

	q := url.Values{}
	if len(resourceIDs) > 0 {
		q.Set("resource_ids", strings.Join(resourceIDs, ","))
	}
	if len(userRefs) > 0 {
		q.Set("user_refs", strings.Join(userRefs, ","))
	}

	var out struct {
		Conversations []*Conversation `json:"conversations"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/conversations?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}

	return out.Conversations, nil
}

func (c *Client) GetConversation(ctx context.Context, id string) (*Conversation, error) {
	ctx, span := c.tracer.Start(ctx, "sessions.Client.GetConversation")
	defer span.End()

	var out Conversation
	if err := c.do(ctx, http.MethodGet, "/api/v1/conversations/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// SessionURL is where a participant lands after pass-through.
func (c *Client) SessionURL(userRef string) string {
	return c.baseURL + "/session?user=" + url.QueryEscape(userRef)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		payload = bytes.NewReader(b)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("session provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("session provider returned %d: %s", resp.StatusCode, string(b))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

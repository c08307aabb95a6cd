// Copyright 2026 LAMB Project
// SPDX-License-Identifier: AGPL-3.0

// Package lti validates LTI 1.1 basic launch requests: an OAuth 1.0a signed
// form POST from the LMS. Validation happens before any lookup so an invalid
// signature discloses nothing about placement existence.
package lti

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidSignature = errors.New("invalid launch signature")
	ErrStaleTimestamp   = errors.New("launch timestamp outside allowed window")
	ErrMissingParams    = errors.New("missing required launch parameters")
)

// LaunchParams is the subset of the LTI POST body this service consumes.
type LaunchParams struct {
	ConsumerKey string
	PlacementID string
	UserID      string
	Roles       []string
	Email       string
	DisplayName string
	CourseID    string
	CourseTitle string
}

// IsInstructor reports whether any role claim carries instructor authority.
// Both the short and the full urn forms appear in the wild.
func (p *LaunchParams) IsInstructor() bool {
	for _, role := range p.Roles {
		r := role
		if i := strings.LastIndex(r, "/"); i >= 0 {
			r = r[i+1:]
		}
		switch strings.ToLower(strings.TrimSpace(r)) {
		case "instructor", "administrator", "contentdeveloper", "teachingassistant":
			return true
		}
	}
	return false
}

type Validator struct {
	skew time.Duration
}

func NewValidator(skew time.Duration) *Validator {
	return &Validator{skew: skew}
}

// Validate checks the OAuth 1.0a HMAC-SHA1 signature of a parsed form request
// and extracts the launch parameters. r.ParseForm must have been called.
func (v *Validator) Validate(r *http.Request, launchURL, consumerKey, consumerSecret string) (*LaunchParams, error) {
	form := r.PostForm

	if form.Get("oauth_consumer_key") != consumerKey {
		return nil, ErrInvalidSignature
	}
	if form.Get("oauth_signature_method") != "HMAC-SHA1" {
		return nil, ErrInvalidSignature
	}

	ts, err := strconv.ParseInt(form.Get("oauth_timestamp"), 10, 64)
	if err != nil {
		return nil, ErrInvalidSignature
	}
	if d := time.Since(time.Unix(ts, 0)); d > v.skew || d < -v.skew {
		return nil, ErrStaleTimestamp
	}

	expected := Sign(http.MethodPost, launchURL, form, consumerSecret)
	provided := form.Get("oauth_signature")
	if subtle.ConstantTimeCompare([]byte(expected), []byte(provided)) != 1 {
		return nil, ErrInvalidSignature
	}

	params := &LaunchParams{
		ConsumerKey: consumerKey,
		PlacementID: form.Get("resource_link_id"),
		UserID:      form.Get("user_id"),
		Roles:       splitRoles(form.Get("roles")),
		Email:       form.Get("lis_person_contact_email_primary"),
		DisplayName: form.Get("lis_person_name_full"),
		CourseID:    form.Get("context_id"),
		CourseTitle: form.Get("context_title"),
	}

	if params.PlacementID == "" || params.UserID == "" {
		return nil, ErrMissingParams
	}

	return params, nil
}

// Sign computes the OAuth 1.0a HMAC-SHA1 signature over the request form.
// Exported so tests and tooling can produce valid launches.
func Sign(method, rawURL string, form url.Values, consumerSecret string) string {
	pairs := make([]string, 0, len(form))
	for key, values := range form {
		if key == "oauth_signature" {
			continue
		}
		for _, value := range values {
			pairs = append(pairs, oauthEncode(key)+"="+oauthEncode(value))
		}
	}
	sort.Strings(pairs)

	base := strings.Join([]string{
		method,
		oauthEncode(normalizeURL(rawURL)),
		oauthEncode(strings.Join(pairs, "&")),
	}, "&")

	// Token secret is always empty for LTI basic launches.
	mac := hmac.New(sha1.New, []byte(oauthEncode(consumerSecret)+"&"))
	mac.Write([]byte(base))

	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// normalizeURL strips query and fragment and lowers scheme/host, per RFC 5849 §3.4.1.2.
func normalizeURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	u.RawQuery = ""
	u.Fragment = ""
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)

	if (u.Scheme == "http" && strings.HasSuffix(u.Host, ":80")) ||
		(u.Scheme == "https" && strings.HasSuffix(u.Host, ":443")) {
		u.Host = u.Host[:strings.LastIndex(u.Host, ":")]
	}

	return u.String()
}

// oauthEncode is RFC 5849 percent encoding; stricter than url.QueryEscape.
func oauthEncode(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9',
			c == '-', c == '.', c == '_', c == '~':
			b.WriteByte(c)
		default:
			b.WriteString(fmt.Sprintf("%%%02X", c))
		}
	}
	return b.String()
}

func splitRoles(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	roles := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			roles = append(roles, p)
		}
	}
	return roles
}

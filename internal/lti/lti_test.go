// Copyright 2026 LAMB Project
// SPDX-License-Identifier: AGPL-3.0

package lti

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"
)

const (
	testKey    = "lamb-consumer"
	testSecret = "topsecret"
	launchURL  = "https://launch.example.com/lti/launch"
)

func signedForm(t *testing.T, overrides map[string]string) url.Values {
	t.Helper()

	form := url.Values{}
	form.Set("oauth_consumer_key", testKey)
	form.Set("oauth_signature_method", "HMAC-SHA1")
	form.Set("oauth_timestamp", strconv.FormatInt(time.Now().Unix(), 10))
	form.Set("oauth_nonce", "nonce-1")
	form.Set("oauth_version", "1.0")
	form.Set("resource_link_id", "placement-abc")
	form.Set("user_id", "lms-user-1")
	form.Set("roles", "Learner")
	form.Set("lis_person_contact_email_primary", "alice@example.edu")
	form.Set("context_id", "course-42")

	for k, v := range overrides {
		form.Set(k, v)
	}

	form.Set("oauth_signature", Sign(http.MethodPost, launchURL, form, testSecret))
	return form
}

func requestWithForm(t *testing.T, form url.Values) *http.Request {
	t.Helper()

	r, err := http.NewRequest(http.MethodPost, launchURL, strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatal(err)
	}
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if err := r.ParseForm(); err != nil {
		t.Fatal(err)
	}
	return r
}

func TestValidate(t *testing.T) {
	v := NewValidator(5 * time.Minute)

	testCases := []struct {
		name        string
		form        func(t *testing.T) url.Values
		expectedErr error
	}{
		{
			name: "valid launch",
			form: func(t *testing.T) url.Values { return signedForm(t, nil) },
		},
		{
			name: "tampered placement",
			form: func(t *testing.T) url.Values {
				form := signedForm(t, nil)
				form.Set("resource_link_id", "other-placement")
				return form
			},
			expectedErr: ErrInvalidSignature,
		},
		{
			name: "wrong secret",
			form: func(t *testing.T) url.Values {
				form := signedForm(t, nil)
				form.Set("oauth_signature", Sign(http.MethodPost, launchURL, form, "wrong"))
				return form
			},
			expectedErr: ErrInvalidSignature,
		},
		{
			name: "stale timestamp",
			form: func(t *testing.T) url.Values {
				return signedForm(t, map[string]string{
					"oauth_timestamp": strconv.FormatInt(time.Now().Add(-time.Hour).Unix(), 10),
				})
			},
			expectedErr: ErrStaleTimestamp,
		},
		{
			name: "missing placement",
			form: func(t *testing.T) url.Values {
				return signedForm(t, map[string]string{"resource_link_id": ""})
			},
			expectedErr: ErrMissingParams,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := requestWithForm(t, tc.form(t))

			params, err := v.Validate(r, launchURL, testKey, testSecret)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if params.PlacementID != "placement-abc" {
				t.Errorf("unexpected placement: %s", params.PlacementID)
			}
			if params.Email != "alice@example.edu" {
				t.Errorf("unexpected email: %s", params.Email)
			}
		})
	}
}

func TestValidateRejectsForeignConsumerKey(t *testing.T) {
	v := NewValidator(5 * time.Minute)
	r := requestWithForm(t, signedForm(t, map[string]string{"oauth_consumer_key": "someone-else"}))

	if _, err := v.Validate(r, launchURL, testKey, testSecret); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestIsInstructor(t *testing.T) {
	testCases := []struct {
		name     string
		roles    string
		expected bool
	}{
		{"learner", "Learner", false},
		{"plain instructor", "Instructor", true},
		{"urn form", "urn:lti:role:ims/lis/Instructor", true},
		{"mixed", "Learner,urn:lti:role:ims/lis/TeachingAssistant", true},
		{"administrator", "Administrator", true},
		{"empty", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := &LaunchParams{Roles: splitRoles(tc.roles)}
			if got := p.IsInstructor(); got != tc.expected {
				t.Errorf("IsInstructor() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

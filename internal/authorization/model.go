// Copyright 2026 LAMB Project
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"encoding/json"

	fga "github.com/openfga/go-sdk"
)

// authorizationModelJSON is the v0 model. An activity is owned by the
// instructor who configured it; organization admins can manage every activity
// linked into their organization.
const authorizationModelJSON = `{
  "schema_version": "1.1",
  "type_definitions": [
    {
      "type": "user"
    },
    {
      "type": "organization",
      "relations": {
        "admin": {"this": {}}
      },
      "metadata": {
        "relations": {
          "admin": {"directly_related_user_types": [{"type": "user"}]}
        }
      }
    },
    {
      "type": "activity",
      "relations": {
        "owner": {"this": {}},
        "organization": {"this": {}},
        "can_manage": {
          "union": {
            "child": [
              {"computedUserset": {"relation": "owner"}},
              {"tupleToUserset": {"tupleset": {"relation": "organization"}, "computedUserset": {"relation": "admin"}}}
            ]
          }
        }
      },
      "metadata": {
        "relations": {
          "owner": {"directly_related_user_types": [{"type": "user"}]},
          "organization": {"directly_related_user_types": [{"type": "organization"}]}
        }
      }
    }
  ]
}`

type AuthorizationModelProvider struct {
	version string
}

func (p *AuthorizationModelProvider) GetModel() *fga.WriteAuthorizationModelRequest {
	model := new(fga.WriteAuthorizationModelRequest)
	if err := json.Unmarshal([]byte(authorizationModelJSON), model); err != nil {
		panic(err)
	}
	return model
}

func NewAuthorizationModelProvider(version string) *AuthorizationModelProvider {
	p := new(AuthorizationModelProvider)
	p.version = version
	return p
}

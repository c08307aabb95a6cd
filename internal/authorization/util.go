// Copyright 2026 LAMB Project
// SPDX-License-Identifier: AGPL-3.0

package authorization

const (
	OWNER_RELATION        = "owner"
	ORGANIZATION_RELATION = "organization"
	ADMIN_RELATION        = "admin"

	CAN_MANAGE_PERMISSION = "can_manage"
)

func UserTuple(accountID string) string {
	return "user:" + accountID
}

func ActivityTuple(activityID string) string {
	return "activity:" + activityID
}

func OrganizationTuple(organizationID string) string {
	return "organization:" + organizationID
}

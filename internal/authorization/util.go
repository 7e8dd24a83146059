// Copyright 2025 ChurchOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

const (
	OWNER_RELATION  = "owner"
	MEMBER_RELATION = "member"

	CAN_VIEW_PERMISSION   = "can_view"
	CAN_EDIT_PERMISSION   = "can_edit"
	CAN_DELETE_PERMISSION = "can_delete"
)

func UserTuple(userId string) string {
	return "user:" + userId
}

func TenantTuple(tenantId string) string {
	return "tenant:" + tenantId
}

// Copyright 2026 ChurchOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Tenant is one isolated organization (a church, a parish, a charity).
type Tenant struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	Enabled   bool      `db:"enabled" json:"enabled"`
}

// Membership grants one identity access to one tenant. At most one
// membership per identity is flagged primary; the schema does not enforce
// that, the resolver picks the first primary it encounters.
type Membership struct {
	ID         string    `db:"id" json:"id"`
	TenantID   string    `db:"tenant_id" json:"tenant_id"`
	IdentityID string    `db:"identity_id" json:"identity_id"`
	Role       string    `db:"role" json:"role"`
	IsPrimary  bool      `db:"is_primary" json:"is_primary"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

type Role struct {
	ID        string    `db:"id"`
	TenantID  string    `db:"tenant_id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

// Navigation type partitions.
const (
	NavTypeMain   = "main"
	NavTypeFooter = "footer"
	NavTypeUser   = "user"
)

// NavigationEntry is one configurable menu node. ParentID is empty for
// top-level entries; nesting is one level deep in practice. Permission is
// the name an identity must hold for the entry to be visible, empty means
// visible to everyone.
type NavigationEntry struct {
	ID         string    `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	Href       string    `db:"href" json:"href"`
	Icon       string    `db:"icon" json:"icon,omitempty"`
	Permission string    `db:"permission" json:"permission,omitempty"`
	ParentID   string    `db:"parent_id" json:"parent_id,omitempty"`
	Position   int       `db:"position" json:"position"`
	NavType    string    `db:"nav_type" json:"nav_type"`
	Enabled    bool      `db:"enabled" json:"enabled"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// AssembledNode is one node of the pruned navigation tree handed to the
// presentation layer. Children is omitted from the JSON document when the
// filtered child list is empty.
type AssembledNode struct {
	Title    string           `json:"title"`
	Href     string           `json:"href"`
	Icon     string           `json:"icon,omitempty"`
	Children []*AssembledNode `json:"children,omitempty"`
}

// Session is one browser session. ActiveTenantID holds the session's
// tenant selection, empty when none is set.
type Session struct {
	Token          string    `db:"token"`
	IdentityID     string    `db:"identity_id"`
	ActiveTenantID string    `db:"active_tenant_id"`
	IP             string    `db:"ip"`
	UserAgent      string    `db:"user_agent"`
	CreatedAt      time.Time `db:"created_at"`
	ExpiresAt      time.Time `db:"expires_at"`
}

// TenantUser is the admin-facing view of one membership, email resolved
// through the identity provider.
type TenantUser struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

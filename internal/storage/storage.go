// Copyright 2025 ChurchOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/churchops/appcontext-service/internal/db"
	"github.com/churchops/appcontext-service/internal/logging"
	"github.com/churchops/appcontext-service/internal/monitoring"
	"github.com/churchops/appcontext-service/internal/tracing"
	"github.com/churchops/appcontext-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

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

func (s *Storage) CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenant")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate tenant ID: %w", err)
	}

	var newTenant types.Tenant
	err = s.db.Statement(ctx).
		Insert("tenants").
		Columns("id", "name", "enabled").
		Values(id.String(), t.Name, t.Enabled).
		Suffix("RETURNING id, name, created_at, enabled").
		QueryRowContext(ctx).
		Scan(&newTenant.ID, &newTenant.Name, &newTenant.CreatedAt, &newTenant.Enabled)

	if err != nil {
		return nil, fmt.Errorf("failed to insert tenant: %w", err)
	}

	return &newTenant, nil
}

func (s *Storage) GetTenantByID(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantByID")
	defer span.End()

	var t types.Tenant
	err := s.db.Statement(ctx).
		Select("id", "name", "created_at", "enabled").
		From("tenants").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&t.ID, &t.Name, &t.CreatedAt, &t.Enabled)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return &t, nil
}

func (s *Storage) ListTenants(ctx context.Context) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTenants")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "name", "created_at", "enabled").
		From("tenants").
		OrderBy("created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	defer rows.Close()

	var tenants []*types.Tenant
	for rows.Next() {
		var t types.Tenant
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt, &t.Enabled); err != nil {
			return nil, fmt.Errorf("failed to scan tenant: %w", err)
		}
		tenants = append(tenants, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tenant rows: %w", err)
	}

	return tenants, nil
}

// UpdateTenant follows PATCH semantics: only the fields named in paths are
// written.
func (s *Storage) UpdateTenant(ctx context.Context, tenant *types.Tenant, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateTenant")
	defer span.End()

	if len(paths) == 0 {
		return nil
	}

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "name":
			updateMap["name"] = tenant.Name
		case "enabled":
			updateMap["enabled"] = tenant.Enabled
		}
	}

	if len(updateMap) == 0 {
		return nil
	}

	_, err := s.db.Statement(ctx).
		Update("tenants").
		SetMap(updateMap).
		Where(sq.Eq{"id": tenant.ID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update tenant: %w", err)
	}

	return nil
}

func (s *Storage) DeleteTenant(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteTenant")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("tenants").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete tenant: %w", err)
	}
	return nil
}

func (s *Storage) SetTenantStatus(ctx context.Context, id string, enabled bool) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetTenantStatus")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("tenants").
		Set("enabled", enabled).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to set tenant status: %w", err)
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

func (s *Storage) AddMember(ctx context.Context, tenantID, identityID, role string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.AddMember")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate membership ID: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("memberships").
		Columns("id", "tenant_id", "identity_id", "role").
		Values(id.String(), tenantID, identityID, role).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return "", ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return "", ErrForeignKeyViolation
		}
		return "", fmt.Errorf("failed to add member: %w", err)
	}

	return id.String(), nil
}

func (s *Storage) UpdateMember(ctx context.Context, tenantID, identityID, role string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateMember")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("memberships").
		Set("role", role).
		Where(sq.Eq{
			"tenant_id":   tenantID,
			"identity_id": identityID,
		}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update member: %w", err)
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

func (s *Storage) RemoveMember(ctx context.Context, tenantID, identityID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.RemoveMember")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("memberships").
		Where(sq.Eq{
			"tenant_id":   tenantID,
			"identity_id": identityID,
		}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}
	return nil
}

// HasMembership reports whether the identity holds a membership in the
// tenant and the tenant is enabled.
func (s *Storage) HasMembership(ctx context.Context, identityID, tenantID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.HasMembership")
	defer span.End()

	var one int
	err := s.db.Statement(ctx).
		Select("1").
		From("memberships m").
		Join("tenants t ON t.id = m.tenant_id").
		Where(sq.Eq{
			"m.identity_id": identityID,
			"m.tenant_id":   tenantID,
			"t.enabled":     true,
		}).
		Limit(1).
		QueryRowContext(ctx).
		Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check membership: %w", err)
	}

	return true, nil
}

// ListMembershipsByIdentityID returns the identity's memberships in enabled
// tenants, primary first, then storage insertion order.
func (s *Storage) ListMembershipsByIdentityID(ctx context.Context, identityID string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembershipsByIdentityID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("m.id", "m.tenant_id", "m.identity_id", "m.role", "m.is_primary", "m.created_at").
		From("memberships m").
		Join("tenants t ON t.id = m.tenant_id").
		Where(sq.Eq{"m.identity_id": identityID, "t.enabled": true}).
		OrderBy("m.id").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	defer rows.Close()

	var memberships []*types.Membership
	for rows.Next() {
		var m types.Membership
		if err := rows.Scan(&m.ID, &m.TenantID, &m.IdentityID, &m.Role, &m.IsPrimary, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		memberships = append(memberships, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return memberships, nil
}

func (s *Storage) ListMembersByTenantID(ctx context.Context, tenantID string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembersByTenantID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "tenant_id", "identity_id", "role", "is_primary", "created_at").
		From("memberships").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("id").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*types.Membership
	for rows.Next() {
		var m types.Membership
		if err := rows.Scan(&m.ID, &m.TenantID, &m.IdentityID, &m.Role, &m.IsPrimary, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

func (s *Storage) ListActiveTenantsByIdentityID(ctx context.Context, identityID string) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListActiveTenantsByIdentityID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("t.id", "t.name", "t.created_at", "t.enabled").
		From("tenants t").
		Join("memberships m ON t.id = m.tenant_id").
		Where(sq.Eq{"m.identity_id": identityID, "t.enabled": true}).
		OrderBy("m.id").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	defer rows.Close()

	var tenants []*types.Tenant
	for rows.Next() {
		var t types.Tenant
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt, &t.Enabled); err != nil {
			return nil, fmt.Errorf("failed to scan tenant: %w", err)
		}
		tenants = append(tenants, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return tenants, nil
}

// SetPrimaryMembership marks the given membership primary and clears the
// flag on the identity's other memberships, in one transaction.
func (s *Storage) SetPrimaryMembership(ctx context.Context, identityID, tenantID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetPrimaryMembership")
	defer span.End()

	return s.db.WithTx(ctx, func(txCtx context.Context) error {
		_, err := s.db.Statement(txCtx).
			Update("memberships").
			Set("is_primary", false).
			Where(sq.Eq{"identity_id": identityID}).
			ExecContext(txCtx)
		if err != nil {
			return fmt.Errorf("failed to clear primary flags: %w", err)
		}

		res, err := s.db.Statement(txCtx).
			Update("memberships").
			Set("is_primary", true).
			Where(sq.Eq{
				"identity_id": identityID,
				"tenant_id":   tenantID,
			}).
			ExecContext(txCtx)
		if err != nil {
			return fmt.Errorf("failed to set primary flag: %w", err)
		}

		rows, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check rows affected: %w", err)
		}
		if rows == 0 {
			return ErrNotFound
		}

		return nil
	})
}

// ListPermissionsByIdentityID returns the distinct union of permission
// names granted by all roles assigned to the identity.
func (s *Storage) ListPermissionsByIdentityID(ctx context.Context, identityID string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPermissionsByIdentityID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("DISTINCT rp.permission").
		From("role_permissions rp").
		Join("identity_roles ir ON ir.role_id = rp.role_id").
		Where(sq.Eq{"ir.identity_id": identityID}).
		OrderBy("rp.permission").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list permissions: %w", err)
	}
	defer rows.Close()

	var permissions []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("failed to scan permission: %w", err)
		}
		permissions = append(permissions, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return permissions, nil
}

// ListNavigationEntriesByType returns all entries of one navigation type
// ordered by position, insertion order breaking ties. Disabled entries are
// included, callers serving end users filter them out.
func (s *Storage) ListNavigationEntriesByType(ctx context.Context, navType string) ([]*types.NavigationEntry, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListNavigationEntriesByType")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "name", "href", "icon", "permission", "parent_id", "position", "nav_type", "enabled", "created_at").
		From("navigation_entries").
		Where(sq.Eq{"nav_type": navType}).
		OrderBy("position", "id").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list navigation entries: %w", err)
	}
	defer rows.Close()

	var entries []*types.NavigationEntry
	for rows.Next() {
		e, err := scanNavigationEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return entries, nil
}

func (s *Storage) GetNavigationEntryByID(ctx context.Context, id string) (*types.NavigationEntry, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetNavigationEntryByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select("id", "name", "href", "icon", "permission", "parent_id", "position", "nav_type", "enabled", "created_at").
		From("navigation_entries").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	e, err := scanNavigationEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return e, nil
}

func (s *Storage) CreateNavigationEntry(ctx context.Context, e *types.NavigationEntry) (*types.NavigationEntry, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateNavigationEntry")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate navigation entry ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("navigation_entries").
		Columns("id", "name", "href", "icon", "permission", "parent_id", "position", "nav_type", "enabled").
		Values(id.String(), e.Name, e.Href, nullable(e.Icon), nullable(e.Permission), nullable(e.ParentID), e.Position, e.NavType, e.Enabled).
		Suffix("RETURNING id, name, href, icon, permission, parent_id, position, nav_type, enabled, created_at").
		QueryRowContext(ctx)

	created, err := scanNavigationEntry(row)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert navigation entry: %w", err)
	}

	return created, nil
}

func (s *Storage) UpdateNavigationEntry(ctx context.Context, e *types.NavigationEntry, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateNavigationEntry")
	defer span.End()

	if len(paths) == 0 {
		return nil
	}

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "name":
			updateMap["name"] = e.Name
		case "href":
			updateMap["href"] = e.Href
		case "icon":
			updateMap["icon"] = nullable(e.Icon)
		case "permission":
			updateMap["permission"] = nullable(e.Permission)
		case "parent_id":
			updateMap["parent_id"] = nullable(e.ParentID)
		case "position":
			updateMap["position"] = e.Position
		case "enabled":
			updateMap["enabled"] = e.Enabled
		}
	}

	if len(updateMap) == 0 {
		return nil
	}

	res, err := s.db.Statement(ctx).
		Update("navigation_entries").
		SetMap(updateMap).
		Where(sq.Eq{"id": e.ID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update navigation entry: %w", err)
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

func (s *Storage) DeleteNavigationEntry(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteNavigationEntry")
	defer span.End()

	// children cascade via parent_id
	_, err := s.db.Statement(ctx).
		Delete("navigation_entries").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete navigation entry: %w", err)
	}
	return nil
}

// SwapNavigationPositions exchanges the position values of two entries in
// one transaction. This is the administrative "reorder" operation, the
// assembler itself never writes.
func (s *Storage) SwapNavigationPositions(ctx context.Context, idA, idB string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SwapNavigationPositions")
	defer span.End()

	return s.db.WithTx(ctx, func(txCtx context.Context) error {
		a, err := s.GetNavigationEntryByID(txCtx, idA)
		if err != nil {
			return err
		}
		b, err := s.GetNavigationEntryByID(txCtx, idB)
		if err != nil {
			return err
		}

		if _, err := s.db.Statement(txCtx).
			Update("navigation_entries").
			Set("position", b.Position).
			Where(sq.Eq{"id": a.ID}).
			ExecContext(txCtx); err != nil {
			return fmt.Errorf("failed to update position: %w", err)
		}

		if _, err := s.db.Statement(txCtx).
			Update("navigation_entries").
			Set("position", a.Position).
			Where(sq.Eq{"id": b.ID}).
			ExecContext(txCtx); err != nil {
			return fmt.Errorf("failed to update position: %w", err)
		}

		return nil
	})
}

func (s *Storage) CreateSession(ctx context.Context, sess *types.Session) (*types.Session, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateSession")
	defer span.End()

	var created types.Session
	var activeTenant sql.NullString
	err := s.db.Statement(ctx).
		Insert("sessions").
		Columns("token", "identity_id", "ip", "user_agent", "expires_at").
		Values(sess.Token, sess.IdentityID, sess.IP, sess.UserAgent, sess.ExpiresAt).
		Suffix("RETURNING token, identity_id, active_tenant_id, ip, user_agent, created_at, expires_at").
		QueryRowContext(ctx).
		Scan(&created.Token, &created.IdentityID, &activeTenant, &created.IP, &created.UserAgent, &created.CreatedAt, &created.ExpiresAt)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert session: %w", err)
	}

	created.ActiveTenantID = activeTenant.String
	return &created, nil
}

func (s *Storage) GetSessionByToken(ctx context.Context, token string) (*types.Session, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetSessionByToken")
	defer span.End()

	var sess types.Session
	var activeTenant sql.NullString
	err := s.db.Statement(ctx).
		Select("token", "identity_id", "active_tenant_id", "ip", "user_agent", "created_at", "expires_at").
		From("sessions").
		Where(sq.Eq{"token": token}).
		Where(sq.Expr("expires_at > NOW()")).
		QueryRowContext(ctx).
		Scan(&sess.Token, &sess.IdentityID, &activeTenant, &sess.IP, &sess.UserAgent, &sess.CreatedAt, &sess.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	sess.ActiveTenantID = activeTenant.String
	return &sess, nil
}

func (s *Storage) SetSessionActiveTenant(ctx context.Context, token, tenantID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetSessionActiveTenant")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("sessions").
		Set("active_tenant_id", tenantID).
		Where(sq.Eq{"token": token}).
		ExecContext(ctx)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to set session tenant: %w", err)
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

func (s *Storage) ClearSessionActiveTenant(ctx context.Context, token string) error {
	ctx, span := s.tracer.Start(ctx, "storage.ClearSessionActiveTenant")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("sessions").
		Set("active_tenant_id", nil).
		Where(sq.Eq{"token": token}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear session tenant: %w", err)
	}
	return nil
}

func (s *Storage) DeleteSession(ctx context.Context, token string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteSession")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("sessions").
		Where(sq.Eq{"token": token}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (s *Storage) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteExpiredSessions")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("sessions").
		Where(sq.Expr("expires_at <= NOW()")).
		ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}

	return res.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanNavigationEntry(row rowScanner) (*types.NavigationEntry, error) {
	var e types.NavigationEntry
	var icon, permission, parentID sql.NullString

	if err := row.Scan(&e.ID, &e.Name, &e.Href, &icon, &permission, &parentID, &e.Position, &e.NavType, &e.Enabled, &e.CreatedAt); err != nil {
		return nil, err
	}

	e.Icon = icon.String
	e.Permission = permission.String
	e.ParentID = parentID.String
	return &e, nil
}

// nullable maps an empty string to SQL NULL.
func nullable(v string) interface{} {
	if v == "" {
		return nil
	}
	return v
}

// Copyright 2026 ChurchOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"

	"github.com/churchops/appcontext-service/internal/types"
)

type ServiceInterface interface {
	StartSession(ctx context.Context, identityID, ip, userAgent string) (*types.Session, error)
	GetSession(ctx context.Context, token string) (*types.Session, error)
	EndSession(ctx context.Context, token string) error
	SetActiveTenant(ctx context.Context, token, tenantID string) error
	ClearActiveTenant(ctx context.Context, token string) error
	PurgeExpired(ctx context.Context) (int64, error)
}

type StorageInterface interface {
	CreateSession(ctx context.Context, sess *types.Session) (*types.Session, error)
	GetSessionByToken(ctx context.Context, token string) (*types.Session, error)
	SetSessionActiveTenant(ctx context.Context, token, tenantID string) error
	ClearSessionActiveTenant(ctx context.Context, token string) error
	DeleteSession(ctx context.Context, token string) error
	DeleteExpiredSessions(ctx context.Context) (int64, error)
}

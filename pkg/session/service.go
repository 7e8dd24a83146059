// Copyright 2026 ChurchOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/churchops/appcontext-service/internal/logging"
	"github.com/churchops/appcontext-service/internal/monitoring"
	"github.com/churchops/appcontext-service/internal/tracing"
	"github.com/churchops/appcontext-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage  StorageInterface
	lifetime time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) StartSession(ctx context.Context, identityID, ip, userAgent string) (*types.Session, error) {
	ctx, span := s.tracer.Start(ctx, "session.Service.StartSession")
	defer span.End()

	token, err := newToken()
	if err != nil {
		return nil, err
	}

	return s.storage.CreateSession(ctx, &types.Session{
		Token:      token,
		IdentityID: identityID,
		IP:         ip,
		UserAgent:  userAgent,
		ExpiresAt:  time.Now().Add(s.lifetime),
	})
}

func (s *Service) GetSession(ctx context.Context, token string) (*types.Session, error) {
	ctx, span := s.tracer.Start(ctx, "session.Service.GetSession")
	defer span.End()

	return s.storage.GetSessionByToken(ctx, token)
}

func (s *Service) EndSession(ctx context.Context, token string) error {
	ctx, span := s.tracer.Start(ctx, "session.Service.EndSession")
	defer span.End()

	return s.storage.DeleteSession(ctx, token)
}

func (s *Service) SetActiveTenant(ctx context.Context, token, tenantID string) error {
	ctx, span := s.tracer.Start(ctx, "session.Service.SetActiveTenant")
	defer span.End()

	return s.storage.SetSessionActiveTenant(ctx, token, tenantID)
}

func (s *Service) ClearActiveTenant(ctx context.Context, token string) error {
	ctx, span := s.tracer.Start(ctx, "session.Service.ClearActiveTenant")
	defer span.End()

	return s.storage.ClearSessionActiveTenant(ctx, token)
}

func (s *Service) PurgeExpired(ctx context.Context) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "session.Service.PurgeExpired")
	defer span.End()

	return s.storage.DeleteExpiredSessions(ctx)
}

func newToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func NewService(storage StorageInterface, lifetime time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage
	s.lifetime = lifetime

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}

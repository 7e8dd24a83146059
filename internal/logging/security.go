// Copyright 2026 ChurchOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

// SecurityLogger emits structured security events. Every entry carries the
// `security_event` marker so downstream pipelines can filter on it.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("security_event", "system_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("security_event", "system_shutdown"))
}

func (s *SecurityLogger) AuthzFailure(subject, action string) {
	s.l.Warn("authorization failure",
		zap.String("security_event", "authz_failure"),
		zap.String("subject", subject),
		zap.String("action", action),
	)
}

func (s *SecurityLogger) TenantAccessDenied(subject, tenantID string) {
	s.l.Warn("tenant access denied",
		zap.String("security_event", "tenant_access_denied"),
		zap.String("subject", subject),
		zap.String("tenant_id", tenantID),
	)
}

func (s *SecurityLogger) SessionTenantCleared(subject, tenantID, reason string) {
	s.l.Info("session tenant selection cleared",
		zap.String("security_event", "session_tenant_cleared"),
		zap.String("subject", subject),
		zap.String("tenant_id", tenantID),
		zap.String("reason", reason),
	)
}

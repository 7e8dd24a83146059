// Copyright 2026 ChurchOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

type LoggerInterface interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
	Security() SecurityLoggerInterface
}

// SecurityLoggerInterface is a dedicated channel for security-relevant
// events so they can be routed and alerted on independently of
// application logs.
type SecurityLoggerInterface interface {
	SystemStartup()
	SystemShutdown()
	AuthzFailure(subject, action string)
	TenantAccessDenied(subject, tenantID string)
	SessionTenantCleared(subject, tenantID, reason string)
}

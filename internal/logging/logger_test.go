// Copyright 2026 ChurchOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"
)

func TestDebugLogger(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("DEBUG")
	}()
}

func TestInvalidLevel(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("invalid")
	}()
}

func TestNoopLoggerSecurityChannel(t *testing.T) {
	l := NewNoopLogger()
	l.Security().SystemStartup()
	l.Security().TenantAccessDenied("user-1", "tenant-1")
	l.Security().SessionTenantCleared("user-1", "tenant-1", "access_revoked")
}

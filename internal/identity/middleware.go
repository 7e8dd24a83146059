// Copyright 2026 ChurchOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"net/http"

	"github.com/churchops/appcontext-service/internal/logging"
	"github.com/churchops/appcontext-service/internal/monitoring"
	"github.com/churchops/appcontext-service/internal/tracing"
	"github.com/churchops/appcontext-service/pkg/authentication"
)

const (
	// HeaderName is the header used to pass the authenticated identity ID,
	// set by the identity-aware proxy in front of this service.
	HeaderName = "X-Kratos-Authenticated-Identity-Id"
)

type Middleware struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		if userID := r.Header.Get(HeaderName); userID != "" {
			ctx = authentication.WithUserID(ctx, userID)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

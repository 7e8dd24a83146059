// Copyright 2026 ChurchOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/churchops/appcontext-service/internal/db"
	"github.com/churchops/appcontext-service/internal/identity"
	"github.com/churchops/appcontext-service/internal/logging"
	"github.com/churchops/appcontext-service/internal/monitoring"
	"github.com/churchops/appcontext-service/internal/storage"
	"github.com/churchops/appcontext-service/internal/tracing"
	"github.com/churchops/appcontext-service/pkg/appcontext"
	"github.com/churchops/appcontext-service/pkg/authentication"
	"github.com/churchops/appcontext-service/pkg/metrics"
	"github.com/churchops/appcontext-service/pkg/navigation"
	"github.com/churchops/appcontext-service/pkg/resolver"
	"github.com/churchops/appcontext-service/pkg/session"
	"github.com/churchops/appcontext-service/pkg/status"
	"github.com/churchops/appcontext-service/pkg/tenant"
	"github.com/churchops/appcontext-service/pkg/webhooks"
)

// RouterConfig carries the request-path configuration the router needs,
// everything else arrives as constructed dependencies.
type RouterConfig struct {
	CookieName         string
	SessionLifetime    time.Duration
	InvitationLifetime string
	CORSAllowedOrigins []string
}

func NewRouter(
	cfg *RouterConfig,
	s storage.StorageInterface,
	dbClient db.DBClientInterface,
	authz tenant.AuthzInterface,
	kratosClient tenant.KratosClientInterface,
	verifier authentication.TokenVerifierInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	router.Use(
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(cfg.CORSAllowedOrigins),
	)

	sessionService := session.NewService(s, cfg.SessionLifetime, tracer, monitor, logger)
	resolverService := resolver.NewService(s, authz, tracer, monitor, logger)
	navigationService := navigation.NewService(s, tracer, monitor, logger)
	appcontextService := appcontext.NewService(resolverService, navigationService, s, tracer, monitor, logger)
	tenantService := tenant.NewService(s, authz, kratosClient, cfg.InvitationLifetime, tracer, monitor, logger)
	webhookService := webhooks.NewService(s, authz, tracer, monitor, logger)

	// Unprotected surfaces. The webhook endpoints are reachable by the
	// identity stack only, the ingress does not route them publicly.
	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	router.Group(func(r chi.Router) {
		r.Use(db.TransactionMiddleware(dbClient, logger))
		webhooks.NewAPI(webhookService, logger).RegisterEndpoints(r)
	})

	// End-user surface, authenticated by the identity header set by the
	// auth proxy, with a lazily created session cookie.
	router.Group(func(r chi.Router) {
		r.Use(
			identity.NewMiddleware(tracer, monitor, logger).HTTPMiddleware,
			session.NewMiddleware(sessionService, cfg.CookieName, cfg.SessionLifetime, tracer, monitor, logger).HTTPMiddleware,
			db.TransactionMiddleware(dbClient, logger),
		)

		appcontext.NewAPI(appcontextService, sessionService, logger).RegisterEndpoints(r)
		tenant.NewAPI(tenantService, logger).RegisterUserEndpoints(r)
	})

	// Administrative surface behind bearer token authentication.
	router.Group(func(r chi.Router) {
		r.Use(
			authentication.NewMiddleware(verifier, tracer, monitor, logger).Authenticate(),
			db.TransactionMiddleware(dbClient, logger),
		)

		tenant.NewAPI(tenantService, logger).RegisterEndpoints(r)
		navigation.NewAPI(navigationService, logger).RegisterEndpoints(r)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}

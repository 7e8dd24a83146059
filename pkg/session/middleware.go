// Copyright 2026 ChurchOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"net"
	"net/http"
	"time"

	"github.com/churchops/appcontext-service/internal/logging"
	"github.com/churchops/appcontext-service/internal/monitoring"
	"github.com/churchops/appcontext-service/internal/tracing"
	"github.com/churchops/appcontext-service/pkg/authentication"
)

type Middleware struct {
	svc        ServiceInterface
	cookieName string
	lifetime   time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// HTTPMiddleware attaches the request's session row to the context,
// creating one lazily on the first authenticated request. Anonymous
// requests pass through untouched.
func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "session.Middleware.HTTPMiddleware")
		defer span.End()

		userID, ok := authentication.GetUserID(ctx)
		if !ok || userID == "" {
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		if cookie, err := r.Cookie(m.cookieName); err == nil {
			sess, err := m.svc.GetSession(ctx, cookie.Value)
			if err == nil && sess.IdentityID == userID {
				next.ServeHTTP(w, r.WithContext(WithSession(ctx, sess)))
				return
			}
		}

		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		sess, err := m.svc.StartSession(ctx, userID, ip, r.UserAgent())
		if err != nil {
			m.logger.Errorf("failed to start session for %s: %s", userID, err)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     m.cookieName,
			Value:    sess.Token,
			Path:     "/",
			MaxAge:   int(m.lifetime.Seconds()),
			HttpOnly: true,
			Secure:   true,
			SameSite: http.SameSiteLaxMode,
		})

		next.ServeHTTP(w, r.WithContext(WithSession(ctx, sess)))
	})
}

func NewMiddleware(svc ServiceInterface, cookieName string, lifetime time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	m := new(Middleware)

	m.svc = svc
	m.cookieName = cookieName
	m.lifetime = lifetime

	m.tracer = tracer
	m.monitor = monitor
	m.logger = logger

	return m
}

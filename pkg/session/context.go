// Copyright 2026 ChurchOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"

	"github.com/churchops/appcontext-service/internal/types"
)

type contextKey struct{}

var sessionContextKey = contextKey{}

// WithSession returns a new context carrying the request's session row.
func WithSession(ctx context.Context, sess *types.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, sess)
}

// GetSession retrieves the session from the context.
func GetSession(ctx context.Context) (*types.Session, bool) {
	sess, ok := ctx.Value(sessionContextKey).(*types.Session)
	return sess, ok
}

// Copyright 2026 ChurchOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"

	"github.com/churchops/appcontext-service/pkg/resolver"
)

var _ resolver.SessionStateInterface = (*State)(nil)

// State exposes one session row's active tenant value to the resolver.
// It is request scoped, never shared across requests.
type State struct {
	token          string
	activeTenantID string

	svc ServiceInterface
}

func (s *State) ActiveTenantID() string {
	return s.activeTenantID
}

func (s *State) SetActiveTenant(ctx context.Context, tenantID string) error {
	if err := s.svc.SetActiveTenant(ctx, s.token, tenantID); err != nil {
		return err
	}
	s.activeTenantID = tenantID
	return nil
}

func (s *State) ClearActiveTenant(ctx context.Context) error {
	if err := s.svc.ClearActiveTenant(ctx, s.token); err != nil {
		return err
	}
	s.activeTenantID = ""
	return nil
}

func NewState(token, activeTenantID string, svc ServiceInterface) *State {
	s := new(State)

	s.token = token
	s.activeTenantID = activeTenantID
	s.svc = svc

	return s
}

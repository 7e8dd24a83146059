// Copyright 2025 ChurchOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"encoding/json"
	"fmt"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/language/pkg/go/transformer"
)

// v0 relationship model. Owners manage a tenant, members can view it.
const v0ModelDSL = `model
  schema 1.1

type user

type tenant
  relations
    define owner: [user]
    define member: [user] or owner
    define can_view: member
    define can_edit: owner
    define can_delete: owner
`

type AuthorizationModelProvider struct {
	version string
}

func (p *AuthorizationModelProvider) GetModel() *fga.AuthorizationModel {
	var dsl string
	switch p.version {
	case "v0":
		dsl = v0ModelDSL
	default:
		panic(fmt.Errorf("unknown authorization model version: %s", p.version))
	}

	modelJSON, err := transformer.TransformDSLToJSON(dsl)
	if err != nil {
		panic(fmt.Errorf("failed to transform authorization model DSL: %w", err))
	}

	model := new(fga.AuthorizationModel)
	if err := json.Unmarshal([]byte(modelJSON), model); err != nil {
		panic(fmt.Errorf("failed to parse authorization model: %w", err))
	}

	return model
}

func NewAuthorizationModelProvider(version string) *AuthorizationModelProvider {
	p := new(AuthorizationModelProvider)

	p.version = version

	return p
}

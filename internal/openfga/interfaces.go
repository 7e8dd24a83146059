// Copyright 2025 ChurchOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"context"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/go-sdk/client"
)

type OpenFGAClientInterface interface {
	ListObjects(context.Context, string, string, string) ([]string, error)
	Check(context.Context, string, string, string, ...Tuple) (bool, error)
	ReadModel(context.Context) (*fga.AuthorizationModel, error)
	CompareModel(context.Context, fga.AuthorizationModel) (bool, error)
	WriteModel(context.Context, *client.ClientWriteAuthorizationModelRequest) (string, error)
	ReadTuples(context.Context, string, string, string, string) (*client.ClientReadResponse, error)
	WriteTuple(context.Context, string, string, string) error
	DeleteTuple(context.Context, string, string, string) error
	DeleteTuples(context.Context, ...Tuple) error
	CreateStore(context.Context, string) (string, error)
	SetStoreID(context.Context, string)
}

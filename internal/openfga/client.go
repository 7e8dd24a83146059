// Copyright 2025 ChurchOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/go-sdk/client"
	"github.com/openfga/go-sdk/credentials"

	"github.com/churchops/appcontext-service/internal/logging"
	"github.com/churchops/appcontext-service/internal/monitoring"
	"github.com/churchops/appcontext-service/internal/tracing"
)

var _ OpenFGAClientInterface = (*Client)(nil)

// Tuple is a relationship triple in the authorization store.
type Tuple struct {
	User     string
	Relation string
	Object   string
}

func NewTuple(user, relation, object string) *Tuple {
	t := new(Tuple)

	t.User = user
	t.Relation = relation
	t.Object = object

	return t
}

type Client struct {
	c *client.OpenFgaClient

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (c *Client) ListObjects(ctx context.Context, user, relation, objectType string) ([]string, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.ListObjects")
	defer span.End()

	r, err := c.c.ListObjects(ctx).
		Body(client.ClientListObjectsRequest{
			User:     user,
			Relation: relation,
			Type:     objectType,
		}).
		Execute()
	if err != nil {
		c.logger.Errorf("issues performing list operation: %s", err)
		return nil, err
	}

	return r.GetObjects(), nil
}

func (c *Client) Check(ctx context.Context, user, relation, object string, contextualTuples ...Tuple) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.Check")
	defer span.End()

	r := client.ClientCheckRequest{
		User:     user,
		Relation: relation,
		Object:   object,
	}

	if len(contextualTuples) > 0 {
		cts := make([]client.ClientContextualTupleKey, 0, len(contextualTuples))
		for _, t := range contextualTuples {
			cts = append(cts, client.ClientContextualTupleKey{
				User:     t.User,
				Relation: t.Relation,
				Object:   t.Object,
			})
		}
		r.ContextualTuples = cts
	}

	check, err := c.c.Check(ctx).Body(r).Execute()
	if err != nil {
		c.logger.Errorf("issues performing check operation: %s", err)
		return false, err
	}

	return check.GetAllowed(), nil
}

func (c *Client) ReadModel(ctx context.Context) (*fga.AuthorizationModel, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.ReadModel")
	defer span.End()

	r, err := c.c.ReadAuthorizationModel(ctx).Execute()
	if err != nil {
		c.logger.Errorf("issues reading authorization model: %s", err)
		return nil, err
	}

	model := r.GetAuthorizationModel()
	return &model, nil
}

// CompareModel reports whether the deployed model matches the given one.
// Model IDs differ between deployments so only schema version and type
// definitions are compared.
func (c *Client) CompareModel(ctx context.Context, model fga.AuthorizationModel) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.CompareModel")
	defer span.End()

	readModel, err := c.ReadModel(ctx)
	if err != nil {
		return false, err
	}

	if readModel.GetSchemaVersion() != model.GetSchemaVersion() {
		return false, nil
	}

	current, err := json.Marshal(readModel.GetTypeDefinitions())
	if err != nil {
		return false, fmt.Errorf("failed to serialize deployed model: %w", err)
	}
	expected, err := json.Marshal(model.GetTypeDefinitions())
	if err != nil {
		return false, fmt.Errorf("failed to serialize expected model: %w", err)
	}

	return bytes.Equal(current, expected), nil
}

func (c *Client) WriteModel(ctx context.Context, model *client.ClientWriteAuthorizationModelRequest) (string, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.WriteModel")
	defer span.End()

	r, err := c.c.WriteAuthorizationModel(ctx).Body(*model).Execute()
	if err != nil {
		c.logger.Errorf("issues writing authorization model: %s", err)
		return "", err
	}

	return r.GetAuthorizationModelId(), nil
}

func (c *Client) ReadTuples(ctx context.Context, user, relation, object, continuationToken string) (*client.ClientReadResponse, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.ReadTuples")
	defer span.End()

	r := client.ClientReadRequest{}
	if user != "" {
		r.User = &user
	}
	if relation != "" {
		r.Relation = &relation
	}
	if object != "" {
		r.Object = &object
	}

	opts := client.ClientReadOptions{}
	if continuationToken != "" {
		opts.ContinuationToken = &continuationToken
	}

	res, err := c.c.Read(ctx).Body(r).Options(opts).Execute()
	if err != nil {
		c.logger.Errorf("issues reading tuples: %s", err)
		return nil, err
	}

	return res, nil
}

func (c *Client) WriteTuple(ctx context.Context, user, relation, object string) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.WriteTuple")
	defer span.End()

	_, err := c.c.WriteTuples(ctx).
		Body([]client.ClientTupleKey{
			{User: user, Relation: relation, Object: object},
		}).
		Execute()
	if err != nil {
		c.logger.Errorf("issues writing tuple: %s", err)
	}

	return err
}

func (c *Client) DeleteTuple(ctx context.Context, user, relation, object string) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.DeleteTuple")
	defer span.End()

	_, err := c.c.DeleteTuples(ctx).
		Body([]client.ClientTupleKeyWithoutCondition{
			{User: user, Relation: relation, Object: object},
		}).
		Execute()
	if err != nil {
		c.logger.Errorf("issues deleting tuple: %s", err)
	}

	return err
}

func (c *Client) DeleteTuples(ctx context.Context, tuples ...Tuple) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.DeleteTuples")
	defer span.End()

	ts := make([]client.ClientTupleKeyWithoutCondition, 0, len(tuples))
	for _, t := range tuples {
		ts = append(ts, client.ClientTupleKeyWithoutCondition{
			User:     t.User,
			Relation: t.Relation,
			Object:   t.Object,
		})
	}

	_, err := c.c.DeleteTuples(ctx).Body(ts).Execute()
	if err != nil {
		c.logger.Errorf("issues deleting tuples: %s", err)
	}

	return err
}

func (c *Client) CreateStore(ctx context.Context, name string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.CreateStore")
	defer span.End()

	r, err := c.c.CreateStore(ctx).
		Body(client.ClientCreateStoreRequest{Name: name}).
		Execute()
	if err != nil {
		c.logger.Errorf("issues creating store: %s", err)
		return "", err
	}

	return r.GetId(), nil
}

func (c *Client) SetStoreID(ctx context.Context, storeID string) {
	_, span := c.tracer.Start(ctx, "openfga.Client.SetStoreID")
	defer span.End()

	if err := c.c.SetStoreId(storeID); err != nil {
		c.logger.Errorf("issues setting store ID: %s", err)
	}
}

func NewClient(cfg *Config) *Client {
	c := new(Client)

	if cfg == nil {
		panic("OpenFGA config missing")
	}

	fgaClient, err := client.NewSdkClient(&client.ClientConfiguration{
		ApiScheme:            cfg.ApiScheme,
		ApiHost:              cfg.ApiHost,
		StoreId:              cfg.StoreID,
		AuthorizationModelId: cfg.AuthModelID,
		Credentials: &credentials.Credentials{
			Method: credentials.CredentialsMethodApiToken,
			Config: &credentials.Config{
				ApiToken: cfg.ApiToken,
			},
		},
		Debug: cfg.Debug,
	})
	if err != nil {
		panic(fmt.Errorf("issues setting up OpenFGA client: %w", err))
	}

	c.c = fgaClient

	c.tracer = cfg.Tracer
	c.monitor = cfg.Monitor
	c.logger = cfg.Logger

	return c
}

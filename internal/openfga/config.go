// Copyright 2025 ChurchOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"github.com/churchops/appcontext-service/internal/logging"
	"github.com/churchops/appcontext-service/internal/monitoring"
	"github.com/churchops/appcontext-service/internal/tracing"
)

type Config struct {
	ApiScheme   string `validate:"required"`
	ApiHost     string `validate:"required"`
	StoreID     string `validate:"required"`
	ApiToken    string `validate:"required"`
	AuthModelID string
	Debug       bool

	Tracer  tracing.TracingInterface   `validate:"required"`
	Monitor monitoring.MonitorInterface `validate:"required"`
	Logger  logging.LoggerInterface    `validate:"required"`
}

func NewConfig(apiScheme, apiHost, storeID, apiToken, authModelID string, debug bool, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Config {
	c := new(Config)

	c.ApiScheme = apiScheme
	c.ApiHost = apiHost
	c.StoreID = storeID
	c.ApiToken = apiToken
	c.AuthModelID = authModelID
	c.Debug = debug

	c.Tracer = tracer
	c.Monitor = monitor
	c.Logger = logger

	return c
}

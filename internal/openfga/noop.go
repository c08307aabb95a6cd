// Copyright 2026 LAMB Project
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"context"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/go-sdk/client"

	"github.com/Lamb-Project/lamb-sub010/internal/logging"
	"github.com/Lamb-Project/lamb-sub010/internal/monitoring"
	"github.com/Lamb-Project/lamb-sub010/internal/tracing"
)

// NoopClient allows every operation; used when authorization is disabled.
type NoopClient struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (c *NoopClient) Check(context.Context, string, string, string, ...Tuple) (bool, error) {
	return true, nil
}

func (c *NoopClient) ListObjects(context.Context, string, string, string) ([]string, error) {
	return nil, nil
}

func (c *NoopClient) WriteTuple(context.Context, string, string, string) error { return nil }

func (c *NoopClient) DeleteTuple(context.Context, string, string, string) error { return nil }

func (c *NoopClient) DeleteTuples(context.Context, ...Tuple) error { return nil }

func (c *NoopClient) ReadTuples(context.Context, string, string, string, string) (*client.ClientReadResponse, error) {
	return &client.ClientReadResponse{}, nil
}

func (c *NoopClient) WriteModel(context.Context, fga.WriteAuthorizationModelRequest) (string, error) {
	return "", nil
}

func (c *NoopClient) CompareModel(context.Context, fga.WriteAuthorizationModelRequest) (bool, error) {
	return true, nil
}

func (c *NoopClient) ReadModel(context.Context) (*fga.AuthorizationModel, error) {
	return &fga.AuthorizationModel{}, nil
}

func (c *NoopClient) CreateStore(context.Context, string) (string, error) { return "", nil }

func NewNoopClient(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *NoopClient {
	c := new(NoopClient)

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}

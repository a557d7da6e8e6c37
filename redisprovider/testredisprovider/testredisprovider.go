// Package testredisprovider provides an in-memory redis for component tests.
package testredisprovider

import (
	"context"

	"github.com/alicebob/miniredis/v2"
	"github.com/anyproto/any-sync/app"
	"github.com/redis/go-redis/v9"

	"github.com/talkdeck/talkdeck-push-server/redisprovider"
)

func NewTestRedisProvider() *TestRedisProvider {
	return new(TestRedisProvider)
}

type TestRedisProvider struct {
	server *miniredis.Miniredis
	client *redis.Client
}

func (t *TestRedisProvider) Init(a *app.App) (err error) {
	if t.server, err = miniredis.Run(); err != nil {
		return
	}
	t.client = redis.NewClient(&redis.Options{Addr: t.server.Addr()})
	return
}

func (t *TestRedisProvider) Name() (name string) {
	return redisprovider.CName
}

func (t *TestRedisProvider) Run(ctx context.Context) error {
	return nil
}

func (t *TestRedisProvider) Redis() redis.UniversalClient {
	return t.client
}

// Server exposes the underlying miniredis, e.g. to move its clock.
func (t *TestRedisProvider) Server() *miniredis.Miniredis {
	return t.server
}

func (t *TestRedisProvider) Close(ctx context.Context) (err error) {
	_ = t.client.Close()
	t.server.Close()
	return
}

package redisprovider

import (
	"context"

	"github.com/anyproto/any-sync/app"
	"github.com/redis/go-redis/v9"
)

const CName = "push.redisprovider"

type Config struct {
	Addrs    []string `yaml:"addrs"`
	Password string   `yaml:"password"`
	DB       int      `yaml:"db"`
}

type configSource interface {
	GetRedis() Config
}

func New() RedisProvider {
	return new(redisProvider)
}

type RedisProvider interface {
	Redis() redis.UniversalClient
	app.ComponentRunnable
}

type redisProvider struct {
	client redis.UniversalClient
}

func (r *redisProvider) Init(a *app.App) (err error) {
	conf := a.MustComponent("config").(configSource).GetRedis()
	r.client = redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:    conf.Addrs,
		Password: conf.Password,
		DB:       conf.DB,
	})
	return
}

func (r *redisProvider) Name() (name string) {
	return CName
}

func (r *redisProvider) Run(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *redisProvider) Redis() redis.UniversalClient {
	return r.client
}

func (r *redisProvider) Close(ctx context.Context) (err error) {
	return r.client.Close()
}

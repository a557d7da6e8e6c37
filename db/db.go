package db

import (
	"context"
	"time"

	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/app/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const CName = "push.db"

var log = logger.NewNamed(CName)

type Mongo struct {
	Connect  string `yaml:"connect"`
	Database string `yaml:"database"`
}

type configSource interface {
	GetMongo() Mongo
}

func New() Database {
	return new(database)
}

type Database interface {
	Db() *mongo.Database
	app.ComponentRunnable
}

type database struct {
	client *mongo.Client
	db     *mongo.Database
}

func (d *database) Init(a *app.App) (err error) {
	conf := a.MustComponent("config").(configSource).GetMongo()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if d.client, err = mongo.Connect(ctx, options.Client().ApplyURI(conf.Connect)); err != nil {
		return
	}
	d.db = d.client.Database(conf.Database)
	log.Info("mongo connected", zap.String("database", conf.Database))
	return
}

func (d *database) Name() (name string) {
	return CName
}

func (d *database) Run(ctx context.Context) error {
	return d.client.Ping(ctx, nil)
}

func (d *database) Db() *mongo.Database {
	return d.db
}

func (d *database) Close(ctx context.Context) (err error) {
	if d.client != nil {
		return d.client.Disconnect(ctx)
	}
	return
}

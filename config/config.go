package config

import (
	"os"
	"time"

	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/app/logger"
	"github.com/anyproto/any-sync/metric"
	"gopkg.in/yaml.v3"

	"github.com/talkdeck/talkdeck-push-server/api"
	"github.com/talkdeck/talkdeck-push-server/categorywatch"
	"github.com/talkdeck/talkdeck-push-server/db"
	"github.com/talkdeck/talkdeck-push-server/firebaseprovider"
	"github.com/talkdeck/talkdeck-push-server/gateway/fcm"
	"github.com/talkdeck/talkdeck-push-server/redisprovider"
	"github.com/talkdeck/talkdeck-push-server/repo/dispatchlog"
	"github.com/talkdeck/talkdeck-push-server/scheduler"
)

const CName = "config"

func NewFromFile(path string) (c *Config, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (c *Config, err error) {
	c = &Config{}
	if err = yaml.Unmarshal(data, c); err != nil {
		return nil, err
	}
	c.setDefaults()
	return
}

type Config struct {
	Log           logger.Config           `yaml:"log"`
	Metric        metric.Config           `yaml:"metric"`
	Mongo         db.Mongo                `yaml:"mongo"`
	Redis         redisprovider.Config    `yaml:"redis"`
	Firebase      firebaseprovider.Config `yaml:"firebase"`
	FCM           fcm.Config              `yaml:"fcm"`
	Api           api.Config              `yaml:"api"`
	Schedule      scheduler.Config        `yaml:"schedule"`
	CategoryWatch categorywatch.Config    `yaml:"categoryWatch"`
	DispatchLog   dispatchlog.Config      `yaml:"dispatchLog"`
}

func (c *Config) setDefaults() {
	if c.Api.ListenAddr == "" {
		c.Api.ListenAddr = ":8080"
	}
	if c.Schedule.Timezone == "" {
		c.Schedule.Timezone = "UTC"
	}
	if c.Schedule.Timeout == 0 {
		c.Schedule.Timeout = 30 * time.Second
	}
	if c.CategoryWatch.Source == "" {
		c.CategoryWatch.Source = categorywatch.SourceMongo
	}
	if c.CategoryWatch.Collection == "" {
		c.CategoryWatch.Collection = "categories"
	}
}

func (c *Config) Init(a *app.App) (err error) {
	return nil
}

func (c *Config) Name() (name string) {
	return CName
}

func (c *Config) GetMetric() metric.Config {
	return c.Metric
}

func (c *Config) GetMongo() db.Mongo {
	return c.Mongo
}

func (c *Config) GetRedis() redisprovider.Config {
	return c.Redis
}

func (c *Config) GetFirebase() firebaseprovider.Config {
	return c.Firebase
}

func (c *Config) GetFCM() fcm.Config {
	return c.FCM
}

func (c *Config) GetApi() api.Config {
	return c.Api
}

func (c *Config) GetSchedule() scheduler.Config {
	return c.Schedule
}

func (c *Config) GetCategoryWatch() categorywatch.Config {
	return c.CategoryWatch
}

func (c *Config) GetDispatchLog() dispatchlog.Config {
	return c.DispatchLog
}

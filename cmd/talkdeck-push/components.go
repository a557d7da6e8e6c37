package main

import (
	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/metric"

	"github.com/talkdeck/talkdeck-push-server/api"
	"github.com/talkdeck/talkdeck-push-server/categorywatch"
	"github.com/talkdeck/talkdeck-push-server/config"
	"github.com/talkdeck/talkdeck-push-server/db"
	"github.com/talkdeck/talkdeck-push-server/dispatcher"
	"github.com/talkdeck/talkdeck-push-server/firebaseprovider"
	"github.com/talkdeck/talkdeck-push-server/gateway/fcm"
	"github.com/talkdeck/talkdeck-push-server/queue"
	"github.com/talkdeck/talkdeck-push-server/redisprovider"
	"github.com/talkdeck/talkdeck-push-server/repo/categoryrepo"
	"github.com/talkdeck/talkdeck-push-server/repo/dispatchlog"
	"github.com/talkdeck/talkdeck-push-server/scheduler"
)

func needsMongo(conf *config.Config) bool {
	return conf.DispatchLog.Enabled || conf.CategoryWatch.Source == categorywatch.SourceMongo
}

func needsRedis(conf *config.Config) bool {
	return conf.CategoryWatch.Source != categorywatch.SourceNone || conf.Schedule.LockTTL > 0
}

// serverComponents lists everything the serve command runs, in init order.
func serverComponents(conf *config.Config) (components []app.Component) {
	components = append(components, conf, metric.New())
	if needsMongo(conf) {
		components = append(components, db.New())
	}
	if needsRedis(conf) {
		components = append(components, redisprovider.New())
	}
	components = append(components, firebaseprovider.New(), fcm.New())
	if conf.DispatchLog.Enabled {
		components = append(components, dispatchlog.New())
	}
	components = append(components, dispatcher.New())
	if conf.CategoryWatch.Source != categorywatch.SourceNone {
		if conf.CategoryWatch.Source == categorywatch.SourceMongo {
			components = append(components, categoryrepo.New())
		}
		components = append(components, queue.New(), categorywatch.New())
	}
	components = append(components, scheduler.New(), api.New())
	return
}

func newApp(components ...app.Component) *app.App {
	a := new(app.App)
	a.SetVersionName(version)
	for _, c := range components {
		a.Register(c)
	}
	return a
}

// Package categorywatch turns category creation in the data store into new-category alerts.
//
// A source (mongo change stream or firestore snapshot listener) publishes every
// created category on the event queue, and a queue consumer dispatches the alert.
package categorywatch

import (
	"context"
	"errors"
	"time"

	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/app/logger"
	"go.uber.org/zap"

	"github.com/talkdeck/talkdeck-push-server/dispatcher"
	"github.com/talkdeck/talkdeck-push-server/domain"
	"github.com/talkdeck/talkdeck-push-server/firebaseprovider"
	"github.com/talkdeck/talkdeck-push-server/queue"
	"github.com/talkdeck/talkdeck-push-server/repo/categoryrepo"
)

const CName = "push.categorywatch"

var log = logger.NewNamed(CName)

var ErrMalformedEvent = errors.New("malformed category event")

type Source string

const (
	SourceMongo     Source = "mongo"
	SourceFirestore Source = "firestore"
	SourceNone      Source = "none"
)

type Config struct {
	Source Source `yaml:"source"`
	// Collection is the firestore collection holding categories.
	Collection string `yaml:"collection"`
}

type configSource interface {
	GetCategoryWatch() Config
}

const (
	dispatchTimeout     = 30 * time.Second
	defaultRestartDelay = 5 * time.Second
)

func New() CategoryWatch {
	return &categoryWatch{restartDelay: defaultRestartDelay}
}

type CategoryWatch interface {
	app.ComponentRunnable
}

type watchFunc func(ctx context.Context, onCreate func(category domain.Category)) error

type categoryWatch struct {
	queue        queue.Queue
	dispatcher   dispatcher.Dispatcher
	watch        watchFunc
	restartDelay time.Duration
	runCtx       context.Context
	runCtxCancel context.CancelFunc
	watchDone    chan struct{}
}

func (w *categoryWatch) Init(a *app.App) (err error) {
	conf := a.MustComponent("config").(configSource).GetCategoryWatch()
	w.queue = a.MustComponent(queue.CName).(queue.Queue)
	w.dispatcher = a.MustComponent(dispatcher.CName).(dispatcher.Dispatcher)
	switch conf.Source {
	case SourceMongo:
		w.watch = a.MustComponent(categoryrepo.CName).(categoryrepo.CategoryRepo).Watch
	case SourceFirestore:
		fbApp := a.MustComponent(firebaseprovider.CName).(firebaseprovider.FirebaseProvider).App()
		w.watch = firestoreWatcher(fbApp, conf.Collection)
	case SourceNone, "":
	default:
		return errors.New("unexpected category watch source: " + string(conf.Source))
	}
	w.runCtx, w.runCtxCancel = context.WithCancel(context.Background())
	return
}

func (w *categoryWatch) Name() (name string) {
	return CName
}

func (w *categoryWatch) Run(ctx context.Context) (err error) {
	if err = w.queue.Consume(w.runCtx, w.handle); err != nil {
		return
	}
	if w.watch != nil {
		w.watchDone = make(chan struct{})
		go w.watchLoop()
	}
	return
}

func (w *categoryWatch) handle(ev queue.Event) error {
	if ev.Category.Id == "" || ev.Category.Name == "" {
		log.Warn("malformed category event", zap.String("eventId", ev.Id))
		return ErrMalformedEvent
	}
	ctx, cancel := context.WithTimeout(w.runCtx, dispatchTimeout)
	defer cancel()
	w.dispatcher.NewCategory(ctx, ev.Category)
	return nil
}

func (w *categoryWatch) publish(category domain.Category) {
	ev := queue.NewEvent(category)
	if err := w.queue.Add(w.runCtx, ev); err != nil {
		log.Error("publish category event error", zap.String("categoryId", category.Id), zap.Error(err))
		return
	}
	log.Info("category created", zap.String("categoryId", category.Id), zap.String("eventId", ev.Id))
}

func (w *categoryWatch) watchLoop() {
	defer close(w.watchDone)
	for {
		err := w.watch(w.runCtx, w.publish)
		if w.runCtx.Err() != nil {
			return
		}
		log.Warn("category watch stopped, restarting", zap.Error(err), zap.Duration("delay", w.restartDelay))
		select {
		case <-w.runCtx.Done():
			return
		case <-time.After(w.restartDelay):
		}
	}
}

func (w *categoryWatch) Close(ctx context.Context) (err error) {
	if w.runCtxCancel != nil {
		w.runCtxCancel()
	}
	if w.watchDone != nil {
		select {
		case <-w.watchDone:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return
}

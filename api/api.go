package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/app/logger"
	"github.com/anyproto/any-sync/metric"
	"go.uber.org/zap"

	"github.com/talkdeck/talkdeck-push-server/dispatcher"
)

const CName = "push.api"

var log = logger.NewNamed(CName)

type Config struct {
	ListenAddr string `yaml:"listenAddr"`
	// Token, when set, is required as a bearer token on every call.
	Token string `yaml:"token"`
}

type configSource interface {
	GetApi() Config
}

func New() Api {
	return new(api)
}

type Api interface {
	Handler() http.Handler
	app.ComponentRunnable
}

type api struct {
	conf    Config
	handler *handler
	srv     *http.Server
}

func (s *api) Init(a *app.App) (err error) {
	s.conf = a.MustComponent("config").(configSource).GetApi()
	s.handler = &handler{
		dispatcher: a.MustComponent(dispatcher.CName).(dispatcher.Dispatcher),
		metric:     a.MustComponent(metric.CName).(metric.Metric),
		token:      s.conf.Token,
	}
	return
}

func (s *api) Name() (name string) {
	return CName
}

func (s *api) Run(ctx context.Context) (err error) {
	lis, err := net.Listen("tcp", s.conf.ListenAddr)
	if err != nil {
		return err
	}
	s.srv = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := s.srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("api server error", zap.Error(err))
		}
	}()
	log.Info("api is listening", zap.String("addr", lis.Addr().String()))
	return
}

func (s *api) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	mux.Handle("POST /v1/notifications/custom", s.handler.auth(s.handler.SendCustom))
	mux.Handle("POST /v1/notifications/device", s.handler.auth(s.handler.SendToDevice))
	mux.Handle("POST /v1/notifications/quick-question", s.handler.auth(s.handler.QuickQuestion))
	mux.Handle("POST /v1/topics/subscribe", s.handler.auth(s.handler.Subscribe))
	mux.Handle("POST /v1/topics/unsubscribe", s.handler.auth(s.handler.Unsubscribe))
	return mux
}

func (s *api) Close(ctx context.Context) (err error) {
	if s.srv != nil {
		return s.srv.Shutdown(ctx)
	}
	return
}

//go:generate mockgen -destination mock_dispatcher/mock_dispatcher.go github.com/talkdeck/talkdeck-push-server/dispatcher Dispatcher

package dispatcher

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/app/logger"
	"github.com/anyproto/any-sync/metric"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/talkdeck/talkdeck-push-server/domain"
	"github.com/talkdeck/talkdeck-push-server/gateway"
	"github.com/talkdeck/talkdeck-push-server/repo/dispatchlog"
)

const CName = "push.dispatcher"

var log = logger.NewNamed(CName)

func New() Dispatcher {
	return &dispatcher{
		now:  time.Now,
		pick: rand.IntN,
	}
}

// Dispatcher builds one message per trigger and hands it to the gateway.
//
// Trigger-fired methods (schedule and data events) never return an error: a
// gateway failure is logged and the trigger completes normally. Caller-invoked
// methods validate the request first and report gateway failures as domain.ErrInternal.
// Nothing is retried.
type Dispatcher interface {
	DailyReminder(ctx context.Context)
	WeeklyHighlight(ctx context.Context)
	NewCategory(ctx context.Context, category domain.Category)
	QuickQuestion(ctx context.Context)

	QuickQuestionNow(ctx context.Context) (Result, error)
	SendCustom(ctx context.Context, req CustomRequest) (Result, error)
	SendToDevice(ctx context.Context, req DeviceRequest) (Result, error)
	Subscribe(ctx context.Context, req TopicRequest) (TopicResult, error)
	Unsubscribe(ctx context.Context, req TopicRequest) (TopicResult, error)

	app.Component
}

type dispatcher struct {
	gateway     gateway.Gateway
	dispatchLog dispatchlog.DispatchLog
	metrics     metrics
	now         func() time.Time
	pick        func(n int) int
}

func (d *dispatcher) Init(a *app.App) (err error) {
	d.gateway = a.MustComponent(gateway.CName).(gateway.Gateway)
	if c := a.Component(dispatchlog.CName); c != nil {
		d.dispatchLog = c.(dispatchlog.DispatchLog)
	}
	if c := a.Component(metric.CName); c != nil {
		registerMetrics(c.(metric.Metric).Registry(), d)
	}
	return
}

func (d *dispatcher) Name() (name string) {
	return CName
}

func (d *dispatcher) DailyReminder(ctx context.Context) {
	d.fire(ctx, d.dailyReminderMessage())
}

func (d *dispatcher) WeeklyHighlight(ctx context.Context) {
	d.fire(ctx, d.weeklyHighlightMessage())
}

func (d *dispatcher) NewCategory(ctx context.Context, category domain.Category) {
	d.fire(ctx, d.newCategoryMessage(category))
}

func (d *dispatcher) QuickQuestion(ctx context.Context) {
	d.fire(ctx, d.quickQuestionMessage(false))
}

func (d *dispatcher) QuickQuestionNow(ctx context.Context) (Result, error) {
	return d.call(ctx, d.quickQuestionMessage(true))
}

func (d *dispatcher) SendCustom(ctx context.Context, req CustomRequest) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}
	return d.call(ctx, d.customMessage(req))
}

func (d *dispatcher) SendToDevice(ctx context.Context, req DeviceRequest) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}
	return d.call(ctx, d.deviceMessage(req))
}

func (d *dispatcher) Subscribe(ctx context.Context, req TopicRequest) (TopicResult, error) {
	if err := req.Validate(); err != nil {
		return TopicResult{}, err
	}
	resp, err := d.gateway.SubscribeToTopic(ctx, req.Topic, req.Token)
	if err != nil {
		log.Warn("subscribe to topic failed", zap.String("topic", req.Topic.String()), zap.Error(err))
		return TopicResult{}, fmt.Errorf("%w: %v", domain.ErrInternal, err)
	}
	return TopicResult{Success: true, Response: resp}, nil
}

func (d *dispatcher) Unsubscribe(ctx context.Context, req TopicRequest) (TopicResult, error) {
	if err := req.Validate(); err != nil {
		return TopicResult{}, err
	}
	resp, err := d.gateway.UnsubscribeFromTopic(ctx, req.Topic, req.Token)
	if err != nil {
		log.Warn("unsubscribe from topic failed", zap.String("topic", req.Topic.String()), zap.Error(err))
		return TopicResult{}, fmt.Errorf("%w: %v", domain.ErrInternal, err)
	}
	return TopicResult{Success: true, Response: resp}, nil
}

// fire sends a trigger message, a failure is logged and swallowed.
func (d *dispatcher) fire(ctx context.Context, msg domain.PushMessage) {
	messageId, err := d.send(ctx, msg)
	if err != nil {
		log.Error("push dispatch failed",
			zap.String("type", string(msg.Type())),
			zap.String("target", msg.Target.String()),
			zap.Error(err),
		)
		return
	}
	log.Info("push dispatched",
		zap.String("type", string(msg.Type())),
		zap.String("target", msg.Target.String()),
		zap.String("messageId", messageId),
	)
}

func (d *dispatcher) call(ctx context.Context, msg domain.PushMessage) (Result, error) {
	messageId, err := d.send(ctx, msg)
	if err != nil {
		log.Warn("push send failed",
			zap.String("type", string(msg.Type())),
			zap.String("target", msg.Target.String()),
			zap.Error(err),
		)
		return Result{}, fmt.Errorf("%w: %v", domain.ErrInternal, err)
	}
	return Result{Success: true, MessageId: messageId}, nil
}

func (d *dispatcher) send(ctx context.Context, msg domain.PushMessage) (messageId string, err error) {
	if err = msg.Validate(); err != nil {
		return
	}
	st := time.Now()
	messageId, err = d.gateway.Send(ctx, msg)
	d.metrics.observe(msg.Type(), time.Since(st), err)
	d.record(msg, messageId, err)
	return
}

func (d *dispatcher) record(msg domain.PushMessage, messageId string, err error) {
	if d.dispatchLog == nil {
		return
	}
	rec := domain.DispatchRecord{
		Id:        uuid.NewString(),
		Type:      msg.Type(),
		Topic:     msg.Target.Topic,
		Token:     msg.Target.Token,
		MessageId: messageId,
		Created:   d.now().Unix(),
	}
	if err != nil {
		rec.Error = err.Error()
	}
	d.dispatchLog.Add(rec)
}

//go:generate mockgen -destination mock_queue/mock_queue.go github.com/talkdeck/talkdeck-push-server/queue Queue

package queue

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/adjust/rmq/v5"
	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/app/logger"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/talkdeck/talkdeck-push-server/domain"
	"github.com/talkdeck/talkdeck-push-server/redisprovider"
)

const CName = "push.queue"

const queueName = "category_events"

var log = logger.NewNamed(CName)

func New() Queue {
	return new(queue)
}

// Event announces a created category.
type Event struct {
	Id       string          `json:"id"`
	Category domain.Category `json:"category"`
	Created  time.Time       `json:"created"`
}

func NewEvent(category domain.Category) Event {
	return Event{
		Id:       uuid.NewString(),
		Category: category,
		Created:  time.Now(),
	}
}

type Queue interface {
	Add(ctx context.Context, ev Event) error
	// Consume registers a handler. A handler error rejects the delivery, otherwise it is acked.
	Consume(ctx context.Context, handle func(ev Event) error) error
	app.ComponentRunnable
}

type queue struct {
	client       redis.UniversalClient
	rmqConn      rmq.Connection
	queue        rmq.Queue
	errCh        chan error
	tag          string
	runCtx       context.Context
	runCtxCancel context.CancelFunc
}

func (q *queue) Init(a *app.App) (err error) {
	q.client = a.MustComponent(redisprovider.CName).(redisprovider.RedisProvider).Redis()
	hostname, _ := os.Hostname()
	q.tag = "push-" + hostname
	q.runCtx, q.runCtxCancel = context.WithCancel(context.Background())
	return
}

func (q *queue) Name() (name string) {
	return CName
}

func (q *queue) Run(ctx context.Context) (err error) {
	q.errCh = make(chan error, 10)
	if q.rmqConn, err = rmq.OpenConnectionWithRedisClient(q.tag, q.client, q.errCh); err != nil {
		return err
	}
	go q.handleRmqErrs()
	if q.queue, err = q.rmqConn.OpenQueue(queueName); err != nil {
		return err
	}
	return q.queue.StartConsuming(10, time.Millisecond*100)
}

func (q *queue) Add(ctx context.Context, ev Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return q.queue.Publish(string(data))
}

func (q *queue) Consume(ctx context.Context, handle func(ev Event) error) error {
	cons := func(delivery rmq.Delivery) {
		select {
		case <-q.runCtx.Done():
			_ = delivery.Reject()
			return
		case <-ctx.Done():
			_ = delivery.Reject()
			return
		default:
		}
		var ev Event
		if err := json.Unmarshal([]byte(delivery.Payload()), &ev); err != nil {
			log.Warn("malformed event rejected", zap.Error(err))
			_ = delivery.Reject()
			return
		}
		if err := handle(ev); err != nil {
			_ = delivery.Reject()
		} else {
			_ = delivery.Ack()
		}
	}
	_, err := q.queue.AddConsumerFunc(q.tag, cons)
	return err
}

func (q *queue) handleRmqErrs() {
	for {
		select {
		case <-q.runCtx.Done():
			return
		case err := <-q.errCh:
			log.Warn("rmq error", zap.Error(err))
		}
	}
}

func (q *queue) Close(ctx context.Context) (err error) {
	if q.runCtxCancel != nil {
		q.runCtxCancel()
	}
	if q.queue != nil {
		done := q.queue.StopConsuming()
		<-done
	}
	return nil
}

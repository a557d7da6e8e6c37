package dispatcher

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/metric"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/talkdeck/talkdeck-push-server/domain"
	"github.com/talkdeck/talkdeck-push-server/gateway"
	"github.com/talkdeck/talkdeck-push-server/gateway/mock_gateway"
	"github.com/talkdeck/talkdeck-push-server/repo/dispatchlog"
	"github.com/talkdeck/talkdeck-push-server/repo/dispatchlog/mock_dispatchlog"
)

var ctx = context.Background()

var testNow = time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

func TestDispatcher_DailyReminder(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fx := newFixture(t)
		msg := fx.expectSend("m1", nil)

		fx.DailyReminder(ctx)

		require.NoError(t, msg.Validate())
		assert.Equal(t, domain.TopicTarget(domain.TopicDailyReminders), msg.Target)
		assert.Equal(t, domain.MessageTypeDailyQuestion, msg.Type())
		assert.Equal(t, dailyTitle, msg.Title)
		assert.Equal(t, dailyBody, msg.Body)
		ts, err := msg.Timestamp()
		require.NoError(t, err)
		assert.True(t, testNow.Equal(ts))
		assert.Empty(t, msg.Hints.AndroidChannelID)
		assert.Empty(t, msg.Hints.IOSThreadID)

		require.Len(t, fx.records, 1)
		assert.Equal(t, "m1", fx.records[0].MessageId)
		assert.Equal(t, domain.TopicDailyReminders, fx.records[0].Topic)
		assert.Empty(t, fx.records[0].Error)
	})
	t.Run("gateway error is swallowed", func(t *testing.T) {
		fx := newFixture(t)
		fx.expectSend("", errors.New("unavailable"))

		fx.DailyReminder(ctx)

		require.Len(t, fx.records, 1)
		assert.Equal(t, "unavailable", fx.records[0].Error)
		assert.Equal(t, float64(1), testutil.ToFloat64(fx.dispatcher.metrics.failed.WithLabelValues(string(domain.MessageTypeDailyQuestion))))
	})
}

func TestDispatcher_WeeklyHighlight(t *testing.T) {
	fx := newFixture(t)
	msg := fx.expectSend("m1", nil)

	fx.WeeklyHighlight(ctx)

	require.NoError(t, msg.Validate())
	assert.Equal(t, domain.TopicTarget(domain.TopicWeeklyHighlights), msg.Target)
	assert.Equal(t, domain.MessageTypeWeeklyHighlights, msg.Type())
	assert.Equal(t, weeklyTitle, msg.Title)
}

func TestDispatcher_NewCategory(t *testing.T) {
	fx := newFixture(t)
	msg := fx.expectSend("m1", nil)

	fx.NewCategory(ctx, domain.Category{Id: "abc123", Name: "Deep Talks"})

	require.NoError(t, msg.Validate())
	assert.Equal(t, domain.TopicTarget(domain.TopicNewCategoryAlerts), msg.Target)
	assert.Equal(t, domain.MessageTypeNewCategory, msg.Type())
	assert.Contains(t, msg.Body, "Deep Talks")
	assert.Equal(t, "abc123", msg.Payload[domain.PayloadCategoryId])
	assert.Equal(t, "Deep Talks", msg.Payload[domain.PayloadCategoryName])
}

func TestDispatcher_QuickQuestion(t *testing.T) {
	t.Run("scheduled", func(t *testing.T) {
		fx := newFixture(t)
		fx.pick = func(n int) int { return 3 }
		msg := fx.expectSend("m1", nil)

		fx.QuickQuestion(ctx)

		require.NoError(t, msg.Validate())
		assert.Equal(t, domain.TopicTarget(domain.TopicTwoSecondQuestions), msg.Target)
		assert.Equal(t, domain.MessageTypeTwoSecondQuestion, msg.Type())
		assert.Equal(t, quickQuestions[3], msg.Payload[domain.PayloadQuestion])
		assert.Equal(t, quickQuestions[3], msg.Body)
		assert.Equal(t, "true", msg.Payload[domain.PayloadContinuous])
		assert.NotContains(t, msg.Payload, domain.PayloadImmediate)
		assert.Equal(t, quickChannel, msg.Hints.AndroidChannelID)
		assert.Equal(t, quickChannel, msg.Hints.IOSThreadID)
	})
	t.Run("on demand", func(t *testing.T) {
		fx := newFixture(t)
		msg := fx.expectSend("m1", nil)

		res, err := fx.QuickQuestionNow(ctx)
		require.NoError(t, err)
		assert.Equal(t, Result{Success: true, MessageId: "m1"}, res)

		assert.Equal(t, "true", msg.Payload[domain.PayloadImmediate])
		assert.Equal(t, "true", msg.Payload[domain.PayloadContinuous])
		assert.Contains(t, QuickQuestions(), msg.Payload[domain.PayloadQuestion])
	})
	t.Run("on demand gateway error", func(t *testing.T) {
		fx := newFixture(t)
		fx.expectSend("", errors.New("unavailable"))

		res, err := fx.QuickQuestionNow(ctx)
		require.ErrorIs(t, err, domain.ErrInternal)
		assert.Empty(t, res.MessageId)
	})
	t.Run("question is always from the pool", func(t *testing.T) {
		fx := newFixture(t)
		fx.dispatcher.pick = New().(*dispatcher).pick
		pool := QuickQuestions()
		require.Len(t, pool, 10)
		for range 100 {
			assert.Contains(t, pool, fx.randomQuestion())
		}
	})
}

func TestDispatcher_SendCustom(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		fx := newFixture(t)
		for _, tc := range []struct {
			req     CustomRequest
			missing string
		}{
			{CustomRequest{Title: "t", Body: "b"}, "topic"},
			{CustomRequest{Topic: "news", Body: "b"}, "title"},
			{CustomRequest{Topic: "news", Title: "t"}, "body"},
			{CustomRequest{Topic: "news", Title: " ", Body: "b"}, "title"},
			{CustomRequest{}, "topic, title, body"},
		} {
			res, err := fx.SendCustom(ctx, tc.req)
			require.ErrorIs(t, err, domain.ErrInvalidArgument)
			assert.Contains(t, err.Error(), tc.missing)
			assert.Equal(t, Result{}, res)
		}
	})
	t.Run("invalid topic", func(t *testing.T) {
		fx := newFixture(t)
		_, err := fx.SendCustom(ctx, CustomRequest{Topic: "bad topic", Title: "t", Body: "b"})
		require.ErrorIs(t, err, domain.ErrInvalidArgument)
	})
	t.Run("reserved data keys", func(t *testing.T) {
		fx := newFixture(t)
		for _, key := range []string{"from", "notification", "message_type", "google.c.a.e", "gcm.n.e"} {
			res, err := fx.SendCustom(ctx, CustomRequest{Topic: "news", Title: "t", Body: "b", Data: map[string]string{key: "v"}})
			require.ErrorIs(t, err, domain.ErrInvalidArgument, key)
			assert.Contains(t, err.Error(), key)
			assert.Equal(t, Result{}, res)
		}
		assert.Empty(t, fx.records)
	})
	t.Run("success", func(t *testing.T) {
		fx := newFixture(t)
		msg := fx.expectSend("projects/p/messages/1", nil)

		res, err := fx.SendCustom(ctx, CustomRequest{
			Topic: "news",
			Title: "Hello",
			Body:  "World",
			Data: map[string]string{
				"screen":                "home",
				domain.PayloadType:      "spoofed",
				domain.PayloadTimestamp: "yesterday",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, Result{Success: true, MessageId: "projects/p/messages/1"}, res)

		require.NoError(t, msg.Validate())
		assert.Equal(t, domain.TopicTarget("news"), msg.Target)
		assert.Equal(t, "home", msg.Payload["screen"])
		assert.Equal(t, domain.MessageTypeCustom, msg.Type())
		assert.Equal(t, testNow.Format(domain.TimestampLayout), msg.Payload[domain.PayloadTimestamp])
		assert.Equal(t, float64(1), testutil.ToFloat64(fx.dispatcher.metrics.sent.WithLabelValues(string(domain.MessageTypeCustom))))
	})
	t.Run("gateway error", func(t *testing.T) {
		fx := newFixture(t)
		fx.expectSend("", errors.New("requested entity was not found"))

		res, err := fx.SendCustom(ctx, CustomRequest{Topic: "news", Title: "t", Body: "b"})
		require.ErrorIs(t, err, domain.ErrInternal)
		assert.Contains(t, err.Error(), "requested entity was not found")
		assert.Empty(t, res.MessageId)
		assert.False(t, res.Success)
	})
}

func TestDispatcher_SendToDevice(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		fx := newFixture(t)
		for _, req := range []DeviceRequest{
			{Title: "t", Body: "b"},
			{Token: "tok", Body: "b"},
			{Token: "tok", Title: "t"},
		} {
			_, err := fx.SendToDevice(ctx, req)
			require.ErrorIs(t, err, domain.ErrInvalidArgument)
		}
	})
	t.Run("reserved data key", func(t *testing.T) {
		fx := newFixture(t)
		_, err := fx.SendToDevice(ctx, DeviceRequest{Token: "tok", Title: "t", Body: "b", Data: map[string]string{"Google.sent_time": "1"}})
		require.ErrorIs(t, err, domain.ErrInvalidArgument)
		assert.Contains(t, err.Error(), "Google.sent_time")
	})
	t.Run("success", func(t *testing.T) {
		fx := newFixture(t)
		msg := fx.expectSend("m1", nil)

		res, err := fx.SendToDevice(ctx, DeviceRequest{Token: "tok", Title: "t", Body: "b", Data: map[string]string{"k": "v"}})
		require.NoError(t, err)
		assert.Equal(t, "m1", res.MessageId)

		require.NoError(t, msg.Validate())
		assert.Equal(t, domain.DeviceTarget("tok"), msg.Target)
		assert.Equal(t, domain.MessageTypeDirect, msg.Type())
		assert.Equal(t, "v", msg.Payload["k"])
		require.Len(t, fx.records, 1)
		assert.Equal(t, "tok", fx.records[0].Token)
	})
}

func TestDispatcher_Topics(t *testing.T) {
	t.Run("subscribe", func(t *testing.T) {
		fx := newFixture(t)
		gwResp := domain.TopicResponse{SuccessCount: 1}
		fx.gateway.EXPECT().SubscribeToTopic(ctx, domain.Topic("daily_reminders"), "tok1").Return(gwResp, nil).Times(1)

		res, err := fx.Subscribe(ctx, TopicRequest{Topic: "daily_reminders", Token: "tok1"})
		require.NoError(t, err)
		assert.Equal(t, TopicResult{Success: true, Response: gwResp}, res)
	})
	t.Run("subscribe missing token", func(t *testing.T) {
		fx := newFixture(t)
		_, err := fx.Subscribe(ctx, TopicRequest{Topic: "daily_reminders"})
		require.ErrorIs(t, err, domain.ErrInvalidArgument)
		assert.Contains(t, err.Error(), "token")
	})
	t.Run("unsubscribe", func(t *testing.T) {
		fx := newFixture(t)
		fx.gateway.EXPECT().UnsubscribeFromTopic(ctx, domain.Topic("daily_reminders"), "tok1").Return(domain.TopicResponse{SuccessCount: 1}, nil)

		res, err := fx.Unsubscribe(ctx, TopicRequest{Topic: "daily_reminders", Token: "tok1"})
		require.NoError(t, err)
		assert.True(t, res.Success)
	})
	t.Run("unsubscribe gateway error", func(t *testing.T) {
		fx := newFixture(t)
		fx.gateway.EXPECT().UnsubscribeFromTopic(ctx, domain.Topic("daily_reminders"), "tok1").Return(domain.TopicResponse{}, errors.New("boom"))

		res, err := fx.Unsubscribe(ctx, TopicRequest{Topic: "daily_reminders", Token: "tok1"})
		require.ErrorIs(t, err, domain.ErrInternal)
		assert.True(t, strings.HasSuffix(err.Error(), "boom"))
		assert.False(t, res.Success)
	})
}

type fixture struct {
	*dispatcher
	gateway *mock_gateway.MockGateway
	records []domain.DispatchRecord
	a       *app.App
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	fx := &fixture{
		dispatcher: New().(*dispatcher),
		gateway:    mock_gateway.NewMockGateway(ctrl),
		a:          new(app.App),
	}
	fx.dispatcher.now = func() time.Time { return testNow }

	fx.gateway.EXPECT().Name().Return(gateway.CName).AnyTimes()
	fx.gateway.EXPECT().Init(gomock.Any()).AnyTimes()

	dLog := mock_dispatchlog.NewMockDispatchLog(ctrl)
	dLog.EXPECT().Name().Return(dispatchlog.CName).AnyTimes()
	dLog.EXPECT().Init(gomock.Any()).AnyTimes()
	dLog.EXPECT().Run(gomock.Any()).AnyTimes()
	dLog.EXPECT().Close(gomock.Any()).AnyTimes()
	dLog.EXPECT().Add(gomock.Any()).Do(func(rec domain.DispatchRecord) {
		fx.records = append(fx.records, rec)
	}).AnyTimes()

	fx.a.Register(&testConfig{}).
		Register(metric.New()).
		Register(fx.gateway).
		Register(dLog).
		Register(fx.dispatcher)
	require.NoError(t, fx.a.Start(ctx))
	t.Cleanup(func() {
		require.NoError(t, fx.a.Close(ctx))
	})
	return fx
}

// expectSend captures the next message handed to the gateway.
func (fx *fixture) expectSend(messageId string, err error) *domain.PushMessage {
	msg := new(domain.PushMessage)
	fx.gateway.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m domain.PushMessage) (string, error) {
		*msg = m
		return messageId, err
	}).Times(1)
	return msg
}

type testConfig struct{}

func (t testConfig) Init(a *app.App) (err error) {
	return
}

func (t testConfig) Name() (name string) {
	return "config"
}

func (t testConfig) GetMetric() metric.Config {
	return metric.Config{}
}

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/metric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/talkdeck/talkdeck-push-server/dispatcher"
	"github.com/talkdeck/talkdeck-push-server/dispatcher/mock_dispatcher"
	"github.com/talkdeck/talkdeck-push-server/domain"
)

var ctx = context.Background()

func TestHandler_SendCustom(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fx := newFixture(t, "")
		fx.dispatcher.EXPECT().SendCustom(gomock.Any(), dispatcher.CustomRequest{
			Topic: "news",
			Title: "Hello",
			Body:  "World",
			Data:  map[string]string{"screen": "home"},
		}).Return(dispatcher.Result{Success: true, MessageId: "m1"}, nil)

		code, body := fx.post("/v1/notifications/custom", `{"topic":"news","title":"Hello","body":"World","data":{"screen":"home"}}`)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "m1", body["messageId"])
	})
	t.Run("invalid argument", func(t *testing.T) {
		fx := newFixture(t, "")
		fx.dispatcher.EXPECT().SendCustom(gomock.Any(), gomock.Any()).
			Return(dispatcher.Result{}, fmt.Errorf("%w: missing required fields: topic", domain.ErrInvalidArgument))

		code, body := fx.post("/v1/notifications/custom", `{"title":"Hello","body":"World"}`)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "invalid-argument", errorCode(body))
	})
	t.Run("malformed body", func(t *testing.T) {
		fx := newFixture(t, "")
		code, body := fx.post("/v1/notifications/custom", `{"topic":`)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "invalid-argument", errorCode(body))
	})
	t.Run("internal", func(t *testing.T) {
		fx := newFixture(t, "")
		fx.dispatcher.EXPECT().SendCustom(gomock.Any(), gomock.Any()).
			Return(dispatcher.Result{}, fmt.Errorf("%w: quota exceeded", domain.ErrInternal))

		code, body := fx.post("/v1/notifications/custom", `{"topic":"news","title":"Hello","body":"World"}`)
		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Equal(t, "internal", errorCode(body))
		assert.Contains(t, body["error"].(map[string]any)["message"], "quota exceeded")
		assert.NotContains(t, body, "messageId")
	})
}

func TestHandler_SendToDevice(t *testing.T) {
	for _, reqBody := range []string{
		`{"token":"tok","title":"t","body":"b"}`,
		`{"deviceToken":"tok","title":"t","body":"b"}`,
	} {
		fx := newFixture(t, "")
		fx.dispatcher.EXPECT().SendToDevice(gomock.Any(), dispatcher.DeviceRequest{Token: "tok", Title: "t", Body: "b"}).
			Return(dispatcher.Result{Success: true, MessageId: "m1"}, nil)

		code, body := fx.post("/v1/notifications/device", reqBody)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "m1", body["messageId"])
	}
}

func TestHandler_QuickQuestion(t *testing.T) {
	fx := newFixture(t, "")
	fx.dispatcher.EXPECT().QuickQuestionNow(gomock.Any()).Return(dispatcher.Result{Success: true, MessageId: "m1"}, nil)

	code, body := fx.post("/v1/notifications/quick-question", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "m1", body["messageId"])
}

func TestHandler_Topics(t *testing.T) {
	t.Run("subscribe", func(t *testing.T) {
		fx := newFixture(t, "")
		fx.dispatcher.EXPECT().Subscribe(gomock.Any(), dispatcher.TopicRequest{Topic: "daily_reminders", Token: "tok1"}).
			Return(dispatcher.TopicResult{Success: true, Response: domain.TopicResponse{SuccessCount: 1}}, nil).Times(1)

		code, body := fx.post("/v1/topics/subscribe", `{"topic":"daily_reminders","token":"tok1"}`)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, float64(1), body["response"].(map[string]any)["successCount"])
	})
	t.Run("unsubscribe", func(t *testing.T) {
		fx := newFixture(t, "")
		fx.dispatcher.EXPECT().Unsubscribe(gomock.Any(), dispatcher.TopicRequest{Topic: "daily_reminders", Token: "tok1"}).
			Return(dispatcher.TopicResult{Success: true}, nil)

		code, _ := fx.post("/v1/topics/unsubscribe", `{"topic":"daily_reminders","deviceToken":"tok1"}`)
		assert.Equal(t, http.StatusOK, code)
	})
}

func TestHandler_Auth(t *testing.T) {
	fx := newFixture(t, "secret")

	code, body := fx.post("/v1/notifications/quick-question", "")
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "unauthenticated", errorCode(body))

	fx.dispatcher.EXPECT().QuickQuestionNow(gomock.Any()).Return(dispatcher.Result{Success: true, MessageId: "m1"}, nil)
	req := httptest.NewRequest(http.MethodPost, "/v1/notifications/quick-question", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rec := httptest.NewRecorder()
	fx.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec = httptest.NewRecorder()
	fx.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

type fixture struct {
	Api
	dispatcher *mock_dispatcher.MockDispatcher
	a          *app.App
}

func newFixture(t *testing.T, token string) *fixture {
	ctrl := gomock.NewController(t)
	fx := &fixture{
		Api:        New(),
		dispatcher: mock_dispatcher.NewMockDispatcher(ctrl),
		a:          new(app.App),
	}
	fx.dispatcher.EXPECT().Name().Return(dispatcher.CName).AnyTimes()
	fx.dispatcher.EXPECT().Init(gomock.Any()).AnyTimes()

	fx.a.Register(&testConfig{api: Config{ListenAddr: "127.0.0.1:0", Token: token}}).
		Register(metric.New()).
		Register(fx.dispatcher).
		Register(fx.Api)
	require.NoError(t, fx.a.Start(ctx))
	t.Cleanup(func() {
		require.NoError(t, fx.a.Close(ctx))
	})
	return fx
}

func (fx *fixture) post(path, body string) (int, map[string]any) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	fx.Handler().ServeHTTP(rec, req)
	var res map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &res)
	return rec.Code, res
}

func errorCode(body map[string]any) string {
	e, _ := body["error"].(map[string]any)
	code, _ := e["code"].(string)
	return code
}

type testConfig struct {
	api Config
}

func (t testConfig) Init(a *app.App) (err error) {
	return
}

func (t testConfig) Name() (name string) {
	return "config"
}

func (t testConfig) GetApi() Config {
	return t.api
}

func (t testConfig) GetMetric() metric.Config {
	return metric.Config{}
}

package fcm

import (
	"context"

	"firebase.google.com/go/v4/messaging"
	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/app/logger"
	"go.uber.org/zap"

	"github.com/talkdeck/talkdeck-push-server/domain"
	"github.com/talkdeck/talkdeck-push-server/firebaseprovider"
	"github.com/talkdeck/talkdeck-push-server/gateway"
)

var log = logger.NewNamed("push.gateway.fcm")

func New() gateway.Gateway {
	return new(fcm)
}

// messagingClient is the part of *messaging.Client the gateway uses.
type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
	SendDryRun(ctx context.Context, message *messaging.Message) (string, error)
	SubscribeToTopic(ctx context.Context, tokens []string, topic string) (*messaging.TopicManagementResponse, error)
	UnsubscribeFromTopic(ctx context.Context, tokens []string, topic string) (*messaging.TopicManagementResponse, error)
}

type fcm struct {
	client messagingClient
	dryRun bool
}

func (f *fcm) Init(a *app.App) (err error) {
	f.dryRun = a.MustComponent("config").(configSource).GetFCM().DryRun
	fbApp := a.MustComponent(firebaseprovider.CName).(firebaseprovider.FirebaseProvider).App()
	f.client, err = fbApp.Messaging(context.Background())
	return
}

func (f *fcm) Name() (name string) {
	return gateway.CName
}

func (f *fcm) Send(ctx context.Context, message domain.PushMessage) (messageId string, err error) {
	msg := buildFcmMessage(message)
	if f.dryRun {
		messageId, err = f.client.SendDryRun(ctx, msg)
	} else {
		messageId, err = f.client.Send(ctx, msg)
	}
	if err != nil {
		return "", err
	}
	log.Debug("push sent", zap.String("target", message.Target.String()), zap.String("messageId", messageId), zap.Bool("dryRun", f.dryRun))
	return
}

func (f *fcm) SubscribeToTopic(ctx context.Context, topic domain.Topic, token string) (domain.TopicResponse, error) {
	resp, err := f.client.SubscribeToTopic(ctx, []string{token}, topic.String())
	if err != nil {
		return domain.TopicResponse{}, err
	}
	return convertTopicResponse(resp), nil
}

func (f *fcm) UnsubscribeFromTopic(ctx context.Context, topic domain.Topic, token string) (domain.TopicResponse, error) {
	resp, err := f.client.UnsubscribeFromTopic(ctx, []string{token}, topic.String())
	if err != nil {
		return domain.TopicResponse{}, err
	}
	return convertTopicResponse(resp), nil
}

func convertTopicResponse(resp *messaging.TopicManagementResponse) domain.TopicResponse {
	res := domain.TopicResponse{
		SuccessCount: resp.SuccessCount,
		FailureCount: resp.FailureCount,
	}
	for _, e := range resp.Errors {
		res.Errors = append(res.Errors, domain.TopicError{Index: e.Index, Reason: e.Reason})
	}
	return res
}

func buildFcmMessage(message domain.PushMessage) *messaging.Message {
	hints := message.Hints
	badge := hints.IOSBadge
	return &messaging.Message{
		Topic: message.Target.Topic.String(),
		Token: message.Target.Token,
		Notification: &messaging.Notification{
			Title: message.Title,
			Body:  message.Body,
		},
		Data: message.Payload,
		Android: &messaging.AndroidConfig{
			Priority: hints.AndroidPriority,
			Notification: &messaging.AndroidNotification{
				Sound:       hints.AndroidSound,
				ClickAction: hints.AndroidClickAction,
				ChannelID:   hints.AndroidChannelID,
			},
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Sound:    hints.IOSSound,
					Badge:    &badge,
					ThreadID: hints.IOSThreadID,
				},
			},
		},
	}
}

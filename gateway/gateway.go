//go:generate mockgen -destination mock_gateway/mock_gateway.go github.com/talkdeck/talkdeck-push-server/gateway Gateway

// Package gateway describes the external messaging service messages are handed to.
package gateway

import (
	"context"

	"github.com/anyproto/any-sync/app"

	"github.com/talkdeck/talkdeck-push-server/domain"
)

const CName = "push.gateway"

type Gateway interface {
	// Send delivers one message to its topic or device and returns the gateway message id.
	Send(ctx context.Context, message domain.PushMessage) (messageId string, err error)
	SubscribeToTopic(ctx context.Context, topic domain.Topic, token string) (domain.TopicResponse, error)
	UnsubscribeFromTopic(ctx context.Context, topic domain.Topic, token string) (domain.TopicResponse, error)
	app.Component
}

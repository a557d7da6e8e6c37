package domain

import (
	"errors"
	"fmt"
	"time"
)

// MessageType identifies which trigger produced a message. It is delivered to
// clients as payload["type"].
type MessageType string

const (
	MessageTypeDailyQuestion     MessageType = "daily_question"
	MessageTypeWeeklyHighlights  MessageType = "weekly_highlights"
	MessageTypeNewCategory       MessageType = "new_category"
	MessageTypeTwoSecondQuestion MessageType = "two_second_question"
	MessageTypeCustom            MessageType = "custom"
	MessageTypeDirect            MessageType = "direct"
)

var messageTypes = []MessageType{
	MessageTypeDailyQuestion,
	MessageTypeWeeklyHighlights,
	MessageTypeNewCategory,
	MessageTypeTwoSecondQuestion,
	MessageTypeCustom,
	MessageTypeDirect,
}

func (t MessageType) Valid() bool {
	for _, mt := range messageTypes {
		if mt == t {
			return true
		}
	}
	return false
}

// Payload keys written by the dispatcher.
const (
	PayloadType         = "type"
	PayloadTimestamp    = "timestamp"
	PayloadCategoryId   = "categoryId"
	PayloadCategoryName = "categoryName"
	PayloadQuestion     = "question"
	PayloadImmediate    = "immediate"
	PayloadContinuous   = "continuous"
)

// TimestampLayout is the ISO-8601 layout of payload["timestamp"].
const TimestampLayout = time.RFC3339Nano

var (
	ErrEmptyTitle       = errors.New("message title is empty")
	ErrEmptyBody        = errors.New("message body is empty")
	ErrInvalidTarget    = errors.New("message must have exactly one of topic or token")
	ErrInvalidType      = errors.New("message type is not recognized")
	ErrInvalidTimestamp = errors.New("message timestamp is not an ISO-8601 instant")
)

// Target is either a topic or a single device token, never both.
type Target struct {
	Topic Topic
	Token string
}

func TopicTarget(topic Topic) Target {
	return Target{Topic: topic}
}

func DeviceTarget(token string) Target {
	return Target{Token: token}
}

func (t Target) IsTopic() bool {
	return t.Topic != ""
}

func (t Target) Valid() bool {
	return (t.Topic != "") != (t.Token != "")
}

func (t Target) String() string {
	if t.IsTopic() {
		return "topic:" + string(t.Topic)
	}
	return "token"
}

// PlatformHints are the per-platform delivery and presentation options.
// AndroidChannelID and IOSThreadID are left empty for most message types.
type PlatformHints struct {
	AndroidPriority    string
	AndroidSound       string
	AndroidClickAction string
	AndroidChannelID   string
	IOSSound           string
	IOSBadge           int
	IOSThreadID        string
}

type PushMessage struct {
	Title   string
	Body    string
	Target  Target
	Payload map[string]string
	Hints   PlatformHints
}

func (m PushMessage) Type() MessageType {
	return MessageType(m.Payload[PayloadType])
}

func (m PushMessage) Timestamp() (time.Time, error) {
	return time.Parse(TimestampLayout, m.Payload[PayloadTimestamp])
}

func (m PushMessage) Validate() error {
	if m.Title == "" {
		return ErrEmptyTitle
	}
	if m.Body == "" {
		return ErrEmptyBody
	}
	if !m.Target.Valid() {
		return ErrInvalidTarget
	}
	if !m.Type().Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidType, m.Payload[PayloadType])
	}
	if _, err := m.Timestamp(); err != nil {
		return ErrInvalidTimestamp
	}
	return nil
}

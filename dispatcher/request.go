package dispatcher

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/talkdeck/talkdeck-push-server/domain"
)

type CustomRequest struct {
	Topic domain.Topic      `json:"topic"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

func (r CustomRequest) Validate() error {
	if err := requireFields(field{"topic", string(r.Topic)}, field{"title", r.Title}, field{"body", r.Body}); err != nil {
		return err
	}
	if err := validTopic(r.Topic); err != nil {
		return err
	}
	return validData(r.Data)
}

// DeviceRequest accepts the device token as "token" or "deviceToken".
type DeviceRequest struct {
	Token string            `json:"token"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

func (r *DeviceRequest) UnmarshalJSON(data []byte) error {
	type plain DeviceRequest
	var v struct {
		plain
		DeviceToken string `json:"deviceToken"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*r = DeviceRequest(v.plain)
	if r.Token == "" {
		r.Token = v.DeviceToken
	}
	return nil
}

func (r DeviceRequest) Validate() error {
	if err := requireFields(field{"token", r.Token}, field{"title", r.Title}, field{"body", r.Body}); err != nil {
		return err
	}
	return validData(r.Data)
}

// TopicRequest accepts the device token as "token" or "deviceToken".
type TopicRequest struct {
	Topic domain.Topic `json:"topic"`
	Token string       `json:"token"`
}

func (r *TopicRequest) UnmarshalJSON(data []byte) error {
	type plain TopicRequest
	var v struct {
		plain
		DeviceToken string `json:"deviceToken"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*r = TopicRequest(v.plain)
	if r.Token == "" {
		r.Token = v.DeviceToken
	}
	return nil
}

func (r TopicRequest) Validate() error {
	if err := requireFields(field{"topic", string(r.Topic)}, field{"token", r.Token}); err != nil {
		return err
	}
	return validTopic(r.Topic)
}

type Result struct {
	Success   bool   `json:"success"`
	MessageId string `json:"messageId"`
}

type TopicResult struct {
	Success  bool                 `json:"success"`
	Response domain.TopicResponse `json:"response"`
}

type field struct {
	name  string
	value string
}

func requireFields(fields ...field) error {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: missing required fields: %s", domain.ErrInvalidArgument, strings.Join(missing, ", "))
}

// reservedDataKeys are refused by FCM in the data payload.
var reservedDataKeys = []string{"from", "notification", "message_type"}

var reservedDataPrefixes = []string{"google", "gcm"}

func validData(data map[string]string) error {
	var reserved []string
	for k := range data {
		key := strings.ToLower(k)
		if slices.Contains(reservedDataKeys, key) || slices.ContainsFunc(reservedDataPrefixes, func(p string) bool {
			return strings.HasPrefix(key, p)
		}) {
			reserved = append(reserved, k)
		}
	}
	if len(reserved) == 0 {
		return nil
	}
	slices.Sort(reserved)
	return fmt.Errorf("%w: reserved data keys: %s", domain.ErrInvalidArgument, strings.Join(reserved, ", "))
}

func validTopic(topic domain.Topic) error {
	if !topic.Valid() {
		return fmt.Errorf("%w: invalid topic name %q", domain.ErrInvalidArgument, topic)
	}
	return nil
}

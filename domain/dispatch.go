package domain

// DispatchRecord is an audit entry of one gateway send.
type DispatchRecord struct {
	Id        string      `bson:"_id"`
	Type      MessageType `bson:"type"`
	Topic     Topic       `bson:"topic,omitempty"`
	Token     string      `bson:"token,omitempty"`
	MessageId string      `bson:"messageId,omitempty"`
	Error     string      `bson:"error,omitempty"`
	Created   int64       `bson:"created"`
}

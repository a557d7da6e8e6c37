package domain

// Topic is a named broadcast channel of the messaging gateway.
type Topic string

const (
	TopicDailyReminders     Topic = "daily_reminders"
	TopicWeeklyHighlights   Topic = "weekly_highlights"
	TopicNewCategoryAlerts  Topic = "new_category_alerts"
	TopicTwoSecondQuestions Topic = "two_second_questions"
)

const maxTopicLen = 900

// Valid reports whether the name fits the gateway topic alphabet [a-zA-Z0-9-_.~%].
func (t Topic) Valid() bool {
	if len(t) == 0 || len(t) > maxTopicLen {
		return false
	}
	for _, c := range []byte(t) {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.', c == '~', c == '%':
		default:
			return false
		}
	}
	return true
}

func (t Topic) String() string {
	return string(t)
}

// TopicResponse is the gateway answer to a subscribe or unsubscribe call.
type TopicResponse struct {
	SuccessCount int          `json:"successCount"`
	FailureCount int          `json:"failureCount"`
	Errors       []TopicError `json:"errors,omitempty"`
}

type TopicError struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

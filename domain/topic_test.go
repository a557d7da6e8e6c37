package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopic_Valid(t *testing.T) {
	for _, topic := range []Topic{
		TopicDailyReminders,
		TopicWeeklyHighlights,
		TopicNewCategoryAlerts,
		TopicTwoSecondQuestions,
		"news-2024.~%",
	} {
		assert.True(t, topic.Valid(), topic)
	}
	for _, topic := range []Topic{
		"",
		"with space",
		"/topics/x",
		"ünicode",
		Topic(strings.Repeat("a", maxTopicLen+1)),
	} {
		assert.False(t, topic.Valid(), topic)
	}
}

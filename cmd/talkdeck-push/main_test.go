package main

import (
	"testing"

	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/metric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talkdeck/talkdeck-push-server/categorywatch"
	"github.com/talkdeck/talkdeck-push-server/config"
	"github.com/talkdeck/talkdeck-push-server/db"
	"github.com/talkdeck/talkdeck-push-server/queue"
	"github.com/talkdeck/talkdeck-push-server/redisprovider"
	"github.com/talkdeck/talkdeck-push-server/repo/dispatchlog"
	"github.com/talkdeck/talkdeck-push-server/scheduler"
)

func componentNames(components []app.Component) []string {
	names := make([]string, len(components))
	for i, c := range components {
		names[i] = c.Name()
	}
	return names
}

func TestServerComponents(t *testing.T) {
	t.Run("mongo source", func(t *testing.T) {
		conf, err := config.Parse([]byte("dispatchLog:\n  enabled: true\n"))
		require.NoError(t, err)
		names := componentNames(serverComponents(conf))
		assert.Contains(t, names, db.CName)
		assert.Contains(t, names, redisprovider.CName)
		assert.Contains(t, names, dispatchlog.CName)
		assert.Contains(t, names, queue.CName)
		assert.Contains(t, names, categorywatch.CName)
		assert.Equal(t, config.CName, names[0])
		assert.Equal(t, metric.CName, names[1])
	})
	t.Run("no event source", func(t *testing.T) {
		conf, err := config.Parse([]byte("categoryWatch:\n  source: none\n"))
		require.NoError(t, err)
		names := componentNames(serverComponents(conf))
		assert.NotContains(t, names, db.CName)
		assert.NotContains(t, names, redisprovider.CName)
		assert.NotContains(t, names, queue.CName)
		assert.Contains(t, names, scheduler.CName)
	})
}

func TestTriggerRows(t *testing.T) {
	conf, err := config.Parse([]byte("schedule:\n  dailyReminder: \"0 9 * * *\"\n"))
	require.NoError(t, err)
	rows := triggerRows(conf)
	require.Len(t, rows, 9)
	assert.Equal(t, "0 9 * * * (UTC)", rows[0][4])
	assert.Equal(t, "disabled", rows[1][4])
	assert.Equal(t, "category created (mongo)", rows[3][4])

	out := renderTable([]string{"Trigger", "Kind", "Topic", "Type", "When"}, rows)
	assert.Contains(t, out, "daily_reminders")
	assert.Contains(t, out, "new_category_alerts")
}

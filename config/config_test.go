package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talkdeck/talkdeck-push-server/categorywatch"
)

func TestNewFromFile(t *testing.T) {
	conf, err := NewFromFile("../etc/config.yml")
	require.NoError(t, err)
	assert.Equal(t, "talkdeck_push", conf.GetMongo().Database)
	assert.Equal(t, []string{"localhost:6379"}, conf.GetRedis().Addrs)
	assert.Equal(t, "talkdeck-app", conf.GetFirebase().ProjectId)
	assert.Equal(t, "0 9 * * *", conf.GetSchedule().DailyReminder)
	assert.Equal(t, 50*time.Second, conf.GetSchedule().LockTTL)
	assert.Equal(t, categorywatch.SourceMongo, conf.GetCategoryWatch().Source)
	assert.True(t, conf.GetDispatchLog().Enabled)
	assert.Equal(t, "0.0.0.0:8000", conf.GetMetric().Addr)
}

func TestParse_Defaults(t *testing.T) {
	conf, err := Parse([]byte("fcm:\n  dryRun: true\n"))
	require.NoError(t, err)
	assert.True(t, conf.GetFCM().DryRun)
	assert.Equal(t, ":8080", conf.GetApi().ListenAddr)
	assert.Equal(t, "UTC", conf.GetSchedule().Timezone)
	assert.Equal(t, 30*time.Second, conf.GetSchedule().Timeout)
	assert.Equal(t, categorywatch.SourceMongo, conf.GetCategoryWatch().Source)
	assert.Equal(t, "categories", conf.GetCategoryWatch().Collection)
	assert.Empty(t, conf.GetSchedule().QuickQuestion)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("schedule: [1, 2"))
	require.Error(t, err)
}

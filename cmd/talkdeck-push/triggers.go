package main

import (
	"github.com/spf13/cobra"

	"github.com/talkdeck/talkdeck-push-server/categorywatch"
	"github.com/talkdeck/talkdeck-push-server/config"
	"github.com/talkdeck/talkdeck-push-server/domain"
	"github.com/talkdeck/talkdeck-push-server/scheduler"
)

func newTriggersCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "triggers",
		Short: "List the triggers with their topics and schedules",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := renderTable([]string{"Trigger", "Kind", "Topic", "Type", "When"}, triggerRows(conf))
			_, err = cmd.OutOrStdout().Write([]byte(out + "\n"))
			return err
		},
	}
}

func triggerRows(conf *config.Config) [][]string {
	specs := conf.Schedule.Specs()
	when := func(job string) string {
		if specs[job] == "" {
			return "disabled"
		}
		return specs[job] + " (" + conf.Schedule.Timezone + ")"
	}
	event := "category created (" + string(conf.CategoryWatch.Source) + ")"
	if conf.CategoryWatch.Source == categorywatch.SourceNone {
		event = "disabled"
	}
	return [][]string{
		{scheduler.JobDailyReminder, "schedule", domain.TopicDailyReminders.String(), string(domain.MessageTypeDailyQuestion), when(scheduler.JobDailyReminder)},
		{scheduler.JobWeeklyHighlight, "schedule", domain.TopicWeeklyHighlights.String(), string(domain.MessageTypeWeeklyHighlights), when(scheduler.JobWeeklyHighlight)},
		{scheduler.JobQuickQuestion, "schedule", domain.TopicTwoSecondQuestions.String(), string(domain.MessageTypeTwoSecondQuestion), when(scheduler.JobQuickQuestion)},
		{"newCategory", "event", domain.TopicNewCategoryAlerts.String(), string(domain.MessageTypeNewCategory), event},
		{"quickQuestionNow", "call", domain.TopicTwoSecondQuestions.String(), string(domain.MessageTypeTwoSecondQuestion), "POST /v1/notifications/quick-question"},
		{"sendCustom", "call", "caller topic", string(domain.MessageTypeCustom), "POST /v1/notifications/custom"},
		{"sendToDevice", "call", "device token", string(domain.MessageTypeDirect), "POST /v1/notifications/device"},
		{"subscribe", "call", "caller topic", "-", "POST /v1/topics/subscribe"},
		{"unsubscribe", "call", "caller topic", "-", "POST /v1/topics/unsubscribe"},
	}
}

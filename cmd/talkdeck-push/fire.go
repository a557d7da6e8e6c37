package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/talkdeck/talkdeck-push-server/dispatcher"
	"github.com/talkdeck/talkdeck-push-server/firebaseprovider"
	"github.com/talkdeck/talkdeck-push-server/gateway/fcm"
	"github.com/talkdeck/talkdeck-push-server/scheduler"
)

func newFireCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:       "fire <job>",
		Short:     "Run a scheduled job once",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{scheduler.JobDailyReminder, scheduler.JobWeeklyHighlight, scheduler.JobQuickQuestion},
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			// only the job itself, no cron entries and no lock
			once := *conf
			once.Schedule = scheduler.Config{Timezone: conf.Schedule.Timezone}

			sched := scheduler.New()
			a := newApp(&once, firebaseprovider.New(), fcm.New(), dispatcher.New(), sched)
			if err = a.Start(cmd.Context()); err != nil {
				return err
			}
			defer func() {
				_ = a.Close(cmd.Context())
			}()
			if err = sched.Fire(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "job %s fired\n", args[0])
			return nil
		},
	}
}

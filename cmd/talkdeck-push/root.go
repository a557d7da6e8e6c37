package main

import (
	"github.com/spf13/cobra"

	"github.com/talkdeck/talkdeck-push-server/config"
)

// set by -ldflags "-X main.version=..."
var version = "dev"

type commandContext struct {
	configPath string
	conf       *config.Config
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.conf != nil {
		return c.conf, nil
	}
	conf, err := config.NewFromFile(c.configPath)
	if err != nil {
		return nil, err
	}
	conf.Log.ApplyGlobal()
	c.conf = conf
	return conf, nil
}

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "talkdeck-push",
		Short:         "Talkdeck push notification dispatcher",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	rootCmd.PersistentFlags().StringVarP(&ctx.configPath, "config", "c", "etc/config.yml", "Configuration file path")

	rootCmd.AddCommand(newServeCommand(ctx))
	rootCmd.AddCommand(newFireCommand(ctx))
	rootCmd.AddCommand(newCategoryCommand(ctx))
	rootCmd.AddCommand(newTriggersCommand(ctx))
	return rootCmd
}

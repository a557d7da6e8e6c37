package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anyproto/any-sync/app/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var log = logger.NewNamed("main")

func newServeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the scheduler, category watch and caller API",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			a := newApp(serverComponents(conf)...)
			if err = a.Start(cmd.Context()); err != nil {
				return err
			}
			log.Info("app started", zap.String("version", version))

			sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
			defer stop()
			<-sigCtx.Done()
			log.Info("received exit signal, stop app...")

			closeCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			if err = a.Close(closeCtx); err != nil {
				log.Fatal("close error", zap.Error(err))
			}
			log.Info("goodbye!")
			return nil
		},
	}
}

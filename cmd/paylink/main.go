package main

import (
	"context"
	"errors"
	"os"

	"github.com/fsdevblog/paylink/internal/app"
	"github.com/fsdevblog/paylink/internal/config"
	"github.com/fsdevblog/paylink/internal/logger"
)

func main() {
	conf := config.MustLoadConfig()
	l := logger.New(logger.Output(conf.LogFile))

	if err := app.New(conf, l).Run(); err != nil {
		if errors.Is(err, context.Canceled) {
			l.Info("graceful shutdown")
			os.Exit(0)
		}
		l.WithError(err).Fatal("app stopped")
	}
}

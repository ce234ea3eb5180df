package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/huynhanx03/boundedq/pkg/datastructs/queue"
	"github.com/huynhanx03/boundedq/pkg/logger"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "path to a YAML/JSON/TOML config file")
	pflag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()
	log = log.With(zap.String("run_id", uuid.NewString()))

	q, err := queue.New[int](cfg.Queue.Capacity, queue.WithLogger(log.Named("queue")))
	if err != nil {
		log.Fatal("create queue", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	d := &demo{q: q, cfg: cfg.Demo, log: log}
	if err := d.run(ctx); err != nil {
		log.Error("demo aborted", zap.Error(err))
	}
}

package main

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/huynhanx03/boundedq/pkg/datastructs/queue"
	"github.com/huynhanx03/boundedq/pkg/settings"
)

// demo drives one queue through the push/pop, get and close scenarios.
type demo struct {
	q   *queue.Bounded[int]
	cfg settings.Demo
	log *zap.Logger
}

func (d *demo) run(ctx context.Context) error {
	// Consumer starts first and blocks; the producer then pushes 1..n.
	if err := d.pushPop(ctx, "push pop"); err != nil {
		return err
	}
	d.get(func(i int) bool { return i == 1 }, 1)

	d.q.Close()
	if err := d.pushPop(ctx, "closed queue"); err != nil {
		return err
	}

	d.get(func(i int) bool { return i == 4 }, 4)
	d.get(func(i int) bool { return i == 5 }, 5)
	return nil
}

func (d *demo) pushPop(ctx context.Context, name string) error {
	log := d.log.With(zap.String("stage", name))
	log.Info("stage started")

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return d.popData(ctx, log, d.cfg.PopCount)
	})

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(time.Duration(d.cfg.StartDelay) * time.Millisecond):
	}

	g.Go(func() error {
		d.pushData(log, d.cfg.PushCount)
		return nil
	})

	err := g.Wait()
	log.Info("stage ended", zap.Int("buffered", d.q.Len()))
	return err
}

func (d *demo) pushData(log *zap.Logger, count int) {
	log.Info("push worker started", zap.Int("count", count))
	for i := 1; i <= count; i++ {
		if err := d.q.Push(i); err != nil {
			log.Warn("push rejected", zap.Int("value", i), zap.Error(err))
			continue
		}
		log.Info("pushed", zap.Int("value", i))
	}
	log.Info("push worker ended")
}

func (d *demo) popData(ctx context.Context, log *zap.Logger, count int) error {
	log.Info("pop worker started", zap.Int("count", count))
	for i := 1; i <= count; i++ {
		v, err := d.q.PopContext(ctx)
		if errors.Is(err, queue.ErrClosed) {
			log.Info("pop returned no data, queue closed", zap.Int("attempt", i))
			continue
		}
		if err != nil {
			return err
		}
		log.Info("popped", zap.Int("attempt", i), zap.Int("value", v))
	}
	log.Info("pop worker ended")
	return nil
}

func (d *demo) get(pred func(int) bool, want int) {
	if v, ok := d.q.Get(pred); ok {
		d.log.Info("get matched", zap.Int("want", want), zap.Int("value", v))
		return
	}
	d.log.Info("get found no match", zap.Int("want", want))
}

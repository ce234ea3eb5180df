package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/huynhanx03/boundedq/pkg/datastructs/queue"
	"github.com/huynhanx03/boundedq/pkg/settings"
)

func newDemo(t *testing.T, cfg settings.Demo) (*demo, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.InfoLevel)
	q, err := queue.New[int](100)
	require.NoError(t, err)
	return &demo{q: q, cfg: cfg, log: zap.New(core)}, logs
}

func TestDemo_Run(t *testing.T) {
	d, logs := newDemo(t, settings.Demo{PushCount: 5, PopCount: 3, StartDelay: 10})

	require.NoError(t, d.run(context.Background()))

	var popped []int64
	for _, e := range logs.FilterMessage("popped").All() {
		popped = append(popped, e.ContextMap()["value"].(int64))
	}
	assert.ElementsMatch(t, []int64{1, 2, 3}, popped)

	assert.Equal(t, 5, logs.FilterMessage("pushed").Len())
	assert.Equal(t, 5, logs.FilterMessage("push rejected").Len())
	assert.Equal(t, 3, logs.FilterMessage("pop returned no data, queue closed").Len())

	misses := logs.FilterMessage("get found no match").All()
	require.Len(t, misses, 1)
	assert.EqualValues(t, 1, misses[0].ContextMap()["want"])

	hits := logs.FilterMessage("get matched").All()
	require.Len(t, hits, 2)
	assert.EqualValues(t, 4, hits[0].ContextMap()["value"])
	assert.EqualValues(t, 5, hits[1].ContextMap()["value"])

	assert.True(t, d.q.IsClosed())
	assert.Equal(t, []int{4, 5}, d.q.Snapshot())
}

func TestDemo_PushPopCanceled(t *testing.T) {
	// More pops than pushes: the consumer stays blocked until ctx is done.
	d, _ := newDemo(t, settings.Demo{PushCount: 1, PopCount: 3})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := d.pushPop(ctx, "short")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

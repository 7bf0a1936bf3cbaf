package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunOnce(t *testing.T) {
	s := NewScheduler()

	var ran atomic.Int32
	s.AddJob("counter", time.Hour, func(ctx context.Context) error {
		ran.Add(1)
		return nil
	})
	s.AddJob("failing", time.Hour, func(ctx context.Context) error {
		return errors.New("boom")
	})

	s.RunOnce(context.Background())
	s.RunOnce(context.Background())

	assert.Equal(t, int32(2), ran.Load())
}

func TestStartStop(t *testing.T) {
	s := NewScheduler()

	var ran atomic.Int32
	s.AddJob("ticker", 10*time.Millisecond, func(ctx context.Context) error {
		ran.Add(1)
		return nil
	})

	s.Start()
	time.Sleep(35 * time.Millisecond)
	s.Stop()

	// Runs once at start plus at least one tick.
	assert.GreaterOrEqual(t, ran.Load(), int32(2))

	after := ran.Load()
	time.Sleep(25 * time.Millisecond)
	assert.Equal(t, after, ran.Load())
}

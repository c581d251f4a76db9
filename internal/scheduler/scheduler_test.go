package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyValidation(t *testing.T) {
	s := New(time.UTC)
	noop := func(context.Context) error { return nil }

	require.NoError(t, s.Daily("report", 8, 0, noop))
	assert.Error(t, s.Daily("report", 9, 0, noop))
	assert.Error(t, s.Daily("bad-hour", 24, 0, noop))
	assert.Error(t, s.Daily("bad-minute", 8, 60, noop))
}

func TestRunNow(t *testing.T) {
	s := New(time.UTC)
	calls := 0
	require.NoError(t, s.Daily("report", 8, 0, func(ctx context.Context) error {
		calls++
		return ctx.Err()
	}))

	require.NoError(t, s.RunNow("report"))
	assert.Equal(t, 1, calls)
	assert.Error(t, s.RunNow("missing"))
}

func TestRunNowPropagatesError(t *testing.T) {
	s := New(time.UTC)
	boom := errors.New("boom")
	require.NoError(t, s.Daily("report", 8, 0, func(context.Context) error { return boom }))
	assert.ErrorIs(t, s.RunNow("report"), boom)
}

func TestStartNextStop(t *testing.T) {
	s := New(time.UTC)
	require.NoError(t, s.Daily("report", 8, 30, func(context.Context) error { return nil }))
	assert.True(t, s.Next("report").IsZero())

	s.Start()
	s.Start()

	// cron computes Next asynchronously after Start
	require.Eventually(t, func() bool { return !s.Next("report").IsZero() }, time.Second, 10*time.Millisecond)
	next := s.Next("report").UTC()
	assert.Equal(t, 8, next.Hour())
	assert.Equal(t, 30, next.Minute())
	assert.True(t, next.After(time.Now()))
	assert.True(t, s.Next("missing").IsZero())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
}

func TestStopCancelsJobContext(t *testing.T) {
	s := New(nil)
	var seen context.Context
	require.NoError(t, s.Daily("report", 8, 0, func(ctx context.Context) error {
		seen = ctx
		return nil
	}))
	require.NoError(t, s.RunNow("report"))
	require.NoError(t, s.Stop(context.Background()))
	assert.ErrorIs(t, seen.Err(), context.Canceled)
}

package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunOnce_ExecutesEveryJob(t *testing.T) {
	s := NewScheduler()

	ran := make(map[string]int)
	s.AddJob("first", time.Hour, func(ctx context.Context) error {
		ran["first"]++
		return nil
	})
	s.AddJob("second", time.Hour, func(ctx context.Context) error {
		ran["second"]++
		return errors.New("boom")
	})

	s.RunOnce(context.Background())

	assert.Equal(t, 1, ran["first"])
	assert.Equal(t, 1, ran["second"], "a failing job must not stop the others")
}

func TestExecuteJob_BoundsTheRunContext(t *testing.T) {
	s := NewScheduler()

	var deadline time.Time
	var hasDeadline bool
	s.executeJob(Job{
		Name:     "bounded",
		Interval: time.Hour,
		Fn: func(ctx context.Context) error {
			deadline, hasDeadline = ctx.Deadline()
			return nil
		},
	})

	assert.True(t, hasDeadline)
	assert.WithinDuration(t, time.Now().Add(jobRunTimeout), deadline, time.Minute)
}

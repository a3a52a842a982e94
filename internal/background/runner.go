// Package background runs supervised fire-and-forget tasks.
//
// A task runs detached from the request that started it. Its failure is
// logged, counted and published on the error channel, and never reaches the
// request that dispatched it.
package background

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"HireEcho-backend/internal/metrics"
)

// errorBuffer is the capacity of the error channel. Errors are dropped from
// the channel, not from the log, once it is full.
const errorBuffer = 64

// TaskError reports a failed task.
type TaskError struct {
	ID     string
	Name   string
	Fields logrus.Fields
	Err    error
}

func (e TaskError) Error() string {
	return fmt.Sprintf("task %s (%s): %v", e.Name, e.ID, e.Err)
}

func (e TaskError) Unwrap() error {
	return e.Err
}

// Runner supervises background tasks.
type Runner struct {
	log     logrus.FieldLogger
	timeout time.Duration

	wg     sync.WaitGroup
	errs   chan TaskError
	base   context.Context
	cancel context.CancelFunc
}

// NewRunner creates a Runner. Each task gets its own context bounded by timeout;
// a non-positive timeout leaves tasks unbounded.
func NewRunner(log logrus.FieldLogger, timeout time.Duration) *Runner {
	base, cancel := context.WithCancel(context.Background())
	return &Runner{
		log:     log,
		timeout: timeout,
		errs:    make(chan TaskError, errorBuffer),
		base:    base,
		cancel:  cancel,
	}
}

// Go starts task in its own goroutine and returns the task ID.
func (r *Runner) Go(name string, fields logrus.Fields, task func(ctx context.Context) error) string {
	id := uuid.NewString()
	r.wg.Add(1)
	metrics.TaskStarted()

	go func() {
		defer r.wg.Done()

		ctx := r.base
		if r.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, r.timeout)
			defer cancel()
		}

		start := time.Now()
		panicked, err := r.run(ctx, task)
		entry := r.log.WithFields(fields).WithFields(logrus.Fields{"task": name, "task_id": id})

		switch {
		case panicked:
			metrics.RecordTask(name, metrics.OutcomePanic, time.Since(start))
			entry.WithError(err).Error("background task panicked")
		case err != nil:
			metrics.RecordTask(name, metrics.OutcomeError, time.Since(start))
			entry.WithError(err).Error("background task failed")
		default:
			metrics.RecordTask(name, metrics.OutcomeSuccess, time.Since(start))
			entry.Debug("background task done")
			return
		}

		select {
		case r.errs <- TaskError{ID: id, Name: name, Fields: fields, Err: err}:
		default:
		}
	}()

	return id
}

func (r *Runner) run(ctx context.Context, task func(ctx context.Context) error) (panicked bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			panicked = true
			err = fmt.Errorf("panic: %v", rec)
		}
	}()
	return false, task(ctx)
}

// Errors returns the channel failed tasks are published on.
func (r *Runner) Errors() <-chan TaskError {
	return r.errs
}

// Wait blocks until every started task has returned or ctx is done. When ctx
// ends first, the remaining tasks are cancelled and ctx's error is returned.
func (r *Runner) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		r.cancel()
		return ctx.Err()
	}
}

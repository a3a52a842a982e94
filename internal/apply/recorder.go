// Package apply records job applications.
package apply

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"HireEcho-backend/internal/metrics"
	"HireEcho-backend/internal/model"
	"HireEcho-backend/internal/store"
)

// IncrementTask is the background task name of the applicant counter update.
const IncrementTask = "increment_applicants"

// ApplicationInserter persists applications.
type ApplicationInserter interface {
	Insert(ctx context.Context, app *model.AppliedJob) (*model.InsertResult, error)
}

// ApplicantCounter bumps the applicant counter of a job atomically.
type ApplicantCounter interface {
	IncrementApplicants(ctx context.Context, id primitive.ObjectID, delta int) (bool, error)
}

// TaskRunner runs detached tasks.
type TaskRunner interface {
	Go(name string, fields logrus.Fields, task func(ctx context.Context) error) string
}

// Recorder inserts an application and then, detached from the caller,
// increments the applicant counter of the referenced job.
type Recorder struct {
	apps   ApplicationInserter
	jobs   ApplicantCounter
	runner TaskRunner
	log    logrus.FieldLogger
}

// NewRecorder creates a Recorder.
func NewRecorder(apps ApplicationInserter, jobs ApplicantCounter, runner TaskRunner, log logrus.FieldLogger) *Recorder {
	return &Recorder{apps: apps, jobs: jobs, runner: runner, log: log}
}

// Submit stores app and returns the insert result once the insert is
// acknowledged. The counter increment is dispatched afterwards and its
// outcome is not reported to the caller. A rejected insert dispatches nothing.
func (r *Recorder) Submit(ctx context.Context, app *model.AppliedJob) (*model.InsertResult, error) {
	ref, ok := app.JobReference()
	if !ok {
		return nil, store.ErrMalformedIdentifier
	}
	jobID, err := store.ParseID(ref)
	if err != nil {
		return nil, err
	}
	app.JobID = jobID

	res, err := r.apps.Insert(ctx, app)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			metrics.RecordIncrement(metrics.IncrementDuplicate)
		}
		return nil, err
	}

	fields := logrus.Fields{
		"job_id":         jobID.Hex(),
		"application_id": res.InsertedID.Hex(),
	}
	r.runner.Go(IncrementTask, fields, func(ctx context.Context) error {
		matched, err := r.jobs.IncrementApplicants(ctx, jobID, 1)
		if err != nil {
			metrics.RecordIncrement(metrics.IncrementFailed)
			return err
		}
		if !matched {
			metrics.RecordIncrement(metrics.IncrementNoMatch)
			r.log.WithFields(fields).Warn("application references no existing job")
			return nil
		}
		metrics.RecordIncrement(metrics.IncrementApplied)
		return nil
	})

	return res, nil
}

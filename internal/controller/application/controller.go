// Package application provides HTTP handlers for job application operations.
package application

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"HireEcho-backend/internal/filter"
	"HireEcho-backend/internal/model"
	"HireEcho-backend/internal/utilities"
)

// Store is the application persistence the handlers need.
type Store interface {
	Find(ctx context.Context, f filter.ApplicationFilter) ([]model.AppliedJob, error)
	FindIDs(ctx context.Context, f filter.ApplicationFilter) ([]model.IDOnly, error)
}

// Recorder records a submitted application.
type Recorder interface {
	Submit(ctx context.Context, app *model.AppliedJob) (*model.InsertResult, error)
}

// ApplicationController handles job application related endpoints
type ApplicationController struct {
	Applications Store
	Recorder     Recorder
}

// NewApplicationController creates a new instance of ApplicationController.
func NewApplicationController(apps Store, recorder Recorder) *ApplicationController {
	return &ApplicationController{
		Applications: apps,
		Recorder:     recorder,
	}
}

// GetAppliedJobs lists applications.
// @Summary List applications
// @Description Both queries are optional and combined with AND.
// @Tags Application
// @Produce json
// @Param email query string false "Exact applicant email"
// @Param filterBy query string false "Exact category"
// @Success 200 {array} model.AppliedJob "Matching applications"
// @Failure 503 {object} utilities.ErrorResponse "Store unavailable"
// @Router /appliedJobs [get]
func (ac *ApplicationController) GetAppliedJobs(c *gin.Context) {
	apps, err := ac.Applications.Find(c.Request.Context(), filter.ApplicationFilterFromQuery(c.Request.URL.Query()))
	if err != nil {
		utilities.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

// SubmitApplication records an application and bumps the job's applicant count.
// @Summary Apply to a job
// @Description The job is referenced by `jobId`, or by `_id` for older clients. The applicant counter is updated after the response is sent.
// @Tags Application
// @Accept json
// @Produce json
// @Param Cookie header string true "Session cookie" default(token=<your token>)
// @Param application body model.AppliedJob true "Application"
// @Success 200 {object} model.InsertResult "Insert acknowledgement"
// @Failure 400 {object} utilities.ErrorResponse "Malformed job reference or invalid body"
// @Failure 401 {object} utilities.ErrorResponse "Unauthorized"
// @Failure 409 {object} utilities.ErrorResponse "Already applied to this job"
// @Failure 413 {object} utilities.ErrorResponse "Body too large"
// @Failure 503 {object} utilities.ErrorResponse "Store unavailable"
// @Router /appliedJobs [post]
func (ac *ApplicationController) SubmitApplication(c *gin.Context) {
	app := model.AppliedJob{}
	if err := utilities.BindJSON(c, &app); err != nil {
		utilities.RespondError(c, err)
		return
	}

	res, err := ac.Recorder.Submit(c.Request.Context(), &app)
	if err != nil {
		utilities.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// JobAppliedCount lists the identifiers of an applicant's applications.
// @Summary List application identifiers
// @Tags Application
// @Produce json
// @Param Cookie header string true "Session cookie" default(token=<your token>)
// @Param email query string false "Applicant email, must match the token's email claim"
// @Success 200 {array} model.IDOnly "Application identifiers"
// @Failure 401 {object} utilities.ErrorResponse "Unauthorized"
// @Failure 403 {object} utilities.ErrorResponse "Email belongs to another user"
// @Failure 503 {object} utilities.ErrorResponse "Store unavailable"
// @Router /jobAppliedCount [get]
func (ac *ApplicationController) JobAppliedCount(c *gin.Context) {
	f := filter.ApplicationFilter{Email: filter.ApplicationFilterFromQuery(c.Request.URL.Query()).Email}
	ids, err := ac.Applications.FindIDs(c.Request.Context(), f)
	if err != nil {
		utilities.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ids)
}

// Package job provides HTTP handlers for job posting operations.
package job

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"HireEcho-backend/internal/filter"
	"HireEcho-backend/internal/model"
	"HireEcho-backend/internal/store"
	"HireEcho-backend/internal/utilities"
)

// Store is the job persistence the handlers need.
type Store interface {
	Find(ctx context.Context, f filter.JobFilter) ([]model.Job, error)
	FindByID(ctx context.Context, id string) (*model.Job, error)
	Insert(ctx context.Context, job *model.Job) (*model.InsertResult, error)
	Update(ctx context.Context, id string, fields bson.M) (*model.UpdateResult, error)
	Delete(ctx context.Context, id string) (*model.DeleteResult, error)
	FindIDs(ctx context.Context, f filter.JobFilter) ([]model.IDOnly, error)
}

// JobController handles job related endpoints
type JobController struct {
	Jobs Store
}

// NewJobController creates a new instance of JobController
func NewJobController(jobs Store) *JobController {
	return &JobController{
		Jobs: jobs,
	}
}

// GetAllJobs lists the jobs matching the optional query parameters.
// @Summary List jobs
// @Description Every query is optional. Supplied parameters are combined with AND; none returns every job.
// @Tags Job
// @Produce json
// @Param category query string false "Exact, case-sensitive category"
// @Param search query string false "Case-insensitive substring of the job title"
// @Param email query string false "Exact buyer email"
// @Success 200 {array} model.Job "Matching jobs"
// @Failure 503 {object} utilities.ErrorResponse "Store unavailable"
// @Router /allJobs [get]
func (jc *JobController) GetAllJobs(c *gin.Context) {
	jobs, err := jc.Jobs.Find(c.Request.Context(), filter.JobFilterFromQuery(c.Request.URL.Query()))
	if err != nil {
		utilities.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// AddJob stores a new job posting.
// @Summary Post a job
// @Tags Job
// @Accept json
// @Produce json
// @Param Cookie header string true "Session cookie" default(token=<your token>)
// @Param job body model.Job true "Job posting, fields other than the documented ones are stored as given"
// @Success 200 {object} model.InsertResult "Insert acknowledgement"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Failure 401 {object} utilities.ErrorResponse "Unauthorized"
// @Failure 413 {object} utilities.ErrorResponse "Body too large"
// @Failure 503 {object} utilities.ErrorResponse "Store unavailable"
// @Router /addJobs [post]
func (jc *JobController) AddJob(c *gin.Context) {
	job := model.Job{}
	if err := utilities.BindJSON(c, &job); err != nil {
		utilities.RespondError(c, err)
		return
	}

	res, err := jc.Jobs.Insert(c.Request.Context(), &job)
	if err != nil {
		utilities.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetJobDetails returns one job, or null when no job has the identifier.
// @Summary Get a job
// @Tags Job
// @Produce json
// @Param Cookie header string true "Session cookie" default(token=<your token>)
// @Param id path string true "Job identifier"
// @Success 200 {object} model.Job "The job, or null"
// @Failure 400 {object} utilities.ErrorResponse "Malformed identifier"
// @Failure 401 {object} utilities.ErrorResponse "Unauthorized"
// @Failure 503 {object} utilities.ErrorResponse "Store unavailable"
// @Router /jobDetails/{id} [get]
func (jc *JobController) GetJobDetails(c *gin.Context) {
	job, err := jc.Jobs.FindByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		utilities.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// UpdateJobDetails overwrites the given fields of a job.
// @Summary Update a job
// @Description Each top-level field of the body replaces the stored one. `_id` and `jobApplicantsNumber` are ignored.
// @Tags Job
// @Accept json
// @Produce json
// @Param Cookie header string true "Session cookie" default(token=<your token>)
// @Param id path string true "Job identifier"
// @Param job body object true "Fields to overwrite"
// @Success 200 {object} model.UpdateResult "Update acknowledgement"
// @Failure 400 {object} utilities.ErrorResponse "Malformed identifier or invalid body"
// @Failure 401 {object} utilities.ErrorResponse "Unauthorized"
// @Failure 413 {object} utilities.ErrorResponse "Body too large"
// @Failure 503 {object} utilities.ErrorResponse "Store unavailable"
// @Router /jobDetailsUpdate/{id} [put]
func (jc *JobController) UpdateJobDetails(c *gin.Context) {
	id := c.Param("id")
	if _, err := store.ParseID(id); err != nil {
		utilities.RespondError(c, err)
		return
	}

	var fields map[string]interface{}
	if err := utilities.BindJSON(c, &fields); err != nil {
		utilities.RespondError(c, err)
		return
	}
	if fields == nil {
		utilities.RespondError(c, fmt.Errorf("%w: body must be an object", utilities.ErrInvalidBody))
		return
	}

	res, err := jc.Jobs.Update(c.Request.Context(), id, bson.M(fields))
	if err != nil {
		utilities.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// DeleteMyJob removes a job.
// @Summary Delete a job
// @Tags Job
// @Produce json
// @Param Cookie header string true "Session cookie" default(token=<your token>)
// @Param id path string true "Job identifier"
// @Success 200 {object} model.DeleteResult "Delete acknowledgement, deletedCount is 0 when nothing matched"
// @Failure 400 {object} utilities.ErrorResponse "Malformed identifier"
// @Failure 401 {object} utilities.ErrorResponse "Unauthorized"
// @Failure 503 {object} utilities.ErrorResponse "Store unavailable"
// @Router /myJob/{id} [delete]
func (jc *JobController) DeleteMyJob(c *gin.Context) {
	res, err := jc.Jobs.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		utilities.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// JobPostedCount lists the identifiers of the jobs posted by a buyer.
// @Summary List posted job identifiers
// @Tags Job
// @Produce json
// @Param Cookie header string true "Session cookie" default(token=<your token>)
// @Param email query string false "Buyer email, must match the token's email claim"
// @Success 200 {array} model.IDOnly "Job identifiers"
// @Failure 401 {object} utilities.ErrorResponse "Unauthorized"
// @Failure 403 {object} utilities.ErrorResponse "Email belongs to another user"
// @Failure 503 {object} utilities.ErrorResponse "Store unavailable"
// @Router /jobPostedCount [get]
func (jc *JobController) JobPostedCount(c *gin.Context) {
	f := filter.JobFilter{Email: filter.JobFilterFromQuery(c.Request.URL.Query()).Email}
	ids, err := jc.Jobs.FindIDs(c.Request.Context(), f)
	if err != nil {
		utilities.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ids)
}

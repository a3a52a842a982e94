package application

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"HireEcho-backend/internal/filter"
	"HireEcho-backend/internal/model"
	"HireEcho-backend/internal/store"
	"HireEcho-backend/internal/testutil"
	"HireEcho-backend/internal/utilities"
)

type fakeStore struct {
	apps       []model.AppliedJob
	lastFilter filter.ApplicationFilter
	err        error
}

func (f *fakeStore) Find(_ context.Context, fl filter.ApplicationFilter) ([]model.AppliedJob, error) {
	f.lastFilter = fl
	if f.err != nil {
		return nil, f.err
	}
	out := []model.AppliedJob{}
	for _, a := range f.apps {
		if fl.Email != nil && a.ApplicantDetails.Email != *fl.Email {
			continue
		}
		if fl.Category != nil && a.Category != *fl.Category {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeStore) FindIDs(ctx context.Context, fl filter.ApplicationFilter) ([]model.IDOnly, error) {
	apps, err := f.Find(ctx, fl)
	if err != nil {
		return nil, err
	}
	ids := []model.IDOnly{}
	for _, a := range apps {
		ids = append(ids, model.IDOnly{ID: a.ID})
	}
	return ids, nil
}

type fakeRecorder struct {
	submitted []model.AppliedJob
	err       error
}

func (f *fakeRecorder) Submit(_ context.Context, app *model.AppliedJob) (*model.InsertResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := app.JobReference(); !ok {
		return nil, store.ErrMalformedIdentifier
	}
	app.ID = primitive.NewObjectID()
	f.submitted = append(f.submitted, *app)
	return &model.InsertResult{Acknowledged: true, InsertedID: app.ID}, nil
}

var (
	designApp = model.AppliedJob{
		ID:               primitive.NewObjectID(),
		JobID:            primitive.NewObjectID(),
		ApplicantDetails: model.ApplicantDetails{Email: "b@y.com"},
		Category:         "design",
	}
	webApp = model.AppliedJob{
		ID:               primitive.NewObjectID(),
		JobID:            primitive.NewObjectID(),
		ApplicantDetails: model.ApplicantDetails{Email: "b@y.com"},
		Category:         "web-development",
	}
)

func engine(fs *fakeStore, fr *fakeRecorder) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ac := NewApplicationController(fs, fr)
	r := gin.New()
	r.GET("/appliedJobs", ac.GetAppliedJobs)
	r.POST("/appliedJobs", ac.SubmitApplication)
	r.GET("/jobAppliedCount", ac.JobAppliedCount)
	return r
}

func TestGetAppliedJobs(t *testing.T) {
	fs := &fakeStore{apps: []model.AppliedJob{designApp, webApp}}
	r := engine(fs, &fakeRecorder{})

	rec := testutil.MakeRequest(nil, "", r, "/appliedJobs?email=b@y.com&filterBy=design", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)

	var apps []map[string]interface{}
	require.NoError(t, testutil.DecodeJSON(rec, &apps))
	require.Len(t, apps, 1)
	assert.Equal(t, designApp.ID.Hex(), apps[0]["_id"])
	assert.Equal(t, designApp.JobID.Hex(), apps[0]["jobId"])

	rec = testutil.MakeRequest(nil, "", r, "/appliedJobs", http.MethodGet)
	require.NoError(t, testutil.DecodeJSON(rec, &apps))
	assert.Len(t, apps, 2)
	assert.Equal(t, filter.ApplicationFilter{}, fs.lastFilter)
}

func TestGetAppliedJobs_StoreError(t *testing.T) {
	fs := &fakeStore{err: fmt.Errorf("decode: %w", store.ErrStoreUnavailable)}
	rec, resp := testutil.MakeJSONRequest(nil, "", engine(fs, &fakeRecorder{}), "/appliedJobs", http.MethodGet)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, utilities.KindStoreUnavailable, resp["error"])
}

func TestSubmitApplication_LegacyReference(t *testing.T) {
	fr := &fakeRecorder{}
	jobID := primitive.NewObjectID()
	body := fmt.Sprintf(`{"_id":%q,"applicantDetails":{"email":"b@y.com","name":"B"},"category":"design"}`, jobID.Hex())

	rec, resp := testutil.MakeJSONRequest(body, "", engine(&fakeStore{}, fr), "/appliedJobs", http.MethodPost)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, resp["acknowledged"])
	require.Len(t, fr.submitted, 1)
	ref, ok := fr.submitted[0].JobReference()
	assert.True(t, ok)
	assert.Equal(t, jobID.Hex(), ref)
	assert.NotEqual(t, jobID.Hex(), resp["insertedId"])
	assert.Equal(t, "B", fr.submitted[0].ApplicantDetails.Extra["name"])
}

func TestSubmitApplication_Errors(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		err    error
		status int
		kind   string
	}{
		{"no reference", `{"applicantDetails":{"email":"b@y.com"}}`, nil, http.StatusBadRequest, utilities.KindMalformedIdentifier},
		{"broken json", `{"_id":`, nil, http.StatusBadRequest, utilities.KindInvalidBody},
		{"duplicate", `{"jobId":"507f1f77bcf86cd799439011"}`, fmt.Errorf("insert application: %w", store.ErrDuplicate), http.StatusConflict, utilities.KindAlreadyApplied},
		{"store down", `{"jobId":"507f1f77bcf86cd799439011"}`, store.ErrStoreUnavailable, http.StatusServiceUnavailable, utilities.KindStoreUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fr := &fakeRecorder{err: tc.err}
			rec, resp := testutil.MakeJSONRequest(tc.body, "", engine(&fakeStore{}, fr), "/appliedJobs", http.MethodPost)
			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, tc.kind, resp["error"])
			assert.Empty(t, fr.submitted)
		})
	}
}

func TestJobAppliedCount(t *testing.T) {
	fs := &fakeStore{apps: []model.AppliedJob{designApp, webApp}}
	rec := testutil.MakeRequest(nil, "", engine(fs, &fakeRecorder{}), "/jobAppliedCount?email=b@y.com&filterBy=design", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	var ids []model.IDOnly
	require.NoError(t, testutil.DecodeJSON(rec, &ids))
	assert.ElementsMatch(t, []model.IDOnly{{ID: designApp.ID}, {ID: webApp.ID}}, ids)
	assert.Nil(t, fs.lastFilter.Category)
}

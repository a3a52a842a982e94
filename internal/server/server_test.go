package server

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"HireEcho-backend/internal/auth"
	"HireEcho-backend/internal/background"
	"HireEcho-backend/internal/config"
	"HireEcho-backend/internal/database"
	"HireEcho-backend/internal/testutil"
	"HireEcho-backend/internal/utilities"
)

var testDB *database.Service

func TestMain(m *testing.M) {
	flag.Parse()
	gin.SetMode(gin.TestMode)
	if testing.Short() {
		os.Exit(m.Run())
	}

	dbTeardown, db, err := database.GetTestDB()
	if err != nil {
		log.Fatalf("could not start mongo container: %v", err)
	}
	testDB = db

	code := m.Run()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if dbTeardown != nil && dbTeardown(ctx) != nil {
		log.Printf("could not teardown mongo container")
	}
	os.Exit(code)
}

const testOrigin = "http://localhost:5173"

// newTestEngine builds the full route table over the test database.
func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	if testDB == nil {
		t.Skip("document store not available in short mode")
	}

	cfg := &config.Config{
		Port:             5000,
		Env:              "test",
		TokenSecret:      "server-test-secret",
		TokenTTL:         2 * time.Hour,
		AllowOrigin:      testOrigin,
		RateLimit:        10000,
		IncrementTimeout: 5 * time.Second,
	}
	silent, _ := test.NewNullLogger()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	runner := background.NewRunner(silent, cfg.IncrementTimeout)
	t.Cleanup(func() {
		waitCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		_ = runner.Wait(waitCtx)
	})

	s := New(cfg, testDB, auth.NewInMemoryBlacklistStore(ctx, time.Minute), runner, silent)
	return s.RegisterRoutes().(*gin.Engine)
}

// login posts claims to /jwt and returns the token cookie value.
func login(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	rec := testutil.MakeRequest(map[string]string{"email": email}, "", r, "/jwt", http.MethodPost)
	require.Equal(t, http.StatusOK, rec.Code)
	for _, c := range rec.Result().Cookies() {
		if c.Name == utilities.TokenCookieName {
			return c.Value
		}
	}
	t.Fatal("no token cookie set")
	return ""
}

func applicants(t *testing.T, r *gin.Engine, token, jobID string) float64 {
	t.Helper()
	rec, resp := testutil.MakeJSONRequest(nil, token, r, "/jobDetails/"+jobID, http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	n, _ := resp["jobApplicantsNumber"].(float64)
	return n
}

func TestRoot(t *testing.T) {
	r := newTestEngine(t)
	rec := testutil.MakeRequest(nil, "", r, "/", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, RootMessage, rec.Body.String())
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestHealth(t *testing.T) {
	r := newTestEngine(t)
	rec, resp := testutil.MakeJSONRequest(nil, "", r, "/health", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "up", resp["status"])
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestEngine(t)
	testutil.MakeRequest(nil, "", r, "/allJobs", http.MethodGet)

	rec := testutil.MakeRequest(nil, "", r, "/metrics", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "hireecho_http_requests_total")
}

func TestSwagger(t *testing.T) {
	r := newTestEngine(t)
	rec := testutil.MakeRequest(nil, "", r, "/swagger/doc.json", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/jobDetails/{id}")
}

func TestCORS(t *testing.T) {
	r := newTestEngine(t)

	req, _ := http.NewRequest(http.MethodOptions, "/allJobs", nil)
	req.Header.Set("Origin", testOrigin)
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, testOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))

	req, _ = http.NewRequest(http.MethodGet, "/allJobs", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestPublicRoutes(t *testing.T) {
	r := newTestEngine(t)

	for _, path := range []string{"/allJobs", "/companies", "/appliedJobs"} {
		rec := testutil.MakeRequest(nil, "", r, path, http.MethodGet)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestGuardedRoutesRequireToken(t *testing.T) {
	r := newTestEngine(t)
	id := database.TestJob1.ID.Hex()

	routes := []struct{ method, path string }{
		{http.MethodPost, "/addJobs"},
		{http.MethodGet, "/jobDetails/" + id},
		{http.MethodPut, "/jobDetailsUpdate/" + id},
		{http.MethodDelete, "/myJob/" + id},
		{http.MethodPost, "/appliedJobs"},
		{http.MethodGet, "/jobAppliedCount"},
		{http.MethodGet, "/jobPostedCount"},
	}
	for _, rt := range routes {
		rec, resp := testutil.MakeJSONRequest(nil, "", r, rt.path, rt.method)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, rt.path)
		assert.Equal(t, utilities.KindUnauthorized, resp["error"], rt.path)
	}

	rec := testutil.MakeRequest(nil, "not.a.token", r, "/jobDetails/"+id, http.MethodGet)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTokenThenJobDetails(t *testing.T) {
	r := newTestEngine(t)
	token := login(t, r, "viewer@example.com")

	rec, resp := testutil.MakeJSONRequest(nil, token, r, "/jobDetails/"+database.TestJob1.ID.Hex(), http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, database.TestJob1.JobTitle, resp["jobTitle"])
	assert.Equal(t, database.TestJob1.ID.Hex(), resp["_id"])
}

func TestLogoutRevokesToken(t *testing.T) {
	r := newTestEngine(t)
	token := login(t, r, "leaving@example.com")
	path := "/jobDetails/" + database.TestJob1.ID.Hex()

	require.Equal(t, http.StatusOK, testutil.MakeRequest(nil, token, r, path, http.MethodGet).Code)

	rec, resp := testutil.MakeJSONRequest(nil, token, r, "/logout", http.MethodPost)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, resp["success"])

	rec, resp = testutil.MakeJSONRequest(nil, token, r, path, http.MethodGet)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, utilities.KindUnauthorized, resp["error"])
}

func TestEmailScope(t *testing.T) {
	r := newTestEngine(t)
	token := login(t, r, database.TestBuyerEmail)

	rec := testutil.MakeRequest(nil, token, r, "/jobPostedCount?email="+database.TestBuyerEmail, http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	var ids []map[string]interface{}
	require.NoError(t, testutil.DecodeJSON(rec, &ids))
	assert.Len(t, ids, 2)

	rec, resp := testutil.MakeJSONRequest(nil, token, r, "/jobAppliedCount?email="+database.TestApplicantEmail, http.MethodGet)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, utilities.KindForbidden, resp["error"])
}

func TestApplyIncrementsApplicants(t *testing.T) {
	r := newTestEngine(t)
	token := login(t, r, "applicant2@example.com")
	jobID := database.TestJob2.ID.Hex()
	before := applicants(t, r, token, jobID)

	// Older clients send the job identifier as _id.
	body := fmt.Sprintf(`{"_id":%q,"applicantDetails":{"email":"applicant2@example.com"},"category":%q}`,
		jobID, database.TestJob2.Category)
	rec, resp := testutil.MakeJSONRequest(body, token, r, "/appliedJobs", http.MethodPost)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, resp["acknowledged"])
	assert.NotEqual(t, jobID, resp["insertedId"])

	assert.Eventually(t, func() bool {
		return applicants(t, r, token, jobID) == before+1
	}, 5*time.Second, 50*time.Millisecond)

	rec, resp = testutil.MakeJSONRequest(body, token, r, "/appliedJobs", http.MethodPost)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, utilities.KindAlreadyApplied, resp["error"])

	rec = testutil.MakeRequest(nil, "", r, "/appliedJobs?email=applicant2@example.com", http.MethodGet)
	var apps []map[string]interface{}
	require.NoError(t, testutil.DecodeJSON(rec, &apps))
	require.Len(t, apps, 1)
	assert.Equal(t, jobID, apps[0]["jobId"])

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, before+1, applicants(t, r, token, jobID))
}

func TestApplyMalformedReference(t *testing.T) {
	r := newTestEngine(t)
	token := login(t, r, "applicant3@example.com")

	rec, resp := testutil.MakeJSONRequest(`{"jobId":"nope","applicantDetails":{"email":"applicant3@example.com"}}`,
		token, r, "/appliedJobs", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, utilities.KindMalformedIdentifier, resp["error"])
}

func TestConcurrentApplications(t *testing.T) {
	r := newTestEngine(t)
	token := login(t, r, "buyer3@example.com")

	rec, resp := testutil.MakeJSONRequest(`{"jobTitle":"Load test","category":"web-development","buyer":{"buyerEmail":"buyer3@example.com"}}`,
		token, r, "/addJobs", http.MethodPost)
	require.Equal(t, http.StatusOK, rec.Code)
	jobID, _ := resp["insertedId"].(string)
	require.NotEmpty(t, jobID)

	const n = 25
	var g errgroup.Group
	for i := 0; i < n; i++ {
		body := fmt.Sprintf(`{"jobId":%q,"applicantDetails":{"email":"bulk%d@example.com"},"category":"web-development"}`, jobID, i)
		g.Go(func() error {
			rec := testutil.MakeRequest(body, token, r, "/appliedJobs", http.MethodPost)
			if rec.Code != http.StatusOK {
				return fmt.Errorf("status %d: %s", rec.Code, rec.Body.String())
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Eventually(t, func() bool {
		return applicants(t, r, token, jobID) == n
	}, 10*time.Second, 100*time.Millisecond)
}

func TestUpdateKeepsApplicantCounter(t *testing.T) {
	r := newTestEngine(t)
	token := login(t, r, database.TestOtherBuyer)
	jobID := database.TestJob3.ID.Hex()
	before := applicants(t, r, token, jobID)

	rec, resp := testutil.MakeJSONRequest(`{"jobTitle":"SEO Campaign 2027","jobApplicantsNumber":999}`,
		token, r, "/jobDetailsUpdate/"+jobID, http.MethodPut)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, resp["matchedCount"])

	_, job := testutil.MakeJSONRequest(nil, token, r, "/jobDetails/"+jobID, http.MethodGet)
	assert.Equal(t, "SEO Campaign 2027", job["jobTitle"])
	assert.Equal(t, before, job["jobApplicantsNumber"])
}

func TestAddJobIgnoresApplicantCounter(t *testing.T) {
	r := newTestEngine(t)
	token := login(t, r, "buyer4@example.com")

	rec, resp := testutil.MakeJSONRequest(`{"jobTitle":"Translator","category":"writing","buyer":{"buyerEmail":"buyer4@example.com"},"jobApplicantsNumber":999}`,
		token, r, "/addJobs", http.MethodPost)
	require.Equal(t, http.StatusOK, rec.Code)
	jobID, _ := resp["insertedId"].(string)
	require.NotEmpty(t, jobID)

	assert.Equal(t, 0.0, applicants(t, r, token, jobID))
}

func TestBodyLimit(t *testing.T) {
	r := newTestEngine(t)
	token := login(t, r, "big@example.com")

	huge := `{"jobTitle":"` + strings.Repeat("a", 2<<20) + `"}`
	rec, resp := testutil.MakeJSONRequest(huge, token, r, "/addJobs", http.MethodPost)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, utilities.KindPayloadTooLarge, resp["error"])
}

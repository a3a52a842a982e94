package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordTask(t *testing.T) {
	before := testutil.ToFloat64(backgroundTasks.WithLabelValues("metrics-test", OutcomeError))

	TaskStarted()
	assert.Equal(t, 1.0, testutil.ToFloat64(backgroundInFlight))
	RecordTask("metrics-test", OutcomeError, 0)

	assert.Equal(t, before+1, testutil.ToFloat64(backgroundTasks.WithLabelValues("metrics-test", OutcomeError)))
	assert.Equal(t, 0.0, testutil.ToFloat64(backgroundInFlight))
}

func TestRecordIncrement(t *testing.T) {
	before := testutil.ToFloat64(applicantIncrements.WithLabelValues(IncrementNoMatch))
	RecordIncrement(IncrementNoMatch)
	assert.Equal(t, before+1, testutil.ToFloat64(applicantIncrements.WithLabelValues(IncrementNoMatch)))
}

func TestHTTPStarted(t *testing.T) {
	done := HTTPStarted()
	time.Sleep(time.Millisecond)
	done("get", "", http.StatusNotFound)

	assert.Equal(t, 1.0, testutil.ToFloat64(httpRequests.WithLabelValues("GET", "unmatched", "404")))
}

func TestHandler(t *testing.T) {
	RecordIncrement(IncrementApplied)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "hireecho_applications_applicant_increments_total")
}

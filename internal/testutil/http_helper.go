// Package testutil provides utility functions for testing HTTP handlers.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"

	"HireEcho-backend/internal/utilities"
)

// MakeJSONRequest is a helper function for making JSON requests in tests.
// A non-empty authToken is sent as the token cookie; a nil body sends no body.
func MakeJSONRequest(body interface{}, authToken string, r *gin.Engine, endpoint string, method string) (*httptest.ResponseRecorder, map[string]interface{}) {
	rec := MakeRequest(body, authToken, r, endpoint, method)

	resp := map[string]interface{}{}
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)

	return rec, resp
}

// MakeRequest sends a request to r and returns the recorded response.
func MakeRequest(body interface{}, authToken string, r *gin.Engine, endpoint string, method string) *httptest.ResponseRecorder {
	var reader io.Reader = http.NoBody
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	}

	req, _ := http.NewRequest(method, endpoint, reader)
	req.Header.Set("Content-Type", "application/json")
	if authToken != "" {
		req.AddCookie(&http.Cookie{Name: utilities.TokenCookieName, Value: authToken})
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

// DecodeJSON decodes the response body into out.
func DecodeJSON(rec *httptest.ResponseRecorder, out interface{}) error {
	return json.Unmarshal(rec.Body.Bytes(), out)
}

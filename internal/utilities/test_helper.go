package utilities

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
)

// SimulateAPICall is a helper function to simulate an API call to a gin handler function.
// It takes the handler function, route, HTTP method, request body and cookies as parameters.
// A nil body sends no body; a []byte body is sent as is.
// It returns the HTTP response recorder, parsed JSON response as a map, and any error encountered.
func SimulateAPICall(
	handlerFunc func(*gin.Context),
	route string,
	method string,
	body interface{},
	cookies ...*http.Cookie,
) (*httptest.ResponseRecorder, map[string]interface{}, error) {
	var reader io.Reader = http.NoBody
	switch b := body.(type) {
	case nil:
	case []byte:
		reader = bytes.NewReader(b)
	default:
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, nil, err
		}
		reader = bytes.NewReader(raw)
	}

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	req, err := http.NewRequest(method, route, reader)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	c.Request = req
	handlerFunc(c)

	var resp map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &resp)
	if err != nil {
		return rec, nil, err
	}
	return rec, resp, nil
}

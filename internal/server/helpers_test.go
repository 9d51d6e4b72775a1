package server_test

import (
	"net/http"
	"net/http/httptest"

	"github.com/h4ks-com/ewallet/internal/testharness"
)

func newRecorder(c *testharness.Case, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	c.Router.ServeHTTP(rec, req)
	return rec
}

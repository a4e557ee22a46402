package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/douglasgreyling/dispatch"
)

func okHandler(_ *dispatch.Request, _ dispatch.Next) *dispatch.Response {
	return dispatch.Text(http.StatusOK, "ok")
}

func TestRequestIDGenerated(t *testing.T) {
	var stored string
	r := dispatch.New().
		Use(RequestID()).
		Get("/", func(req *dispatch.Request, _ dispatch.Next) *dispatch.Response {
			stored = req.GetString(RequestIDKey)
			return dispatch.Text(http.StatusOK, "ok")
		})

	res := r.Dispatch(&dispatch.Request{Method: "GET", Path: "/"})

	id := res.Header["X-Request-ID"]
	require.NotEmpty(t, id)
	assert.Equal(t, id, stored)

	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

func TestRequestIDFromClient(t *testing.T) {
	r := dispatch.New().
		Use(RequestID()).
		Get("/", okHandler)

	res := r.Dispatch(&dispatch.Request{
		Method: "GET",
		Path:   "/",
		Header: map[string]string{"X-Request-ID": "client-id"},
	})

	assert.Equal(t, "client-id", res.Header["X-Request-ID"])
}

func TestRequestIDFromClientThroughServeHTTP(t *testing.T) {
	// net/http canonicalizes X-Request-ID to X-Request-Id on the way in;
	// the client's ID must survive that and come back on the response.
	r := dispatch.New().
		Use(RequestID()).
		Get("/", okHandler)

	hr := httptest.NewRequest("GET", "/", nil)
	hr.Header.Set("X-Request-ID", "client-id")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, hr)

	assert.Equal(t, "client-id", w.Header().Get("X-Request-ID"))
}

func TestRequestIDIgnoresClientWhenDisallowed(t *testing.T) {
	r := dispatch.New().
		Use(RequestID(WithAllowClientID(false))).
		Get("/", okHandler)

	res := r.Dispatch(&dispatch.Request{
		Method: "GET",
		Path:   "/",
		Header: map[string]string{"X-Request-ID": "client-id"},
	})

	assert.NotEmpty(t, res.Header["X-Request-ID"])
	assert.NotEqual(t, "client-id", res.Header["X-Request-ID"])
}

func TestRequestIDCustomHeader(t *testing.T) {
	r := dispatch.New().
		Use(RequestID(WithIDHeader("X-Trace-ID"))).
		Get("/", okHandler)

	res := r.Dispatch(&dispatch.Request{Method: "GET", Path: "/"})

	assert.NotEmpty(t, res.Header["X-Trace-ID"])
	assert.Empty(t, res.Header["X-Request-ID"])
}

func TestRequestIDCustomGenerator(t *testing.T) {
	r := dispatch.New().
		Use(RequestID(WithGenerator(func() string { return "fixed" }))).
		Get("/", okHandler)

	res := r.Dispatch(&dispatch.Request{Method: "GET", Path: "/"})
	assert.Equal(t, "fixed", res.Header["X-Request-ID"])
}

func TestRequestIDULID(t *testing.T) {
	r := dispatch.New().
		Use(RequestID(WithULID())).
		Get("/", okHandler)

	res := r.Dispatch(&dispatch.Request{Method: "GET", Path: "/"})

	id := res.Header["X-Request-ID"]
	require.NotEmpty(t, id)

	_, err := ulid.Parse(id)
	assert.NoError(t, err)
}

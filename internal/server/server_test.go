package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rgehrsitz/lifegrid/internal/calculation"
	"github.com/rgehrsitz/lifegrid/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2000, 1, 11, 0, 0, 0, 0, time.UTC)

func testEngine() *calculation.Engine {
	return calculation.NewEngineWithClock(calculation.FixedClock{T: testNow})
}

func testProfile() domain.Profile {
	return domain.NewProfile().WithBirthDate(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))
}

func publishedServer(t *testing.T) *RenderServer {
	t.Helper()
	s := NewRenderServer("127.0.0.1:0")
	require.NoError(t, s.Publish(testEngine().Snapshot(testProfile())))
	return s
}

func get(h http.Handler, method, path string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRenderServer_NotReady(t *testing.T) {
	h := NewRenderServer("127.0.0.1:0").Handler()

	rec := get(h, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, retryAfter, rec.Header().Get("Retry-After"))

	rec = get(h, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRenderServer_ServesEveryRoute(t *testing.T) {
	h := publishedServer(t).Handler()

	for _, r := range Routes {
		rec := get(h, http.MethodGet, r.Path, nil)
		require.Equal(t, http.StatusOK, rec.Code, r.Path)
		assert.Equal(t, r.ContentType, rec.Header().Get("Content-Type"), r.Path)
		assert.NotEmpty(t, rec.Header().Get("ETag"), r.Path)
		assert.NotEmpty(t, rec.Header().Get("Last-Modified"), r.Path)
		assert.NotZero(t, rec.Body.Len(), r.Path)
	}

	rec := get(h, http.MethodGet, "/", nil)
	assert.Contains(t, rec.Body.String(), "<!DOCTYPE html>")

	rec = get(h, http.MethodGet, "/stats.json", nil)
	assert.Contains(t, rec.Body.String(), `"days_passed": 10`)

	rec = get(h, http.MethodGet, "/milestones.ics", nil)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "BEGIN:VCALENDAR"))
}

func TestRenderServer_ConditionalGet(t *testing.T) {
	h := publishedServer(t).Handler()

	first := get(h, http.MethodGet, "/grid.svg", nil)
	etag := first.Header().Get("ETag")
	require.NotEmpty(t, etag)

	rec := get(h, http.MethodGet, "/grid.svg", map[string]string{"If-None-Match": etag})
	assert.Equal(t, http.StatusNotModified, rec.Code)
	assert.Zero(t, rec.Body.Len())

	rec = get(h, http.MethodGet, "/grid.svg", map[string]string{"If-None-Match": `"stale"`})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRenderServer_ETagChangesWithContent(t *testing.T) {
	s := publishedServer(t)
	h := s.Handler()
	before := get(h, http.MethodGet, "/stats.json", nil).Header().Get("ETag")

	next := calculation.NewEngineWithClock(calculation.FixedClock{T: testNow.AddDate(0, 0, 1)})
	require.NoError(t, s.Publish(next.Snapshot(testProfile())))

	after := get(h, http.MethodGet, "/stats.json", nil).Header().Get("ETag")
	assert.NotEqual(t, before, after)
}

func TestRenderServer_Methods(t *testing.T) {
	h := publishedServer(t).Handler()

	rec := get(h, http.MethodHead, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, rec.Body.Len(), "HEAD has no body")

	rec = get(h, http.MethodPost, "/", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET, HEAD", rec.Header().Get("Allow"))
}

func TestRenderServer_UnknownPath(t *testing.T) {
	h := publishedServer(t).Handler()
	rec := get(h, http.MethodGet, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRenderServer_Health(t *testing.T) {
	h := publishedServer(t).Handler()
	rec := get(h, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "ok "))
}

func TestRenderServer_PublishWithoutBirthDate(t *testing.T) {
	s := NewRenderServer("127.0.0.1:0")
	err := s.Publish(testEngine().Snapshot(domain.NewProfile()))
	require.NoError(t, err, "Missing grid is not an error")

	h := s.Handler()
	assert.Equal(t, http.StatusOK, get(h, http.MethodGet, "/", nil).Code)
	assert.Equal(t, http.StatusServiceUnavailable, get(h, http.MethodGet, "/grid.svg", nil).Code)
	assert.Equal(t, http.StatusServiceUnavailable, get(h, http.MethodGet, "/grid.csv", nil).Code)
}

func TestRenderServer_StartRequiresAddr(t *testing.T) {
	s := NewRenderServer("")
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	assert.Error(t, s.Start(ctx))
}

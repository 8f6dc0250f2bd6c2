package routing_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/odpf/digits/internal/routing"
)

func TestWantsJSON(t *testing.T) {
	t.Run("returns true when path ends with json", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/datasets/job1.json", nil)
		req.Header.Set("Accept", "text/html")

		assert.True(t, routing.WantsJSON(req))
	})
	t.Run("returns false when accept header is missing", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/datasets/job1", nil)

		assert.False(t, routing.WantsJSON(req))
	})
	t.Run("returns false when everything is accepted", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/datasets/job1", nil)
		req.Header.Set("Accept", "*/*")

		assert.False(t, routing.WantsJSON(req))
	})
	t.Run("returns false for a browser accept header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/datasets/job1", nil)
		req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

		assert.False(t, routing.WantsJSON(req))
	})
	t.Run("returns true when only json is accepted", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/datasets/job1", nil)
		req.Header.Set("Accept", "application/json")

		assert.True(t, routing.WantsJSON(req))
	})
	t.Run("returns true when json has a higher quality than html", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/datasets/job1", nil)
		req.Header.Set("Accept", "text/html;q=0.5, application/json")

		assert.True(t, routing.WantsJSON(req))
	})
	t.Run("returns false when json and html have the same quality", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/datasets/job1", nil)
		req.Header.Set("Accept", "application/json, text/html")

		assert.False(t, routing.WantsJSON(req))
	})
	t.Run("returns false when a wildcard gives html the highest quality", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/datasets/job1", nil)
		req.Header.Set("Accept", "text/html;q=0.1, */*;q=1, application/json;q=0.5")

		assert.False(t, routing.WantsJSON(req))
	})
	t.Run("returns true when a wildcard on application beats html", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/datasets/job1", nil)
		req.Header.Set("Accept", "*/*;q=0.1, application/*;q=0.4")

		assert.True(t, routing.WantsJSON(req))
	})
	t.Run("returns false when neither type is accepted", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/datasets/job1", nil)
		req.Header.Set("Accept", "text/plain")

		assert.False(t, routing.WantsJSON(req))
	})
	t.Run("ignores malformed ranges", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/datasets/job1", nil)
		req.Header.Set("Accept", "application/json;q=abc, text/html;q=0.2")

		assert.False(t, routing.WantsJSON(req))
	})
}

package restapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmadash.molview.org/internal/models"
)

// serveRateLimited starts a server whose limiter allows two requests per
// second per API key.
func serveRateLimited(t *testing.T) *httptest.Server {
	t.Helper()

	api := NewRestAPI(createTestApp(t), 2)
	server := httptest.NewServer(api.Router())
	t.Cleanup(server.Close)
	return server
}

func TestRateLimitBlocksRapidRequests(t *testing.T) {
	server := serveRateLimited(t)

	allowed, limited := 0, 0
	for i := 0; i < 10; i++ {
		resp, err := http.Get(server.URL + "/api/summary.json?key=TEST")
		require.NoError(t, err)
		resp.Body.Close() // nolint:errcheck

		switch resp.StatusCode {
		case http.StatusOK:
			allowed++
		case http.StatusTooManyRequests:
			limited++
		}
	}

	assert.GreaterOrEqual(t, allowed, 2)
	assert.Greater(t, limited, 0, "rapid requests past the burst must be limited")
}

func TestRateLimitIsPerAPIKey(t *testing.T) {
	server := serveRateLimited(t)

	// Exhaust the budget for one key.
	for i := 0; i < 10; i++ {
		resp, err := http.Get(server.URL + "/api/summary.json?key=TEST")
		require.NoError(t, err)
		resp.Body.Close() // nolint:errcheck
	}

	// A different key has its own budget. It fails API key validation, but
	// validation runs after the limiter, so a 401 proves the request got
	// through.
	resp, err := http.Get(server.URL + "/api/summary.json?key=other")
	require.NoError(t, err)
	defer resp.Body.Close() // nolint:errcheck

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRateLimitResponseFormat(t *testing.T) {
	server := serveRateLimited(t)

	for i := 0; i < 10; i++ {
		resp, err := http.Get(server.URL + "/api/summary.json?key=TEST")
		require.NoError(t, err)

		if resp.StatusCode != http.StatusTooManyRequests {
			resp.Body.Close() // nolint:errcheck
			continue
		}

		assert.NotEmpty(t, resp.Header.Get("Retry-After"))
		assert.Equal(t, "0", resp.Header.Get("X-RateLimit-Remaining"))

		var response models.ResponseModel
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
		resp.Body.Close() // nolint:errcheck

		assert.Equal(t, http.StatusTooManyRequests, response.Code)
		assert.Contains(t, response.Text, "Rate limit")
		return
	}

	t.Fatal("expected to hit the rate limit within 10 requests")
}

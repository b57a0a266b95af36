package restapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"pharmadash.molview.org/internal/app"
	"pharmadash.molview.org/internal/dataset"
	"pharmadash.molview.org/internal/models"
)

// createTestApp creates an application instance with the fixture dataset
// loaded, for use in handler tests.
func createTestApp(t *testing.T) *app.Application {
	t.Helper()

	return &app.Application{
		Config: app.Config{
			Env:     "test",
			ApiKeys: []string{"TEST"},
		},
		Logger:  slog.New(slog.NewTextHandler(testWriter{t}, nil)),
		Dataset: dataset.New(models.TestRecords(), models.TestColumns()),
	}
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the
// specified endpoint, and returns the response and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*http.Response, models.ResponseModel) {
	t.Helper()

	api := NewRestAPI(createTestApp(t), 0)
	server := httptest.NewServer(api.Router())
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer resp.Body.Close() // nolint:errcheck

	var response models.ResponseModel
	err = json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)

	return resp, response
}

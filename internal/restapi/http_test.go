package restapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"railplan.interrail.org/internal/app"
	"railplan.interrail.org/internal/schedule"
)

// createTestApi creates a RestAPI backed by the shared testdata schedule
// fixture.
func createTestApi(t *testing.T) *RestAPI {
	t.Helper()

	manager, err := schedule.InitManager(
		filepath.Join("..", "..", "testdata", "fast_graph.json"),
		filepath.Join("..", "..", "testdata", "schedule_with_directionality.json"),
	)
	require.NoError(t, err)

	application := &app.Application{
		Config: app.Config{
			Env:           "test",
			MaxTransfers:  2,
			WindowMinutes: 120,
		},
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Schedule: manager,
	}

	return NewRestAPI(application)
}

func getEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, []byte) {
	t.Helper()

	server := httptest.NewServer(api.Routes())
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer resp.Body.Close() // nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func postPath(t *testing.T, api *RestAPI, payload any) (*http.Response, []byte) {
	t.Helper()

	server := httptest.NewServer(api.Routes())
	defer server.Close()

	var body io.Reader
	if raw, ok := payload.(string); ok {
		body = bytes.NewBufferString(raw)
	} else {
		encoded, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(encoded)
	}

	resp, err := http.Post(server.URL+"/path", "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close() // nolint:errcheck

	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, out
}

package restapi

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"railplan.interrail.org/internal/models"
)

func TestHealthHandler(t *testing.T) {
	api := createTestApi(t)

	resp, body := getEndpoint(t, api, "/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var health models.HealthResponse
	require.NoError(t, json.Unmarshal(body, &health))
	assert.Equal(t, "healthy", health.Status)
	assert.True(t, health.DataLoaded)
}

func TestStationsHandler(t *testing.T) {
	api := createTestApi(t)

	resp, body := getEndpoint(t, api, "/stations")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var stations models.StationsResponse
	require.NoError(t, json.Unmarshal(body, &stations))
	assert.Equal(t, []string{"A", "B", "C"}, stations.Stations)
	assert.Equal(t, 3, stations.Count)
}

package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Ethernal-Tech/bridge-relay/relayer/core"
	databaseaccess "github.com/Ethernal-Tech/bridge-relay/relayer/database_access"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"
)

func newTestAPI(db core.Database) *API {
	return NewAPI(core.APIConfig{
		Port:           40000,
		AllowedHeaders: []string{"Content-Type"},
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET"},
	}, db, hclog.NewNullLogger())
}

func TestHandleCheckpoint(t *testing.T) {
	t.Run("existing checkpoint", func(t *testing.T) {
		dbMock := &databaseaccess.DBMock{}
		dbMock.On("GetLastProcessedBlock", core.DirectionDeposit).Return(uint64(42), true, nil)

		recorder := httptest.NewRecorder()
		newTestAPI(dbMock).handler.ServeHTTP(recorder,
			httptest.NewRequest(http.MethodGet, "/api/relay/checkpoint", nil))

		require.Equal(t, http.StatusOK, recorder.Code)

		var response checkpointResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		require.Equal(t, core.DirectionDeposit, response.Direction)
		require.Equal(t, uint64(42), response.Checkpoint)
		require.True(t, response.Exists)
	})

	t.Run("no checkpoint yet", func(t *testing.T) {
		dbMock := &databaseaccess.DBMock{}
		dbMock.On("GetLastProcessedBlock", core.DirectionDeposit).Return(uint64(0), false, nil)

		recorder := httptest.NewRecorder()
		newTestAPI(dbMock).handler.ServeHTTP(recorder,
			httptest.NewRequest(http.MethodGet, "/api/relay/checkpoint", nil))

		require.Equal(t, http.StatusOK, recorder.Code)

		var response checkpointResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		require.False(t, response.Exists)
	})

	t.Run("database error", func(t *testing.T) {
		dbMock := &databaseaccess.DBMock{}
		dbMock.On("GetLastProcessedBlock", core.DirectionDeposit).
			Return(uint64(0), false, errors.New("db closed"))

		recorder := httptest.NewRecorder()
		newTestAPI(dbMock).handler.ServeHTTP(recorder,
			httptest.NewRequest(http.MethodGet, "/api/relay/checkpoint", nil))

		require.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}

func TestHandleStatus(t *testing.T) {
	recorder := httptest.NewRecorder()
	newTestAPI(&databaseaccess.DBMock{}).handler.ServeHTTP(recorder,
		httptest.NewRequest(http.MethodGet, "/api/relay/status", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var response statusResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Equal(t, "running", response.Status)
	require.GreaterOrEqual(t, response.UptimeSeconds, int64(0))
}

func TestStopBeforeStart(t *testing.T) {
	// the manager may tear down before the listen goroutine ran; Stop must
	// still find a server to shut down
	a := newTestAPI(&databaseaccess.DBMock{})
	require.NotNil(t, a.server)

	a.Stop()
}

func TestUnknownRoute(t *testing.T) {
	recorder := httptest.NewRecorder()
	newTestAPI(&databaseaccess.DBMock{}).handler.ServeHTTP(recorder,
		httptest.NewRequest(http.MethodGet, "/api/relay/unknown", nil))

	require.Equal(t, http.StatusNotFound, recorder.Code)
}

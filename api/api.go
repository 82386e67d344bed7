package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Ethernal-Tech/bridge-relay/relayer/core"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"
)

const (
	defaultPathPrefix = "api"
	shutdownTimeout   = 5 * time.Second
)

// API serves relay progress over http: the last persisted checkpoint and a
// liveness status. Read only; it never touches the relay state machine.
type API struct {
	config    core.APIConfig
	db        core.Database
	handler   http.Handler
	server    *http.Server
	logger    hclog.Logger
	startTime time.Time
}

func NewAPI(config core.APIConfig, db core.Database, logger hclog.Logger) *API {
	headersOk := handlers.AllowedHeaders(config.AllowedHeaders)
	originsOk := handlers.AllowedOrigins(config.AllowedOrigins)
	methodsOk := handlers.AllowedMethods(config.AllowedMethods)

	pathPrefix := config.PathPrefix
	if pathPrefix == "" {
		pathPrefix = defaultPathPrefix
	}

	a := &API{
		config:    config,
		db:        db,
		logger:    logger,
		startTime: time.Now().UTC(),
	}

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc(fmt.Sprintf("/%s/relay/checkpoint", pathPrefix), a.handleCheckpoint).Methods(http.MethodGet)
	router.HandleFunc(fmt.Sprintf("/%s/relay/status", pathPrefix), a.handleStatus).Methods(http.MethodGet)

	a.handler = handlers.CORS(originsOk, headersOk, methodsOk)(router)

	// built here so Stop always has a server to shut down, even when it
	// races Start
	a.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Port),
		Handler:           a.handler,
		ReadHeaderTimeout: 3 * time.Second,
	}

	return a
}

func (a *API) Start(ctx context.Context) {
	a.logger.Info("api server started", "addr", a.server.Addr)

	if err := a.server.ListenAndServe(); err != nil {
		if !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("api server ListenAndServe error", "err", err)
		}
	}
}

func (a *API) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.logger.Error("api server shutdown error", "err", err)
	}
}

type checkpointResponse struct {
	Direction  string `json:"direction"`
	Checkpoint uint64 `json:"checkpoint"`
	Exists     bool   `json:"exists"`
}

func (a *API) handleCheckpoint(w http.ResponseWriter, r *http.Request) {
	block, exists, err := a.db.GetLastProcessedBlock(core.DirectionDeposit)
	if err != nil {
		a.logger.Error("failed to read checkpoint", "err", err)
		http.Error(w, "failed to read checkpoint", http.StatusInternalServerError)

		return
	}

	writeJSON(w, checkpointResponse{
		Direction:  core.DirectionDeposit,
		Checkpoint: block,
		Exists:     exists,
	})
}

type statusResponse struct {
	Status        string `json:"status"`
	UptimeSeconds int64  `json:"uptimeSeconds"`
}

func (a *API) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, statusResponse{
		Status:        "running",
		UptimeSeconds: int64(time.Since(a.startTime).Seconds()),
	})
}

func writeJSON(w http.ResponseWriter, value any) {
	w.Header().Set("Content-Type", "application/json")

	_ = json.NewEncoder(w).Encode(value)
}

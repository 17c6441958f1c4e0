package handlers

import (
	"net/http"
	"os"
	"runtime"

	"go.uber.org/zap"

	"github.com/ekaya-inc/ekaya-querydesc/pkg/config"
)

// PingResponse contains service status, version and the size of the loaded
// name dictionary.
type PingResponse struct {
	Status           string `json:"status"`
	Version          string `json:"version"`
	Service          string `json:"service"`
	GoVersion        string `json:"go_version"`
	Hostname         string `json:"hostname"`
	Environment      string `json:"environment"`
	DictionaryPath   string `json:"dictionary_path,omitempty"`
	DictionaryTables int    `json:"dictionary_tables"`
	DictionaryFields int    `json:"dictionary_fields"`
	MaxSQLBytes      int64  `json:"max_sql_bytes"`
}

// DictionarySizer reports how many table and field names are loaded.
type DictionarySizer interface {
	Len() (tables, fields int)
}

// HealthHandler handles health check and ping endpoints.
type HealthHandler struct {
	cfg        *config.Config
	dictionary DictionarySizer
	logger     *zap.Logger
}

// NewHealthHandler creates a new HealthHandler. dictionary is the name
// dictionary the describe endpoint serves with.
func NewHealthHandler(cfg *config.Config, dictionary DictionarySizer, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{cfg: cfg, dictionary: dictionary, logger: logger}
}

// RegisterRoutes registers the health handler's routes on the given mux.
func (h *HealthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /ping", h.Ping)
}

// Health handles GET /health requests.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Ping handles GET /ping requests.
// Reports version, environment and which name dictionary is in effect.
func (h *HealthHandler) Ping(w http.ResponseWriter, r *http.Request) {
	hostname, err := os.Hostname()
	if err != nil {
		http.Error(w, "failed to get hostname", http.StatusInternalServerError)
		return
	}

	response := PingResponse{
		Status:      "ok",
		Version:     h.cfg.Version,
		Service:     "ekaya-querydesc",
		GoVersion:   runtime.Version(),
		Hostname:    hostname,
		Environment: h.cfg.Env,

		DictionaryPath: h.cfg.Describe.DictionaryPath,
		MaxSQLBytes:    h.cfg.Describe.MaxSQLBytes,
	}
	response.DictionaryTables, response.DictionaryFields = h.dictionary.Len()

	if err := WriteJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("Failed to encode ping response", zap.Error(err))
	}
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/ekaya-inc/ekaya-querydesc/pkg/apperrors"
	"github.com/ekaya-inc/ekaya-querydesc/pkg/config"
	"github.com/ekaya-inc/ekaya-querydesc/pkg/describe"
	"github.com/ekaya-inc/ekaya-querydesc/pkg/logging"
	"github.com/ekaya-inc/ekaya-querydesc/pkg/middleware"
	"github.com/ekaya-inc/ekaya-querydesc/pkg/models"
)

// DescribeQueryRequest for POST body. Only sql is required.
type DescribeQueryRequest struct {
	SQL            string                    `json:"sql"`
	CustomNames    models.FriendlyNames      `json:"custom_names,omitempty"`
	RelatedData    []models.RelatedDataEntry `json:"related_data,omitempty"`
	AppliedFilters []models.AppliedFilter    `json:"applied_filters,omitempty"`
	Calculations   []models.CalculationEntry `json:"calculations,omitempty"`
	// IncludeJoins derives related data from JOIN clauses when related_data is empty.
	IncludeJoins bool `json:"include_joins,omitempty"`
	// IncludeHTML overrides the server default when set.
	IncludeHTML *bool `json:"include_html,omitempty"`
}

// DescribeQueryResponse matches frontend QueryDescription interface.
type DescribeQueryResponse struct {
	Summary   string   `json:"summary"`
	Details   []string `json:"details"`
	Technical string   `json:"technical,omitempty"`
	HTML      string   `json:"html,omitempty"`
}

// QueryDescriber produces descriptions for the describe endpoint.
type QueryDescriber interface {
	Translate(query string, opts describe.Options) *models.QueryDescription
	RelatedFromJoins(query string, custom models.FriendlyNames) []models.RelatedDataEntry
}

// DescribeHandler handles query description HTTP requests.
type DescribeHandler struct {
	describer QueryDescriber
	cfg       config.DescribeConfig
	logger    *zap.Logger
}

// NewDescribeHandler creates a new describe handler.
func NewDescribeHandler(describer QueryDescriber, cfg config.DescribeConfig, logger *zap.Logger) *DescribeHandler {
	return &DescribeHandler{
		describer: describer,
		cfg:       cfg,
		logger:    logger,
	}
}

// RegisterRoutes registers the describe handler's routes on the given mux.
func (h *DescribeHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/query/describe", h.Describe)
}

// Describe handles POST /api/query/describe
func (h *DescribeHandler) Describe(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxSQLBytes)

	var req DescribeQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.logger.Info("Rejected oversized describe request",
				zap.Int64("limit", maxErr.Limit),
				zap.String("request_id", middleware.RequestIDFromContext(r.Context())))
			if err := ErrorResponse(w, http.StatusRequestEntityTooLarge, "query_too_large", apperrors.ErrQueryTooLarge.Error()); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
			return
		}
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	opts := describe.Options{
		CustomNames:    req.CustomNames,
		RelatedData:    req.RelatedData,
		AppliedFilters: req.AppliedFilters,
		Calculations:   req.Calculations,
	}
	if req.IncludeJoins && len(opts.RelatedData) == 0 {
		opts.RelatedData = h.describer.RelatedFromJoins(req.SQL, req.CustomNames)
	}

	desc := h.describer.Translate(req.SQL, opts)

	h.logger.Debug("Described query",
		zap.String("request_id", middleware.RequestIDFromContext(r.Context())),
		zap.String("query", logging.SanitizeQuery(req.SQL)),
		zap.Int("detail_lines", len(desc.Details)))

	data := DescribeQueryResponse{
		Summary:   desc.Summary,
		Details:   desc.Details,
		Technical: desc.Technical,
	}

	includeHTML := h.cfg.IncludeHTML
	if req.IncludeHTML != nil {
		includeHTML = *req.IncludeHTML
	}
	if includeHTML {
		html, err := describe.RenderHTML(desc)
		if err != nil {
			// The plain description is still useful without markup.
			h.logger.Warn("Failed to render description HTML", zap.Error(err))
		} else {
			data.HTML = html
		}
	}

	response := ApiResponse{Success: true, Data: data}
	if err := WriteJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

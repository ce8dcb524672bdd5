package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/gridstats/gridiron/internal/platform/logging"
	"github.com/gridstats/gridiron/internal/usecase"
)

type Handler struct {
	pipeline  *usecase.PipelineService
	defaults  usecase.RunParams
	logger    *logging.Logger
	validator *validator.Validate
}

func NewHandler(pipeline *usecase.PipelineService, defaults usecase.RunParams, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		pipeline:  pipeline,
		defaults:  defaults,
		logger:    logger,
		validator: validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// RunIngestJob triggers a full ingestion run. Request fields are optional
// and default to the configured run bounds.
func (h *Handler) RunIngestJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunIngestJob")
	defer span.End()

	if h.pipeline == nil {
		writeError(ctx, w, fmt.Errorf("%w: ingestion pipeline is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	req, err := decodeIngestRunRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	params := h.runParams(req)
	report, err := h.pipeline.Run(ctx, params)
	if err != nil {
		h.logger.ErrorContext(ctx, "ingestion run failed",
			"start_year", params.StartYear, "end_year", params.EndYear, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, ingestRunDTO{
		Teams:        report.Teams,
		EventsSeen:   report.EventsSeen,
		EventsFailed: report.EventsFailed,
		DurationMS:   report.Duration.Milliseconds(),
		FinishedAt:   time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func (h *Handler) runParams(req ingestRunRequest) usecase.RunParams {
	params := h.defaults
	if req.StartYear > 0 {
		params.StartYear = req.StartYear
	}
	if req.EndYear > 0 {
		params.EndYear = req.EndYear
	}
	if req.MaxWeek > 0 {
		params.MaxWeek = req.MaxWeek
	}
	if len(req.SeasonTypes) > 0 {
		params.SeasonTypes = req.SeasonTypes
	}
	return params
}

type ingestRunRequest struct {
	StartYear   int64   `json:"startYear" validate:"omitempty,min=1900"`
	EndYear     int64   `json:"endYear" validate:"omitempty,min=1900"`
	MaxWeek     int64   `json:"maxWeek" validate:"omitempty,min=1,max=30"`
	SeasonTypes []int64 `json:"seasonTypes" validate:"omitempty,dive,min=1,max=4"`
}

type ingestRunDTO struct {
	Teams        int    `json:"teams"`
	EventsSeen   int    `json:"eventsSeen"`
	EventsFailed int    `json:"eventsFailed"`
	DurationMS   int64  `json:"durationMs"`
	FinishedAt   string `json:"finishedAt"`
}

func decodeIngestRunRequest(r *http.Request) (ingestRunRequest, error) {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	var req ingestRunRequest
	if err := decoder.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return ingestRunRequest{}, nil
		}
		return ingestRunRequest{}, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return req, nil
}

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/kartoza/kinetics-lab/internal/catalog"
	"github.com/kartoza/kinetics-lab/internal/config"
	"github.com/kartoza/kinetics-lab/internal/httputil"
	"github.com/kartoza/kinetics-lab/internal/kinetics"
	"github.com/kartoza/kinetics-lab/internal/metrics"
	"github.com/kartoza/kinetics-lab/internal/models"
	"go.uber.org/zap"
)

// maxBodyBytes caps POST bodies
const maxBodyBytes = 64 << 10

// Handler provides HTTP API endpoints
type Handler struct {
	catalog   *catalog.Catalog
	evaluator kinetics.Evaluator
	metrics   *metrics.Collector
	logger    *zap.Logger
	validate  *validator.Validate
	cfg       config.Config
}

// NewHandler creates a new API handler. metrics may be nil.
func NewHandler(
	cat *catalog.Catalog,
	evaluator kinetics.Evaluator,
	collector *metrics.Collector,
	logger *zap.Logger,
	cfg config.Config,
) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		catalog:   cat,
		evaluator: evaluator,
		metrics:   collector,
		logger:    logger,
		validate:  validator.New(),
		cfg:       cfg,
	}
}

// RegisterRoutes sets up all API routes
func (h *Handler) RegisterRoutes(r *mux.Router) {
	// Health and info
	r.HandleFunc("/health", h.handleHealth).Methods("GET")
	r.HandleFunc("/info", h.handleInfo).Methods("GET")

	// Catalog
	r.HandleFunc("/reactions", h.handleListReactions).Methods("GET")
	r.HandleFunc("/reactions/{key}", h.handleGetReaction).Methods("GET")

	// Evaluation
	r.HandleFunc("/evaluate", h.handleEvaluateQuery).Methods("GET")
	r.HandleFunc("/evaluate", h.handleEvaluateBody).Methods("POST")
	r.HandleFunc("/curve", h.handleCurve).Methods("GET")
}

// handleHealth returns server health status
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleInfo returns server information
func (h *Handler) handleInfo(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, models.InfoResponse{
		Version:   h.cfg.Version,
		Catalog:   h.catalog.Source(),
		Reactions: h.catalog.Len(),
		Ranges:    h.catalog.Ranges(),
		Constants: h.evaluator.Constants(),
	})
}

// handleListReactions returns the catalog
func (h *Handler) handleListReactions(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, models.ReactionsResponse{
		Default:   h.catalog.DefaultKey(),
		Reactions: h.catalog.List(),
	})
}

// handleGetReaction returns a single profile
func (h *Handler) handleGetReaction(w http.ResponseWriter, r *http.Request) {
	p, err := h.catalog.Get(mux.Vars(r)["key"])
	if err != nil {
		h.respondErr(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, p)
}

// handleEvaluateQuery evaluates a catalog reaction from query parameters.
// Missing parameters fall back to the catalog defaults.
func (h *Handler) handleEvaluateQuery(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ranges := h.catalog.Ranges()

	temperature, err := floatParam(q.Get("temperature"), ranges.Temperature.Default)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "temperature: "+err.Error())
		return
	}
	concentration, err := floatParam(q.Get("concentration"), ranges.Concentration.Default)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "concentration: "+err.Error())
		return
	}

	p, err := h.catalog.Get(h.reactionKey(q.Get("reaction")))
	if err != nil {
		h.respondErr(w, err)
		return
	}

	h.evaluate(w, p.Key, p, kinetics.EvaluationInput{TemperatureCelsius: temperature, Concentration: concentration})
}

// handleEvaluateBody evaluates a catalog reaction or an ad-hoc profile
func (h *Handler) handleEvaluateBody(w http.ResponseWriter, r *http.Request) {
	var req models.EvaluateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var p kinetics.ReactionProfile
	label := req.Reaction
	if req.Profile != nil {
		// Ad-hoc profiles share one metrics series
		p, label = *req.Profile, "custom"
	} else {
		var err error
		if p, err = h.catalog.Get(req.Reaction); err != nil {
			h.respondErr(w, err)
			return
		}
	}

	h.evaluate(w, label, p, kinetics.EvaluationInput{TemperatureCelsius: *req.Temperature, Concentration: *req.Concentration})
}

func (h *Handler) evaluate(w http.ResponseWriter, label string, p kinetics.ReactionProfile, in kinetics.EvaluationInput) {
	result, err := h.evaluator.Evaluate(p, in)
	h.metrics.RecordEvaluation(label, err)
	if err != nil {
		h.respondErr(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, models.EvaluateResponse{
		Profile: p,
		Result:  models.NewResult(result),
		Display: kinetics.FormatResult(result),
	})
}

// handleCurve returns the sampled rate-versus-temperature curve
func (h *Handler) handleCurve(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ranges := h.catalog.Ranges()
	rng := ranges.TemperatureRange()

	params := []struct {
		name string
		dst  *float64
	}{
		{"min", &rng.Min},
		{"max", &rng.Max},
		{"step", &rng.Step},
	}
	for _, param := range params {
		v, err := floatParam(q.Get(param.name), *param.dst)
		if err != nil {
			httputil.RespondError(w, http.StatusBadRequest, param.name+": "+err.Error())
			return
		}
		*param.dst = v
	}

	concentration, err := floatParam(q.Get("concentration"), ranges.Concentration.Default)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "concentration: "+err.Error())
		return
	}

	key := h.reactionKey(q.Get("reaction"))
	p, err := h.catalog.Get(key)
	if err != nil {
		h.respondErr(w, err)
		return
	}

	points, err := h.evaluator.Curve(p, concentration, rng)
	if err != nil {
		h.respondErr(w, err)
		return
	}
	h.metrics.RecordCurve(len(points))

	httputil.RespondJSON(w, http.StatusOK, models.CurveResponse{
		Reaction:      key,
		Concentration: concentration,
		Label:         kinetics.CurveLabel(concentration),
		Range:         rng,
		Points:        points,
	})
}

func (h *Handler) reactionKey(key string) string {
	if key == "" {
		return h.catalog.DefaultKey()
	}
	return key
}

// respondErr maps domain errors to HTTP statuses
func (h *Handler) respondErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrUnknownReaction):
		httputil.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, kinetics.ErrTemperatureOutOfDomain),
		errors.Is(err, kinetics.ErrNegativeConcentration),
		errors.Is(err, kinetics.ErrInvalidProfile),
		errors.Is(err, kinetics.ErrInvalidRange),
		errors.Is(err, kinetics.ErrResultOutOfRange):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("Unexpected API error", zap.Error(err))
		httputil.RespondError(w, http.StatusInternalServerError, "internal error")
	}
}

// floatParam parses an optional query value
func floatParam(raw string, fallback float64) (float64, error) {
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", raw)
	}
	return v, nil
}

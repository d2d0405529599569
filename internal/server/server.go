package server

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/iwvelando/planning-trap/internal/engine"
	"github.com/iwvelando/planning-trap/internal/prefs"
	"github.com/iwvelando/planning-trap/internal/session"
	"github.com/iwvelando/planning-trap/pkg/constants"
	"github.com/iwvelando/planning-trap/pkg/output"
	"github.com/iwvelando/planning-trap/pkg/share"
	"go.uber.org/zap"
)

//go:embed static/*
var staticFiles embed.FS

const clientCookieMaxAge = 365 * 24 * 60 * 60

// Options configures the HTTP handler.
type Options struct {
	Logger         *zap.Logger
	Store          prefs.Store
	PreferencesKey string
	MaxBodySize    int64
	RateLimit      RateLimitConfig
	Links          share.Links
	Version        string
}

type handler struct {
	logger      *zap.Logger
	store       prefs.Store
	keyPrefix   string
	maxBodySize int64
	links       share.Links
	version     string
	page        *template.Template
}

// NewHandler constructs the HTTP handler that serves the web UI and the
// calculation API. The returned function stops the rate limiter and must be
// called once the handler is no longer served.
func NewHandler(opts Options) (http.Handler, func()) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	store := opts.Store
	if store == nil {
		store = prefs.NewMemoryStore()
	}

	maxBodySize := opts.MaxBodySize
	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	keyPrefix := strings.TrimSpace(opts.PreferencesKey)
	if keyPrefix == "" {
		keyPrefix = constants.PreferencesKey
	}

	trimmedVersion := strings.TrimSpace(opts.Version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	page := template.Must(template.New("index.html").Funcs(template.FuncMap{
		"itoa": func(n int) string { return fmt.Sprintf("%d", n) },
	}).ParseFS(staticFiles, "static/index.html"))

	h := &handler{
		logger:      logger,
		store:       store,
		keyPrefix:   keyPrefix,
		maxBodySize: maxBodySize,
		links:       opts.Links,
		version:     trimmedVersion,
		page:        page,
	}

	mux := http.NewServeMux()

	// Calculation API
	mux.HandleFunc("/api/calculate", h.handleCalculate)
	mux.HandleFunc("/api/insights", h.handleInsights)
	mux.HandleFunc("/api/preferences", h.handlePreferences)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	// Stylesheet
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(sub))))

	// HTML form
	mux.HandleFunc("/", h.handleIndex)

	if opts.RateLimit.RequestsPerMinute <= 0 {
		return mux, func() {}
	}
	limiter := NewRateLimiter(opts.RateLimit.RequestsPerMinute, opts.RateLimit.Burst)
	return RateLimitMiddleware(logger, limiter, mux), limiter.Stop
}

type calculateResponse struct {
	Input   engine.Input   `json:"input"`
	Result  engine.Result  `json:"result"`
	Insight string         `json:"insight"`
	Display output.Display `json:"display"`
	Share   share.Bundle   `json:"share"`
}

type insightsResponse struct {
	Insights []engine.Insight `json:"insights"`
	Fallback string           `json:"fallback"`
}

func (h *handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleCalculate"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	var in engine.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request body exceeds limit of %d bytes", h.maxBodySize), op)
			return
		}
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode input: %v", err), op)
		return
	}

	sess := h.session(w, r)
	snap := sess.Calculate(r.Context(), in)
	bundle, err := sess.Share()
	if err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, err.Error(), op)
		return
	}

	h.logger.Info("planning cost calculated",
		zap.String("op", op),
		zap.Int("weeks", snap.Result.Weeks),
		zap.Float64("totalDamage", snap.Result.TotalDamage),
	)

	h.writeJSON(w, http.StatusOK, calculateResponse{
		Input:   snap.Input,
		Result:  snap.Result,
		Insight: snap.Insight,
		Display: snap.Display(),
		Share:   bundle,
	})
}

func (h *handler) handleInsights(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, insightsResponse{
		Insights: engine.Insights(),
		Fallback: engine.FallbackInsight,
	})
}

func (h *handler) handlePreferences(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	p, err := h.session(w, r).Restore(r.Context())
	if err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError,
			fmt.Sprintf("failed to load preferences: %v", err), "server.handlePreferences")
		return
	}
	h.writeJSON(w, http.StatusOK, p)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

type formValues struct {
	HourlyRate   string
	Duration     string
	CustomWeeks  string
	HoursPerWeek string
}

type pageData struct {
	Version string
	Presets []int
	Form    formValues
	Result  *output.Display
	Share   *share.Bundle
}

func (h *handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleIndex"
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	data := pageData{
		Version: h.version,
		Presets: constants.DurationPresets,
		Form:    formValues{Duration: "4", CustomWeeks: "1"},
	}
	sess := h.session(w, r)

	switch r.Method {
	case http.MethodGet:
		saved, err := sess.Restore(r.Context())
		if err != nil {
			h.logger.Warn("failed to load preferences",
				zap.String("op", op),
				zap.Error(err),
			)
		}
		data.Form.HourlyRate = saved.HourlyRate
		data.Form.HoursPerWeek = saved.HoursPerWeek

	case http.MethodPost:
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
		if err := r.ParseForm(); err != nil {
			http.Error(w, fmt.Sprintf("failed to parse form: %v", err), http.StatusBadRequest)
			return
		}
		data.Form = formValues{
			HourlyRate:   r.PostForm.Get("hourlyRate"),
			Duration:     r.PostForm.Get("planningDuration"),
			CustomWeeks:  r.PostForm.Get("customWeeks"),
			HoursPerWeek: r.PostForm.Get("hoursPerWeek"),
		}
		snap := sess.Calculate(r.Context(), engine.Input{
			HourlyRate:   engine.Raw(data.Form.HourlyRate),
			Duration:     engine.Raw(data.Form.Duration),
			CustomWeeks:  engine.Raw(data.Form.CustomWeeks),
			HoursPerWeek: engine.Raw(data.Form.HoursPerWeek),
		})
		display := snap.Display()
		data.Result = &display
		if bundle, err := sess.Share(); err == nil {
			data.Share = &bundle
		}

	default:
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.page.Execute(w, data); err != nil {
		h.logger.Error("failed to render page",
			zap.String("op", op),
			zap.Error(err),
		)
	}
}

// session returns a session keyed by the caller's client id, issuing a new
// id cookie when the request has none.
func (h *handler) session(w http.ResponseWriter, r *http.Request) *session.Session {
	return session.New(h.logger, h.store, h.keyPrefix+":"+h.clientID(w, r), session.WithLinks(h.links))
}

func (h *handler) clientID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(constants.ClientCookieName); err == nil {
		if id, err := uuid.Parse(c.Value); err == nil {
			return id.String()
		}
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     constants.ClientCookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   clientCookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

// writeJSON encodes payload before any header is sent, so a value JSON cannot
// represent (such as an infinite total) becomes a 500 instead of an empty 200.
func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		h.logger.Error("failed to encode JSON response",
			zap.String("op", "server.writeJSON"),
			zap.Int("status", status),
			zap.Error(err),
		)
		buf.Reset()
		// A map of strings always encodes.
		_ = json.NewEncoder(&buf).Encode(map[string]string{"error": "failed to encode response"})
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Error("failed to write JSON response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}

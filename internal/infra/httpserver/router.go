package httpserver

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	appdeepfake "github.com/verascan/verascan/internal/application/deepfake"
	appplag "github.com/verascan/verascan/internal/application/plagiarism"
	"github.com/verascan/verascan/internal/domain/deepfake"
	"github.com/verascan/verascan/internal/domain/plagiarism"
	"github.com/verascan/verascan/internal/infra/analysis"
	"github.com/verascan/verascan/internal/middleware"
	"github.com/verascan/verascan/internal/ui"
)

// SeqHeader echoes the client-issued request sequence number back with
// every analysis fragment, so the page script can drop a stale reply
// that was overtaken by a newer click.
const SeqHeader = "X-Analysis-Seq"

const (
	warnNoURL   = "Please paste a URL first."
	warnNoInput = "Please paste some text or choose a file first."
)

// Options for the router beyond its two controllers.
type Options struct {
	MaxUploadBytes int64
	AllowedOrigins []string
	RateCapacity   int
	RateRefill     int
	Health         map[string]middleware.HealthChecker
}

type Router struct {
	detector  *appdeepfake.Service
	checker   *appplag.Service
	maxUpload int64
}

// NewRouter wires pages, analysis fragment endpoints and the
// operational endpoints.
func NewRouter(detector *appdeepfake.Service, checker *appplag.Service, opts Options) http.Handler {
	rt := &Router{detector: detector, checker: checker, maxUpload: opts.MaxUploadBytes}
	if rt.maxUpload <= 0 {
		rt.maxUpload = 16 << 20
	}

	mux := chi.NewRouter()
	mux.Use(middleware.LoggingMiddleware)
	mux.Use(middleware.MetricsMiddleware)
	if len(opts.AllowedOrigins) > 0 {
		mux.Use(cors.Handler(cors.Options{
			AllowedOrigins: opts.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST"},
		}))
	}

	mux.Get("/", servePage(ui.HomeHTML))
	mux.Get("/deepfake", servePage(ui.DeepfakeHTML))
	mux.Get("/plagiarism", servePage(ui.PlagiarismHTML))

	mux.Group(func(g chi.Router) {
		if opts.RateCapacity > 0 {
			g.Use(middleware.RateLimitMiddleware(opts.RateCapacity, opts.RateRefill))
		}
		g.Get("/analyze/url", rt.wrap(rt.handleAnalyzeURL))
		g.Post("/analyze/plag", rt.wrap(rt.handleAnalyzePlag))
	})

	if len(opts.Health) > 0 {
		mux.Get("/health", middleware.HealthHandler(opts.Health))
	} else {
		mux.Get("/health", middleware.LivenessHandler)
	}
	mux.Get("/metrics", middleware.MetricsHandler)

	return mux
}

func servePage(page string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(page))
	}
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

// wrap maps controller errors onto result-region fragments. An empty
// submission is a terminal outcome and renders as a warning with a
// success status; everything else renders as an error fragment.
func (rt *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		err := h(w, req)
		if err == nil {
			return
		}

		switch {
		case errors.Is(err, deepfake.ErrEmptyURL):
			writeFragment(w, http.StatusOK, ui.Warning(warnNoURL))
		case errors.Is(err, plagiarism.ErrNoInput):
			writeFragment(w, http.StatusOK, ui.Warning(warnNoInput))
		default:
			middleware.IncrementChecksFailed()
			var be *analysis.BackendError
			if errors.As(err, &be) {
				writeFragment(w, be.Status, ui.Error(be.Message))
				return
			}
			writeFragment(w, http.StatusBadGateway, ui.Error("Analysis failed: "+err.Error()))
		}
	}
}

func writeFragment(w http.ResponseWriter, status int, html string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(html))
}

func echoSeq(w http.ResponseWriter, r *http.Request) {
	if seq := r.URL.Query().Get("seq"); seq != "" {
		w.Header().Set(SeqHeader, seq)
	}
}

// GET /analyze/url?url=<urlencoded>&seq=N
func (rt *Router) handleAnalyzeURL(w http.ResponseWriter, req *http.Request) error {
	echoSeq(w, req)

	raw := middleware.SanitizeString(req.URL.Query().Get("url"))
	verdict, err := rt.detector.Detect(req.Context(), raw)
	if err != nil {
		return err
	}
	middleware.IncrementURLChecks()

	html, err := ui.URLResult(verdict)
	if err != nil {
		return err
	}
	writeFragment(w, http.StatusOK, html)
	return nil
}

// POST /analyze/plag?seq=N with either multipart form data (optional
// "file" part, optional "text" field) or a JSON {"text": ...} body.
func (rt *Router) handleAnalyzePlag(w http.ResponseWriter, req *http.Request) error {
	echoSeq(w, req)
	req.Body = http.MaxBytesReader(w, req.Body, rt.maxUpload)

	cmd, err := rt.readPlagSubmission(req)
	if err != nil {
		middleware.IncrementChecksFailed()
		writeFragment(w, http.StatusBadRequest, ui.Error("Invalid submission: "+err.Error()))
		return nil
	}

	report, err := rt.checker.Check(req.Context(), cmd)
	if err != nil {
		return err
	}
	middleware.IncrementPlagChecks()

	html, err := ui.PlagReport(report)
	if err != nil {
		return err
	}
	writeFragment(w, http.StatusOK, html)
	return nil
}

func (rt *Router) readPlagSubmission(req *http.Request) (appplag.CheckCommand, error) {
	var cmd appplag.CheckCommand

	ct, _, _ := mime.ParseMediaType(req.Header.Get("Content-Type"))
	switch ct {
	case "application/json":
		var body struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			return cmd, err
		}
		cmd.Text = middleware.SanitizeString(body.Text)

	case "multipart/form-data":
		if err := req.ParseMultipartForm(rt.maxUpload); err != nil {
			return cmd, err
		}
		cmd.Text = middleware.SanitizeString(req.FormValue("text"))

		file, header, err := req.FormFile("file")
		switch {
		case err == nil:
			cmd.File = file
			cmd.FileName = middleware.SanitizeFilename(header.Filename)
		case errors.Is(err, http.ErrMissingFile):
			// text-only submission
		default:
			return cmd, err
		}

	default:
		if err := req.ParseForm(); err != nil {
			return cmd, err
		}
		cmd.Text = middleware.SanitizeString(req.PostFormValue("text"))
	}
	return cmd, nil
}

package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/Anirach/ncd-health-plus/application/ports"
	"github.com/Anirach/ncd-health-plus/application/queries"
	appservices "github.com/Anirach/ncd-health-plus/application/services"
	"github.com/Anirach/ncd-health-plus/interfaces/http/rest/handlers"
	"github.com/Anirach/ncd-health-plus/interfaces/http/rest/middleware"
	"github.com/Anirach/ncd-health-plus/pkg/auth"
	"github.com/Anirach/ncd-health-plus/pkg/common"
	pkgerrors "github.com/Anirach/ncd-health-plus/pkg/errors"
	"github.com/Anirach/ncd-health-plus/pkg/observability"
)

// Dependencies are the services the router exposes. Metrics, JWTValidator
// and RateLimiter are optional.
type Dependencies struct {
	RiskService  *appservices.RiskService
	GraphQueries *queries.GraphQueryService
	Models       ports.ModelProvider
	Metrics      *observability.Collector
	JWTValidator *auth.JWTValidator
	RateLimiter  *auth.TokenBucketLimiter
	Logger       *zap.Logger
}

// Options tune the HTTP surface
type Options struct {
	EnableCORS   bool
	CORSOrigins  []string
	MaxBodyBytes int64
	Debug        bool

	// StrictProfiles rejects inputs naming nodes the active model lacks
	StrictProfiles bool
}

// Router creates and configures the HTTP router
type Router struct {
	deps Dependencies
	opts Options
	errs *pkgerrors.ErrorHandler
}

// NewRouter creates a new router instance
func NewRouter(deps Dependencies, opts Options) *Router {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &Router{
		deps: deps,
		opts: opts,
		errs: pkgerrors.NewErrorHandler(deps.Logger, opts.Debug),
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(rt.errs.Middleware)
	router.Use(middleware.RequestContext)
	router.Use(middleware.Logger(rt.deps.Logger))
	if rt.deps.Metrics != nil {
		router.Use(middleware.Metrics(rt.deps.Metrics))
	}

	if rt.opts.EnableCORS {
		origins := rt.opts.CORSOrigins
		if len(origins) == 0 {
			origins = []string{"http://localhost:3000"}
		}
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   origins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)
	if rt.deps.Metrics != nil {
		router.Method(http.MethodGet, "/metrics", rt.deps.Metrics.Handler())
	}

	models := rt.deps.Models
	riskHandler := handlers.NewRiskHandler(rt.deps.RiskService, models, rt.errs, rt.opts.MaxBodyBytes, rt.opts.StrictProfiles, rt.deps.Logger)
	graphHandler := handlers.NewGraphHandler(rt.deps.GraphQueries, models, rt.errs)
	patientHandler := handlers.NewPatientHandler(rt.deps.RiskService, models, rt.errs)
	progressHandler := handlers.NewProgressHandler(rt.deps.RiskService, models, rt.errs, rt.opts.MaxBodyBytes, rt.opts.StrictProfiles)

	router.Route("/api/v1", func(r chi.Router) {
		if rt.deps.JWTValidator != nil {
			r.Use(middleware.Authenticate(rt.deps.JWTValidator, rt.errs, rt.deps.Logger))
		}
		if rt.deps.RateLimiter != nil {
			r.Use(middleware.RateLimit(rt.deps.RateLimiter, rt.deps.RateLimiter.Limit(), rt.errs, rt.deps.Logger))
		}

		r.Route("/graph", func(r chi.Router) {
			r.Get("/", graphHandler.GetGraph)
			r.Get("/nodes", graphHandler.ListNodes)
			r.Get("/nodes/{nodeID}", graphHandler.GetNode)
			r.Get("/edges", graphHandler.ListEdges)
		})

		r.Post("/risks", riskHandler.AssessRisk)
		r.Post("/simulations", riskHandler.Simulate)
		r.Post("/progress", progressHandler.Analyze)

		r.Route("/patients/demo", func(r chi.Router) {
			r.Get("/", patientHandler.ListDemo)
			r.Get("/{patientID}", patientHandler.GetDemo)
			r.Get("/{patientID}/risks", patientHandler.AssessDemo)
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		rt.errs.HandleStatus(w, r, http.StatusNotFound, "route not found")
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		rt.errs.HandleStatus(w, r, http.StatusMethodNotAllowed, "method not allowed")
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, _ *http.Request) {
	common.RespondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// readinessCheck reports ready once a model is loaded
func (rt *Router) readinessCheck(w http.ResponseWriter, _ *http.Request) {
	if rt.deps.Models == nil || rt.deps.Models.Engine() == nil {
		common.RespondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
		return
	}
	model := rt.deps.Models.Engine().Model()
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ready",
		"model":  model.Name(),
		"nodes":  model.Graph().NodeCount(),
		"edges":  model.Graph().EdgeCount(),
	})
}

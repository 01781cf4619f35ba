package routes

import (
	"net/http"

	"github.com/carewise/carehome-directory/internal/api/handlers"
	"github.com/carewise/carehome-directory/internal/api/middleware"
	"github.com/carewise/carehome-directory/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	careHomeHandler *handlers.CareHomeHandler
	inquiryHandler  *handlers.InquiryHandler

	metrics *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	careHomeHandler *handlers.CareHomeHandler,
	inquiryHandler *handlers.InquiryHandler,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:             http.NewServeMux(),
		careHomeHandler: careHomeHandler,
		inquiryHandler:  inquiryHandler,
		metrics:         metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Care home endpoints
	r.mux.HandleFunc("GET /api/care-homes", r.careHomeHandler.SearchCareHomes)
	r.mux.HandleFunc("GET /api/care-homes/{id}", r.careHomeHandler.GetCareHome)

	// Inquiry endpoint
	r.mux.HandleFunc("POST /api/inquiries", r.inquiryHandler.CreateInquiry)

	// Middleware applies in reverse order; CORS wraps everything so
	// preflight answers carry the headers too.
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	handler = middleware.CORSMiddleware(handler)

	return handler
}

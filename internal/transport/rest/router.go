package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"poetiq/internal/service"
	"poetiq/internal/transport/rest/handler"
)

// Container holds all dependencies for the router
type Container struct {
	AssessmentService    *service.AssessmentService
	FacilityService      *service.FacilityService
	QuestionnaireService *service.QuestionnaireService
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	assessmentHandler := handler.NewAssessmentHandler(c.AssessmentService)
	facilityHandler := handler.NewFacilityHandler(c.FacilityService)
	questionnaireHandler := handler.NewQuestionnaireHandler(c.QuestionnaireService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/sessions", assessmentHandler.StartSession).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{sessionId}/answers", assessmentHandler.SaveAnswers).Methods("PUT", "OPTIONS")
	v1.HandleFunc("/sessions/{sessionId}/assessment", assessmentHandler.GetAssessment).Methods("GET", "OPTIONS")

	v1.HandleFunc("/questionnaire", questionnaireHandler.Get).Methods("GET", "OPTIONS")

	v1.HandleFunc("/facilities/scores", facilityHandler.Scores).Methods("GET", "OPTIONS")
	v1.HandleFunc("/facilities/baseline", facilityHandler.Baseline).Methods("GET", "OPTIONS")
	v1.HandleFunc("/facilities/baseline/refresh", facilityHandler.RefreshBaseline).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

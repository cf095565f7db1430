package rest

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"onboarding-api/internal/catalog"
	"onboarding-api/internal/config"
	"onboarding-api/internal/service"
	"onboarding-api/internal/transport/rest/handler"
)

// Container holds all dependencies for the router
type Container struct {
	WebhookService      *service.WebhookService
	ProgressService     *service.ProgressService
	ValidationService   *service.ValidationService
	ConversationService *service.ConversationService
	Agents              *config.AgentConfig
	Catalog             *catalog.Catalog
	FrontendURL         string
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	webhookHandler := handler.NewWebhookHandler(c.WebhookService, c.ConversationService)
	videoHandler := handler.NewVideoHandler(c.ProgressService)
	agentHandler := handler.NewAgentHandler(c.Agents)
	quizHandler := handler.NewQuizHandler(c.Catalog, c.ValidationService)

	r.Use(corsMiddleware(c.FrontendURL))

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"service":   "KissFlow Onboarding Backend",
		})
	}).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	// Agent mappings
	api.HandleFunc("/agents", agentHandler.List).Methods("GET", "OPTIONS")
	api.HandleFunc("/agents/michael", agentHandler.Michael).Methods("GET", "OPTIONS")
	api.HandleFunc("/agents/{videoId}", agentHandler.Get).Methods("GET", "OPTIONS")

	// Quiz surface
	api.HandleFunc("/quiz/{videoId}/questions", quizHandler.Questions).Methods("GET", "OPTIONS")
	api.HandleFunc("/quiz/{videoId}/validate", quizHandler.Validate).Methods("POST", "OPTIONS")

	// Progress. The literal route must be registered before the templated one.
	api.HandleFunc("/videos/progress", videoHandler.AllProgress).Methods("GET", "OPTIONS")
	api.HandleFunc("/videos/{videoId}/progress", videoHandler.Progress).Methods("GET", "OPTIONS")
	api.HandleFunc("/videos/{videoId}/complete", videoHandler.Complete).Methods("POST", "OPTIONS")

	// Agent platform integration
	api.HandleFunc("/elevenlabs/webhook", webhookHandler.Webhook).Methods("POST", "OPTIONS")
	api.HandleFunc("/elevenlabs/conversation/{conversationId}/status", webhookHandler.ConversationStatus).Methods("GET", "OPTIONS")
	api.HandleFunc("/elevenlabs/start-conversation", webhookHandler.StartConversation).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(frontendURL string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", frontendURL)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Allow-Credentials", "true")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

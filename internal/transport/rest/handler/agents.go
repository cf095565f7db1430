package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"onboarding-api/internal/config"
)

// AgentHandler exposes the module-to-agent mapping
type AgentHandler struct {
	agents *config.AgentConfig
}

// NewAgentHandler creates a new agent handler
func NewAgentHandler(agents *config.AgentConfig) *AgentHandler {
	return &AgentHandler{agents: agents}
}

// Get handles GET /api/agents/{videoId}
func (h *AgentHandler) Get(w http.ResponseWriter, r *http.Request) {
	moduleID := mux.Vars(r)["videoId"]

	agentID := h.agents.AgentForModule(moduleID)
	if agentID == "" {
		writeJSON(w, http.StatusNotFound, map[string]string{
			"error":   "Agent not found for this video",
			"videoId": moduleID,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"videoId": moduleID,
		"agentId": agentID,
	})
}

// List handles GET /api/agents
func (h *AgentHandler) List(w http.ResponseWriter, r *http.Request) {
	mappings := h.agents.Mappings()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"mappings":    mappings,
		"totalVideos": len(mappings),
	})
}

// Michael handles GET /api/agents/michael, the landing-page assistant
func (h *AgentHandler) Michael(w http.ResponseWriter, r *http.Request) {
	agentID := h.agents.MichaelAgentID()
	if agentID == "" {
		writeError(w, http.StatusNotFound, "Agent not configured")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"agentId": agentID})
}

package config

import (
	"fmt"
	"os"
	"strings"
)

// moduleCount is the number of onboarding video modules with a dedicated agent.
const moduleCount = 5

// AgentConfig maps module ids to the conversational-agent ids that drive their
// spoken Q&A. It is built once at startup and injected wherever needed; the
// mapping never changes while the process runs.
type AgentConfig struct {
	agents  map[string]string
	michael string
}

// DefaultAgentConfig reads the ELEVENLABS_AGENT_ID_* variables. Every module
// keeps its slot in the mapping even when the variable is unset; lookups treat
// the empty id as "no agent". The Michael landing-page agent has a built-in
// fallback id.
func DefaultAgentConfig() *AgentConfig {
	agents := make(map[string]string, moduleCount)
	for i := 1; i <= moduleCount; i++ {
		moduleID := fmt.Sprintf("%d", i)
		agents[moduleID] = strings.TrimSpace(os.Getenv("ELEVENLABS_AGENT_ID_" + moduleID))
	}

	michael := strings.TrimSpace(os.Getenv("ELEVENLABS_AGENT_ID_MICHAEL"))
	if michael == "" {
		michael = "agent_6701kajbn5a1e23tq757q7vh4ang"
	}

	return &AgentConfig{agents: agents, michael: michael}
}

// AgentForModule returns the agent id for a module, or "" when unmapped or
// unconfigured.
func (c *AgentConfig) AgentForModule(moduleID string) string {
	return c.agents[moduleID]
}

// MichaelAgentID returns the landing-page assistant agent id, or "" when unset.
func (c *AgentConfig) MichaelAgentID() string {
	return c.michael
}

// Mappings returns a copy of the module-to-agent table.
func (c *AgentConfig) Mappings() map[string]string {
	out := make(map[string]string, len(c.agents))
	for k, v := range c.agents {
		out[k] = v
	}
	return out
}

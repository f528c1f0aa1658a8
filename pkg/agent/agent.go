// Package agent implements the three pipeline roles (Architect, Developer,
// Reviewer) as thin wrappers over a driver. Each role owns its system
// prompt, translates the driver stream into trace events, and converts the
// terminal result into its structured output.
package agent

import (
	"context"

	"github.com/existential-birds/amelia-sub003/ent/event"
	"github.com/existential-birds/amelia-sub003/pkg/config"
	"github.com/existential-birds/amelia-sub003/pkg/driver"
	"github.com/existential-birds/amelia-sub003/pkg/events"
	"github.com/existential-birds/amelia-sub003/pkg/masking"
	"github.com/existential-birds/amelia-sub003/pkg/models"
	"github.com/existential-birds/amelia-sub003/pkg/services"
)

// Publisher is the event append path used by agents.
type Publisher interface {
	Publish(ctx context.Context, req models.CreateEventRequest) (*events.Envelope, error)
}

// Deps carries the services shared by all agent instances.
type Deps struct {
	Publisher Publisher
	Masker    *masking.Service
	Tokens    *services.TokenService
	// StreamToolResults controls whether tool_result payloads become trace
	// events. Tool calls are always streamed.
	StreamToolResults bool
}

// Invocation describes one driver run on behalf of a workflow.
type Invocation struct {
	WorkflowID   string
	Driver       driver.Driver
	Model        string
	Options      map[string]string
	WorkingDir   string
	PriorSession string
}

// eventAgent maps a pipeline role onto the event agent enum.
func eventAgent(role config.AgentRole) event.Agent {
	switch role {
	case config.RoleArchitect:
		return event.AgentArchitect
	case config.RoleDeveloper:
		return event.AgentDeveloper
	case config.RoleReviewer:
		return event.AgentReviewer
	default:
		return event.AgentSystem
	}
}

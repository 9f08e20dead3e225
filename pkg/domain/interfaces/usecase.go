package interfaces

import (
	"context"

	"github.com/secmon-lab/atodeyomu/pkg/domain/model"
)

// Action routes interaction payloads to their flows
type Action interface {
	// Route returns a nil result for a plain acknowledgment
	Route(ctx context.Context, payload model.InboundPayload) (*model.ActionResult, error)
}

// Event handles event subscription callbacks
type Event interface {
	HandleEvent(ctx context.Context, event model.EventCallback) (*model.EventResult, error)
}

// Install registers a workspace from an OAuth redirect
type Install interface {
	Install(ctx context.Context, code string) (*model.TenantConfig, error)
}

package engine

import (
	"github.com/JaimeStill/steward/internal/config"
	"github.com/JaimeStill/steward/internal/enrichment"
	"github.com/JaimeStill/steward/internal/infrastructure"
	"github.com/JaimeStill/steward/pkg/pagination"
)

// Runtime extends Infrastructure with engine-level configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination pagination.Config
	Enrichment enrichment.Config
}

// NewRuntime creates an engine runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "engine"),
			Database:  infra.Database,
		},
		Pagination: cfg.Engine.Pagination,
		Enrichment: cfg.Enrichment,
	}
}

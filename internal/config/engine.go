package config

import (
	"fmt"

	"github.com/JaimeStill/steward/pkg/pagination"
)

var paginationEnv = &pagination.ConfigEnv{
	DefaultPageSize: "STEWARD_PAGINATION_DEFAULT_PAGE_SIZE",
	MaxPageSize:     "STEWARD_PAGINATION_MAX_PAGE_SIZE",
}

// EngineConfig holds settings shared across the engine's domain systems.
type EngineConfig struct {
	Pagination pagination.Config `toml:"pagination"`
}

// Merge overwrites non-zero fields from overlay.
func (c *EngineConfig) Merge(overlay *EngineConfig) {
	c.Pagination.Merge(&overlay.Pagination)
}

// Finalize applies defaults, environment overrides, and validation.
func (c *EngineConfig) Finalize() error {
	if err := c.Pagination.Finalize(paginationEnv); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}
	return nil
}

package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/atodeyomu/pkg/domain/interfaces"
	"github.com/secmon-lab/atodeyomu/pkg/domain/model"
	"github.com/secmon-lab/atodeyomu/pkg/domain/types"
)

// Memory implements Repository interface with in-memory storage
type Memory struct {
	mu      sync.RWMutex
	tenants map[types.TeamID]*model.TenantConfig
}

// NewMemory creates a new memory repository
func NewMemory() interfaces.Repository {
	return &Memory{
		tenants: make(map[types.TeamID]*model.TenantConfig),
	}
}

// GetTenantConfig retrieves a tenant config by team ID
func (m *Memory) GetTenantConfig(ctx context.Context, teamID types.TeamID) (*model.TenantConfig, error) {
	if teamID == "" {
		return nil, goerr.New("team ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	cfg, exists := m.tenants[teamID]
	if !exists {
		return nil, goerr.Wrap(model.ErrTenantNotFound, "failed to get tenant config",
			goerr.V("team_id", teamID))
	}

	// Return a copy to prevent external modification
	return cfg.Clone(), nil
}

// PutTenantConfig saves a tenant config, replacing any existing record
func (m *Memory) PutTenantConfig(ctx context.Context, cfg *model.TenantConfig) error {
	if cfg == nil {
		return goerr.New("tenant config is nil")
	}
	if cfg.TeamID == "" {
		return goerr.New("team ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.tenants[cfg.TeamID] = cfg.Clone()
	return nil
}

// ListTenantConfigs lists all tenant configs ordered by team ID
func (m *Memory) ListTenantConfigs(ctx context.Context) ([]*model.TenantConfig, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	configs := make([]*model.TenantConfig, 0, len(m.tenants))
	for _, cfg := range m.tenants {
		configs = append(configs, cfg.Clone())
	}

	sort.Slice(configs, func(i, j int) bool {
		return configs[i].TeamID < configs[j].TeamID
	})

	return configs, nil
}

// Close closes the repository (no-op for memory)
func (m *Memory) Close() error {
	return nil
}

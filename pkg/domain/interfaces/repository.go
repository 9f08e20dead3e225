package interfaces

//go:generate moq -out mocks/repository_mock.go -pkg mocks . Repository

import (
	"context"

	"github.com/secmon-lab/atodeyomu/pkg/domain/model"
	"github.com/secmon-lab/atodeyomu/pkg/domain/types"
)

// Repository stores the per-workspace configuration
type Repository interface {
	// GetTenantConfig returns model.ErrTenantNotFound (wrapped) when the workspace has no config
	GetTenantConfig(ctx context.Context, teamID types.TeamID) (*model.TenantConfig, error)
	// PutTenantConfig replaces the whole record
	PutTenantConfig(ctx context.Context, cfg *model.TenantConfig) error
	ListTenantConfigs(ctx context.Context) ([]*model.TenantConfig, error)

	// Close closes the repository connection
	Close() error
}

// TokenCipher encrypts access tokens before they are persisted
type TokenCipher interface {
	Encrypt(plain string) ([]byte, error)
	Decrypt(data []byte) (string, error)
}

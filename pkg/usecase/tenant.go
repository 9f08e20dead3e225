package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/atodeyomu/pkg/domain/interfaces"
	"github.com/secmon-lab/atodeyomu/pkg/domain/model"
	"github.com/secmon-lab/atodeyomu/pkg/domain/types"
)

// lookupTenant loads the workspace config and tags a miss as an unknown tenant
func lookupTenant(ctx context.Context, repo interfaces.Repository, teamID types.TeamID) (*model.TenantConfig, error) {
	if teamID == "" {
		return nil, goerr.New("team id is missing", goerr.T(model.ErrTagTenantUnknown))
	}

	cfg, err := repo.GetTenantConfig(ctx, teamID)
	if err != nil {
		if errors.Is(err, model.ErrTenantNotFound) {
			return nil, goerr.Wrap(err, "workspace has not installed the app",
				goerr.V("team_id", teamID),
				goerr.T(model.ErrTagTenantUnknown))
		}
		return nil, goerr.Wrap(err, "failed to get tenant config", goerr.V("team_id", teamID))
	}
	return cfg, nil
}

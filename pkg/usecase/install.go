package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/atodeyomu/pkg/domain/interfaces"
	"github.com/secmon-lab/atodeyomu/pkg/domain/model"
)

// Install registers workspaces that complete the OAuth flow
type Install struct {
	repo  interfaces.Repository
	oauth interfaces.OAuthExchanger
	now   func() time.Time
}

var _ interfaces.Install = &Install{}

// InstallOption configures Install
type InstallOption func(*Install)

// WithClock replaces the clock used for created_at
func WithClock(now func() time.Time) InstallOption {
	return func(x *Install) {
		x.now = now
	}
}

// NewInstall creates a new Install
func NewInstall(repo interfaces.Repository, oauth interfaces.OAuthExchanger, opts ...InstallOption) *Install {
	x := &Install{
		repo:  repo,
		oauth: oauth,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

// Install exchanges the code and stores the workspace token.
// A reinstalled workspace keeps its trigger set and creation time.
func (x *Install) Install(ctx context.Context, code string) (*model.TenantConfig, error) {
	installation, err := x.oauth.ExchangeCode(ctx, code)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to install app")
	}

	cfg, err := x.repo.GetTenantConfig(ctx, installation.TeamID)
	switch {
	case errors.Is(err, model.ErrTenantNotFound):
		cfg = model.NewTenantConfig(installation.TeamID, installation.AccessToken, x.now())
	case err != nil:
		return nil, goerr.Wrap(err, "failed to get tenant config", goerr.V("team_id", installation.TeamID))
	default:
		cfg.AccessToken = installation.AccessToken
	}

	if err := x.repo.PutTenantConfig(ctx, cfg); err != nil {
		return nil, goerr.Wrap(err, "failed to save tenant config", goerr.V("team_id", installation.TeamID))
	}

	ctxlog.From(ctx).Info("App installed",
		"team_id", installation.TeamID,
		"team_name", installation.TeamName,
	)
	return cfg, nil
}

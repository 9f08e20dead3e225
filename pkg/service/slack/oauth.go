package slack

import (
	"context"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/atodeyomu/pkg/domain/interfaces"
	"github.com/secmon-lab/atodeyomu/pkg/domain/model"
	"github.com/secmon-lab/atodeyomu/pkg/domain/types"
	"github.com/slack-go/slack"
)

// OAuth exchanges installation codes through oauth.v2.access
type OAuth struct {
	clientID     string
	clientSecret string
	redirectURI  string
	httpClient   *http.Client
}

var _ interfaces.OAuthExchanger = &OAuth{}

// OAuthOption configures OAuth
type OAuthOption func(*OAuth)

// WithHTTPClient replaces the HTTP client used for the exchange
func WithHTTPClient(client *http.Client) OAuthOption {
	return func(o *OAuth) {
		o.httpClient = client
	}
}

// WithRedirectURI sets the redirect_uri sent with the exchange
func WithRedirectURI(uri string) OAuthOption {
	return func(o *OAuth) {
		o.redirectURI = uri
	}
}

// NewOAuth creates an exchanger for the app's client credentials
func NewOAuth(clientID, clientSecret string, opts ...OAuthOption) *OAuth {
	o := &OAuth{
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   http.DefaultClient,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// ExchangeCode exchanges an authorization code for the workspace's bot token
func (o *OAuth) ExchangeCode(ctx context.Context, code string) (*model.Installation, error) {
	if code == "" {
		return nil, goerr.New("authorization code is empty")
	}

	resp, err := slack.GetOAuthV2ResponseContext(ctx, o.httpClient, o.clientID, o.clientSecret, code, o.redirectURI)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to exchange OAuth code", goerr.T(model.ErrTagUpstream))
	}

	if resp.Team.ID == "" || resp.AccessToken == "" {
		return nil, goerr.New("OAuth response lacks team or access token",
			goerr.V("app_id", resp.AppID),
			goerr.T(model.ErrTagUpstream))
	}

	return &model.Installation{
		TeamID:      types.TeamID(resp.Team.ID),
		TeamName:    resp.Team.Name,
		AccessToken: resp.AccessToken,
	}, nil
}

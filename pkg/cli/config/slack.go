package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/atodeyomu/pkg/controller/slack"
	"github.com/secmon-lab/atodeyomu/pkg/domain/interfaces"
	slackSvc "github.com/secmon-lab/atodeyomu/pkg/service/slack"
	slackgo "github.com/slack-go/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds Slack app credentials
type Slack struct {
	ClientID      string
	ClientSecret  string
	SigningSecret string
	RedirectURI   string
	APIURL        string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-client-id",
			Usage:       "Slack OAuth client ID",
			Category:    "Slack",
			Sources:     cli.EnvVars("ATODEYOMU_SLACK_CLIENT_ID"),
			Destination: &s.ClientID,
		},
		&cli.StringFlag{
			Name:        "slack-client-secret",
			Usage:       "Slack OAuth client secret",
			Category:    "Slack",
			Sources:     cli.EnvVars("ATODEYOMU_SLACK_CLIENT_SECRET"),
			Destination: &s.ClientSecret,
		},
		&cli.StringFlag{
			Name:        "slack-signing-secret",
			Usage:       "Slack signing secret for request verification",
			Category:    "Slack",
			Sources:     cli.EnvVars("ATODEYOMU_SLACK_SIGNING_SECRET"),
			Destination: &s.SigningSecret,
		},
		&cli.StringFlag{
			Name:        "slack-redirect-uri",
			Usage:       "redirect_uri sent with the OAuth code exchange (empty to omit)",
			Category:    "Slack",
			Sources:     cli.EnvVars("ATODEYOMU_SLACK_REDIRECT_URI"),
			Destination: &s.RedirectURI,
		},
		&cli.StringFlag{
			Name:        "slack-api-url",
			Usage:       "Slack Web API base URL",
			Category:    "Slack",
			Value:       slackgo.APIURL,
			Sources:     cli.EnvVars("ATODEYOMU_SLACK_API_URL"),
			Destination: &s.APIURL,
		},
	}
}

// Validate checks that the credentials required to serve webhooks are set
func (s *Slack) Validate() error {
	if s.SigningSecret == "" {
		return goerr.New("Slack signing secret is required")
	}
	if !s.IsOAuthConfigured() {
		return goerr.New("Slack client ID and client secret are required")
	}
	return nil
}

// IsOAuthConfigured checks if OAuth is configured
func (s *Slack) IsOAuthConfigured() bool {
	return s.ClientID != "" && s.ClientSecret != ""
}

// Verifier returns the request signature verifier
func (s *Slack) Verifier() interfaces.SignatureVerifier {
	return slack.NewSignatureVerifier(s.SigningSecret)
}

// OAuth returns the installation code exchanger
func (s *Slack) OAuth() interfaces.OAuthExchanger {
	return slackSvc.NewOAuth(s.ClientID, s.ClientSecret, slackSvc.WithRedirectURI(s.RedirectURI))
}

// ClientFactory returns a factory of per-workspace Web API clients
func (s *Slack) ClientFactory() interfaces.SlackClientFactory {
	var options []slackgo.Option
	if s.APIURL != "" && s.APIURL != slackgo.APIURL {
		options = append(options, slackgo.OptionAPIURL(s.APIURL))
	}
	return slackSvc.NewFactory(options...)
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_client_id", s.ClientID != ""),
		slog.Bool("has_client_secret", s.ClientSecret != ""),
		slog.Bool("has_signing_secret", s.SigningSecret != ""),
		slog.String("redirect_uri", s.RedirectURI),
		slog.String("api_url", s.APIURL),
	)
}

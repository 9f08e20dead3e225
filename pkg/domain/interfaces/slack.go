package interfaces

//go:generate moq -out mocks/slack_mock.go -pkg mocks . SlackClient OAuthExchanger

import (
	"context"
	"net/http"

	"github.com/secmon-lab/atodeyomu/pkg/domain/model"
	"github.com/secmon-lab/atodeyomu/pkg/domain/types"
	"github.com/slack-go/slack"
)

// SlackClient is the subset of the Slack Web API the app calls on behalf of a workspace
type SlackClient interface {
	OpenView(ctx context.Context, triggerID types.TriggerID, view slack.ModalViewRequest) (*slack.ViewResponse, error)
	// GetEmoji returns the custom emoji registered in the workspace, keyed by name
	GetEmoji(ctx context.Context) (map[string]string, error)
	GetPermalink(ctx context.Context, channelID types.ChannelID, ts types.MessageTS) (string, error)
	PostMessage(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
	DeleteMessage(ctx context.Context, channelID types.ChannelID, ts types.MessageTS) error
}

// SlackClientFactory creates a client authorized with a workspace's access token
type SlackClientFactory func(token string) SlackClient

// OAuthExchanger exchanges an OAuth authorization code for a workspace token
type OAuthExchanger interface {
	ExchangeCode(ctx context.Context, code string) (*model.Installation, error)
}

// EmojiRegistry knows the standard (non-custom) emoji names
type EmojiRegistry interface {
	IsStandard(name types.EmojiName) bool
}

// SignatureVerifier checks that a webhook request was signed by Slack
type SignatureVerifier interface {
	Verify(header http.Header, body []byte) error
}

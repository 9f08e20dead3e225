package slack

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/atodeyomu/pkg/domain/interfaces"
	"github.com/secmon-lab/atodeyomu/pkg/domain/model"
	"github.com/secmon-lab/atodeyomu/pkg/domain/types"
	"github.com/slack-go/slack"
)

// Service calls the Slack Web API with a single workspace's token
type Service struct {
	client *slack.Client
}

var _ interfaces.SlackClient = &Service{}

// New creates a new Slack service
func New(token string, options ...slack.Option) *Service {
	return &Service{
		client: slack.New(token, options...),
	}
}

// NewFactory returns a factory creating services that share the given client options
func NewFactory(options ...slack.Option) interfaces.SlackClientFactory {
	return func(token string) interfaces.SlackClient {
		return New(token, options...)
	}
}

// OpenView opens a modal view
func (s *Service) OpenView(ctx context.Context, triggerID types.TriggerID, view slack.ModalViewRequest) (*slack.ViewResponse, error) {
	resp, err := s.client.OpenViewContext(ctx, triggerID.String(), view)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open view",
			goerr.V("callback_id", view.CallbackID),
			goerr.T(model.ErrTagUpstream))
	}
	return resp, nil
}

// GetEmoji lists the workspace's custom emoji
func (s *Service) GetEmoji(ctx context.Context) (map[string]string, error) {
	emoji, err := s.client.GetEmojiContext(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list custom emoji", goerr.T(model.ErrTagUpstream))
	}
	return emoji, nil
}

// GetPermalink returns the permalink of a message
func (s *Service) GetPermalink(ctx context.Context, channelID types.ChannelID, ts types.MessageTS) (string, error) {
	permalink, err := s.client.GetPermalinkContext(ctx, &slack.PermalinkParameters{
		Channel: channelID.String(),
		Ts:      ts.String(),
	})
	if err != nil {
		return "", goerr.Wrap(err, "failed to get permalink",
			goerr.V("channel", channelID),
			goerr.V("ts", ts),
			goerr.T(model.ErrTagUpstream))
	}
	return permalink, nil
}

// PostMessage sends a message to a Slack channel or user
func (s *Service) PostMessage(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
	channel, timestamp, err := s.client.PostMessageContext(ctx, channelID, options...)
	if err != nil {
		return "", "", goerr.Wrap(err, "failed to post message to Slack",
			goerr.V("channel", channelID),
			goerr.T(model.ErrTagUpstream))
	}
	return channel, timestamp, nil
}

// DeleteMessage deletes a message posted by the app
func (s *Service) DeleteMessage(ctx context.Context, channelID types.ChannelID, ts types.MessageTS) error {
	if _, _, err := s.client.DeleteMessageContext(ctx, channelID.String(), ts.String()); err != nil {
		return goerr.Wrap(err, "failed to delete message",
			goerr.V("channel", channelID),
			goerr.V("ts", ts),
			goerr.T(model.ErrTagUpstream))
	}
	return nil
}

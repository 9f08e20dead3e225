package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/atodeyomu/pkg/domain/interfaces"
	"github.com/secmon-lab/atodeyomu/pkg/domain/model"
	slackSvc "github.com/secmon-lab/atodeyomu/pkg/service/slack"
	"github.com/slack-go/slack"
)

// Action dispatches interaction payloads to the shortcut, button and modal flows
type Action struct {
	repo         interfaces.Repository
	clients      interfaces.SlackClientFactory
	emojiSet     *EmojiSet
	blockBuilder *slackSvc.BlockBuilder
}

var _ interfaces.Action = &Action{}

// NewAction creates a new Action
func NewAction(repo interfaces.Repository, clients interfaces.SlackClientFactory, emojiSet *EmojiSet) *Action {
	return &Action{
		repo:         repo,
		clients:      clients,
		emojiSet:     emojiSet,
		blockBuilder: slackSvc.NewBlockBuilder(),
	}
}

// Route executes the flow selected by the payload variant
func (x *Action) Route(ctx context.Context, payload model.InboundPayload) (*model.ActionResult, error) {
	switch p := payload.(type) {
	case *model.ViewSubmitted:
		return x.emojiSet.Submit(ctx, p)

	case *model.ShortcutInvoked:
		return nil, x.handleShortcut(ctx, p)

	case *model.BlockAction:
		if p.Container == nil || p.Container.Type != model.ContainerMessage {
			// view actions carry nothing to act on
			return nil, nil
		}
		return nil, x.handleMessageAction(ctx, p)

	default:
		return nil, nil
	}
}

func (x *Action) handleShortcut(ctx context.Context, p *model.ShortcutInvoked) error {
	cfg, err := lookupTenant(ctx, x.repo, p.TeamID)
	if err != nil {
		return err
	}

	var view slack.ModalViewRequest
	switch p.CallbackID {
	case model.CallbackAddEmoji, model.CallbackEditEmojiSet:
		view = x.blockBuilder.BuildAddEmojiModal(cfg.Triggers)
	case model.CallbackRemoveEmoji:
		view = x.blockBuilder.BuildRemoveEmojiModal(cfg.Triggers)
	default:
		ctxlog.From(ctx).Debug("Unknown shortcut", "callback_id", p.CallbackID)
		return nil
	}

	if p.TriggerID == "" {
		ctxlog.From(ctx).Warn("Shortcut without trigger id", "callback_id", p.CallbackID)
		return nil
	}

	if _, err := x.clients(cfg.AccessToken).OpenView(ctx, p.TriggerID, view); err != nil {
		return goerr.Wrap(err, "failed to open emoji modal",
			goerr.V("team_id", p.TeamID),
			goerr.V("callback_id", p.CallbackID))
	}
	return nil
}

func (x *Action) handleMessageAction(ctx context.Context, p *model.BlockAction) error {
	cfg, err := lookupTenant(ctx, x.repo, p.TeamID)
	if err != nil {
		return err
	}

	if p.FirstActionID() != model.ActionMarkAsRead {
		ctxlog.From(ctx).Debug("Unknown message action", "action_id", p.FirstActionID())
		return nil
	}

	channelID, ts := p.Container.ChannelID, p.Container.MessageTS
	if channelID == "" || ts == "" {
		return nil
	}

	if err := x.clients(cfg.AccessToken).DeleteMessage(ctx, channelID, ts); err != nil {
		return goerr.Wrap(err, "failed to delete reminder", goerr.V("team_id", p.TeamID))
	}

	ctxlog.From(ctx).Info("Reminder marked as read",
		"team_id", p.TeamID,
		"user_id", p.UserID,
	)
	return nil
}

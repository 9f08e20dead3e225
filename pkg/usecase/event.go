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

// Event handles event subscription callbacks
type Event struct {
	repo         interfaces.Repository
	clients      interfaces.SlackClientFactory
	blockBuilder *slackSvc.BlockBuilder
}

var _ interfaces.Event = &Event{}

// NewEvent creates a new Event
func NewEvent(repo interfaces.Repository, clients interfaces.SlackClientFactory) *Event {
	return &Event{
		repo:         repo,
		clients:      clients,
		blockBuilder: slackSvc.NewBlockBuilder(),
	}
}

// HandleEvent answers URL verification and sends reminders for trigger reactions
func (x *Event) HandleEvent(ctx context.Context, event model.EventCallback) (*model.EventResult, error) {
	switch ev := event.(type) {
	case *model.URLVerification:
		return &model.EventResult{Challenge: ev.Challenge}, nil

	case *model.ReactionAdded:
		return nil, x.handleReaction(ctx, ev)

	case *model.UnsupportedEvent:
		ctxlog.From(ctx).Debug("Unsupported event", "type", ev.Type, "team_id", ev.TeamID)
		return nil, nil

	default:
		return nil, nil
	}
}

func (x *Event) handleReaction(ctx context.Context, ev *model.ReactionAdded) error {
	cfg, err := lookupTenant(ctx, x.repo, ev.TeamID)
	if err != nil {
		return err
	}

	if !cfg.Triggers.Contains(ev.Reaction) {
		return nil
	}
	if ev.Item.ChannelID == "" || ev.Item.MessageTS == "" {
		return nil
	}

	client := x.clients(cfg.AccessToken)
	permalink, err := client.GetPermalink(ctx, ev.Item.ChannelID, ev.Item.MessageTS)
	if err != nil {
		return goerr.Wrap(err, "failed to get permalink of reacted message", goerr.V("team_id", ev.TeamID))
	}

	_, _, err = client.PostMessage(ctx, ev.UserID.String(),
		slack.MsgOptionText(permalink, false),
		slack.MsgOptionBlocks(x.blockBuilder.BuildReminderBlocks(permalink)...),
		slack.MsgOptionEnableLinkUnfurl(),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to send reminder",
			goerr.V("team_id", ev.TeamID),
			goerr.V("user_id", ev.UserID))
	}

	ctxlog.From(ctx).Info("Reminder sent",
		"team_id", ev.TeamID,
		"user_id", ev.UserID,
		"reaction", ev.Reaction,
	)
	return nil
}

package slack

import (
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/atodeyomu/pkg/domain/model"
	"github.com/secmon-lab/atodeyomu/pkg/domain/types"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
)

// DecodeInteraction converts the JSON carried in an interaction's payload field into an InboundPayload
func DecodeInteraction(raw []byte) (model.InboundPayload, error) {
	var callback slack.InteractionCallback
	if err := json.Unmarshal(raw, &callback); err != nil {
		return nil, goerr.Wrap(err, "failed to decode interaction payload", goerr.T(model.ErrTagMalformedPayload))
	}

	base := model.PayloadBase{
		TeamID:     types.TeamID(callback.Team.ID),
		UserID:     types.SlackUserID(callback.User.ID),
		TriggerID:  types.TriggerID(callback.TriggerID),
		CallbackID: types.CallbackID(callback.CallbackID),
	}

	switch callback.Type {
	case slack.InteractionTypeShortcut, slack.InteractionTypeMessageAction:
		return &model.ShortcutInvoked{PayloadBase: base}, nil

	case slack.InteractionTypeBlockActions:
		return decodeBlockAction(base, &callback)

	case slack.InteractionTypeViewSubmission:
		return decodeViewSubmission(base, &callback), nil

	case "":
		return nil, goerr.New("interaction type is missing", goerr.T(model.ErrTagMalformedPayload))

	default:
		return nil, goerr.New("unknown interaction type",
			goerr.V("type", callback.Type),
			goerr.T(model.ErrTagMalformedPayload))
	}
}

func decodeBlockAction(base model.PayloadBase, callback *slack.InteractionCallback) (*model.BlockAction, error) {
	action := &model.BlockAction{PayloadBase: base}

	switch model.ContainerType(callback.Container.Type) {
	case "":
		// no container
	case model.ContainerMessage, model.ContainerView:
		action.Container = &model.Container{
			Type:      model.ContainerType(callback.Container.Type),
			ChannelID: types.ChannelID(callback.Container.ChannelID),
			MessageTS: types.MessageTS(callback.Container.MessageTs),
		}
	default:
		return nil, goerr.New("unknown container type",
			goerr.V("type", callback.Container.Type),
			goerr.T(model.ErrTagMalformedPayload))
	}

	for _, a := range callback.ActionCallback.BlockActions {
		if a == nil {
			continue
		}
		action.Actions = append(action.Actions, model.Action{
			ActionID: a.ActionID,
			BlockID:  a.BlockID,
			Value:    a.Value,
		})
	}
	return action, nil
}

func decodeViewSubmission(base model.PayloadBase, callback *slack.InteractionCallback) *model.ViewSubmitted {
	view := model.SubmittedView{
		CallbackID:      types.CallbackID(callback.View.CallbackID),
		PrivateMetadata: callback.View.PrivateMetadata,
		Fields:          make(map[string]model.FieldValue),
	}

	if callback.View.State != nil {
		for blockID, actions := range callback.View.State.Values {
			state, ok := actions[blockID]
			if !ok {
				for _, a := range actions {
					state = a
					break
				}
			}

			field := model.FieldValue{Value: state.Value}
			for _, opt := range state.SelectedOptions {
				field.Selected = append(field.Selected, opt.Value)
			}
			view.Fields[blockID] = field
		}
	}

	return &model.ViewSubmitted{PayloadBase: base, View: view}
}

// eventEnvelope is the outer object of an Events API request
type eventEnvelope struct {
	Type      string          `json:"type"`
	Challenge string          `json:"challenge"`
	TeamID    string          `json:"team_id"`
	Event     json.RawMessage `json:"event"`
}

// DecodeEvent converts an Events API request body into an EventCallback
func DecodeEvent(raw []byte) (model.EventCallback, error) {
	var envelope eventEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, goerr.Wrap(err, "failed to decode event body", goerr.T(model.ErrTagMalformedPayload))
	}

	switch envelope.Type {
	case slackevents.URLVerification:
		return &model.URLVerification{Challenge: envelope.Challenge}, nil

	case slackevents.CallbackEvent:
		return decodeInnerEvent(&envelope)

	case slackevents.AppRateLimited:
		return &model.UnsupportedEvent{TeamID: types.TeamID(envelope.TeamID), Type: envelope.Type}, nil

	case "":
		return nil, goerr.New("event type is missing", goerr.T(model.ErrTagMalformedPayload))

	default:
		return nil, goerr.New("unknown event type",
			goerr.V("type", envelope.Type),
			goerr.T(model.ErrTagMalformedPayload))
	}
}

func decodeInnerEvent(envelope *eventEnvelope) (model.EventCallback, error) {
	teamID := types.TeamID(envelope.TeamID)

	var inner struct {
		Type string `json:"type"`
	}
	if len(envelope.Event) == 0 {
		return nil, goerr.New("event callback has no event", goerr.T(model.ErrTagMalformedPayload))
	}
	if err := json.Unmarshal(envelope.Event, &inner); err != nil {
		return nil, goerr.Wrap(err, "failed to decode inner event", goerr.T(model.ErrTagMalformedPayload))
	}

	switch inner.Type {
	case string(slackevents.ReactionAdded):
		var ev slackevents.ReactionAddedEvent
		if err := json.Unmarshal(envelope.Event, &ev); err != nil {
			return nil, goerr.Wrap(err, "failed to decode reaction_added event", goerr.T(model.ErrTagMalformedPayload))
		}
		return &model.ReactionAdded{
			TeamID: teamID,
			UserID: types.SlackUserID(ev.User),
			Item: model.ReactionItem{
				ChannelID: types.ChannelID(ev.Item.Channel),
				MessageTS: types.MessageTS(ev.Item.Timestamp),
			},
			Reaction: types.ParseEmojiName(ev.Reaction),
		}, nil

	default:
		return &model.UnsupportedEvent{TeamID: teamID, Type: inner.Type}, nil
	}
}

package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/atodeyomu/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/atodeyomu/pkg/domain/model"
	"github.com/secmon-lab/atodeyomu/pkg/domain/types"
	"github.com/secmon-lab/atodeyomu/pkg/repository"
	"github.com/secmon-lab/atodeyomu/pkg/usecase"
	"github.com/slack-go/slack"
)

const testPermalink = "https://example.slack.com/archives/C0000000001/p1629891004013500"

func reminderClient() *mocks.SlackClientMock {
	return &mocks.SlackClientMock{
		GetPermalinkFunc: func(ctx context.Context, channelID types.ChannelID, ts types.MessageTS) (string, error) {
			return testPermalink, nil
		},
		PostMessageFunc: func(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
			return channelID, "1629922334.000700", nil
		},
	}
}

func reaction(name types.EmojiName) *model.ReactionAdded {
	return &model.ReactionAdded{
		TeamID: testTeamID,
		UserID: "U0000000001",
		Item: model.ReactionItem{
			ChannelID: "C0000000001",
			MessageTS: "1629891004.013500",
		},
		Reaction: name,
	}
}

func TestEventURLVerification(t *testing.T) {
	uc := usecase.NewEvent(repository.NewMemory(), factoryOf(&mocks.SlackClientMock{}, nil))

	challenge := "3eZbrw1aBm2rZgRNFdxV2595E9CY3gmdALWMmHkvFXO7tYXAYM8P"
	result, err := uc.HandleEvent(context.Background(), &model.URLVerification{Challenge: challenge})
	gt.NoError(t, err).Required()
	gt.Equal(t, challenge, result.Challenge)
}

func TestEventReactionAdded(t *testing.T) {
	ctx := context.Background()

	t.Run("trigger reaction sends a reminder", func(t *testing.T) {
		client := reminderClient()
		var tokens []string
		uc := usecase.NewEvent(newTenantRepo(t, "atodeyomu"), factoryOf(client, &tokens))

		result, err := uc.HandleEvent(ctx, reaction("atodeyomu"))
		gt.NoError(t, err).Required()
		gt.Nil(t, result)

		gt.Equal(t, []string{testToken}, tokens)
		gt.Equal(t, 1, len(client.GetPermalinkCalls()))
		gt.Equal(t, types.ChannelID("C0000000001"), client.GetPermalinkCalls()[0].ChannelID)
		gt.Equal(t, types.MessageTS("1629891004.013500"), client.GetPermalinkCalls()[0].Ts)

		posts := client.PostMessageCalls()
		gt.Equal(t, 1, len(posts))
		gt.Equal(t, "U0000000001", posts[0].ChannelID)
		gt.Equal(t, 3, len(posts[0].Options))
	})

	t.Run("other reaction is ignored", func(t *testing.T) {
		client := reminderClient()
		uc := usecase.NewEvent(newTenantRepo(t, "atodeyomu"), factoryOf(client, nil))

		_, err := uc.HandleEvent(ctx, reaction("eyes"))
		gt.NoError(t, err)
		gt.Equal(t, 0, len(client.GetPermalinkCalls()))
		gt.Equal(t, 0, len(client.PostMessageCalls()))
	})

	t.Run("empty trigger set ignores every reaction", func(t *testing.T) {
		client := reminderClient()
		uc := usecase.NewEvent(newTenantRepo(t), factoryOf(client, nil))

		_, err := uc.HandleEvent(ctx, reaction("atodeyomu"))
		gt.NoError(t, err)
		gt.Equal(t, 0, len(client.PostMessageCalls()))
	})

	t.Run("item without ts is ignored", func(t *testing.T) {
		client := reminderClient()
		uc := usecase.NewEvent(newTenantRepo(t, "atodeyomu"), factoryOf(client, nil))

		ev := reaction("atodeyomu")
		ev.Item.MessageTS = ""
		_, err := uc.HandleEvent(ctx, ev)
		gt.NoError(t, err)
		gt.Equal(t, 0, len(client.GetPermalinkCalls()))
	})

	t.Run("unknown tenant", func(t *testing.T) {
		client := reminderClient()
		uc := usecase.NewEvent(repository.NewMemory(), factoryOf(client, nil))

		_, err := uc.HandleEvent(ctx, reaction("atodeyomu"))
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, model.ErrTagTenantUnknown))
		gt.Equal(t, 0, len(client.GetPermalinkCalls()))
	})

	t.Run("permalink failure stops the reminder", func(t *testing.T) {
		client := reminderClient()
		client.GetPermalinkFunc = func(ctx context.Context, channelID types.ChannelID, ts types.MessageTS) (string, error) {
			return "", goerr.New("channel_not_found", goerr.T(model.ErrTagUpstream))
		}
		uc := usecase.NewEvent(newTenantRepo(t, "atodeyomu"), factoryOf(client, nil))

		_, err := uc.HandleEvent(ctx, reaction("atodeyomu"))
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, model.ErrTagUpstream))
		gt.Equal(t, 0, len(client.PostMessageCalls()))
	})
}

func TestEventUnsupported(t *testing.T) {
	client := &mocks.SlackClientMock{}
	uc := usecase.NewEvent(repository.NewMemory(), factoryOf(client, nil))

	result, err := uc.HandleEvent(context.Background(), &model.UnsupportedEvent{TeamID: testTeamID, Type: "app_mention"})
	gt.NoError(t, err)
	gt.Nil(t, result)
}

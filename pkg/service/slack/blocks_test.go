package slack_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/atodeyomu/pkg/domain/model"
	"github.com/secmon-lab/atodeyomu/pkg/domain/types"
	slackSvc "github.com/secmon-lab/atodeyomu/pkg/service/slack"
	"github.com/slack-go/slack"
)

func inputBlocks(view slack.ModalViewRequest) []*slack.InputBlock {
	var inputs []*slack.InputBlock
	for _, block := range view.Blocks.BlockSet {
		if input, ok := block.(*slack.InputBlock); ok {
			inputs = append(inputs, input)
		}
	}
	return inputs
}

func TestBuildAddEmojiModal(t *testing.T) {
	builder := slackSvc.NewBlockBuilder()
	names := []types.EmojiName{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}

	for n := 0; n <= model.MaxTriggers; n++ {
		current := model.NewTriggerSet(names[:n]...)
		view := builder.BuildAddEmojiModal(current)

		gt.Equal(t, model.CallbackAddEmoji.String(), view.CallbackID)
		gt.Equal(t, slack.VTModal, view.Type)

		inputs := inputBlocks(view)
		gt.Equal(t, 3, len(inputs))

		var filled, blank int
		for i, input := range inputs {
			gt.Equal(t, model.EmojiFieldID(i), input.BlockID)
			gt.True(t, input.Optional)

			element, ok := input.Element.(*slack.PlainTextInputBlockElement)
			gt.True(t, ok)
			gt.Equal(t, model.EmojiFieldID(i), element.ActionID)
			if element.InitialValue != "" {
				filled++
				gt.Equal(t, string(names[i]), element.InitialValue)
			} else {
				blank++
			}
		}
		gt.Equal(t, min(n, 3), filled)
		gt.Equal(t, max(3-n, 0), blank)

		meta, err := model.ParseAddModalMetadata(view.PrivateMetadata)
		gt.NoError(t, err)
		gt.Equal(t, min(n, 3), len(meta.Shown))
	}
}

func TestBuildAddEmojiModalHiddenNotice(t *testing.T) {
	builder := slackSvc.NewBlockBuilder()

	view := builder.BuildAddEmojiModal(model.NewTriggerSet("a", "b", "c", "d"))
	gt.Equal(t, 4, len(view.Blocks.BlockSet))
	_, ok := view.Blocks.BlockSet[3].(*slack.ContextBlock)
	gt.True(t, ok)

	view = builder.BuildAddEmojiModal(model.NewTriggerSet("a"))
	gt.Equal(t, 3, len(view.Blocks.BlockSet))
}

func TestBuildRemoveEmojiModal(t *testing.T) {
	builder := slackSvc.NewBlockBuilder()

	t.Run("lists registered emoji", func(t *testing.T) {
		view := builder.BuildRemoveEmojiModal(model.NewTriggerSet("eyes", "atodeyomu"))
		gt.Equal(t, model.CallbackRemoveEmoji.String(), view.CallbackID)
		gt.NotNil(t, view.Submit)

		inputs := inputBlocks(view)
		gt.Equal(t, 1, len(inputs))
		gt.Equal(t, model.BlockEmojiList, inputs[0].BlockID)

		element, ok := inputs[0].Element.(*slack.CheckboxGroupsBlockElement)
		gt.True(t, ok)
		gt.Equal(t, model.BlockEmojiList, element.ActionID)
		gt.Equal(t, 2, len(element.Options))
		gt.Equal(t, "atodeyomu", element.Options[0].Value)
		gt.Equal(t, "eyes", element.Options[1].Value)
	})

	t.Run("empty set has nothing to submit", func(t *testing.T) {
		view := builder.BuildRemoveEmojiModal(nil)
		gt.Nil(t, view.Submit)
		gt.Equal(t, 0, len(inputBlocks(view)))
		gt.Equal(t, 1, len(view.Blocks.BlockSet))
	})
}

func TestBuildReminderBlocks(t *testing.T) {
	builder := slackSvc.NewBlockBuilder()
	blocks := builder.BuildReminderBlocks("https://example.slack.com/archives/C1/p1")
	gt.Equal(t, 2, len(blocks))

	section, ok := blocks[0].(*slack.SectionBlock)
	gt.True(t, ok)
	gt.Equal(t, "<https://example.slack.com/archives/C1/p1>", section.Text.Text)

	actions, ok := blocks[1].(*slack.ActionBlock)
	gt.True(t, ok)
	gt.Equal(t, 1, len(actions.Elements.ElementSet))

	button, ok := actions.Elements.ElementSet[0].(*slack.ButtonBlockElement)
	gt.True(t, ok)
	gt.Equal(t, model.ActionMarkAsRead, button.ActionID)
	gt.Equal(t, model.ActionMarkAsRead, button.Value)
}

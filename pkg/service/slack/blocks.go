package slack

import (
	"fmt"

	"github.com/secmon-lab/atodeyomu/pkg/domain/model"
	"github.com/slack-go/slack"
)

const emojiPlaceholder = ":atodeyomu:"

// BlockBuilder provides methods to build Slack message blocks and modals
type BlockBuilder struct{}

// NewBlockBuilder creates a new BlockBuilder instance
func NewBlockBuilder() *BlockBuilder {
	return &BlockBuilder{}
}

func plainText(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.PlainTextType, text, true, false)
}

// buildEmojiInputBlock creates an optional one-line input for an emoji name
func buildEmojiInputBlock(fieldID, label, initial string) *slack.InputBlock {
	element := slack.NewPlainTextInputBlockElement(plainText(emojiPlaceholder), fieldID)
	element.InitialValue = initial

	block := slack.NewInputBlock(fieldID, plainText(label), nil, element)
	block.Optional = true
	return block
}

// BuildAddEmojiModal builds the modal for registering trigger emojis.
// Up to model.AddModalSlots registered names are pre-filled, the remaining inputs are blank.
func (b *BlockBuilder) BuildAddEmojiModal(current model.TriggerSet) slack.ModalViewRequest {
	shown, blank := model.SplitAddModalSlots(current)

	var blocks []slack.Block
	for i, name := range shown {
		blocks = append(blocks, buildEmojiInputBlock(model.EmojiFieldID(i), name.Code(), name.String()))
	}
	for i := len(shown); i < len(shown)+blank; i++ {
		blocks = append(blocks, buildEmojiInputBlock(model.EmojiFieldID(i), fmt.Sprintf("Emoji to add (#%d)", i+1), ""))
	}

	if hidden := current.Len() - len(shown); hidden > 0 {
		blocks = append(blocks, slack.NewContextBlock("hidden_emoji",
			slack.NewTextBlockObject(slack.MarkdownType,
				fmt.Sprintf("%d more registered emoji are kept as they are. Up to %d emoji can be registered.", hidden, model.MaxTriggers),
				false, false),
		))
	}

	return slack.ModalViewRequest{
		Type:            slack.VTModal,
		CallbackID:      model.CallbackAddEmoji.String(),
		Title:           plainText("Add emoji"),
		Submit:          plainText("Submit"),
		Close:           plainText("Cancel"),
		PrivateMetadata: model.AddModalMetadata{Shown: shown}.Encode(),
		Blocks: slack.Blocks{
			BlockSet: blocks,
		},
	}
}

// BuildRemoveEmojiModal builds the modal listing registered trigger emojis as checkboxes
func (b *BlockBuilder) BuildRemoveEmojiModal(current model.TriggerSet) slack.ModalViewRequest {
	view := slack.ModalViewRequest{
		Type:       slack.VTModal,
		CallbackID: model.CallbackRemoveEmoji.String(),
		Title:      plainText("Remove emoji"),
		Close:      plainText("Close"),
	}

	if current.Len() == 0 {
		view.Blocks = slack.Blocks{
			BlockSet: []slack.Block{
				slack.NewSectionBlock(
					slack.NewTextBlockObject(slack.MarkdownType, "No emoji is registered yet.", false, false),
					nil, nil,
				),
			},
		}
		return view
	}

	options := make([]*slack.OptionBlockObject, 0, current.Len())
	for _, name := range current {
		options = append(options, slack.NewOptionBlockObject(name.String(), plainText(name.Code()), nil))
	}

	view.Submit = plainText("Remove")
	view.Blocks = slack.Blocks{
		BlockSet: []slack.Block{
			slack.NewInputBlock(
				model.BlockEmojiList,
				plainText("Emoji to remove"),
				nil,
				slack.NewCheckboxGroupsBlockElement(model.BlockEmojiList, options...),
			),
		},
	}
	return view
}

// BuildReminderBlocks builds the direct message pointing at a reacted message
func (b *BlockBuilder) BuildReminderBlocks(permalink string) []slack.Block {
	return []slack.Block{
		slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("<%s>", permalink), false, false),
			nil, nil,
		),
		slack.NewActionBlock(
			"reminder_actions",
			slack.NewButtonBlockElement(model.ActionMarkAsRead, model.ActionMarkAsRead, plainText("Read")),
		),
	}
}

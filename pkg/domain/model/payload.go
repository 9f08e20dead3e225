package model

import (
	"github.com/secmon-lab/atodeyomu/pkg/domain/types"
)

// Callback and action identifiers shared by the modal builders and the router
const (
	CallbackAddEmoji    types.CallbackID = "add_emoji"
	CallbackRemoveEmoji types.CallbackID = "remove_emoji"
	// CallbackEditEmojiSet is the id used by the old three-field shortcut.
	// Deprecated: it is handled as CallbackAddEmoji.
	CallbackEditEmojiSet types.CallbackID = "edit_emoji_set"

	ActionMarkAsRead = "mark_as_read"
	BlockEmojiList   = "emoji_list"
)

// ContainerType is the UI surface a block action originated from
type ContainerType string

const (
	ContainerMessage ContainerType = "message"
	ContainerView    ContainerType = "view"
)

// InboundPayload is one of ShortcutInvoked, BlockAction or ViewSubmitted
type InboundPayload interface {
	Base() PayloadBase
	inboundPayload()
}

// PayloadBase holds the fields every interaction payload carries
type PayloadBase struct {
	TeamID     types.TeamID
	UserID     types.SlackUserID
	TriggerID  types.TriggerID
	CallbackID types.CallbackID
}

// ShortcutInvoked is sent when a user selects a global or message shortcut
type ShortcutInvoked struct {
	PayloadBase
}

// BlockAction is sent when a user clicks an interactive block element
type BlockAction struct {
	PayloadBase
	// Container is nil when the platform did not send one
	Container *Container
	Actions   []Action
}

// Container describes where a block action happened
type Container struct {
	Type      ContainerType
	ChannelID types.ChannelID
	MessageTS types.MessageTS
}

// Action is a single element interaction inside a block action
type Action struct {
	ActionID string
	BlockID  string
	Value    string
}

// ViewSubmitted is sent when a user submits a modal
type ViewSubmitted struct {
	PayloadBase
	View SubmittedView
}

// SubmittedView is the submitted modal, with its state flattened by block id
type SubmittedView struct {
	CallbackID      types.CallbackID
	PrivateMetadata string
	Fields          map[string]FieldValue
}

// FieldValue is the state of one input block
type FieldValue struct {
	Value    string
	Selected []string
}

func (x *ShortcutInvoked) Base() PayloadBase { return x.PayloadBase }
func (x *BlockAction) Base() PayloadBase     { return x.PayloadBase }
func (x *ViewSubmitted) Base() PayloadBase   { return x.PayloadBase }

func (x *ShortcutInvoked) inboundPayload() {}
func (x *BlockAction) inboundPayload()     {}
func (x *ViewSubmitted) inboundPayload()   {}

// FirstActionID returns the id of the first action, or "" if there is none
func (x *BlockAction) FirstActionID() string {
	if len(x.Actions) == 0 {
		return ""
	}
	return x.Actions[0].ActionID
}

package model

import (
	"github.com/secmon-lab/atodeyomu/pkg/domain/types"
)

// EventCallback is one of URLVerification, ReactionAdded or UnsupportedEvent
type EventCallback interface {
	eventCallback()
}

// URLVerification is sent once when the request URL is registered
type URLVerification struct {
	Challenge string
}

// ReactionAdded is sent when a user adds a reaction to an item
type ReactionAdded struct {
	TeamID   types.TeamID
	UserID   types.SlackUserID
	Item     ReactionItem
	Reaction types.EmojiName
}

// ReactionItem is the message a reaction was added to
type ReactionItem struct {
	ChannelID types.ChannelID
	MessageTS types.MessageTS
}

// UnsupportedEvent is a well-formed event callback this app does not act on
type UnsupportedEvent struct {
	TeamID types.TeamID
	Type   string
}

func (x *URLVerification) eventCallback()  {}
func (x *ReactionAdded) eventCallback()    {}
func (x *UnsupportedEvent) eventCallback() {}

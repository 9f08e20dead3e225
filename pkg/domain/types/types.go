package types

import (
	"strings"

	"github.com/google/uuid"
)

// TeamID represents a Slack workspace (tenant) identifier
type TeamID string

// String returns the string representation
func (id TeamID) String() string {
	return string(id)
}

// SlackUserID represents a Slack user identifier
type SlackUserID string

// String returns the string representation
func (id SlackUserID) String() string {
	return string(id)
}

// ChannelID represents a Slack channel identifier
type ChannelID string

// String returns the string representation
func (id ChannelID) String() string {
	return string(id)
}

// MessageTS represents a Slack message timestamp
type MessageTS string

// String returns the string representation
func (ts MessageTS) String() string {
	return string(ts)
}

// TriggerID is the short-lived id Slack issues for opening a view
type TriggerID string

// String returns the string representation
func (id TriggerID) String() string {
	return string(id)
}

// CallbackID identifies a shortcut or a modal view
type CallbackID string

// String returns the string representation
func (id CallbackID) String() string {
	return string(id)
}

// EmojiName is an emoji name without surrounding colons, e.g. "eyes"
type EmojiName string

// String returns the string representation
func (n EmojiName) String() string {
	return string(n)
}

// Code returns the name in Slack's colon notation, e.g. ":eyes:"
func (n EmojiName) Code() string {
	return ":" + string(n) + ":"
}

// ParseEmojiName normalizes user input such as ":eyes:" or " eyes " into an EmojiName.
// An empty result means the input carried no name.
func ParseEmojiName(s string) EmojiName {
	return EmojiName(strings.Trim(strings.TrimSpace(s), ":"))
}

// ErrorRefID is a reference handed to callers for a reported error
type ErrorRefID string

// String returns the string representation
func (id ErrorRefID) String() string {
	return string(id)
}

// NewErrorRefID creates a new ErrorRefID
func NewErrorRefID() ErrorRefID {
	return ErrorRefID(uuid.New().String())
}

package model

import (
	"slices"
	"time"

	"github.com/secmon-lab/atodeyomu/pkg/domain/types"
)

// MaxTriggers is the maximum number of trigger emojis a workspace can register
const MaxTriggers = 10

// TenantConfig is the per-workspace configuration of the app
type TenantConfig struct {
	TeamID      types.TeamID
	AccessToken string
	Triggers    TriggerSet
	CreatedAt   time.Time
}

// NewTenantConfig creates a config for a freshly installed workspace
func NewTenantConfig(teamID types.TeamID, accessToken string, now time.Time) *TenantConfig {
	return &TenantConfig{
		TeamID:      teamID,
		AccessToken: accessToken,
		CreatedAt:   now,
	}
}

// Clone returns a deep copy of the config
func (c *TenantConfig) Clone() *TenantConfig {
	clone := *c
	clone.Triggers = slices.Clone(c.Triggers)
	return &clone
}

// TriggerSet is a sorted set of emoji names. The nil set is the empty set.
type TriggerSet []types.EmojiName

// NewTriggerSet builds a set from names, dropping empty and duplicated entries
func NewTriggerSet(names ...types.EmojiName) TriggerSet {
	var set TriggerSet
	for _, name := range names {
		if name == "" {
			continue
		}
		set = append(set, name)
	}
	slices.Sort(set)
	return slices.Compact(set)
}

// Len returns the number of names in the set
func (s TriggerSet) Len() int {
	return len(s)
}

// Contains reports whether name is in the set
func (s TriggerSet) Contains(name types.EmojiName) bool {
	_, found := slices.BinarySearch(s, name)
	return found
}

// Union returns a new set holding the names of both sets
func (s TriggerSet) Union(names ...types.EmojiName) TriggerSet {
	return NewTriggerSet(append(slices.Clone(s), names...)...)
}

// Remove returns a new set without the given names. Names not in the set are ignored.
func (s TriggerSet) Remove(names ...types.EmojiName) TriggerSet {
	result := make(TriggerSet, 0, len(s))
	for _, name := range s {
		if !slices.Contains(names, name) {
			result = append(result, name)
		}
	}
	return result
}

// Strings returns the names as plain strings
func (s TriggerSet) Strings() []string {
	out := make([]string, len(s))
	for i, name := range s {
		out[i] = name.String()
	}
	return out
}

// TriggerSetFromStrings converts stored strings back into a set
func TriggerSetFromStrings(values []string) TriggerSet {
	names := make([]types.EmojiName, 0, len(values))
	for _, v := range values {
		names = append(names, types.ParseEmojiName(v))
	}
	return NewTriggerSet(names...)
}

// Installation is the result of a successful OAuth code exchange
type Installation struct {
	TeamID      types.TeamID
	TeamName    string
	AccessToken string
}

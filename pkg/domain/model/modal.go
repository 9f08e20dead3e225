package model

import (
	"encoding/json"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/atodeyomu/pkg/domain/types"
)

// AddModalSlots is the number of inputs the add modal shows
const AddModalSlots = 3

// EmojiFieldID returns the block (and action) id of the i-th input of the add modal
func EmojiFieldID(i int) string {
	return fmt.Sprintf("emoji_%d", i)
}

// AddModalMetadata is carried in the add modal's private metadata.
// Shown lists the stored names that were pre-filled into the inputs, so the
// submission replaces exactly those and keeps the others.
type AddModalMetadata struct {
	Shown []types.EmojiName `json:"shown,omitempty"`
}

// Encode serializes the metadata for a view's private_metadata field
func (m AddModalMetadata) Encode() string {
	if len(m.Shown) == 0 {
		return ""
	}
	raw, err := json.Marshal(m)
	if err != nil {
		// a slice of strings always marshals
		panic(err)
	}
	return string(raw)
}

// ParseAddModalMetadata reads metadata written by Encode. Empty input yields empty metadata.
func ParseAddModalMetadata(s string) (AddModalMetadata, error) {
	var m AddModalMetadata
	if s == "" {
		return m, nil
	}
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		return m, goerr.Wrap(err, "failed to parse add modal metadata",
			goerr.V("metadata", s),
			goerr.T(ErrTagMalformedPayload))
	}
	return m, nil
}

// SplitAddModalSlots decides which stored names are pre-filled and how many blank inputs follow.
// The total never exceeds AddModalSlots.
func SplitAddModalSlots(current TriggerSet) (shown []types.EmojiName, blank int) {
	n := min(current.Len(), AddModalSlots)
	return current[:n], AddModalSlots - n
}

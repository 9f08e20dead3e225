package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/atodeyomu/pkg/domain/types"
)

func TestParseEmojiName(t *testing.T) {
	tests := []struct {
		input    string
		expected types.EmojiName
	}{
		{"eyes", "eyes"},
		{":eyes:", "eyes"},
		{" :eyes: ", "eyes"},
		{"::eyes", "eyes"},
		{"+1", "+1"},
		{"::", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			gt.Equal(t, tt.expected, types.ParseEmojiName(tt.input))
		})
	}
}

func TestEmojiNameCode(t *testing.T) {
	gt.Equal(t, ":atodeyomu:", types.EmojiName("atodeyomu").Code())
}

func TestNewErrorRefID(t *testing.T) {
	a := types.NewErrorRefID()
	b := types.NewErrorRefID()
	gt.NotEqual(t, a, b)
	gt.Equal(t, 36, len(a.String()))
}

package model_test

import (
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/atodeyomu/pkg/domain/model"
	"github.com/secmon-lab/atodeyomu/pkg/domain/types"
)

func TestSplitAddModalSlots(t *testing.T) {
	names := []types.EmojiName{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}

	for n := 0; n <= model.MaxTriggers; n++ {
		set := model.NewTriggerSet(names[:n]...)
		shown, blank := model.SplitAddModalSlots(set)

		gt.Equal(t, min(n, 3), len(shown))
		gt.Equal(t, max(3-n, 0), blank)
		gt.Equal(t, model.AddModalSlots, len(shown)+blank)
	}
}

func TestAddModalMetadata(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		meta := model.AddModalMetadata{Shown: []types.EmojiName{"a", "b"}}
		parsed, err := model.ParseAddModalMetadata(meta.Encode())
		gt.NoError(t, err)
		gt.Equal(t, meta.Shown, parsed.Shown)
	})

	t.Run("empty", func(t *testing.T) {
		gt.Equal(t, "", model.AddModalMetadata{}.Encode())
		parsed, err := model.ParseAddModalMetadata("")
		gt.NoError(t, err)
		gt.Equal(t, 0, len(parsed.Shown))
	})

	t.Run("broken", func(t *testing.T) {
		_, err := model.ParseAddModalMetadata("{broken")
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, model.ErrTagMalformedPayload))
	})
}

func TestEmojiFieldID(t *testing.T) {
	gt.Equal(t, "emoji_0", model.EmojiFieldID(0))
	gt.Equal(t, "emoji_2", model.EmojiFieldID(2))
}

func TestActionResultHasErrors(t *testing.T) {
	var nilResult *model.ActionResult
	gt.False(t, nilResult.HasErrors())
	gt.False(t, (&model.ActionResult{}).HasErrors())
	gt.True(t, model.NewValidationErrors(map[string]string{"emoji": "bad"}).HasErrors())
}

package emoji

import (
	"strings"

	"github.com/kyokomi/emoji/v2"
	"github.com/secmon-lab/atodeyomu/pkg/domain/interfaces"
	"github.com/secmon-lab/atodeyomu/pkg/domain/types"
)

// Registry answers whether a name belongs to the standard emoji table
type Registry struct {
	names map[types.EmojiName]struct{}
}

var _ interfaces.EmojiRegistry = &Registry{}

// New builds a registry from the emoji code map
func New() *Registry {
	codes := emoji.CodeMap()
	names := make(map[types.EmojiName]struct{}, len(codes))
	for code := range codes {
		names[types.EmojiName(strings.Trim(code, ":"))] = struct{}{}
	}
	return &Registry{names: names}
}

// IsStandard reports whether name is a standard emoji
func (r *Registry) IsStandard(name types.EmojiName) bool {
	_, ok := r.names[name]
	return ok
}

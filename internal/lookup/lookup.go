package lookup

import (
	"strings"

	"github.com/dhruvm/spendwise/internal/model"
)

// MerchantEmoji resolves an emoji for a raw merchant string. Exact matches
// against the table take priority, then the first substring hit in
// declaration order, then DefaultEmoji.
func MerchantEmoji(merchant string) string {
	needle := strings.ToLower(strings.TrimSpace(merchant))
	if needle == "" {
		return DefaultEmoji
	}
	for _, r := range MerchantEmojiRules {
		if r.Substring == needle {
			return r.Emoji
		}
	}
	for _, r := range MerchantEmojiRules {
		if strings.Contains(needle, r.Substring) {
			return r.Emoji
		}
	}
	return DefaultEmoji
}

// CategoryEmoji resolves the default emoji for a category.
func CategoryEmoji(c model.Category) string {
	if emoji, ok := CategoryEmojis[c]; ok {
		return emoji
	}
	return DefaultEmoji
}

package services

import (
	"regexp"
	"strings"

	"github.com/samber/lo"

	"github.com/staylio/messaging/pkg/internal/directory"
	"github.com/staylio/messaging/pkg/internal/models"
)

var mentionPattern = regexp.MustCompile(`@([A-Za-z0-9_-]+)`)

// ExtractMentionNames scans content for @identifier tokens and returns the
// distinct names, lowercased. Matching against the directory happens
// case-insensitively later, so casing in the message does not matter.
func ExtractMentionNames(content string) []string {
	matches := mentionPattern.FindAllStringSubmatch(content, -1)
	names := lo.Map(matches, func(item []string, index int) string {
		return strings.ToLower(item[1])
	})
	return lo.Uniq(names)
}

// ResolveMentions maps mention tokens onto directory accounts. Tokens that
// resolve to nobody are skipped silently, and the author mentioning
// themselves does not count.
func ResolveMentions(content string, authorId uint) ([]models.Account, error) {
	var resolved []models.Account
	for _, name := range ExtractMentionNames(content) {
		account, err := directory.D.GetUserByName(name)
		if err != nil {
			continue
		}
		if account.ID == authorId {
			continue
		}
		resolved = append(resolved, account)
	}

	return lo.UniqBy(resolved, func(item models.Account) uint {
		return item.ID
	}), nil
}

// MessagePreview truncates content for notification bodies.
func MessagePreview(message models.Message) string {
	if len(message.Content) == 0 {
		return "sent an attachment"
	}

	runes := []rune(message.Content)
	if len(runes) > 80 {
		return string(runes[:80]) + "…"
	}
	return message.Content
}

package services

import (
	"reflect"
	"testing"

	"github.com/staylio/messaging/pkg/internal/models"
)

func TestFoldReactionsGroupsPerEmoji(t *testing.T) {
	reactions := []models.Reaction{
		{MessageID: 1, AccountID: 1, Emoji: "👍"},
		{MessageID: 1, AccountID: 2, Emoji: "👍"},
		{MessageID: 1, AccountID: 1, Emoji: "🎉"},
	}

	groups := FoldReactions(reactions)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}

	byEmoji := make(map[string]models.ReactionGroup)
	for _, group := range groups {
		byEmoji[group.Emoji] = group
	}

	thumbs := byEmoji["👍"]
	if thumbs.Count != 2 || !reflect.DeepEqual(thumbs.Accounts, []uint{1, 2}) {
		t.Errorf("concurrent reactors lost: %+v", thumbs)
	}
	if byEmoji["🎉"].Count != 1 {
		t.Errorf("unexpected party count: %+v", byEmoji["🎉"])
	}
}

func TestFoldReactionsEmpty(t *testing.T) {
	if groups := FoldReactions(nil); len(groups) != 0 {
		t.Fatalf("expected no groups, got %v", groups)
	}
}

// Double-toggle must return the fact table to its original state; simulate
// the two keyed statements a toggle issues against the row set.
func TestToggleTwiceRestoresState(t *testing.T) {
	apply := func(rows []models.Reaction, accountId uint, emoji string) []models.Reaction {
		for idx, row := range rows {
			if row.AccountID == accountId && row.Emoji == emoji {
				return append(rows[:idx:idx], rows[idx+1:]...)
			}
		}
		return append(rows, models.Reaction{MessageID: 1, AccountID: accountId, Emoji: emoji})
	}

	initial := []models.Reaction{
		{MessageID: 1, AccountID: 9, Emoji: "👀"},
	}

	once := apply(initial, 3, "👍")
	twice := apply(once, 3, "👍")

	if !reflect.DeepEqual(FoldReactions(twice), FoldReactions(initial)) {
		t.Fatalf("toggle twice drifted: %v vs %v", FoldReactions(twice), FoldReactions(initial))
	}
}

package services

import (
	"testing"
	"time"

	"github.com/staylio/messaging/pkg/internal/models"
)

func TestNextAnchorMonotonic(t *testing.T) {
	anchor := uint(10)

	tests := []struct {
		name     string
		current  *uint
		latest   uint
		expected uint
	}{
		{"From nothing", nil, 5, 5},
		{"Advances", &anchor, 20, 20},
		{"Never regresses", &anchor, 3, 10},
		{"Idempotent", &anchor, 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextAnchor(tt.current, tt.latest); got != tt.expected {
				t.Errorf("NextAnchor(%v, %d) = %d, want %d", tt.current, tt.latest, got, tt.expected)
			}
		})
	}
}

func TestSortChatListMostRecentFirst(t *testing.T) {
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	items := []models.ChatListItem{
		{Name: "#ops", LastActive: base},
		{Name: "dana", LastActive: base.Add(time.Hour)},
		{Name: "#general", LastActive: base.Add(30 * time.Minute)},
	}

	sorted := SortChatList(items)
	expected := []string{"dana", "#general", "#ops"}
	for idx, name := range expected {
		if sorted[idx].Name != name {
			t.Errorf("position %d: got %s, want %s", idx, sorted[idx].Name, name)
		}
	}
}

func TestSortChatListMixesKinds(t *testing.T) {
	base := time.Now()

	items := []models.ChatListItem{
		{Container: models.ContainerRef{Kind: models.ContainerKindChannel, ID: 1}, LastActive: base.Add(-time.Minute)},
		{Container: models.ContainerRef{Kind: models.ContainerKindDirect, ID: 1}, LastActive: base},
	}

	sorted := SortChatList(items)
	if sorted[0].Container.Kind != models.ContainerKindDirect {
		t.Fatal("channels and conversations must interleave purely by recency")
	}
}

package services

import (
	"testing"
	"time"

	"github.com/staylio/messaging/pkg/internal/models"
)

func TestClampTTL(t *testing.T) {
	if ClampTTL(-1) != TypingTTLDefault {
		t.Error("negative should fall back to default")
	}
	if ClampTTL(0) != TypingTTLDefault {
		t.Error("zero should fall back to default")
	}
	if ClampTTL(200*time.Millisecond) != TypingTTLMin {
		t.Error("sub-second should clamp up")
	}
	if ClampTTL(5*time.Second) != 5*time.Second {
		t.Error("5s should pass")
	}
	if ClampTTL(time.Hour) != TypingTTLMax {
		t.Error(">30s should clamp down")
	}
}

func TestFilterLiveIndicators(t *testing.T) {
	now := time.Now()
	channelId := uint(1)

	indicators := []models.TypingIndicator{
		{AccountID: 1, ChannelID: &channelId, ExpiresAt: now.Add(3 * time.Second)},
		{AccountID: 2, ChannelID: &channelId, ExpiresAt: now.Add(-time.Second)},
		{AccountID: 3, ChannelID: &channelId, ExpiresAt: now},
	}

	live := FilterLiveIndicators(indicators, now)
	if len(live) != 1 {
		t.Fatalf("expected only the unexpired indicator, got %d", len(live))
	}
	if live[0].AccountID != 1 {
		t.Errorf("wrong indicator survived: account %d", live[0].AccountID)
	}
}

func TestExpiredIndicatorNeverReturnedEvenWithoutStop(t *testing.T) {
	// An indicator nobody ever stopped must still vanish past its deadline.
	now := time.Now()
	conversationId := uint(9)

	indicator := models.TypingIndicator{
		AccountID:      4,
		ConversationID: &conversationId,
		StartedAt:      now.Add(-time.Minute),
		ExpiresAt:      now.Add(-55 * time.Second),
	}

	if len(FilterLiveIndicators([]models.TypingIndicator{indicator}, now)) != 0 {
		t.Fatal("expired indicator leaked through the read filter")
	}
}

package services

import (
	"errors"
	"testing"
)

func TestConversationPairKeyCommutative(t *testing.T) {
	tests := []struct {
		a, b     uint
		expected string
	}{
		{1, 2, "1_2"},
		{2, 1, "1_2"},
		{42, 7, "7_42"},
		{7, 42, "7_42"},
	}

	for _, tt := range tests {
		if got := ConversationPairKey(tt.a, tt.b); got != tt.expected {
			t.Errorf("ConversationPairKey(%d, %d) = %q, want %q", tt.a, tt.b, got, tt.expected)
		}
	}
}

func TestConversationPairKeyDistinctPairs(t *testing.T) {
	// (1,23) and (12,3) must not collide.
	if ConversationPairKey(1, 23) == ConversationPairKey(12, 3) {
		t.Fatal("pair keys of different pairs collided")
	}
}

func TestGetOrCreateConversationRejectsSelf(t *testing.T) {
	if _, err := GetOrCreateConversation(5, 5); !errors.Is(err, ErrInvalidParticipants) {
		t.Fatalf("expected ErrInvalidParticipants, got %v", err)
	}
}

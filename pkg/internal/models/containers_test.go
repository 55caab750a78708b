package models

import (
	"testing"
	"time"
)

func TestMessageContainerIsExclusive(t *testing.T) {
	channelId := uint(3)
	conversationId := uint(7)

	inChannel := Message{ChannelID: &channelId}
	if ref := inChannel.Container(); ref.Kind != ContainerKindChannel || ref.ID != 3 {
		t.Errorf("channel message resolved to %+v", ref)
	}

	inConversation := Message{ConversationID: &conversationId}
	if ref := inConversation.Container(); ref.Kind != ContainerKindDirect || ref.ID != 7 {
		t.Errorf("conversation message resolved to %+v", ref)
	}
}

func TestContainerRefKey(t *testing.T) {
	a := ContainerRef{Kind: ContainerKindChannel, ID: 1}
	b := ContainerRef{Kind: ContainerKindDirect, ID: 1}
	if a.Key() == b.Key() {
		t.Fatal("channel and conversation with the same id must key differently")
	}
}

func TestTypingIndicatorLive(t *testing.T) {
	now := time.Now()

	if (TypingIndicator{ExpiresAt: now.Add(time.Second)}).Live(now) != true {
		t.Error("future deadline should be live")
	}
	if (TypingIndicator{ExpiresAt: now}).Live(now) != false {
		t.Error("exact deadline should be expired")
	}
	if (TypingIndicator{ExpiresAt: now.Add(-time.Second)}).Live(now) != false {
		t.Error("past deadline should be expired")
	}
}

package services

import (
	"testing"
	"time"

	"github.com/staylio/messaging/pkg/internal/models"
)

func makeMessage(id uint, uuid string, offset time.Duration) models.Message {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return models.Message{
		BaseModel: models.BaseModel{ID: id, CreatedAt: base.Add(offset)},
		Uuid:      uuid,
		Content:   uuid,
	}
}

func TestMergeTimelineOrdersByCreationNotArrival(t *testing.T) {
	hello := makeMessage(1, "aaaaaaaa-0000-0000-0000-000000000001", 0)
	hi := makeMessage(2, "aaaaaaaa-0000-0000-0000-000000000002", time.Second)

	// U2's client sees its own "Hi" before U1's "Hello" push arrives.
	merged := MergeTimeline([]models.Message{hi}, []models.Message{hello})

	if len(merged) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(merged))
	}
	if merged[0].ID != 1 || merged[1].ID != 2 {
		t.Errorf("timeline out of order: %d then %d", merged[0].ID, merged[1].ID)
	}
}

func TestMergeTimelineDeduplicatesByUuid(t *testing.T) {
	msg := makeMessage(3, "aaaaaaaa-0000-0000-0000-000000000003", 0)

	// Optimistic local copy plus the pushed echo of the same message.
	merged := MergeTimeline([]models.Message{msg}, []models.Message{msg})

	if len(merged) != 1 {
		t.Fatalf("duplicate by uuid survived the merge: %d entries", len(merged))
	}
}

func TestMergeTimelineAnyDeliveryOrderConverges(t *testing.T) {
	a := makeMessage(1, "aaaaaaaa-0000-0000-0000-00000000000a", 0)
	b := makeMessage(2, "aaaaaaaa-0000-0000-0000-00000000000b", time.Second)
	c := makeMessage(3, "aaaaaaaa-0000-0000-0000-00000000000c", 2*time.Second)

	orders := [][]models.Message{
		{a, b, c},
		{c, b, a},
		{b, a, c},
		{c, a, b},
	}

	for _, order := range orders {
		merged := MergeTimeline(nil, order)
		for idx, expected := range []uint{1, 2, 3} {
			if merged[idx].ID != expected {
				t.Fatalf("delivery order %v did not converge: got %d at %d", order, merged[idx].ID, idx)
			}
		}
	}
}

func TestMergeTimelineTieBreaksOnId(t *testing.T) {
	first := makeMessage(10, "aaaaaaaa-0000-0000-0000-000000000010", 0)
	second := makeMessage(11, "aaaaaaaa-0000-0000-0000-000000000011", 0)

	merged := MergeTimeline([]models.Message{second}, []models.Message{first})
	if merged[0].ID != 10 {
		t.Errorf("equal timestamps should order by id, got %d first", merged[0].ID)
	}
}

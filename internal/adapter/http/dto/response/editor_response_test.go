package response

import (
	"testing"
	"time"

	"smeta_admin/internal/domain/entities"
	"smeta_admin/internal/usecase"
)

func TestFromSnapshot(t *testing.T) {
	t.Run("nil maps become empty containers", func(t *testing.T) {
		resp := FromSnapshot(usecase.EditorSnapshot{SessionID: "sess-1"})

		if resp.Partners == nil || resp.PendingFields == nil || resp.SaveErrors == nil || resp.SavingItems == nil {
			t.Fatalf("expected empty containers, got %+v", resp)
		}
		if resp.History != nil {
			t.Fatalf("expected no history panel, got %+v", resp.History)
		}
	})

	t.Run("saving items come out sorted", func(t *testing.T) {
		resp := FromSnapshot(usecase.EditorSnapshot{
			SavingItems: map[int64]bool{30: true, 10: true, 20: true, 40: false},
		})

		if len(resp.SavingItems) != 3 {
			t.Fatalf("expected 3 in-flight items, got %v", resp.SavingItems)
		}
		for i, want := range []int64{10, 20, 30} {
			if resp.SavingItems[i] != want {
				t.Fatalf("expected sorted ids, got %v", resp.SavingItems)
			}
		}
	})

	t.Run("history entries render change facts", func(t *testing.T) {
		changedAt := time.Date(2026, 8, 30, 10, 30, 0, 0, time.UTC)
		snap := usecase.EditorSnapshot{
			History: &usecase.HistoryPanel{
				ItemID:  100,
				Fetched: true,
				Entries: []entities.ItemHistory{{
					ID:                1,
					ItemID:            100,
					ChangedAt:         changedAt,
					ChangedByUsername: entities.StringOf("boss"),
					OldQuantity:       entities.NumberOf(2),
					NewQuantity:       entities.NumberOf(9),
				}},
			},
		}

		resp := FromSnapshot(snap)
		if resp.History == nil || len(resp.History.Entries) != 1 {
			t.Fatalf("expected one entry, got %+v", resp.History)
		}
		entry := resp.History.Entries[0]
		if entry.ChangedAt != "2026-08-30 10:30" {
			t.Fatalf("unexpected timestamp %q", entry.ChangedAt)
		}
		if entry.ChangedBy != "boss" {
			t.Fatalf("unexpected author %q", entry.ChangedBy)
		}
		if len(entry.Changes) != 1 || entry.Changes[0].Field != "quantity" {
			t.Fatalf("unexpected changes %+v", entry.Changes)
		}
	})

	t.Run("error panel carries no entries", func(t *testing.T) {
		snap := usecase.EditorSnapshot{
			History: &usecase.HistoryPanel{ItemID: 100, Error: "timeout"},
		}
		resp := FromSnapshot(snap)
		if resp.History == nil || resp.History.Error != "timeout" {
			t.Fatalf("expected error panel, got %+v", resp.History)
		}
		if resp.History.Entries != nil {
			t.Fatalf("unfetched panel must not fake entries, got %+v", resp.History.Entries)
		}
	})
}

package response

import (
	"sort"

	"smeta_admin/internal/domain/entities"
	"smeta_admin/internal/usecase"
)

// EditorStateResponse is the full editor view state returned by every
// session operation. Clients render it wholesale instead of patching
// local copies, so it must be self-contained.
type EditorStateResponse struct {
	SessionID     string                `json:"sessionId"`
	Project       entities.Project      `json:"project"`
	Estimate      *entities.Estimate    `json:"estimate"`
	Partners      []entities.Partner    `json:"partners"`
	Total         float64               `json:"total"`
	PendingFields map[int64][]string    `json:"pendingFields"`
	SavingItems   []int64               `json:"savingItems"`
	SaveErrors    map[int64]string      `json:"saveErrors"`
	History       *HistoryPanelResponse `json:"history"`
}

type HistoryPanelResponse struct {
	ItemID  int64          `json:"itemId"`
	Loading bool           `json:"loading"`
	Entries []HistoryEntry `json:"entries,omitempty"`
	Error   string         `json:"error,omitempty"`
}

type HistoryEntry struct {
	ChangedAt string                 `json:"changedAt"`
	ChangedBy string                 `json:"changedBy,omitempty"`
	Changes   []entities.FieldChange `json:"changes"`
}

func FromSnapshot(snap usecase.EditorSnapshot) EditorStateResponse {
	resp := EditorStateResponse{
		SessionID:     snap.SessionID,
		Project:       snap.Project,
		Estimate:      snap.Estimate,
		Partners:      snap.Partners,
		Total:         snap.Total,
		PendingFields: snap.PendingFields,
		SaveErrors:    snap.SaveErrors,
	}
	if resp.Partners == nil {
		resp.Partners = []entities.Partner{}
	}
	if resp.PendingFields == nil {
		resp.PendingFields = map[int64][]string{}
	}
	if resp.SaveErrors == nil {
		resp.SaveErrors = map[int64]string{}
	}

	resp.SavingItems = make([]int64, 0, len(snap.SavingItems))
	for id, saving := range snap.SavingItems {
		if saving {
			resp.SavingItems = append(resp.SavingItems, id)
		}
	}
	sort.Slice(resp.SavingItems, func(i, j int) bool { return resp.SavingItems[i] < resp.SavingItems[j] })

	if snap.History != nil {
		panel := &HistoryPanelResponse{
			ItemID:  snap.History.ItemID,
			Loading: snap.History.Loading,
			Error:   snap.History.Error,
		}
		if snap.History.Fetched {
			panel.Entries = make([]HistoryEntry, 0, len(snap.History.Entries))
			for _, h := range snap.History.Entries {
				entry := HistoryEntry{Changes: h.Changes()}
				if !h.ChangedAt.IsZero() {
					entry.ChangedAt = h.ChangedAt.Format("2006-01-02 15:04")
				}
				if h.ChangedByUsername != nil {
					entry.ChangedBy = *h.ChangedByUsername
				}
				panel.Entries = append(panel.Entries, entry)
			}
		}
		resp.History = panel
	}
	return resp
}

package usecase

import (
	"sync"
	"time"

	"smeta_admin/internal/domain/entities"
)

// editorSession is the state of one open project view: the canonical
// estimate snapshot, the edit buffer, the history cache, and per-item save
// tracking. Each view owns exactly one session; sessions are never shared
// across views, so a single mutex per session is enough.
//
// Everything here is transient. Closing the session (or the idle sweep)
// discards unsaved edits silently.
type editorSession struct {
	id        string
	projectID int64

	mu       sync.Mutex
	project  entities.Project
	estimate *entities.Estimate
	partners []entities.Partner
	buffer   *EditBuffer
	history  *HistoryCache
	saving   map[int64]bool
	saveErrs map[int64]string
	lastSeen time.Time
}

func newEditorSession(id string, projectID int64) *editorSession {
	return &editorSession{
		id:        id,
		projectID: projectID,
		buffer:    NewEditBuffer(),
		history:   NewHistoryCache(),
		saving:    make(map[int64]bool),
		saveErrs:  make(map[int64]string),
		lastSeen:  time.Now(),
	}
}

func (s *editorSession) touch() {
	s.lastSeen = time.Now()
}

// item returns a pointer into the estimate's item list, or nil. Caller holds
// the lock.
func (s *editorSession) item(itemID int64) *entities.EstimateItem {
	if s.estimate == nil {
		return nil
	}
	for i := range s.estimate.Items {
		if s.estimate.Items[i].ID == itemID {
			return &s.estimate.Items[i]
		}
	}
	return nil
}

// removeItem drops the item and every piece of per-item state attached to
// it: buffer entry, history cache, open panel, save error. Caller holds the
// lock.
func (s *editorSession) removeItem(itemID int64) {
	if s.estimate != nil {
		items := s.estimate.Items
		for i := range items {
			if items[i].ID == itemID {
				s.estimate.Items = append(items[:i], items[i+1:]...)
				break
			}
		}
	}
	s.buffer.Clear(itemID)
	s.history.Drop(itemID)
	delete(s.saveErrs, itemID)
}

// HistoryPanel is the open history panel's state inside a snapshot.
type HistoryPanel struct {
	ItemID  int64
	Loading bool
	Fetched bool
	Entries []entities.ItemHistory
	Error   string
}

// EditorSnapshot is an immutable view of the session, consumed by the HTTP
// layer. The running total is derived here on every call, never cached.
type EditorSnapshot struct {
	SessionID     string
	Project       entities.Project
	Estimate      *entities.Estimate
	Partners      []entities.Partner
	Total         float64
	PendingFields map[int64][]string
	SavingItems   map[int64]bool
	SaveErrors    map[int64]string
	History       *HistoryPanel
}

// snapshot copies the session state. Caller holds the lock.
func (s *editorSession) snapshot() EditorSnapshot {
	snap := EditorSnapshot{
		SessionID:     s.id,
		Project:       s.project,
		Partners:      append([]entities.Partner(nil), s.partners...),
		PendingFields: make(map[int64][]string),
		SavingItems:   make(map[int64]bool),
		SaveErrors:    make(map[int64]string),
	}
	if s.estimate != nil {
		est := *s.estimate
		est.Items = append([]entities.EstimateItem(nil), s.estimate.Items...)
		snap.Estimate = &est
		snap.Total = EstimateTotal(est.Items)
		for _, it := range est.Items {
			if fields := s.buffer.PendingFields(it.ID); fields != nil {
				snap.PendingFields[it.ID] = fields
			}
		}
	}
	for id, inFlight := range s.saving {
		if inFlight {
			snap.SavingItems[id] = true
		}
	}
	for id, msg := range s.saveErrs {
		snap.SaveErrors[id] = msg
	}
	if open := s.history.OpenItem(); open != nil {
		panel := &HistoryPanel{ItemID: *open, Loading: s.history.IsLoading(*open)}
		if entries, ok := s.history.Cached(*open); ok {
			panel.Fetched = true
			panel.Entries = entries
		}
		if msg, ok := s.history.FetchError(*open); ok {
			panel.Error = msg
		}
		snap.History = panel
	}
	return snap
}

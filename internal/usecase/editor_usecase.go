package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"smeta_admin/internal/domain/entities"
	"smeta_admin/internal/usecase/interfaces"
)

var (
	ErrSessionNotFound     = errors.New("editor session not found")
	ErrNoEstimate          = errors.New("project has no estimate yet")
	ErrEstimateExists      = errors.New("estimate already exists for this project")
	ErrItemNotFound        = errors.New("estimate item not found")
	ErrSaveInFlight        = errors.New("a save is already in flight for this item")
	ErrNothingToSave       = errors.New("no pending changes for this item")
	ErrInvalidMaterialName = errors.New("material name must not be empty")
	ErrInvalidProjectID    = errors.New("invalid project id")
)

// IEstimateEditorUseCase exposes the estimate editor: per-view sessions over
// the backend's estimate, with diff-only saves, per-item audit history and a
// derived running total.
//
// Every mutating operation leaves the session in a previously-valid state on
// failure: no partial items, no dropped edits.

type IEstimateEditorUseCase interface {
	Open(ctx context.Context, projectID int64) (EditorSnapshot, error)
	Get(sessionID string) (EditorSnapshot, error)
	Close(sessionID string) error

	CreateEstimate(ctx context.Context, sessionID string, title, currency, notes *string) (EditorSnapshot, error)
	AddItem(ctx context.Context, sessionID string, fields entities.NewItemFields) (EditorSnapshot, error)
	DeleteItem(ctx context.Context, sessionID string, itemID int64) (EditorSnapshot, error)
	SetItemField(sessionID string, itemID int64, field, raw string) (EditorSnapshot, error)
	SaveItem(ctx context.Context, sessionID string, itemID int64) (EditorSnapshot, error)
	ToggleHistory(ctx context.Context, sessionID string, itemID int64) (EditorSnapshot, error)
}

type EstimateEditorUseCase struct {
	gateway interfaces.IEstimateGateway

	mu       sync.RWMutex
	sessions map[string]*editorSession
}

var _ IEstimateEditorUseCase = (*EstimateEditorUseCase)(nil)

func NewEstimateEditorUseCase(gateway interfaces.IEstimateGateway) *EstimateEditorUseCase {
	return &EstimateEditorUseCase{
		gateway:  gateway,
		sessions: make(map[string]*editorSession),
	}
}

// Open loads the project view and registers a fresh editor session for it.
// A missing or unfetchable estimate is not an error: the session starts in
// the "no estimate yet" state and creation is the valid next action. Partner
// reference data is best-effort for the same reason.
func (u *EstimateEditorUseCase) Open(ctx context.Context, projectID int64) (EditorSnapshot, error) {
	if projectID <= 0 {
		return EditorSnapshot{}, ErrInvalidProjectID
	}

	project, err := u.gateway.GetProject(ctx, projectID)
	if err != nil {
		log.Printf("[editor][usecase] open failed loading project project_id=%d err=%v", projectID, err)
		return EditorSnapshot{}, err
	}

	estimate, err := u.gateway.GetEstimate(ctx, projectID)
	if err != nil {
		log.Printf("[editor][usecase] estimate load degraded to absent project_id=%d err=%v", projectID, err)
		estimate = nil
	}
	if estimate != nil && estimate.Items == nil {
		estimate.Items = []entities.EstimateItem{}
	}

	partners, err := u.gateway.ListPartners(ctx)
	if err != nil {
		log.Printf("[editor][usecase] partner list degraded to empty project_id=%d err=%v", projectID, err)
		partners = nil
	}

	sess := newEditorSession(uuid.NewString(), projectID)
	sess.project = project
	sess.estimate = estimate
	sess.partners = partners

	u.mu.Lock()
	u.sessions[sess.id] = sess
	u.mu.Unlock()

	log.Printf("[editor][usecase] session opened session_id=%s project_id=%d has_estimate=%t", sess.id, projectID, estimate != nil)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.snapshot(), nil
}

func (u *EstimateEditorUseCase) Get(sessionID string) (EditorSnapshot, error) {
	sess, err := u.session(sessionID)
	if err != nil {
		return EditorSnapshot{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.touch()
	return sess.snapshot(), nil
}

// Close tears the view down. Unsaved buffer entries are discarded silently;
// there is no draft persistence.
func (u *EstimateEditorUseCase) Close(sessionID string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, ok := u.sessions[strings.TrimSpace(sessionID)]; !ok {
		return ErrSessionNotFound
	}
	delete(u.sessions, strings.TrimSpace(sessionID))
	log.Printf("[editor][usecase] session closed session_id=%s", sessionID)
	return nil
}

func (u *EstimateEditorUseCase) CreateEstimate(ctx context.Context, sessionID string, title, currency, notes *string) (EditorSnapshot, error) {
	sess, err := u.session(sessionID)
	if err != nil {
		return EditorSnapshot{}, err
	}

	sess.mu.Lock()
	sess.touch()
	if sess.estimate != nil {
		defer sess.mu.Unlock()
		return EditorSnapshot{}, ErrEstimateExists
	}
	projectID := sess.projectID
	sess.mu.Unlock()

	created, err := u.gateway.CreateEstimate(ctx, projectID, title, currency, notes)
	if err != nil {
		log.Printf("[editor][usecase] create estimate failed session_id=%s project_id=%d err=%v", sessionID, projectID, err)
		return EditorSnapshot{}, err
	}
	if created.Items == nil {
		created.Items = []entities.EstimateItem{}
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.estimate = &created
	log.Printf("[editor][usecase] estimate created session_id=%s estimate_id=%d", sessionID, created.ID)
	return sess.snapshot(), nil
}

func (u *EstimateEditorUseCase) AddItem(ctx context.Context, sessionID string, fields entities.NewItemFields) (EditorSnapshot, error) {
	if strings.TrimSpace(fields.MaterialName) == "" {
		return EditorSnapshot{}, ErrInvalidMaterialName
	}

	sess, err := u.session(sessionID)
	if err != nil {
		return EditorSnapshot{}, err
	}

	sess.mu.Lock()
	sess.touch()
	if sess.estimate == nil {
		defer sess.mu.Unlock()
		return EditorSnapshot{}, ErrNoEstimate
	}
	estimateID := sess.estimate.ID
	sess.mu.Unlock()

	created, err := u.gateway.AddEstimateItem(ctx, estimateID, fields)
	if err != nil {
		log.Printf("[editor][usecase] add item failed session_id=%s estimate_id=%d err=%v", sessionID, estimateID, err)
		return EditorSnapshot{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.estimate != nil && sess.estimate.ID == estimateID {
		// Append at the end regardless of positionNo; ordering by position
		// is a presentation concern.
		sess.estimate.Items = append(sess.estimate.Items, created)
	}
	log.Printf("[editor][usecase] item added session_id=%s estimate_id=%d item_id=%d", sessionID, estimateID, created.ID)
	return sess.snapshot(), nil
}

func (u *EstimateEditorUseCase) DeleteItem(ctx context.Context, sessionID string, itemID int64) (EditorSnapshot, error) {
	sess, err := u.session(sessionID)
	if err != nil {
		return EditorSnapshot{}, err
	}

	sess.mu.Lock()
	sess.touch()
	if sess.estimate == nil {
		defer sess.mu.Unlock()
		return EditorSnapshot{}, ErrNoEstimate
	}
	if sess.item(itemID) == nil {
		defer sess.mu.Unlock()
		return EditorSnapshot{}, ErrItemNotFound
	}
	estimateID := sess.estimate.ID
	sess.mu.Unlock()

	if err := u.gateway.DeleteEstimateItem(ctx, estimateID, itemID); err != nil {
		log.Printf("[editor][usecase] delete item failed session_id=%s item_id=%d err=%v", sessionID, itemID, err)
		return EditorSnapshot{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.removeItem(itemID)
	log.Printf("[editor][usecase] item deleted session_id=%s item_id=%d", sessionID, itemID)
	return sess.snapshot(), nil
}

// SetItemField buffers one field edit. Pure state transition: no network,
// idempotent, and setting a field back to its baseline value removes it from
// the buffer again.
func (u *EstimateEditorUseCase) SetItemField(sessionID string, itemID int64, field, raw string) (EditorSnapshot, error) {
	sess, err := u.session(sessionID)
	if err != nil {
		return EditorSnapshot{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.touch()
	item := sess.item(itemID)
	if item == nil {
		return EditorSnapshot{}, ErrItemNotFound
	}
	if err := sess.buffer.SetField(*item, field, raw); err != nil {
		return EditorSnapshot{}, err
	}
	return sess.snapshot(), nil
}

// SaveItem sends the item's pending diff to the backend. The buffer entry is
// cleared only after the backend confirms; on failure the edits stay buffered
// for retry and the failure is recorded per item. Saves of the same item are
// serialized: a second save while one is in flight is rejected.
func (u *EstimateEditorUseCase) SaveItem(ctx context.Context, sessionID string, itemID int64) (EditorSnapshot, error) {
	sess, err := u.session(sessionID)
	if err != nil {
		return EditorSnapshot{}, err
	}

	sess.mu.Lock()
	sess.touch()
	if sess.estimate == nil {
		defer sess.mu.Unlock()
		return EditorSnapshot{}, ErrNoEstimate
	}
	if sess.item(itemID) == nil {
		defer sess.mu.Unlock()
		return EditorSnapshot{}, ErrItemNotFound
	}
	if sess.saving[itemID] {
		defer sess.mu.Unlock()
		return EditorSnapshot{}, ErrSaveInFlight
	}
	patch := sess.buffer.PendingPatch(itemID)
	if len(patch) == 0 {
		defer sess.mu.Unlock()
		return EditorSnapshot{}, ErrNothingToSave
	}
	sess.saving[itemID] = true
	estimateID := sess.estimate.ID
	sess.mu.Unlock()

	serverItem, err := u.gateway.PatchEstimateItem(ctx, estimateID, itemID, patch)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	delete(sess.saving, itemID)
	if err != nil {
		// Edits stay in the buffer; the row surfaces the failure and the
		// user can retry.
		sess.saveErrs[itemID] = err.Error()
		log.Printf("[editor][usecase] save failed session_id=%s item_id=%d err=%v", sessionID, itemID, err)
		return EditorSnapshot{}, err
	}

	if item := sess.item(itemID); item != nil {
		// The server response is the merge source of truth: overwrite the
		// whole row, not a field union.
		*item = serverItem
	}
	sess.buffer.Clear(itemID)
	delete(sess.saveErrs, itemID)
	log.Printf("[editor][usecase] save applied session_id=%s item_id=%d fields=%d", sessionID, itemID, len(patch))
	return sess.snapshot(), nil
}

// ToggleHistory opens or closes the item's audit panel. The first open
// fetches the trail; later opens reuse the cached entries. A failed fetch is
// surfaced in the snapshot as a panel error, never as an operation error, and
// is retried on the next open.
func (u *EstimateEditorUseCase) ToggleHistory(ctx context.Context, sessionID string, itemID int64) (EditorSnapshot, error) {
	sess, err := u.session(sessionID)
	if err != nil {
		return EditorSnapshot{}, err
	}

	sess.mu.Lock()
	sess.touch()
	if sess.estimate == nil {
		defer sess.mu.Unlock()
		return EditorSnapshot{}, ErrNoEstimate
	}
	if sess.item(itemID) == nil {
		defer sess.mu.Unlock()
		return EditorSnapshot{}, ErrItemNotFound
	}
	open, needsFetch := sess.history.Toggle(itemID)
	if open == nil || !needsFetch {
		defer sess.mu.Unlock()
		return sess.snapshot(), nil
	}
	sess.history.SetLoading(itemID, true)
	estimateID := sess.estimate.ID
	sess.mu.Unlock()

	res, err := u.gateway.GetEstimateItemHistory(ctx, estimateID, itemID)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.history.SetLoading(itemID, false)
	if err != nil {
		log.Printf("[editor][usecase] history fetch failed session_id=%s item_id=%d err=%v", sessionID, itemID, err)
		sess.history.SetFetchError(itemID, err.Error())
		return sess.snapshot(), nil
	}
	sess.history.Put(itemID, res.History)
	return sess.snapshot(), nil
}

// SweepIdle drops sessions untouched for longer than ttl and reports how
// many were evicted. Abandoned views never say goodbye.
func (u *EstimateEditorUseCase) SweepIdle(ttl time.Duration) int {
	cutoff := time.Now().Add(-ttl)
	u.mu.Lock()
	defer u.mu.Unlock()
	evicted := 0
	for id, sess := range u.sessions {
		sess.mu.Lock()
		stale := sess.lastSeen.Before(cutoff)
		sess.mu.Unlock()
		if stale {
			delete(u.sessions, id)
			evicted++
		}
	}
	if evicted > 0 {
		log.Printf("[editor][usecase] idle sweep evicted=%d", evicted)
	}
	return evicted
}

func (u *EstimateEditorUseCase) session(sessionID string) (*editorSession, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrSessionNotFound
	}
	u.mu.RLock()
	defer u.mu.RUnlock()
	sess, ok := u.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

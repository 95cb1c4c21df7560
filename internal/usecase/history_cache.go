package usecase

import "smeta_admin/internal/domain/entities"

// HistoryCache memoizes per-item audit trails and tracks which item's history
// panel is open. At most one panel is open at a time; the invariant lives in
// the single openItemID field rather than per-row flags.
//
// History is append-only server side and a view never stays open across
// foreign edits, so a fetched trail stays valid for the view's lifetime.
// A failed fetch is remembered as a distinct error state, not as an empty
// trail, and the next open retries.
//
// Not goroutine-safe on its own: the owning editor serializes access.
type HistoryCache struct {
	openItemID    *int64
	loadingItemID *int64
	entries       map[int64][]entities.ItemHistory
	fetchErrs     map[int64]string
}

func NewHistoryCache() *HistoryCache {
	return &HistoryCache{
		entries:   make(map[int64][]entities.ItemHistory),
		fetchErrs: make(map[int64]string),
	}
}

// Toggle flips the panel state. Opening an item closes whichever panel was
// open before. Returns the now-open item id (nil when the toggle closed the
// panel) and whether a fetch is needed to populate it.
func (c *HistoryCache) Toggle(itemID int64) (open *int64, needsFetch bool) {
	if c.openItemID != nil && *c.openItemID == itemID {
		c.openItemID = nil
		return nil, false
	}
	id := itemID
	c.openItemID = &id
	delete(c.fetchErrs, itemID)
	_, cached := c.entries[itemID]
	return c.openItemID, !cached
}

func (c *HistoryCache) OpenItem() *int64 {
	return c.openItemID
}

func (c *HistoryCache) IsLoading(itemID int64) bool {
	return c.loadingItemID != nil && *c.loadingItemID == itemID
}

func (c *HistoryCache) SetLoading(itemID int64, on bool) {
	if on {
		id := itemID
		c.loadingItemID = &id
		return
	}
	if c.loadingItemID != nil && *c.loadingItemID == itemID {
		c.loadingItemID = nil
	}
}

// Put memoizes a fetched trail. A nil slice is stored as empty: "fetched and
// genuinely empty" must be distinguishable from "never fetched".
func (c *HistoryCache) Put(itemID int64, history []entities.ItemHistory) {
	if history == nil {
		history = []entities.ItemHistory{}
	}
	c.entries[itemID] = history
	delete(c.fetchErrs, itemID)
}

func (c *HistoryCache) Cached(itemID int64) ([]entities.ItemHistory, bool) {
	h, ok := c.entries[itemID]
	return h, ok
}

// SetFetchError records a failed fetch for the item without memoizing it, so
// a later open goes back to the network.
func (c *HistoryCache) SetFetchError(itemID int64, msg string) {
	c.fetchErrs[itemID] = msg
}

func (c *HistoryCache) FetchError(itemID int64) (string, bool) {
	msg, ok := c.fetchErrs[itemID]
	return msg, ok
}

// Drop forgets everything about an item: cache entry, error state, and the
// open panel if it was this item's. Called when the item is deleted; if the
// backend ever reuses the id, the new item starts with no history.
func (c *HistoryCache) Drop(itemID int64) {
	delete(c.entries, itemID)
	delete(c.fetchErrs, itemID)
	if c.openItemID != nil && *c.openItemID == itemID {
		c.openItemID = nil
	}
	if c.loadingItemID != nil && *c.loadingItemID == itemID {
		c.loadingItemID = nil
	}
}

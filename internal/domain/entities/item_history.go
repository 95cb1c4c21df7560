package entities

import "time"

// ItemHistory is one immutable audit record of a past change to a line item.
// Records are append-only from this service's perspective and arrive from the
// backend already ordered by ChangedAt.
//
// ChangedBy may be absent: system-initiated and legacy changes carry no
// editor identity.
type ItemHistory struct {
	ID                int64     `json:"id"`
	ItemID            int64     `json:"itemId"`
	ChangedBy         *int64    `json:"changedBy,omitempty"`
	ChangedByUsername *string   `json:"changedByUsername,omitempty"`
	ChangedAt         time.Time `json:"changedAt"`
	OldUnit           *string   `json:"oldUnit,omitempty"`
	NewUnit           *string   `json:"newUnit,omitempty"`
	OldQuantity       *Number   `json:"oldQuantity,omitempty"`
	NewQuantity       *Number   `json:"newQuantity,omitempty"`
	OldUnitPrice      *Number   `json:"oldUnitPrice,omitempty"`
	NewUnitPrice      *Number   `json:"newUnitPrice,omitempty"`
}

// ItemWithHistory is the backend's response shape for a single-item history
// fetch: the authoritative item plus its audit trail.
type ItemWithHistory struct {
	Item    EstimateItem  `json:"item"`
	History []ItemHistory `json:"history"`
}

// FieldChange is one rendered "field X changed from Old to New" fact. An
// audit record yields between zero and three of them (unit, quantity,
// unitPrice), only for fields where the value actually moved.
type FieldChange struct {
	Field string `json:"field"`
	Old   string `json:"old"`
	New   string `json:"new"`
}

// Changes derives the per-field facts of a history record. Absent values
// render as the empty string so "cleared" and "never set" read the same way
// they do in the audit table.
func (h ItemHistory) Changes() []FieldChange {
	var out []FieldChange
	if oldV, newV := strOrEmpty(h.OldUnit), strOrEmpty(h.NewUnit); oldV != newV {
		out = append(out, FieldChange{Field: "unit", Old: oldV, New: newV})
	}
	if oldV, newV := numOrEmpty(h.OldQuantity), numOrEmpty(h.NewQuantity); oldV != newV {
		out = append(out, FieldChange{Field: "quantity", Old: oldV, New: newV})
	}
	if oldV, newV := numOrEmpty(h.OldUnitPrice), numOrEmpty(h.NewUnitPrice); oldV != newV {
		out = append(out, FieldChange{Field: "unitPrice", Old: oldV, New: newV})
	}
	return out
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func numOrEmpty(n *Number) string {
	if n == nil {
		return ""
	}
	return n.String()
}

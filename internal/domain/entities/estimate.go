package entities

import (
	"bytes"
	"strconv"
)

// Estimate is a project's costed bill of materials (смета).
//
// Domain notes:
//   - The backend is the source of truth for estimate and item state; this
//     service only holds the last fetched snapshot for the active view.
//   - At most one live estimate exists per project.
//   - Items keeps arrival order. Display ordering by PositionNo is a
//     presentation concern, not an invariant of the list.

type Estimate struct {
	ID        int64          `json:"id"`
	ProjectID int64          `json:"projectId"`
	Title     *string        `json:"title,omitempty"`
	Currency  *string        `json:"currency,omitempty"`
	Notes     *string        `json:"notes,omitempty"`
	Items     []EstimateItem `json:"items"`
}

// EstimateItem is one priced line of an estimate.
//
// Total is computed and owned exclusively by the backend (tax/discount rules
// are not visible here). It is never recomputed from Quantity*UnitPrice and
// never patched.
type EstimateItem struct {
	ID                  int64   `json:"id"`
	MaterialName        string  `json:"materialName"`
	Unit                *string `json:"unit,omitempty"`
	Quantity            *Number `json:"quantity,omitempty"`
	UnitPrice           *Number `json:"unitPrice,omitempty"`
	Category            *string `json:"category,omitempty"`
	PositionNo          *int64  `json:"positionNo,omitempty"`
	BusinessPartnerID   *int64  `json:"businessPartnerId,omitempty"`
	BusinessPartnerName *string `json:"businessPartnerName,omitempty"`
	Total               *Number `json:"total,omitempty"`
}

// ItemPatch is the wire shape of a partial item update. A key that is absent
// means "do not touch this field"; a key with a nil value serializes to an
// explicit JSON null and means "clear this field".
type ItemPatch map[string]any

// NewItemFields carries the user-entered fields of a new line item. The
// backend assigns ID and Total.
type NewItemFields struct {
	MaterialName      string  `json:"materialName"`
	Unit              *string `json:"unit,omitempty"`
	Quantity          *Number `json:"quantity,omitempty"`
	UnitPrice         *Number `json:"unitPrice,omitempty"`
	Category          *string `json:"category,omitempty"`
	PositionNo        *int64  `json:"positionNo,omitempty"`
	BusinessPartnerID *int64  `json:"businessPartnerId,omitempty"`
}

// Number is a float64 that tolerates the backend's inconsistent decimal
// serialization: some endpoints emit JSON numbers, others quoted numeric
// strings ("10.00").
type Number float64

func (n Number) Float64() float64 { return float64(n) }

func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(n.String()), nil
}

func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	if b[0] == '"' {
		s, err := strconv.Unquote(string(b))
		if err != nil {
			return err
		}
		if len(bytes.TrimSpace([]byte(s))) == 0 {
			return nil
		}
		b = []byte(s)
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return err
	}
	*n = Number(f)
	return nil
}

// NumberOf is a convenience constructor for optional numeric fields.
func NumberOf(v float64) *Number {
	n := Number(v)
	return &n
}

// StringOf is a convenience constructor for optional string fields.
func StringOf(v string) *string {
	return &v
}

// Int64Of is a convenience constructor for optional id fields.
func Int64Of(v int64) *int64 {
	return &v
}

package usecase

import (
	"errors"
	"strconv"
	"strings"

	"smeta_admin/internal/domain/entities"
)

// Editable item fields, named as the backend knows them. Total and id are
// backend-owned and can never enter the buffer.
const (
	FieldMaterialName      = "materialName"
	FieldUnit              = "unit"
	FieldQuantity          = "quantity"
	FieldUnitPrice         = "unitPrice"
	FieldCategory          = "category"
	FieldPositionNo        = "positionNo"
	FieldBusinessPartnerID = "businessPartnerId"
)

var (
	ErrUnknownField = errors.New("unknown or non-editable field")
	ErrNotANumber   = errors.New("value is not a number")
)

var numericFields = map[string]bool{
	FieldQuantity:          true,
	FieldUnitPrice:         true,
	FieldPositionNo:        true,
	FieldBusinessPartnerID: true,
}

var editableFields = map[string]bool{
	FieldMaterialName:      true,
	FieldUnit:              true,
	FieldQuantity:          true,
	FieldUnitPrice:         true,
	FieldCategory:          true,
	FieldPositionNo:        true,
	FieldBusinessPartnerID: true,
}

// fieldValue is one normalized pending value. A cleared numeric field is a
// distinct state from "unchanged": it becomes an explicit null on the wire.
type fieldValue struct {
	cleared bool
	isNum   bool
	num     float64
	text    string
}

// normalized returns the string form used for baseline comparison. A cleared
// value normalizes to the empty string, same as an absent baseline.
func (v fieldValue) normalized() string {
	switch {
	case v.cleared:
		return ""
	case v.isNum:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	default:
		return v.text
	}
}

// wire returns the value as it goes into an ItemPatch: nil for cleared.
func (v fieldValue) wire() any {
	switch {
	case v.cleared:
		return nil
	case v.isNum:
		return v.num
	default:
		return v.text
	}
}

// EditBuffer tracks, per line item, the minimal set of fields whose current
// UI value differs from the item's last-known server value (the baseline).
//
// Invariant: an item id has an entry iff at least one field differs. Setting
// a field back to its baseline removes the field; removing the last field
// removes the entry. The buffer never touches the network and is not
// goroutine-safe on its own: the owning editor serializes access.
type EditBuffer struct {
	entries map[int64]map[string]fieldValue
}

func NewEditBuffer() *EditBuffer {
	return &EditBuffer{entries: make(map[int64]map[string]fieldValue)}
}

// SetField normalizes raw and inserts or removes the pending value for the
// item's field depending on whether it differs from the baseline. Idempotent;
// last writer wins per field.
func (b *EditBuffer) SetField(item entities.EstimateItem, field, raw string) error {
	if !editableFields[field] {
		return ErrUnknownField
	}

	var v fieldValue
	if numericFields[field] {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			v = fieldValue{cleared: true}
		} else {
			f, err := strconv.ParseFloat(trimmed, 64)
			if err != nil {
				return ErrNotANumber
			}
			v = fieldValue{isNum: true, num: f}
		}
	} else {
		v = fieldValue{text: raw}
	}

	if v.normalized() == baselineString(item, field) {
		b.removeField(item.ID, field)
		return nil
	}

	entry := b.entries[item.ID]
	if entry == nil {
		entry = make(map[string]fieldValue)
		b.entries[item.ID] = entry
	}
	entry[field] = v
	return nil
}

// PendingPatch returns the wire patch for the item: only changed keys, with
// cleared numerics as explicit nulls. Nil when nothing is pending.
func (b *EditBuffer) PendingPatch(itemID int64) entities.ItemPatch {
	entry := b.entries[itemID]
	if len(entry) == 0 {
		return nil
	}
	patch := make(entities.ItemPatch, len(entry))
	for field, v := range entry {
		patch[field] = v.wire()
	}
	return patch
}

func (b *EditBuffer) HasPendingChanges(itemID int64) bool {
	return len(b.entries[itemID]) > 0
}

// PendingFields lists the field names buffered for the item, for snapshots.
func (b *EditBuffer) PendingFields(itemID int64) []string {
	entry := b.entries[itemID]
	if len(entry) == 0 {
		return nil
	}
	fields := make([]string, 0, len(entry))
	for f := range entry {
		fields = append(fields, f)
	}
	return fields
}

// Clear drops the item's entry, if any. Called after a successful save and
// when the item is deleted.
func (b *EditBuffer) Clear(itemID int64) {
	delete(b.entries, itemID)
}

// Len reports how many items currently have pending edits.
func (b *EditBuffer) Len() int {
	return len(b.entries)
}

func (b *EditBuffer) removeField(itemID int64, field string) {
	entry := b.entries[itemID]
	if entry == nil {
		return
	}
	delete(entry, field)
	if len(entry) == 0 {
		delete(b.entries, itemID)
	}
}

// baselineString renders the item's last-known server value for a field as a
// string, with absent values as "". Comparison happens on string forms so
// "12" typed into a numeric cell equals a baseline of 12.
func baselineString(item entities.EstimateItem, field string) string {
	switch field {
	case FieldMaterialName:
		return item.MaterialName
	case FieldUnit:
		if item.Unit == nil {
			return ""
		}
		return *item.Unit
	case FieldCategory:
		if item.Category == nil {
			return ""
		}
		return *item.Category
	case FieldQuantity:
		if item.Quantity == nil {
			return ""
		}
		return item.Quantity.String()
	case FieldUnitPrice:
		if item.UnitPrice == nil {
			return ""
		}
		return item.UnitPrice.String()
	case FieldPositionNo:
		if item.PositionNo == nil {
			return ""
		}
		return strconv.FormatInt(*item.PositionNo, 10)
	case FieldBusinessPartnerID:
		if item.BusinessPartnerID == nil {
			return ""
		}
		return strconv.FormatInt(*item.BusinessPartnerID, 10)
	default:
		return ""
	}
}

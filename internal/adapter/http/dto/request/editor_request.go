package request

import "smeta_admin/internal/domain/entities"

type OpenSessionRequest struct {
	ProjectID int64 `json:"projectId" binding:"required"`
}

type CreateEstimateRequest struct {
	Title    *string `json:"title"`
	Currency *string `json:"currency"`
	Notes    *string `json:"notes"`
}

type AddItemRequest struct {
	MaterialName      string   `json:"materialName" binding:"required"`
	Unit              *string  `json:"unit"`
	Quantity          *float64 `json:"quantity"`
	UnitPrice         *float64 `json:"unitPrice"`
	Category          *string  `json:"category"`
	PositionNo        *int64   `json:"positionNo"`
	BusinessPartnerID *int64   `json:"businessPartnerId"`
}

func (r AddItemRequest) ToFields() entities.NewItemFields {
	fields := entities.NewItemFields{
		MaterialName:      r.MaterialName,
		Unit:              r.Unit,
		Category:          r.Category,
		PositionNo:        r.PositionNo,
		BusinessPartnerID: r.BusinessPartnerID,
	}
	if r.Quantity != nil {
		fields.Quantity = entities.NumberOf(*r.Quantity)
	}
	if r.UnitPrice != nil {
		fields.UnitPrice = entities.NumberOf(*r.UnitPrice)
	}
	return fields
}

// SetFieldRequest carries one inline cell edit. Value is the raw input text;
// normalization (numeric parsing, the cleared marker) happens in the editor,
// so an empty string here is meaningful and distinct from no change.
type SetFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

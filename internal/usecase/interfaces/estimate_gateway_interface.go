package interfaces

import (
	"context"

	"smeta_admin/internal/domain/entities"
)

// IEstimateGateway abstracts the backend operations the estimate editor
// consumes. The caller's bearer token travels inside ctx; implementations
// never store credentials.
//
// Semantics fixed by the backend contract:
//   - GetEstimate returns (nil, nil) when the project has no estimate yet.
//   - PatchEstimateItem sends only changed keys; an explicit null clears a
//     field, an absent key leaves it untouched.
//   - Item totals are computed server side and come back on every item.

type IEstimateGateway interface {
	GetProject(ctx context.Context, projectID int64) (entities.Project, error)
	GetEstimate(ctx context.Context, projectID int64) (*entities.Estimate, error)
	CreateEstimate(ctx context.Context, projectID int64, title, currency, notes *string) (entities.Estimate, error)
	AddEstimateItem(ctx context.Context, estimateID int64, fields entities.NewItemFields) (entities.EstimateItem, error)
	PatchEstimateItem(ctx context.Context, estimateID, itemID int64, patch entities.ItemPatch) (entities.EstimateItem, error)
	DeleteEstimateItem(ctx context.Context, estimateID, itemID int64) error
	GetEstimateItemHistory(ctx context.Context, estimateID, itemID int64) (entities.ItemWithHistory, error)
	ListPartners(ctx context.Context) ([]entities.Partner, error)
}

package backend

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"smeta_admin/internal/domain/entities"
	"smeta_admin/internal/usecase/interfaces"
)

var _ interfaces.IEstimateGateway = (*Client)(nil)

// GetProject fetches the project detail. Some backend builds answer the
// detail route with a shape that is not a project; when that happens the
// list is scanned for the id instead, mirroring the original screen's
// fallback.
func (c *Client) GetProject(ctx context.Context, projectID int64) (entities.Project, error) {
	var p entities.Project
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/projects/%d", projectID), nil, nil, &p)
	if err == nil && (p.Title != "" || p.Organization.ID != 0) {
		return p, nil
	}
	if err != nil {
		log.Printf("[backend][client] project detail fetch degraded to list scan project_id=%d err=%v", projectID, err)
	}

	query := url.Values{"size": {"1000"}}
	var page entities.Page[entities.Project]
	if err := c.do(ctx, http.MethodGet, "/api/projects", query, nil, &page); err != nil {
		return entities.Project{}, err
	}
	for _, candidate := range page.Content {
		if candidate.ID == projectID {
			return candidate, nil
		}
	}
	return entities.Project{}, ErrProjectNotFound
}

// GetEstimate returns the project's estimate, or nil when none exists yet.
// Only a clean 404 maps to absent; other failures are the caller's to
// interpret.
func (c *Client) GetEstimate(ctx context.Context, projectID int64) (*entities.Estimate, error) {
	var e entities.Estimate
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/projects/%d/estimate", projectID), nil, nil, &e)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (c *Client) CreateEstimate(ctx context.Context, projectID int64, title, currency, notes *string) (entities.Estimate, error) {
	payload := map[string]any{"projectId": projectID}
	if title != nil {
		payload["title"] = *title
	}
	if currency != nil {
		payload["currency"] = *currency
	}
	if notes != nil {
		payload["notes"] = *notes
	}
	var e entities.Estimate
	if err := c.do(ctx, http.MethodPost, "/api/estimates", nil, payload, &e); err != nil {
		return entities.Estimate{}, err
	}
	return e, nil
}

func (c *Client) AddEstimateItem(ctx context.Context, estimateID int64, fields entities.NewItemFields) (entities.EstimateItem, error) {
	var item entities.EstimateItem
	path := fmt.Sprintf("/api/estimates/%d/items", estimateID)
	if err := c.do(ctx, http.MethodPost, path, nil, fields, &item); err != nil {
		return entities.EstimateItem{}, err
	}
	return item, nil
}

// PatchEstimateItem sends only the changed keys. The patch map marshals nil
// values as explicit JSON nulls, which the backend reads as "clear this
// field"; absent keys stay untouched.
func (c *Client) PatchEstimateItem(ctx context.Context, estimateID, itemID int64, patch entities.ItemPatch) (entities.EstimateItem, error) {
	var item entities.EstimateItem
	path := fmt.Sprintf("/api/estimates/%d/items/%d", estimateID, itemID)
	if err := c.do(ctx, http.MethodPatch, path, nil, patch, &item); err != nil {
		return entities.EstimateItem{}, err
	}
	return item, nil
}

func (c *Client) DeleteEstimateItem(ctx context.Context, estimateID, itemID int64) error {
	path := fmt.Sprintf("/api/estimates/%d/items/%d", estimateID, itemID)
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) GetEstimateItemHistory(ctx context.Context, estimateID, itemID int64) (entities.ItemWithHistory, error) {
	var res entities.ItemWithHistory
	path := fmt.Sprintf("/api/estimates/%d/items/%d", estimateID, itemID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &res); err != nil {
		return entities.ItemWithHistory{}, err
	}
	return res, nil
}

func (c *Client) ListPartners(ctx context.Context) ([]entities.Partner, error) {
	var partners []entities.Partner
	if err := c.do(ctx, http.MethodGet, "/api/partners", nil, nil, &partners); err != nil {
		return nil, err
	}
	return partners, nil
}

func pageQuery(size int) url.Values {
	return url.Values{"size": {strconv.Itoa(size)}}
}

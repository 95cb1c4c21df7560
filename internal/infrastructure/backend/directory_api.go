package backend

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"smeta_admin/internal/domain/entities"
	"smeta_admin/internal/usecase/interfaces"
)

var (
	_ interfaces.IAuthGateway      = (*Client)(nil)
	_ interfaces.IDirectoryGateway = (*Client)(nil)
)

const listPageSize = 100

func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	payload := map[string]string{"username": username, "password": password}
	var res struct {
		AccessToken string `json:"access_token"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/login", nil, payload, &res); err != nil {
		return "", err
	}
	return res.AccessToken, nil
}

func (c *Client) CurrentUser(ctx context.Context) (entities.User, error) {
	var u entities.User
	if err := c.do(ctx, http.MethodGet, "/api/users/me", nil, nil, &u); err != nil {
		return entities.User{}, err
	}
	return u, nil
}

func (c *Client) ListProjects(ctx context.Context, organizationID *int64) ([]entities.Project, error) {
	query := pageQuery(listPageSize)
	if organizationID != nil {
		query.Set("organizationId", strconv.FormatInt(*organizationID, 10))
	}
	var page entities.Page[entities.Project]
	if err := c.do(ctx, http.MethodGet, "/api/projects", query, nil, &page); err != nil {
		return nil, err
	}
	return page.Content, nil
}

func (c *Client) CreateProject(ctx context.Context, fields entities.NewProjectFields) (entities.Project, error) {
	var p entities.Project
	if err := c.do(ctx, http.MethodPost, "/api/projects", nil, fields, &p); err != nil {
		return entities.Project{}, err
	}
	return p, nil
}

func (c *Client) ListClients(ctx context.Context) ([]entities.Client, error) {
	var page entities.Page[entities.Client]
	if err := c.do(ctx, http.MethodGet, "/api/clients", pageQuery(listPageSize), nil, &page); err != nil {
		return nil, err
	}
	return page.Content, nil
}

func (c *Client) CreateClient(ctx context.Context, fields entities.NewClientFields) (entities.Client, error) {
	var client entities.Client
	if err := c.do(ctx, http.MethodPost, "/api/clients", nil, fields, &client); err != nil {
		return entities.Client{}, err
	}
	return client, nil
}

// The organization routes are singular on the backend, unlike the rest.
func (c *Client) ListOrganizations(ctx context.Context) ([]entities.Organization, error) {
	var orgs []entities.Organization
	if err := c.do(ctx, http.MethodGet, "/api/organization", nil, nil, &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

func (c *Client) GetOrganization(ctx context.Context, id int64) (entities.Organization, error) {
	var org entities.Organization
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/organization/%d", id), nil, nil, &org); err != nil {
		return entities.Organization{}, err
	}
	return org, nil
}

func (c *Client) CreateOrganization(ctx context.Context, title string) (entities.Organization, error) {
	var org entities.Organization
	if err := c.do(ctx, http.MethodPost, "/api/organization", nil, map[string]string{"title": title}, &org); err != nil {
		return entities.Organization{}, err
	}
	return org, nil
}

func (c *Client) ListEmployees(ctx context.Context) ([]entities.Employee, error) {
	var page entities.Page[entities.Employee]
	if err := c.do(ctx, http.MethodGet, "/api/employees", pageQuery(listPageSize), nil, &page); err != nil {
		return nil, err
	}
	return page.Content, nil
}

func (c *Client) CreateEmployee(ctx context.Context, email, password string) (entities.Employee, error) {
	payload := map[string]string{"email": email, "password": password}
	var e entities.Employee
	if err := c.do(ctx, http.MethodPost, "/api/employees", nil, payload, &e); err != nil {
		return entities.Employee{}, err
	}
	return e, nil
}

func (c *Client) CreatePartner(ctx context.Context, name string) (entities.Partner, error) {
	var p entities.Partner
	if err := c.do(ctx, http.MethodPost, "/api/partners", nil, map[string]string{"name": name}, &p); err != nil {
		return entities.Partner{}, err
	}
	return p, nil
}

func (c *Client) DeletePartner(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/partners/%d", id), nil, nil, nil)
}

// Team membership reads go through the users filter endpoints; the write is
// a single employeeIds replacement on the project.
func (c *Client) ListProjectTeam(ctx context.Context, projectID int64) ([]entities.Employee, error) {
	query := pageQuery(listPageSize)
	query.Set("projectId", strconv.FormatInt(projectID, 10))
	var page entities.Page[entities.Employee]
	if err := c.do(ctx, http.MethodGet, "/api/users", query, nil, &page); err != nil {
		return nil, err
	}
	return page.Content, nil
}

func (c *Client) ListAvailableEmployees(ctx context.Context, projectID int64) ([]entities.Employee, error) {
	query := pageQuery(listPageSize)
	query.Set("notAssignedToProjectId", strconv.FormatInt(projectID, 10))
	var page entities.Page[entities.Employee]
	if err := c.do(ctx, http.MethodGet, "/api/users", query, nil, &page); err != nil {
		return nil, err
	}
	return page.Content, nil
}

func (c *Client) SetProjectTeam(ctx context.Context, projectID int64, employeeIDs []int64) error {
	if employeeIDs == nil {
		employeeIDs = []int64{}
	}
	payload := map[string]any{"employeeIds": employeeIDs}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/projects/%d", projectID), nil, payload, nil)
}

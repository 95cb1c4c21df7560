package interfaces

import (
	"context"

	"smeta_admin/internal/domain/entities"
)

// IDirectoryGateway abstracts the backend CRUD surfaces behind the plain
// list-plus-form screens (projects, clients, organizations, employees,
// partners) and the project team assignment.
//
// SetProjectTeam replaces the full employee id list: the backend models team
// membership as a single PATCH of employeeIds, so add/remove are expressed by
// the caller as list edits.

type IDirectoryGateway interface {
	ListProjects(ctx context.Context, organizationID *int64) ([]entities.Project, error)
	CreateProject(ctx context.Context, fields entities.NewProjectFields) (entities.Project, error)
	ListClients(ctx context.Context) ([]entities.Client, error)
	CreateClient(ctx context.Context, fields entities.NewClientFields) (entities.Client, error)
	ListOrganizations(ctx context.Context) ([]entities.Organization, error)
	GetOrganization(ctx context.Context, id int64) (entities.Organization, error)
	CreateOrganization(ctx context.Context, title string) (entities.Organization, error)
	ListEmployees(ctx context.Context) ([]entities.Employee, error)
	CreateEmployee(ctx context.Context, email, password string) (entities.Employee, error)
	CreatePartner(ctx context.Context, name string) (entities.Partner, error)
	DeletePartner(ctx context.Context, id int64) error
	ListProjectTeam(ctx context.Context, projectID int64) ([]entities.Employee, error)
	ListAvailableEmployees(ctx context.Context, projectID int64) ([]entities.Employee, error)
	SetProjectTeam(ctx context.Context, projectID int64, employeeIDs []int64) error
}

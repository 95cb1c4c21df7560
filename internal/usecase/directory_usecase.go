package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"smeta_admin/internal/domain/entities"
	"smeta_admin/internal/usecase/interfaces"
)

var (
	ErrInvalidPartnerName   = errors.New("partner name must not be empty")
	ErrInvalidPartnerID     = errors.New("invalid partner id")
	ErrInvalidOrgTitle      = errors.New("organization title must not be empty")
	ErrInvalidOrgID         = errors.New("invalid organization id")
	ErrInvalidClientPayload = errors.New("client email and phone are required")
	ErrInvalidEmployee      = errors.New("employee email and password are required")
	ErrInvalidProjectFields = errors.New("project title, organization and client are required")
	ErrInvalidEmployeeID    = errors.New("invalid employee id")
)

// IDirectoryUseCase backs the plain list-plus-form screens around the
// estimate editor. Operations are thin pass-throughs to the backend; the
// only logic that lives here is input validation and the team-toggle list
// arithmetic (the backend models team membership as one employeeIds PATCH).

type IDirectoryUseCase interface {
	ListPartners(ctx context.Context) ([]entities.Partner, error)
	CreatePartner(ctx context.Context, name string) (entities.Partner, error)
	DeletePartner(ctx context.Context, id int64) error

	ListClients(ctx context.Context) ([]entities.Client, error)
	CreateClient(ctx context.Context, fields entities.NewClientFields) (entities.Client, error)

	ListOrganizations(ctx context.Context) ([]entities.Organization, error)
	GetOrganization(ctx context.Context, id int64) (entities.Organization, error)
	CreateOrganization(ctx context.Context, title string) (entities.Organization, error)

	ListEmployees(ctx context.Context) ([]entities.Employee, error)
	CreateEmployee(ctx context.Context, email, password string) (entities.Employee, error)

	ListProjects(ctx context.Context, organizationID *int64) ([]entities.Project, error)
	GetProject(ctx context.Context, id int64) (entities.Project, error)
	CreateProject(ctx context.Context, fields entities.NewProjectFields) (entities.Project, error)

	ProjectTeam(ctx context.Context, projectID int64) ([]entities.Employee, error)
	AvailableEmployees(ctx context.Context, projectID int64) ([]entities.Employee, error)
	AssignEmployee(ctx context.Context, projectID, employeeID int64) error
	RemoveEmployee(ctx context.Context, projectID, employeeID int64) error
}

type DirectoryUseCase struct {
	gateway  interfaces.IDirectoryGateway
	projects interfaces.IEstimateGateway
}

var _ IDirectoryUseCase = (*DirectoryUseCase)(nil)

func NewDirectoryUseCase(gateway interfaces.IDirectoryGateway, projects interfaces.IEstimateGateway) *DirectoryUseCase {
	return &DirectoryUseCase{gateway: gateway, projects: projects}
}

func (u *DirectoryUseCase) ListPartners(ctx context.Context) ([]entities.Partner, error) {
	return u.projects.ListPartners(ctx)
}

func (u *DirectoryUseCase) CreatePartner(ctx context.Context, name string) (entities.Partner, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Partner{}, ErrInvalidPartnerName
	}
	return u.gateway.CreatePartner(ctx, name)
}

func (u *DirectoryUseCase) DeletePartner(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidPartnerID
	}
	return u.gateway.DeletePartner(ctx, id)
}

func (u *DirectoryUseCase) ListClients(ctx context.Context) ([]entities.Client, error) {
	return u.gateway.ListClients(ctx)
}

func (u *DirectoryUseCase) CreateClient(ctx context.Context, fields entities.NewClientFields) (entities.Client, error) {
	if strings.TrimSpace(fields.Email) == "" || strings.TrimSpace(fields.Phone) == "" {
		return entities.Client{}, ErrInvalidClientPayload
	}
	if fields.ProfileType == "" {
		// The admin screen only ever creates individuals.
		fields.ProfileType = "INDIVIDUAL"
	}
	return u.gateway.CreateClient(ctx, fields)
}

func (u *DirectoryUseCase) ListOrganizations(ctx context.Context) ([]entities.Organization, error) {
	return u.gateway.ListOrganizations(ctx)
}

func (u *DirectoryUseCase) GetOrganization(ctx context.Context, id int64) (entities.Organization, error) {
	if id <= 0 {
		return entities.Organization{}, ErrInvalidOrgID
	}
	return u.gateway.GetOrganization(ctx, id)
}

func (u *DirectoryUseCase) CreateOrganization(ctx context.Context, title string) (entities.Organization, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return entities.Organization{}, ErrInvalidOrgTitle
	}
	return u.gateway.CreateOrganization(ctx, title)
}

func (u *DirectoryUseCase) ListEmployees(ctx context.Context) ([]entities.Employee, error) {
	return u.gateway.ListEmployees(ctx)
}

func (u *DirectoryUseCase) CreateEmployee(ctx context.Context, email, password string) (entities.Employee, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return entities.Employee{}, ErrInvalidEmployee
	}
	return u.gateway.CreateEmployee(ctx, email, password)
}

func (u *DirectoryUseCase) ListProjects(ctx context.Context, organizationID *int64) ([]entities.Project, error) {
	return u.gateway.ListProjects(ctx, organizationID)
}

func (u *DirectoryUseCase) GetProject(ctx context.Context, id int64) (entities.Project, error) {
	if id <= 0 {
		return entities.Project{}, ErrInvalidProjectID
	}
	return u.projects.GetProject(ctx, id)
}

func (u *DirectoryUseCase) CreateProject(ctx context.Context, fields entities.NewProjectFields) (entities.Project, error) {
	if strings.TrimSpace(fields.Title) == "" || fields.OrganizationID <= 0 || fields.ClientID <= 0 {
		return entities.Project{}, ErrInvalidProjectFields
	}
	return u.gateway.CreateProject(ctx, fields)
}

func (u *DirectoryUseCase) ProjectTeam(ctx context.Context, projectID int64) ([]entities.Employee, error) {
	if projectID <= 0 {
		return nil, ErrInvalidProjectID
	}
	return u.gateway.ListProjectTeam(ctx, projectID)
}

func (u *DirectoryUseCase) AvailableEmployees(ctx context.Context, projectID int64) ([]entities.Employee, error) {
	if projectID <= 0 {
		return nil, ErrInvalidProjectID
	}
	return u.gateway.ListAvailableEmployees(ctx, projectID)
}

// AssignEmployee adds one id to the project's employee list and pushes the
// whole list back, deduplicated, the way the original screen does it.
func (u *DirectoryUseCase) AssignEmployee(ctx context.Context, projectID, employeeID int64) error {
	if projectID <= 0 {
		return ErrInvalidProjectID
	}
	if employeeID <= 0 {
		return ErrInvalidEmployeeID
	}
	team, err := u.gateway.ListProjectTeam(ctx, projectID)
	if err != nil {
		return err
	}
	ids := make([]int64, 0, len(team)+1)
	seen := make(map[int64]bool, len(team)+1)
	for _, e := range team {
		if !seen[e.ID] {
			seen[e.ID] = true
			ids = append(ids, e.ID)
		}
	}
	if !seen[employeeID] {
		ids = append(ids, employeeID)
	}
	if err := u.gateway.SetProjectTeam(ctx, projectID, ids); err != nil {
		log.Printf("[directory][usecase] assign employee failed project_id=%d employee_id=%d err=%v", projectID, employeeID, err)
		return err
	}
	return nil
}

func (u *DirectoryUseCase) RemoveEmployee(ctx context.Context, projectID, employeeID int64) error {
	if projectID <= 0 {
		return ErrInvalidProjectID
	}
	if employeeID <= 0 {
		return ErrInvalidEmployeeID
	}
	team, err := u.gateway.ListProjectTeam(ctx, projectID)
	if err != nil {
		return err
	}
	ids := make([]int64, 0, len(team))
	for _, e := range team {
		if e.ID != employeeID {
			ids = append(ids, e.ID)
		}
	}
	if err := u.gateway.SetProjectTeam(ctx, projectID, ids); err != nil {
		log.Printf("[directory][usecase] remove employee failed project_id=%d employee_id=%d err=%v", projectID, employeeID, err)
		return err
	}
	return nil
}

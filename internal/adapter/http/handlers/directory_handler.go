package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	request "smeta_admin/internal/adapter/http/dto/request"
	"smeta_admin/internal/infrastructure/backend"
	"smeta_admin/internal/usecase"
	"smeta_admin/pkg"
)

var (
	errInvalidDirectoryPayload = pkg.NewDomainErrorSimple("INVALID_DIRECTORY_INPUT", "Invalid payload", http.StatusBadRequest)
	errInvalidPathID           = pkg.NewDomainErrorSimple("INVALID_ID", "Path id must be a positive number", http.StatusBadRequest)
)

// DirectoryHandler serves the list-plus-form screens: partners, clients,
// organizations, employees, projects and project teams. All reads proxy the
// backend directly; lists are returned as plain JSON arrays.

type DirectoryHandler struct {
	usecase usecase.IDirectoryUseCase
}

func NewDirectoryHandler(uc usecase.IDirectoryUseCase) *DirectoryHandler {
	return &DirectoryHandler{usecase: uc}
}

func (h *DirectoryHandler) ListPartners(c *gin.Context) {
	partners, err := h.usecase.ListPartners(c.Request.Context())
	if err != nil {
		appErr := mapDirectoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, partners)
}

func (h *DirectoryHandler) CreatePartner(c *gin.Context) {
	var payload request.CreatePartnerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDirectoryPayload.HTTPStatus, errInvalidDirectoryPayload.ToHTTPError())
		return
	}
	partner, err := h.usecase.CreatePartner(c.Request.Context(), payload.Name)
	if err != nil {
		appErr := mapDirectoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, partner)
}

func (h *DirectoryHandler) DeletePartner(c *gin.Context) {
	id, ok := pathID(c, "partner_id")
	if !ok {
		return
	}
	if err := h.usecase.DeletePartner(c.Request.Context(), id); err != nil {
		appErr := mapDirectoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DirectoryHandler) ListClients(c *gin.Context) {
	clients, err := h.usecase.ListClients(c.Request.Context())
	if err != nil {
		appErr := mapDirectoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (h *DirectoryHandler) CreateClient(c *gin.Context) {
	var payload request.CreateClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDirectoryPayload.HTTPStatus, errInvalidDirectoryPayload.ToHTTPError())
		return
	}
	client, err := h.usecase.CreateClient(c.Request.Context(), payload.ToFields())
	if err != nil {
		appErr := mapDirectoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, client)
}

func (h *DirectoryHandler) ListOrganizations(c *gin.Context) {
	orgs, err := h.usecase.ListOrganizations(c.Request.Context())
	if err != nil {
		appErr := mapDirectoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, orgs)
}

func (h *DirectoryHandler) GetOrganization(c *gin.Context) {
	id, ok := pathID(c, "org_id")
	if !ok {
		return
	}
	org, err := h.usecase.GetOrganization(c.Request.Context(), id)
	if err != nil {
		appErr := mapDirectoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, org)
}

func (h *DirectoryHandler) CreateOrganization(c *gin.Context) {
	var payload request.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDirectoryPayload.HTTPStatus, errInvalidDirectoryPayload.ToHTTPError())
		return
	}
	org, err := h.usecase.CreateOrganization(c.Request.Context(), payload.Title)
	if err != nil {
		appErr := mapDirectoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, org)
}

func (h *DirectoryHandler) ListEmployees(c *gin.Context) {
	employees, err := h.usecase.ListEmployees(c.Request.Context())
	if err != nil {
		appErr := mapDirectoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, employees)
}

func (h *DirectoryHandler) CreateEmployee(c *gin.Context) {
	var payload request.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDirectoryPayload.HTTPStatus, errInvalidDirectoryPayload.ToHTTPError())
		return
	}
	employee, err := h.usecase.CreateEmployee(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		appErr := mapDirectoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, employee)
}

// ListProjects optionally narrows by ?organizationId=.
func (h *DirectoryHandler) ListProjects(c *gin.Context) {
	var orgID *int64
	if raw := c.Query("organizationId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			c.JSON(errInvalidPathID.HTTPStatus, errInvalidPathID.ToHTTPError())
			return
		}
		orgID = &id
	}
	projects, err := h.usecase.ListProjects(c.Request.Context(), orgID)
	if err != nil {
		appErr := mapDirectoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *DirectoryHandler) GetProject(c *gin.Context) {
	id, ok := pathID(c, "project_id")
	if !ok {
		return
	}
	project, err := h.usecase.GetProject(c.Request.Context(), id)
	if err != nil {
		appErr := mapDirectoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *DirectoryHandler) CreateProject(c *gin.Context) {
	var payload request.CreateProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDirectoryPayload.HTTPStatus, errInvalidDirectoryPayload.ToHTTPError())
		return
	}
	project, err := h.usecase.CreateProject(c.Request.Context(), payload.ToFields())
	if err != nil {
		appErr := mapDirectoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, project)
}

func (h *DirectoryHandler) ProjectTeam(c *gin.Context) {
	id, ok := pathID(c, "project_id")
	if !ok {
		return
	}
	team, err := h.usecase.ProjectTeam(c.Request.Context(), id)
	if err != nil {
		appErr := mapDirectoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, team)
}

// AvailableEmployees lists employees not yet assigned to the project.
func (h *DirectoryHandler) AvailableEmployees(c *gin.Context) {
	id, ok := pathID(c, "project_id")
	if !ok {
		return
	}
	employees, err := h.usecase.AvailableEmployees(c.Request.Context(), id)
	if err != nil {
		appErr := mapDirectoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, employees)
}

func (h *DirectoryHandler) AssignEmployee(c *gin.Context) {
	projectID, ok := pathID(c, "project_id")
	if !ok {
		return
	}
	var payload request.AssignEmployeeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDirectoryPayload.HTTPStatus, errInvalidDirectoryPayload.ToHTTPError())
		return
	}
	if err := h.usecase.AssignEmployee(c.Request.Context(), projectID, payload.EmployeeID); err != nil {
		appErr := mapDirectoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DirectoryHandler) RemoveEmployee(c *gin.Context) {
	projectID, ok := pathID(c, "project_id")
	if !ok {
		return
	}
	employeeID, ok := pathID(c, "employee_id")
	if !ok {
		return
	}
	if err := h.usecase.RemoveEmployee(c.Request.Context(), projectID, employeeID); err != nil {
		appErr := mapDirectoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errInvalidPathID.HTTPStatus, errInvalidPathID.ToHTTPError())
		return 0, false
	}
	return id, true
}

func mapDirectoryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPartnerName),
		errors.Is(err, usecase.ErrInvalidPartnerID),
		errors.Is(err, usecase.ErrInvalidOrgTitle),
		errors.Is(err, usecase.ErrInvalidOrgID),
		errors.Is(err, usecase.ErrInvalidClientPayload),
		errors.Is(err, usecase.ErrInvalidEmployee),
		errors.Is(err, usecase.ErrInvalidProjectFields),
		errors.Is(err, usecase.ErrInvalidProjectID),
		errors.Is(err, usecase.ErrInvalidEmployeeID):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, backend.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case backend.IsNotFound(err):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Resource not found", http.StatusNotFound)
	case backend.IsUnauthorized(err):
		return errInvalidToken
	case backend.IsForbidden(err):
		return errNotAllowed
	default:
		return mapBackendError(err)
	}
}

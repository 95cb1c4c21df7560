package routes

import (
	"smeta_admin/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPartners      = "/partners"
	PathClients       = "/clients"
	PathOrganizations = "/organizations"
	PathEmployees     = "/employees"
	PathProjects      = "/projects"
	PathEditor        = "/editor/sessions"
)

func addAdminRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler, directoryHandler *handlers.DirectoryHandler, editorHandler *handlers.EstimateEditorHandler) {
	rg.GET("/me", authHandler.Me)

	partners := rg.Group(PathPartners)
	{
		partners.GET("", directoryHandler.ListPartners)
		partners.POST("", directoryHandler.CreatePartner)
		partners.DELETE("/:partner_id", directoryHandler.DeletePartner)
	}

	clients := rg.Group(PathClients)
	{
		clients.GET("", directoryHandler.ListClients)
		clients.POST("", directoryHandler.CreateClient)
	}

	organizations := rg.Group(PathOrganizations)
	{
		organizations.GET("", directoryHandler.ListOrganizations)
		organizations.POST("", directoryHandler.CreateOrganization)
		organizations.GET("/:org_id", directoryHandler.GetOrganization)
	}

	employees := rg.Group(PathEmployees)
	{
		employees.GET("", directoryHandler.ListEmployees)
		employees.POST("", directoryHandler.CreateEmployee)
	}

	projects := rg.Group(PathProjects)
	{
		projects.GET("", directoryHandler.ListProjects)
		projects.POST("", directoryHandler.CreateProject)
		projects.GET("/:project_id", directoryHandler.GetProject)
		projects.GET("/:project_id/team", directoryHandler.ProjectTeam)
		projects.GET("/:project_id/team/available", directoryHandler.AvailableEmployees)
		projects.POST("/:project_id/team", directoryHandler.AssignEmployee)
		projects.DELETE("/:project_id/team/:employee_id", directoryHandler.RemoveEmployee)
	}

	editor := rg.Group(PathEditor)
	{
		editor.POST("", editorHandler.OpenSession)
		editor.GET("/:session_id", editorHandler.GetSession)
		editor.DELETE("/:session_id", editorHandler.CloseSession)
		editor.POST("/:session_id/estimate", editorHandler.CreateEstimate)
		editor.POST("/:session_id/items", editorHandler.AddItem)
		editor.DELETE("/:session_id/items/:item_id", editorHandler.DeleteItem)
		editor.PUT("/:session_id/items/:item_id/field", editorHandler.SetField)
		editor.POST("/:session_id/items/:item_id/save", editorHandler.SaveItem)
		editor.POST("/:session_id/items/:item_id/history", editorHandler.ToggleHistory)
	}
}

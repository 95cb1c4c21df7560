package request

import (
	"time"

	"smeta_admin/internal/domain/entities"
)

type CreatePartnerRequest struct {
	Name string `json:"name" binding:"required"`
}

type CreateOrganizationRequest struct {
	Title string `json:"title" binding:"required"`
}

type CreateEmployeeRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateClientRequest struct {
	Email       string `json:"email" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	ProfileType string `json:"profileType"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	INN         string `json:"inn"`
	BankAccount string `json:"bankAccount"`
}

func (r CreateClientRequest) ToFields() entities.NewClientFields {
	return entities.NewClientFields{
		Email:       r.Email,
		Phone:       r.Phone,
		ProfileType: r.ProfileType,
		Individual: entities.ClientProfile{
			FirstName:   r.FirstName,
			LastName:    r.LastName,
			INN:         r.INN,
			BankAccount: r.BankAccount,
		},
	}
}

type AssignEmployeeRequest struct {
	EmployeeID int64 `json:"employeeId" binding:"required"`
}

type CreateProjectRequest struct {
	Title          string     `json:"title" binding:"required"`
	OrganizationID int64      `json:"organizationId" binding:"required"`
	ClientID       int64      `json:"clientId" binding:"required"`
	StartDate      *time.Time `json:"startDate"`
	EndDate        *time.Time `json:"endDate"`
}

func (r CreateProjectRequest) ToFields() entities.NewProjectFields {
	return entities.NewProjectFields{
		Title:          r.Title,
		OrganizationID: r.OrganizationID,
		ClientID:       r.ClientID,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
	}
}

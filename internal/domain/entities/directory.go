package entities

import "time"

// Reference and directory entities surrounding the estimate editor. These are
// plain mirrors of the backend's response shapes; the admin gateway never
// owns their lifecycle.

// Partner is a counterparty (контрагент) optionally referenced by a line
// item. Read-only reference data from the editor's perspective.
type Partner struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Organization struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

type Project struct {
	ID           int64        `json:"id"`
	Title        string       `json:"title"`
	Status       string       `json:"projectStatus"`
	Organization Organization `json:"organizationResponse"`
	ClientID     int64        `json:"client"`
	StartDate    *time.Time   `json:"startDate,omitempty"`
	EndDate      *time.Time   `json:"endDate,omitempty"`
}

type ClientProfile struct {
	Type        string `json:"type,omitempty"`
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	INN         string `json:"inn,omitempty"`
	BankAccount string `json:"bankAccount,omitempty"`
}

type Client struct {
	ID      int64          `json:"id"`
	Email   string         `json:"email"`
	Phone   string         `json:"phone"`
	Profile *ClientProfile `json:"clientProfileResponse,omitempty"`
}

type Employee struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// User is the authenticated account behind the current request. RoleSupervisor
// is the only role allowed past the admin gate.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role"`
}

const RoleSupervisor = "SUPERVISOR"

// Page is the backend's pagination envelope. Only Content is consumed; the
// admin screens always request a page large enough to hold everything.
type Page[T any] struct {
	Content []T `json:"content"`
}

// NewProjectFields is the create-project payload.
type NewProjectFields struct {
	Title          string     `json:"title"`
	OrganizationID int64      `json:"organizationId"`
	ClientID       int64      `json:"clientId"`
	StartDate      *time.Time `json:"startDate,omitempty"`
	EndDate        *time.Time `json:"endDate,omitempty"`
}

// NewClientFields is the create-client payload. The backend requires a
// profile type plus the matching profile block; the admin screens only ever
// create individuals.
type NewClientFields struct {
	Email       string        `json:"email"`
	Phone       string        `json:"phone"`
	ProfileType string        `json:"profileType"`
	Individual  ClientProfile `json:"individual"`
}

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ib-ingenieria/horas-cli/internal/models"
)

// PermissionCreate is the body of POST /permissions/. The taxonomy is fixed
// to the reserved internal project; the activity carries the permission type
// and the note is the required justification.
type PermissionCreate struct {
	Date        string  `json:"date" validate:"required"`
	EmployeeID  int     `json:"employee_id" validate:"required"`
	ProjectCode string  `json:"project_code" validate:"required"`
	Phase       string  `json:"phase" validate:"required"`
	Discipline  string  `json:"discipline" validate:"required"`
	Activity    string  `json:"activity" validate:"required"`
	Hours       float64 `json:"hours" validate:"required,gt=0,lte=24"`
	Note        string  `json:"note" validate:"required,min=5"`
}

// PermissionUpdate is the body of PUT /permissions/{id}. Identity and date
// stay immutable; status/response belong to the reviewer and are not sent.
type PermissionUpdate struct {
	ProjectCode string  `json:"project_code" validate:"required"`
	Phase       string  `json:"phase" validate:"required"`
	Discipline  string  `json:"discipline" validate:"required"`
	Activity    string  `json:"activity" validate:"required"`
	Hours       float64 `json:"hours" validate:"required,gt=0,lte=24"`
	Note        string  `json:"note" validate:"required,min=5"`
}

// CreatePermission submits a new permission request.
func (c *Client) CreatePermission(ctx context.Context, in PermissionCreate) (models.PermissionEntry, error) {
	if err := c.validate.Struct(in); err != nil {
		return models.PermissionEntry{}, err
	}

	var entry models.PermissionEntry
	if err := c.do(ctx, http.MethodPost, "/permissions/", nil, in, &entry); err != nil {
		return models.PermissionEntry{}, err
	}
	return entry, nil
}

// UpdatePermission updates a pending permission request in place.
func (c *Client) UpdatePermission(ctx context.Context, id string, in PermissionUpdate) (models.PermissionEntry, error) {
	if err := c.validate.Struct(in); err != nil {
		return models.PermissionEntry{}, err
	}

	var entry models.PermissionEntry
	path := fmt.Sprintf("/permissions/%s", url.PathEscape(id))
	if err := c.do(ctx, http.MethodPut, path, nil, in, &entry); err != nil {
		return models.PermissionEntry{}, err
	}
	return entry, nil
}

// DeletePermission withdraws a permission request.
func (c *Client) DeletePermission(ctx context.Context, id string) error {
	path := fmt.Sprintf("/permissions/%s", url.PathEscape(id))
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// Permissions lists an employee's permission requests, optionally bounded to
// an inclusive date range. Empty bounds are omitted from the query.
func (c *Client) Permissions(ctx context.Context, employeeID int, startDate, endDate string) ([]models.PermissionEntry, error) {
	query := url.Values{}
	query.Set("employee_id", strconv.Itoa(employeeID))
	if startDate != "" {
		query.Set("start_date", startDate)
	}
	if endDate != "" {
		query.Set("end_date", endDate)
	}

	var entries []models.PermissionEntry
	if err := c.do(ctx, http.MethodGet, "/permissions/", query, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

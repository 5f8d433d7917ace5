package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ib-ingenieria/horas-cli/internal/models"
)

// HourCreate is the body of POST /hours/.
type HourCreate struct {
	Date        string  `json:"date" validate:"required"`
	EmployeeID  int     `json:"employee_id" validate:"required"`
	ProjectCode string  `json:"project_code" validate:"required"`
	Phase       string  `json:"phase" validate:"required"`
	Discipline  string  `json:"discipline" validate:"required"`
	Activity    string  `json:"activity" validate:"required"`
	Hours       float64 `json:"hours" validate:"required,gt=0,lte=24"`
	Note        string  `json:"note,omitempty"`
}

// HourUpdate is the body of PUT /hours/{id}. Date, id, employee_id and
// project_name are immutable post-creation and cannot appear here.
type HourUpdate struct {
	ProjectCode string  `json:"project_code" validate:"required"`
	Phase       string  `json:"phase" validate:"required"`
	Discipline  string  `json:"discipline" validate:"required"`
	Activity    string  `json:"activity" validate:"required"`
	Hours       float64 `json:"hours" validate:"required,gt=0,lte=24"`
	Note        string  `json:"note,omitempty"`
}

// CreateHour submits a new reported-hours record. The server assigns the id.
func (c *Client) CreateHour(ctx context.Context, in HourCreate) (models.HourEntry, error) {
	if err := c.validate.Struct(in); err != nil {
		return models.HourEntry{}, err
	}

	var entry models.HourEntry
	if err := c.do(ctx, http.MethodPost, "/hours/", nil, in, &entry); err != nil {
		return models.HourEntry{}, err
	}
	return entry, nil
}

// UpdateHour updates an existing record in place.
func (c *Client) UpdateHour(ctx context.Context, id string, in HourUpdate) (models.HourEntry, error) {
	if err := c.validate.Struct(in); err != nil {
		return models.HourEntry{}, err
	}

	var entry models.HourEntry
	path := fmt.Sprintf("/hours/%s", url.PathEscape(id))
	if err := c.do(ctx, http.MethodPut, path, nil, in, &entry); err != nil {
		return models.HourEntry{}, err
	}
	return entry, nil
}

// DeleteHour removes a record. Deletion is immediate, no confirmation round.
func (c *Client) DeleteHour(ctx context.Context, id string) error {
	path := fmt.Sprintf("/hours/%s", url.PathEscape(id))
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// DailyActivities fetches the entries for one employee on one calendar date.
func (c *Client) DailyActivities(ctx context.Context, date string, employeeID int) ([]models.DailyEntry, error) {
	query := url.Values{}
	query.Set("date", date)
	query.Set("employee_id", strconv.Itoa(employeeID))

	var entries []models.DailyEntry
	if err := c.do(ctx, http.MethodGet, "/daily-activities", query, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// MonthlyReport fetches the per-entry monthly report.
func (c *Client) MonthlyReport(ctx context.Context, year, month int) ([]models.DailyEntry, error) {
	path := fmt.Sprintf("/hours/monthly-report/%d/%d", year, month)
	var entries []models.DailyEntry
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// MonthlyMatrix fetches the day-by-employee totals backing the monthly
// matrix. The grid itself is assembled client-side (views.BuildMatrix).
func (c *Client) MonthlyMatrix(ctx context.Context, year, month int) ([]models.GroupedHour, error) {
	path := fmt.Sprintf("/hours/monthly-matrix/%d/%d", year, month)
	var rows []models.GroupedHour
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// GroupedByEmployee fetches per-employee per-day summed hours for a month.
func (c *Client) GroupedByEmployee(ctx context.Context, year, month int) ([]models.GroupedHour, error) {
	query := url.Values{}
	query.Set("year", strconv.Itoa(year))
	query.Set("month", strconv.Itoa(month))

	var rows []models.GroupedHour
	if err := c.do(ctx, http.MethodGet, "/hours/grouped-by-employee", query, nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

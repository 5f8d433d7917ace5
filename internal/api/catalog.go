package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ib-ingenieria/horas-cli/internal/models"
)

// Projects fetches the project catalog.
func (c *Client) Projects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := c.do(ctx, http.MethodGet, "/projects/", nil, nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// Employees fetches the employee catalog.
func (c *Client) Employees(ctx context.Context) ([]models.Employee, error) {
	var employees []models.Employee
	if err := c.do(ctx, http.MethodGet, "/employees/", nil, nil, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

// Stages fetches the stage options for a project.
func (c *Client) Stages(ctx context.Context, projectCode string) ([]string, error) {
	path := fmt.Sprintf("/activities/project/%s/stages", url.PathEscape(projectCode))
	return c.catalogOptions(ctx, path)
}

// Disciplines fetches the discipline options for a project stage. The path
// segment is the double-colon-joined composite of project code and stage.
func (c *Client) Disciplines(ctx context.Context, projectCode, stage string) ([]string, error) {
	path := fmt.Sprintf("/activities/%s/disciplines", compositeSegment(projectCode, stage))
	return c.catalogOptions(ctx, path)
}

// Activities fetches the activity options for a project/stage/discipline.
func (c *Client) Activities(ctx context.Context, projectCode, stage, discipline string) ([]string, error) {
	path := fmt.Sprintf("/activities/%s/activities", compositeSegment(projectCode, stage, discipline))
	return c.catalogOptions(ctx, path)
}

// catalogOptions fetches and cleans a raw option list. The server is known to
// return mixed and sometimes null-padded values.
func (c *Client) catalogOptions(ctx context.Context, path string) ([]string, error) {
	var raw []any
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &raw); err != nil {
		return nil, err
	}
	return cleanStrings(raw), nil
}

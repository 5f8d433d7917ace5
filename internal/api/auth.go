package api

import (
	"context"
	"net/http"

	"github.com/ib-ingenieria/horas-cli/internal/models"
)

// Credentials is the login request body.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is the login endpoint's response.
type LoginResponse struct {
	Message      string `json:"message"`
	EmployeeID   int    `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
}

// Login authenticates against POST /auth/login and returns the session user.
func (c *Client) Login(ctx context.Context, creds Credentials) (models.AuthenticatedUser, error) {
	if err := c.validate.Struct(creds); err != nil {
		return models.AuthenticatedUser{}, err
	}

	var resp LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, creds, &resp); err != nil {
		return models.AuthenticatedUser{}, err
	}
	return models.AuthenticatedUser{ID: resp.EmployeeID, Name: resp.EmployeeName}, nil
}

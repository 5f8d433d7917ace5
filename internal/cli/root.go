package cli

import (
	"context"
	"fmt"

	"github.com/ib-ingenieria/horas-cli/internal/api"
	"github.com/ib-ingenieria/horas-cli/internal/config"
	"github.com/ib-ingenieria/horas-cli/internal/keyring"
	"github.com/ib-ingenieria/horas-cli/internal/localstore"
	"github.com/ib-ingenieria/horas-cli/internal/logger"
	"github.com/ib-ingenieria/horas-cli/internal/models"
)

// Context is the shared dependency bundle handed to every command.
type Context struct {
	API    *api.Client
	Store  localstore.Provider
	Config config.Config

	user *models.AuthenticatedUser
}

// RequireUser resolves the session user: the dev-bypass synthetic user when
// HORAS_SKIP_LOGIN is set, otherwise a login with the credentials remembered
// in the OS keyring. The user lives in memory only.
func (c *Context) RequireUser(ctx context.Context) (models.AuthenticatedUser, error) {
	if c.user != nil {
		return *c.user, nil
	}

	if c.Config.SkipLogin {
		user := models.AuthenticatedUser{
			ID:   c.Config.SkipLoginEmployeeID,
			Name: c.Config.SkipLoginName,
		}
		logger.Debug("Login bypass active", "employee_id", user.ID)
		c.user = &user
		return user, nil
	}

	username, password, err := keyring.GetCredentials()
	if err != nil {
		if err == keyring.ErrNotFound {
			return models.AuthenticatedUser{}, fmt.Errorf("not logged in, run 'horas login --save' first")
		}
		return models.AuthenticatedUser{}, err
	}

	user, err := c.API.Login(ctx, api.Credentials{Username: username, Password: password})
	if err != nil {
		return models.AuthenticatedUser{}, fmt.Errorf("login failed: %w", err)
	}
	c.user = &user
	return user, nil
}

// SetUser pins the session user (used after an explicit login).
func (c *Context) SetUser(user models.AuthenticatedUser) {
	c.user = &user
}

// ClearUser drops the in-memory user. Drafts and favorites are not touched.
func (c *Context) ClearUser() {
	c.user = nil
}

package auth

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/ib-ingenieria/horas-cli/internal/api"
	"github.com/ib-ingenieria/horas-cli/internal/cli"
	"github.com/ib-ingenieria/horas-cli/internal/keyring"
)

type LoginCmd struct {
	Username string `short:"u" help:"Login username. Prompted when omitted."`
	Password string `short:"p" help:"Login password. Prompted when omitted."`
	Save     bool   `short:"s" help:"Remember credentials in the OS keyring."`
}

func (c *LoginCmd) Run(appCtx *cli.Context) error {
	username := c.Username
	password := c.Password

	if username == "" || password == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Username").
					Value(&username).
					Validate(func(s string) error {
						if s == "" {
							return fmt.Errorf("username cannot be empty")
						}
						return nil
					}),
				huh.NewInput().
					Title("Password").
					EchoMode(huh.EchoModePassword).
					Value(&password).
					Validate(func(s string) error {
						if s == "" {
							return fmt.Errorf("password cannot be empty")
						}
						return nil
					}),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
	}

	user, err := appCtx.API.Login(context.Background(), api.Credentials{
		Username: username,
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	appCtx.SetUser(user)

	if c.Save {
		if err := keyring.SetCredentials(username, password); err != nil {
			return fmt.Errorf("logged in, but could not remember credentials: %w", err)
		}
		fmt.Println("Credentials saved to the OS keyring.")
	}

	fmt.Printf("Logged in as %s (employee %d)\n", user.Name, user.ID)
	return nil
}

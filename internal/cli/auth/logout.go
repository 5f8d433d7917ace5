package auth

import (
	"errors"
	"fmt"

	"github.com/ib-ingenieria/horas-cli/internal/cli"
	"github.com/ib-ingenieria/horas-cli/internal/keyring"
)

type LogoutCmd struct{}

func (c *LogoutCmd) Run(appCtx *cli.Context) error {
	appCtx.ClearUser()

	err := keyring.DeleteCredentials()
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("could not remove saved credentials: %w", err)
	}

	fmt.Println("Logged out. Drafts and favorites were kept.")
	return nil
}

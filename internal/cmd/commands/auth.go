package commands

import (
	"appcenter-go/internal/cmd/base"
	SharedModels "appcenter-go/internal/shared"
	"context"
	"errors"
	"fmt"
)

type LoginCommand struct {
	*base.Command

	flagUsername string
	flagPassword string
}

func (c *LoginCommand) Synopsis() string {
	return "Authenticate and store the session token"
}

func (c *LoginCommand) Help() string {
	return `Usage: appcenter login -u <username> [-p <password>]

Logs in and writes the returned token to the configured token store.
The password is prompted for when not given.` + c.Flags().Help()
}

func (c *LoginCommand) Flags() *base.FlagSet {
	f := c.NewFlags("login")
	f.StringVarP(&c.flagUsername, "username", "u", "", "Account name")
	f.StringVarP(&c.flagPassword, "password", "p", "", "Account password")
	return f
}

func (c *LoginCommand) Run(args []string) int {
	f := c.Flags()
	return c.Execute(f, args, func(ctx context.Context, s *base.Session) (any, error) {
		if c.flagUsername == "" {
			return nil, errors.New("username is required (--username)")
		}
		password := c.flagPassword
		if password == "" {
			var err error
			password, err = c.UI.AskSecret("Password:")
			if err != nil {
				return nil, fmt.Errorf("error reading password: %w", err)
			}
		}

		res, err := s.Client.Login(ctx, SharedModels.LoginPayload{
			Username: c.flagUsername,
			Password: password,
		})
		if err != nil {
			return nil, err
		}
		// The token itself is never echoed.
		return map[string]any{"ok": res.Message.OK, "msg": res.Message.Msg}, nil
	})
}

type LogoutCommand struct {
	*base.Command
}

func (c *LogoutCommand) Synopsis() string {
	return "Clear the stored session token"
}

func (c *LogoutCommand) Help() string {
	return `Usage: appcenter logout` + c.Flags().Help()
}

func (c *LogoutCommand) Flags() *base.FlagSet {
	return c.NewFlags("logout")
}

func (c *LogoutCommand) Run(args []string) int {
	return c.Execute(c.Flags(), args, func(ctx context.Context, s *base.Session) (any, error) {
		if err := s.Client.Logout(ctx); err != nil {
			return nil, err
		}
		return map[string]any{"ok": true}, nil
	})
}

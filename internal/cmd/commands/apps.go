package commands

import (
	"appcenter-go/internal/cmd/base"
	SharedModels "appcenter-go/internal/shared"
	"context"
	"fmt"
)

type AppsCommand struct {
	*base.Command

	flagPage     int
	flagPageSize int
	flagKeyword  string
	flagPlatform string
}

func (c *AppsCommand) Synopsis() string {
	return "List apps"
}

func (c *AppsCommand) Help() string {
	return `Usage: appcenter apps [options]` + c.Flags().Help()
}

func (c *AppsCommand) Flags() *base.FlagSet {
	f := c.NewFlags("apps")
	f.IntVar(&c.flagPage, "page", 0, "Page number, starting at 1")
	f.IntVar(&c.flagPageSize, "page-size", 0, "Items per page")
	f.StringVar(&c.flagKeyword, "keyword", "", "Filter by name")
	f.StringVar(&c.flagPlatform, "platform", "", "Filter by platform (android, ios, ...)")
	return f
}

func (c *AppsCommand) Run(args []string) int {
	return c.Execute(c.Flags(), args, func(ctx context.Context, s *base.Session) (any, error) {
		res, err := s.Client.ListApps(ctx, SharedModels.AppQuery{
			Page:     c.flagPage,
			PageSize: c.flagPageSize,
			Keyword:  c.flagKeyword,
			Platform: c.flagPlatform,
		})
		if err != nil {
			return nil, err
		}
		return res.Message.Data, nil
	})
}

type AppCommand struct {
	*base.Command
}

func (c *AppCommand) Synopsis() string {
	return "Show a single app"
}

func (c *AppCommand) Help() string {
	return `Usage: appcenter app <app-id>` + c.Flags().Help()
}

func (c *AppCommand) Flags() *base.FlagSet {
	return c.NewFlags("app")
}

func (c *AppCommand) Run(args []string) int {
	f := c.Flags()
	return c.Execute(f, args, func(ctx context.Context, s *base.Session) (any, error) {
		id, err := singleArg(f, "app ID")
		if err != nil {
			return nil, err
		}
		res, err := s.Client.GetApp(ctx, id)
		if err != nil {
			return nil, err
		}
		return res.Message.Data, nil
	})
}

type InviteCommand struct {
	*base.Command
}

func (c *InviteCommand) Synopsis() string {
	return "Create an invitation code for an app"
}

func (c *InviteCommand) Help() string {
	return `Usage: appcenter invite <app-id>` + c.Flags().Help()
}

func (c *InviteCommand) Flags() *base.FlagSet {
	return c.NewFlags("invite")
}

func (c *InviteCommand) Run(args []string) int {
	f := c.Flags()
	return c.Execute(f, args, func(ctx context.Context, s *base.Session) (any, error) {
		id, err := singleArg(f, "app ID")
		if err != nil {
			return nil, err
		}
		res, err := s.Client.CreateInvitation(ctx, id)
		if err != nil {
			return nil, err
		}
		return map[string]string{"code": res.Message.Data}, nil
	})
}

type JoinCommand struct {
	*base.Command
}

func (c *JoinCommand) Synopsis() string {
	return "Join an app with an invitation code"
}

func (c *JoinCommand) Help() string {
	return `Usage: appcenter join <code>` + c.Flags().Help()
}

func (c *JoinCommand) Flags() *base.FlagSet {
	return c.NewFlags("join")
}

func (c *JoinCommand) Run(args []string) int {
	f := c.Flags()
	return c.Execute(f, args, func(ctx context.Context, s *base.Session) (any, error) {
		code, err := singleArg(f, "invitation code")
		if err != nil {
			return nil, err
		}
		res, err := s.Client.ConfirmInvitation(ctx, SharedModels.InvitationPayload{Code: code})
		if err != nil {
			return nil, err
		}
		return res.Message.Data, nil
	})
}

func singleArg(f *base.FlagSet, what string) (string, error) {
	if f.NArg() != 1 {
		return "", fmt.Errorf("expected exactly one argument: %s", what)
	}
	return f.Arg(0), nil
}

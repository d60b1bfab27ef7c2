package cmd

import (
	"appcenter-go/internal/cmd/base"
	"appcenter-go/internal/cmd/commands"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
)

// Commands returns the factories for every subcommand, sharing log and ui.
func Commands(log hclog.Logger, ui cli.Ui) map[string]cli.CommandFactory {
	b := func() *base.Command {
		return &base.Command{Log: log, UI: ui}
	}

	return map[string]cli.CommandFactory{
		"login": func() (cli.Command, error) {
			return &commands.LoginCommand{Command: b()}, nil
		},
		"logout": func() (cli.Command, error) {
			return &commands.LogoutCommand{Command: b()}, nil
		},
		"apps": func() (cli.Command, error) {
			return &commands.AppsCommand{Command: b()}, nil
		},
		"app": func() (cli.Command, error) {
			return &commands.AppCommand{Command: b()}, nil
		},
		"releases": func() (cli.Command, error) {
			return &commands.ReleasesCommand{Command: b()}, nil
		},
		"latest": func() (cli.Command, error) {
			return &commands.LatestCommand{Command: b()}, nil
		},
		"publish": func() (cli.Command, error) {
			return &commands.PublishCommand{Command: b()}, nil
		},
		"invite": func() (cli.Command, error) {
			return &commands.InviteCommand{Command: b()}, nil
		},
		"join": func() (cli.Command, error) {
			return &commands.JoinCommand{Command: b()}, nil
		},
		"articles": func() (cli.Command, error) {
			return &commands.ArticlesCommand{Command: b()}, nil
		},
		"tags": func() (cli.Command, error) {
			return &commands.TagsCommand{Command: b()}, nil
		},
		"check-update": func() (cli.Command, error) {
			return &commands.CheckUpdateCommand{Command: b()}, nil
		},
	}
}

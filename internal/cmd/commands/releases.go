package commands

import (
	"appcenter-go/internal/cmd/base"
	SharedModels "appcenter-go/internal/shared"
	"appcenter-go/internal/version"
	"context"
	"errors"
)

// appQueryFlags are shared by latest and check-update.
type appQueryFlags struct {
	appID    string
	bundleID string
	platform string
	channel  string
}

func (q *appQueryFlags) register(f *base.FlagSet) {
	f.StringVar(&q.appID, "app-id", "", "App ID")
	f.StringVar(&q.bundleID, "bundle-id", "", "Bundle ID, used when --app-id is not set")
	f.StringVar(&q.platform, "platform", "", "Platform (android, ios, ...)")
	f.StringVar(&q.channel, "channel", "", "Release channel")
}

func (q *appQueryFlags) param() (SharedModels.AppQueryParam, error) {
	if q.appID == "" && q.bundleID == "" {
		return SharedModels.AppQueryParam{}, errors.New("one of --app-id or --bundle-id is required")
	}
	return SharedModels.AppQueryParam{
		AppID:    q.appID,
		BundleID: q.bundleID,
		Platform: q.platform,
		Channel:  q.channel,
	}, nil
}

type ReleasesCommand struct {
	*base.Command
}

func (c *ReleasesCommand) Synopsis() string {
	return "List releases of an app"
}

func (c *ReleasesCommand) Help() string {
	return `Usage: appcenter releases <app-id>` + c.Flags().Help()
}

func (c *ReleasesCommand) Flags() *base.FlagSet {
	return c.NewFlags("releases")
}

func (c *ReleasesCommand) Run(args []string) int {
	f := c.Flags()
	return c.Execute(f, args, func(ctx context.Context, s *base.Session) (any, error) {
		id, err := singleArg(f, "app ID")
		if err != nil {
			return nil, err
		}
		res, err := s.Client.ListReleases(ctx, id)
		if err != nil {
			return nil, err
		}
		return res.Message.Data, nil
	})
}

type LatestCommand struct {
	*base.Command
	query appQueryFlags
}

func (c *LatestCommand) Synopsis() string {
	return "Show the latest release of an app"
}

func (c *LatestCommand) Help() string {
	return `Usage: appcenter latest --app-id <id> [options]` + c.Flags().Help()
}

func (c *LatestCommand) Flags() *base.FlagSet {
	f := c.NewFlags("latest")
	c.query.register(f)
	return f
}

func (c *LatestCommand) Run(args []string) int {
	return c.Execute(c.Flags(), args, func(ctx context.Context, s *base.Session) (any, error) {
		q, err := c.query.param()
		if err != nil {
			return nil, err
		}
		res, err := s.Client.LatestRelease(ctx, q)
		if err != nil {
			return nil, err
		}
		return res.Message.Data, nil
	})
}

type PublishCommand struct {
	*base.Command

	flagAppID       string
	flagVersion     string
	flagVersionCode int
	flagChannel     string
	flagDownloadURL string
	flagChangelog   string
}

func (c *PublishCommand) Synopsis() string {
	return "Publish a new release"
}

func (c *PublishCommand) Help() string {
	return `Usage: appcenter publish --app-id <id> --version <semver> --download-url <url> [options]` + c.Flags().Help()
}

func (c *PublishCommand) Flags() *base.FlagSet {
	f := c.NewFlags("publish")
	f.StringVar(&c.flagAppID, "app-id", "", "App ID")
	f.StringVar(&c.flagVersion, "version", "", "Version name, e.g. 1.4.0")
	f.IntVar(&c.flagVersionCode, "version-code", 0, "Monotonic build number")
	f.StringVar(&c.flagChannel, "channel", "", "Release channel")
	f.StringVar(&c.flagDownloadURL, "download-url", "", "Where the build can be fetched")
	f.StringVar(&c.flagChangelog, "changelog", "", "Release notes")
	return f
}

func (c *PublishCommand) Run(args []string) int {
	return c.Execute(c.Flags(), args, func(ctx context.Context, s *base.Session) (any, error) {
		if c.flagAppID == "" || c.flagVersion == "" || c.flagDownloadURL == "" {
			return nil, errors.New("--app-id, --version and --download-url are required")
		}
		res, err := s.Client.PublishRelease(ctx, SharedModels.ReleasePayload{
			AppID:       c.flagAppID,
			Version:     c.flagVersion,
			VersionCode: c.flagVersionCode,
			Channel:     c.flagChannel,
			DownloadURL: c.flagDownloadURL,
			Changelog:   c.flagChangelog,
		})
		if err != nil {
			return nil, err
		}
		return res.Message.Data, nil
	})
}

type CheckUpdateCommand struct {
	*base.Command
	query       appQueryFlags
	flagCurrent string
}

func (c *CheckUpdateCommand) Synopsis() string {
	return "Check whether a newer release exists"
}

func (c *CheckUpdateCommand) Help() string {
	return `Usage: appcenter check-update --app-id <id> [--current <version>]

Compares the latest release against --current, falling back to
current_version from the config and then to this binary's version.` + c.Flags().Help()
}

func (c *CheckUpdateCommand) Flags() *base.FlagSet {
	f := c.NewFlags("check-update")
	c.query.register(f)
	f.StringVar(&c.flagCurrent, "current", "", "[APPCENTER_CURRENT_VERSION] Installed version")
	return f
}

func (c *CheckUpdateCommand) Run(args []string) int {
	return c.Execute(c.Flags(), args, func(ctx context.Context, s *base.Session) (any, error) {
		q, err := c.query.param()
		if err != nil {
			return nil, err
		}

		current := c.flagCurrent
		if current == "" {
			current = s.Config.CurrentVersion
		}
		if current == "" || current == "0.0.0" {
			current = version.Version
		}

		return s.Client.CheckUpdate(ctx, q, current)
	})
}

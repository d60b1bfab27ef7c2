package base

import (
	"appcenter-go/configs/config"
	"appcenter-go/internal/apiclient"
	"appcenter-go/internal/cstmerr"
	"appcenter-go/internal/tokenstore"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	jsoniter "github.com/json-iterator/go"
	"github.com/mitchellh/cli"
	"github.com/spf13/pflag"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Command is embedded by every subcommand.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui

	flagConfig string
	flagDebug  bool
}

// FlagSet wraps a pflag set so commands can render it in Help.
type FlagSet struct {
	*pflag.FlagSet
}

func NewFlagSet(f *pflag.FlagSet) *FlagSet {
	return &FlagSet{FlagSet: f}
}

func (f *FlagSet) Help() string {
	return "\n\nOptions:\n\n" + f.FlagUsages()
}

// NewFlags returns a flag set for the named command with the global flags
// already registered.
func (c *Command) NewFlags(name string) *FlagSet {
	f := NewFlagSet(pflag.NewFlagSet(name, pflag.ContinueOnError))
	f.StringVarP(&c.flagConfig, "config", "c", "",
		"[APPCENTER_CONFIG] Path to the TOML config file")
	f.BoolVar(&c.flagDebug, "debug", false,
		"Log requests and responses to stderr")
	return f
}

// Session is everything a command needs to talk to the API.
type Session struct {
	Client *apiclient.APIClient
	Config *config.Config
	close  func() error
}

func (s *Session) Close() error {
	return s.close()
}

// Session loads the config and builds the client. Callers must Close it.
func (c *Command) Session(ctx context.Context) (*Session, error) {
	path := c.flagConfig
	if path == "" {
		path = os.Getenv(config.EnvPrefix + "_CONFIG")
	}

	cfg, err := config.Load(path, c.Log.Named("config"))
	if err != nil {
		return nil, err
	}
	if c.flagDebug {
		cfg.Debug = true
	}
	if cfg.Debug {
		c.Log.SetLevel(hclog.Debug)
	}

	store, closeStore, err := tokenstore.FromConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	client := apiclient.New(apiclient.Options{
		Debug:   cfg.Debug,
		Storage: store,
		Logger:  c.Log,
		Transport: apiclient.TransportOptions{
			BaseURL:             cfg.BaseURL,
			Timeout:             cfg.Timeout,
			IdleConnTimeout:     cfg.IdleConnTimeout,
			TLSHandshakeTimeout: cfg.TLSHandshakeTimeout,
		},
	})

	return &Session{Client: client, Config: cfg, close: closeStore}, nil
}

// Execute parses args with f, opens a session and prints whatever fn
// returns. It is the body of most subcommands.
func (c *Command) Execute(f *FlagSet, args []string, fn func(ctx context.Context, s *Session) (any, error)) int {
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	ctx := context.Background()
	s, err := c.Session(ctx)
	if err != nil {
		return c.Fail(err)
	}
	defer func() {
		if err := s.Close(); err != nil {
			c.Log.Warn("error closing token store", "error", err)
		}
	}()

	out, err := fn(ctx, s)
	if err != nil {
		return c.Fail(err)
	}
	return c.Output(out)
}

// Output prints v as indented JSON and returns the exit code.
func (c *Command) Output(v any) int {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		c.UI.Error(fmt.Sprintf("error encoding output: %v", err))
		return 1
	}
	c.UI.Output(string(out))
	return 0
}

// Fail reports err on the error writer and returns the exit code.
func (c *Command) Fail(err error) int {
	var (
		failure   *cstmerr.APILogicalFailure
		serverErr *cstmerr.ServerInternalError
		transport *cstmerr.TransportError
	)
	switch {
	case errors.As(err, &failure):
		c.UI.Error(fmt.Sprintf("request rejected: %s (code %d, status %d)", failure.Message, failure.Code, failure.StatusCode))
	case errors.As(err, &serverErr):
		c.UI.Error(fmt.Sprintf("server internal error: %s", serverErr.RequestURL))
	case errors.As(err, &transport):
		c.UI.Error(fmt.Sprintf("could not reach server: %v", transport.Unwrap()))
	default:
		c.UI.Error(err.Error())
	}
	return 1
}

package common

import (
	"github.com/bornholm/blog/internal/config"
	"github.com/bornholm/blog/internal/core/model"
	"github.com/bornholm/blog/internal/core/service"
	"github.com/bornholm/blog/internal/setup"
	"github.com/bornholm/blog/pkg/client"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	paramDatabaseDriver = "database-driver"
	paramDatabaseDSN    = "database-dsn"
	paramServer         = "server"
)

var (
	flagDatabaseDriver = &cli.StringFlag{
		Name:  paramDatabaseDriver,
		Usage: "Database driver to use ('sqlite' or 'postgres'), overrides BLOG_STORAGE_DATABASE_DRIVER",
	}
	flagDatabaseDSN = &cli.StringFlag{
		Name:    paramDatabaseDSN,
		Aliases: []string{"d"},
		Usage:   "Database DSN, overrides BLOG_STORAGE_DATABASE_DSN",
	}
	flagServer = &cli.StringFlag{
		Name:    paramServer,
		Aliases: []string{"s"},
		EnvVars: []string{"BLOG_CLI_SERVER"},
		Usage:   "Read articles through the JSON API of the given blog server (i.e. http://localhost:3002) instead of the database",
	}
)

func WithCommonFlags(flags ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		flagDatabaseDriver,
		flagDatabaseDSN,
	}, flags...)
}

// WithReadFlags returns the common flags plus the remote server flag of
// read-only commands.
func WithReadFlags(flags ...cli.Flag) []cli.Flag {
	return WithCommonFlags(append([]cli.Flag{flagServer}, flags...)...)
}

// GetClient returns a client of the configured blog server, or nil if
// no server is configured.
func GetClient(ctx *cli.Context) (*client.Client, error) {
	server := ctx.String(paramServer)
	if server == "" {
		return nil, nil
	}

	apiClient, err := client.New(server)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return apiClient, nil
}

func GetArticleManager(ctx *cli.Context) (*service.ArticleManager, error) {
	conf, err := config.Parse()
	if err != nil {
		return nil, errors.Wrap(err, "could not parse config")
	}

	if driver := ctx.String(paramDatabaseDriver); driver != "" {
		conf.Storage.Database.Driver = driver
	}

	if dsn := ctx.String(paramDatabaseDSN); dsn != "" {
		conf.Storage.Database.DSN = dsn
	}

	// Cached reads are useless for one-shot commands
	conf.Cache.Enabled = false

	manager, err := setup.NewArticleManagerFromConfig(ctx.Context, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return manager, nil
}

// ArticleIDArg parses the first positional argument as an article identifier.
func ArticleIDArg(ctx *cli.Context) (model.ArticleID, error) {
	raw := ctx.Args().First()
	if raw == "" {
		return 0, errors.New("missing article identifier argument")
	}

	id, err := model.ParseArticleID(raw)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid article identifier '%s'", raw)
	}

	return id, nil
}

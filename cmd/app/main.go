package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"github.com/vidyanandsawai-25/NtisPlatform-WTIS/internal/adapters/db/sqlstore"
	"github.com/vidyanandsawai-25/NtisPlatform-WTIS/internal/application"
	"github.com/vidyanandsawai-25/NtisPlatform-WTIS/internal/config"
	"github.com/vidyanandsawai-25/NtisPlatform-WTIS/internal/logger"
	"go.uber.org/zap"
)

func main() {
	args := os.Args
	if len(args) == 1 {
		args = append(args, "--help")
	}

	a := &app{}
	root := rootCommand(a)
	err := root.Run(context.Background(), args)
	if err != nil {
		code, msg := exitStatus(err)
		fmt.Fprintln(os.Stderr, msg)
		os.Exit(code)
	}
}

// app is filled in by the root Before hook and shared by every subcommand.
type app struct {
	cfg      config.Config
	log      *zap.Logger
	store    *sqlstore.Store
	services *services
}

func rootCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "wtis",
		Usage: "NTIS water tax master data administration",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "YAML config file", Sources: cli.EnvVars("NTIS_CONFIG")},
			&cli.StringFlag{Name: "env-file", Usage: "dotenv file loaded before NTIS_* variables"},
			&cli.StringFlag{Name: "db-driver", Usage: "sqlite or mysql"},
			&cli.StringFlag{Name: "db-dsn", Usage: "database path or MySQL DSN"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
			&cli.StringFlag{Name: "log-format", Usage: "console or json"},
		},
		Before: a.setup,
		After:  a.teardown,
		Commands: []*cli.Command{
			migrateCommand(a),
			organizationsCommand(a),
			floorsCommand(a),
			subFloorsCommand(a),
			constructionTypesCommand(a),
			zonesCommand(a),
			wardsCommand(a),
			pipeSizesCommand(a),
			connectionTypesCommand(a),
			connectionCategoriesCommand(a),
			ratesCommand(a),
			consumersCommand(a),
		},
	}
}

func (a *app) setup(ctx context.Context, c *cli.Command) (context.Context, error) {
	cfg, err := config.Load(c.String("config"), c.String("env-file"))
	if err != nil {
		return ctx, err
	}
	if c.IsSet("db-driver") {
		cfg.Database.Driver = c.String("db-driver")
	}
	if c.IsSet("db-dsn") {
		cfg.Database.DSN = c.String("db-dsn")
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	if c.IsSet("log-format") {
		cfg.Log.Format = c.String("log-format")
	}
	if err := cfg.Validate(); err != nil {
		return ctx, err
	}

	base, err := logger.New(cfg.Log, nil)
	if err != nil {
		return ctx, err
	}
	log, _ := logger.WithOperation(base)

	db, err := sqlstore.Open(sqlstore.Options{
		Driver: cfg.Database.Driver,
		DSN:    cfg.Database.DSN,
		Logger: logger.Gorm(log, cfg.Log.SlowQuery),
	})
	if err != nil {
		return ctx, fmt.Errorf("open database: %w", err)
	}
	if cfg.Database.MaxOpenConns > 0 {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		}
	}

	a.cfg = cfg
	a.log = log
	a.store = sqlstore.NewStore(db)
	a.services = newServices(a.store, application.Runtime{Logger: log})
	log.Debug("ready", zap.String("driver", cfg.Database.Driver))
	return ctx, nil
}

func (a *app) teardown(ctx context.Context, c *cli.Command) error {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			return err
		}
	}
	if a.log != nil {
		_ = a.log.Sync()
	}
	return nil
}

func migrateCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply database migrations",
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := sqlstore.RunMigrations(ctx, a.store.DB, a.cfg.Database.Driver, a.log.Sugar()); err != nil {
				return err
			}
			fmt.Println("migrations applied")
			return nil
		},
	}
}

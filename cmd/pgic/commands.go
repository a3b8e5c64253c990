package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/pgic/pgic-backend/internal/adapter/postgres"
	"github.com/pgic/pgic-backend/internal/app"
	"github.com/pgic/pgic-backend/internal/config"
	"github.com/pgic/pgic-backend/internal/domain"
	"github.com/pgic/pgic-backend/internal/service/importer"
	"github.com/pgic/pgic-backend/migrations"
	"github.com/pgic/pgic-backend/pkg/ctxutil"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP API",
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			return app.Run(ctx, cfg)
		},
	}
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Manage the database schema",
		Commands: []*cli.Command{
			{
				Name:  "up",
				Usage: "Apply every pending migration",
				Action: func(ctx context.Context, c *cli.Command) error {
					return withMigrator(c, func(m *postgres.Migrator) error {
						applied, err := m.Up(ctx)
						if err != nil {
							return err
						}
						if len(applied) == 0 {
							fmt.Println("schema is up to date")
							return nil
						}
						for _, v := range applied {
							fmt.Printf("applied %05d\n", v)
						}
						return nil
					})
				},
			},
			{
				Name:  "status",
				Usage: "List migrations and whether they are applied",
				Action: func(ctx context.Context, c *cli.Command) error {
					return withMigrator(c, func(m *postgres.Migrator) error {
						statuses, err := m.Status(ctx)
						if err != nil {
							return err
						}
						printMigrations(os.Stdout, statuses)
						return nil
					})
				},
			},
		},
	}
}

func importCommand() *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "Run the observation import pipeline",
		Commands: []*cli.Command{
			{
				Name:  "upload",
				Usage: "Store a CSV or JSON file as a new import",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "indicator", Required: true, Usage: "target indicator id"},
					&cli.StringFlag{Name: "file", Required: true, Usage: "path to a .csv or .json file"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					content, err := os.ReadFile(c.String("file"))
					if err != nil {
						return fmt.Errorf("read file: %w", err)
					}
					return withServices(ctx, c, func(ctx context.Context, s *app.Services) error {
						imp, err := s.Imports.Upload(ctx, importer.UploadInput{
							IndicatorID: c.Int64("indicator"),
							FileName:    filepath.Base(c.String("file")),
							Content:     content,
						})
						if err != nil {
							return err
						}
						return printJSON(os.Stdout, imp)
					})
				},
			},
			{
				Name:  "validate",
				Usage: "Validate an uploaded import; interrupting keeps the partial report",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "id", Required: true, Usage: "import id"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return withServices(ctx, c, func(ctx context.Context, s *app.Services) error {
						imp, err := s.Imports.Validate(ctx, c.Int64("id"))
						if err != nil {
							return err
						}
						printReport(os.Stdout, imp)
						return nil
					})
				},
			},
			{
				Name:  "process",
				Usage: "Merge the accepted rows of an approved import",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "id", Required: true, Usage: "import id"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return withServices(ctx, c, func(ctx context.Context, s *app.Services) error {
						imp, err := s.Imports.Process(ctx, c.Int64("id"))
						if err != nil {
							return err
						}
						return printJSON(os.Stdout, imp)
					})
				},
			},
		},
	}
}

func indicatorCommand() *cli.Command {
	return &cli.Command{
		Name:  "indicator",
		Usage: "Indicator lifecycle operations",
		Commands: []*cli.Command{
			{
				Name:  "transition",
				Usage: "Move an indicator to another workflow state",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "id", Required: true, Usage: "indicator id"},
					&cli.StringFlag{Name: "to", Required: true, Usage: "draft, in_review, validated, published or archived"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return withServices(ctx, c, func(ctx context.Context, s *app.Services) error {
						ind, err := s.Workflow.Transition(ctx, c.Int64("id"), domain.WorkflowState(c.String("to")))
						if err != nil {
							return err
						}
						return printJSON(os.Stdout, ind)
					})
				},
			},
		},
	}
}

// withServices loads configuration, opens a pool and runs fn with the wired
// services. The --actor flag, when set, is attached to ctx for audit entries.
func withServices(ctx context.Context, c *cli.Command, fn func(context.Context, *app.Services) error) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg.Log)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if actor := c.Int64("actor"); actor > 0 {
		ctx = ctxutil.WithActorID(ctx, actor)
	}
	return fn(ctx, app.NewServices(pool, cfg, logger))
}

func withMigrator(c *cli.Command, fn func(*postgres.Migrator) error) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	m, err := postgres.NewMigrator(cfg.Database.DSN, migrations.FS)
	if err != nil {
		return err
	}
	defer m.Close()

	return fn(m)
}

// loadConfig reads --config when given, otherwise CONFIG_PATH and the environment.
func loadConfig(c *cli.Command) (*config.Config, error) {
	if path := c.String("config"); path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

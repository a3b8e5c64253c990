// Command pgic runs the indicator registry API and its operator tooling.
//
// Usage:
//
//	pgic serve
//	pgic migrate up|status
//	pgic import upload --indicator=3 --file=ipc.csv
//	pgic import validate --id=12
//	pgic import process --id=12
//	pgic indicator transition --id=3 --to=published
//
// Configuration comes from CONFIG_PATH (default ./config.yaml) and the
// environment; DATABASE_DSN is required.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/pgic/pgic-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	args := os.Args
	if len(args) == 1 {
		args = append(args, "--help")
	}

	root := &cli.Command{
		Name:    "pgic",
		Usage:   "Statistical indicator registry server and operator CLI",
		Version: app.BuildVersion(),
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "YAML config file; overrides CONFIG_PATH"},
			&cli.Int64Flag{Name: "actor", Usage: "user id recorded in audit entries", Sources: cli.EnvVars("PGIC_ACTOR_ID")},
		},
		Commands: []*cli.Command{
			serveCommand(),
			migrateCommand(),
			importCommand(),
			indicatorCommand(),
		},
	}

	if err := root.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

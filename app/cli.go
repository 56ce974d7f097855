// Package app is the main cmd app
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/htol/bookshelf/auth"
	"github.com/htol/bookshelf/config"
	"github.com/htol/bookshelf/logger"
	"github.com/htol/bookshelf/repo"
)

var errNoCommand = errors.New("please provide a command to run")

func CLI(args []string) int {
	root := newRootCmd(&appEnv{})
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		if errors.Is(err, errNoCommand) {
			fmt.Println(err)
			return 2
		}
		logger.Error("Runtime error", "error", err)
		return 1
	}
	return 0
}

type appEnv struct {
	config *config.Config
	dbPath string
	port   int
}

func newRootCmd(app *appEnv) *cobra.Command {
	root := &cobra.Command{
		Use:           "bookshelf",
		Short:         "Book catalog web application",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.loadConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Usage(); err != nil {
				return err
			}
			return errNoCommand
		},
	}
	root.PersistentFlags().StringVar(&app.dbPath, "db", "", "Path to the SQLite database (default from DB_PATH or books.db)")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.serve(cmd.Context())
		},
	}
	serve.Flags().IntVarP(&app.port, "port", "p", 0, "Port number (default from PORT or 5000)")

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create the database and schema, then exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.initDB(cmd)
		},
	}

	root.AddCommand(serve, initCmd)
	return root
}

func (app *appEnv) loadConfig(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// CLI flags override config and environment
	if cmd.Flags().Changed("db") {
		cfg.Database.Path = app.dbPath
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = app.port
	}
	app.config = cfg

	logger.Init(cfg.Log.Level, cfg.Log.Format)
	return nil
}

func (app *appEnv) serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	storage, err := repo.Open(app.config.Database.Path, app.config.Database)
	if err != nil {
		return err
	}

	return NewServer(storage, app.config, auth.Builtin).Run(ctx)
}

func (app *appEnv) initDB(cmd *cobra.Command) error {
	storage, err := repo.Open(app.config.Database.Path, app.config.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := storage.Close(); err != nil {
			logger.Error("Error closing storage", "error", err)
		}
	}()

	n, err := storage.Count(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "database %s ready, %d books\n", storage.Path(), n)
	return nil
}

package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yigit/uniregistry/internal/app/console"
	"github.com/yigit/uniregistry/internal/bootstrap"
	"github.com/yigit/uniregistry/internal/config"
	"github.com/yigit/uniregistry/internal/pkg/logger" // Still needed for initial error logging
	"github.com/yigit/uniregistry/internal/server"
)

// @title University Registry API
// @version 1.0
// @description API for managing faculties and students of a single university

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

func main() {
	app := &cli.App{
		Name:  "uniregistry",
		Usage: "manage faculties and students of a university",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   config.DefaultConfigPath,
				Usage:   "path to the YAML configuration file",
				EnvVars: []string{"UNIREGISTRY_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "env-file",
				Value: config.DefaultEnvFile,
				Usage: "path to an optional .env file",
			},
		},
		Action: runMenu,
		Commands: []*cli.Command{
			{
				Name:   "menu",
				Usage:  "run the interactive console menu (default)",
				Action: runMenu,
			},
			{
				Name:   "serve",
				Usage:  "serve the registry over HTTP",
				Action: runServer,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error().Err(err).Msg("Application failed")
		os.Exit(1)
	}
}

func runMenu(c *cli.Context) error {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(c.String("config"), c.String("env-file"))
	if err != nil {
		return err
	}

	deps, err := bootstrap.BuildDependencies(cfg, lgr)
	if err != nil {
		return err
	}

	return console.NewMenu(deps.RegistryService, os.Stdin, os.Stdout, lgr).Run()
}

func runServer(c *cli.Context) error {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(c.String("config"), c.String("env-file"))
	if err != nil {
		return err
	}

	srv, err := server.NewServer(cfg, lgr)
	if err != nil {
		return err
	}

	// Run blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		return err
	}

	lgr.Info().Msg("Application finished gracefully.")
	return nil
}

package main

import (
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/peermint/peermint/cmd"
	"github.com/peermint/peermint/pkg/config"
	"github.com/peermint/peermint/pkg/logger"
)

func main() {
	app := &cli.App{
		Name:  "peermint",
		Usage: "Single-process token ledger with proof-of-work block admission",
		Commands: []*cli.Command{
			cmd.NodeCommand(),
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file path",
				Value:   "./config.yaml",
			},
		},
		Before: func(c *cli.Context) error {
			// Initialize global configuration. Can be accessed later on via config.G()
			cfg, err := config.InitializeGlobalConfig(c.String("config"))
			if err != nil {
				return errors.Wrap(err, "failure to load main peermint configuration file")
			}

			// Initialize the global logger. Can be accessed later on via logger.G()
			gLog, err := logger.InitializeGlobalLogger(cfg.Logger)
			if err != nil {
				return errors.Wrap(err, "failure to initialize logger")
			}

			gLog.Debug(
				"Successfully loaded global configuration and logger setup",
				"environment", cfg.Logger.Environment,
				"level", cfg.Logger.Level,
			)

			return nil
		},
		After: func(c *cli.Context) error {
			return logger.Sync()
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("failure while running peermint: %v", err)
	}
}

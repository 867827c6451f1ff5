// cmd/cli/main.go
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/maryrojas/rentabilidad-go/internal/cache"
	"github.com/maryrojas/rentabilidad-go/internal/dataset"
	"github.com/maryrojas/rentabilidad-go/internal/service"
	"github.com/maryrojas/rentabilidad-go/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Log.Debug().Err(err).Msg("no .env file loaded")
	}

	app := &cli.App{
		Name:  "rentabilidad",
		Usage: "Interactive profitability analysis over the egg sales dataset",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "data",
				Usage:   "Path to the profitability CSV",
				Value:   "./data/pyg.csv",
				EnvVars: []string{"DATA_FILE"},
			},
			&cli.Float64Flag{
				Name:  "threshold",
				Usage: "Logistics alert multiplier over the product-type average",
				Value: 1.1,
			},
			&cli.StringSliceFlag{
				Name:  "channel",
				Usage: "Sales channel allowlist",
				Value: cli.NewStringSlice("AU ESP", "TAT", "MY", "FS", "GS", "HD"),
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error)",
				Value: "warn",
			},
		},
		Action: runMenu,
	}

	if err := app.Run(os.Args); err != nil {
		logger.Log.Fatal().Err(err).Msg("cli exited with error")
	}
}

func runMenu(c *cli.Context) error {
	logger.SetLevel(c.String("log-level"))

	svc := service.NewProfitabilityService(
		cache.NewDatasetCache(dataset.Load),
		c.String("data"),
		c.StringSlice("channel"),
		c.Float64("threshold"),
	)

	session := newMenuSession(svc, os.Stdin, os.Stdout)
	return session.run()
}

package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"gorm.io/gorm"

	"exerciselog/database"
	"exerciselog/internal/cache"
	"exerciselog/internal/config"
	"exerciselog/internal/logging"
	"exerciselog/internal/repository"
	"exerciselog/internal/services"
	"exerciselog/internal/utils"
)

// connect opens the store and, when REDIS_URL is set, the catalog cache that
// a running server reads from. The returned cleanup func closes the cache.
func connect(c *cli.Context) (*gorm.DB, services.ExerciseCache, func(), error) {
	cfg, err := config.Load(c.String("env"))
	if err != nil {
		return nil, nil, nil, err
	}
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: "console"})

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := database.MigrateDatabase(db); err != nil {
		return nil, nil, nil, err
	}

	if cfg.RedisURL == "" {
		return db, nil, func() {}, nil
	}
	redisClient, err := cache.NewRedisClient(c.Context, cfg.RedisURL, cfg.CacheTTL)
	if err != nil {
		return nil, nil, nil, err
	}
	return db, redisClient, func() { _ = redisClient.Close() }, nil
}

func main() {
	app := &cli.App{
		Name:  "seed",
		Usage: "manage exercise log fixtures",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env",
				Value: ".env",
				Usage: "dotenv file to load before reading the environment",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "exercises",
				Usage: "insert the default exercise catalog, skipping existing entries",
				Action: func(c *cli.Context) error {
					db, exerciseCache, cleanup, err := connect(c)
					if err != nil {
						return err
					}
					defer cleanup()

					catalog := services.NewCatalogService(repository.NewExerciseRepository(db), exerciseCache)
					_, _, err = utils.SeedExercises(c.Context, catalog, utils.DefaultExercises)
					return err
				},
			},
			{
				Name:  "clear",
				Usage: "delete every exercise and exercise log entry",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "yes", Usage: "confirm the deletion"},
				},
				Action: func(c *cli.Context) error {
					if !c.Bool("yes") {
						return cli.Exit("refusing to clear without --yes", 1)
					}
					db, exerciseCache, cleanup, err := connect(c)
					if err != nil {
						return err
					}
					defer cleanup()

					return utils.ClearAll(c.Context,
						repository.NewExerciseRepository(db),
						repository.NewExerciseLogRepository(db),
						exerciseCache,
					)
				},
			},
		},
	}

	if err := app.RunContext(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("seed command failed")
	}
}

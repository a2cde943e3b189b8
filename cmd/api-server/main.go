package main

import (
	"Scoops/config"
	"Scoops/dao"
	"Scoops/pkg/database"
	"Scoops/pkg/log"
	"Scoops/pkg/server"
	"Scoops/service"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func loadConfig(ctx *cli.Context) (*config.Config, error) {
	path := ctx.String("config")
	if path == "" {
		env := os.Getenv("APP_ENV")
		if env == "" {
			env = "dev"
		}
		path = fmt.Sprintf("configs/config.%s.yaml", env)
	}
	cfg, err := config.New(path)
	if err != nil {
		return nil, err
	}
	log.SetLevel(cfg.App.LogLevel)
	return cfg, nil
}

func serve(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	app, cleanup, err := InitServer(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	if cfg.Database.AutoMigrate {
		if err = database.Migrate(app.DB); err != nil {
			return err
		}
	}
	if _, err = app.AuthService.SeedAdmin(ctx.Context); err != nil {
		return err
	}
	return server.Run(ctx, app)
}

func migrate(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	db, err := database.NewDB(cfg)
	if err != nil {
		return err
	}
	return database.Migrate(db)
}

func seed(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	db, err := database.NewDB(cfg)
	if err != nil {
		return err
	}
	// seeding never touches refresh tokens, so no redis connection is needed
	auth := &service.AuthService{Config: cfg, UsersDAO: dao.NewUsers(db)}
	created, err := auth.SeedAdmin(ctx.Context)
	if err != nil {
		return err
	}
	log.L.Info("seed finished", zap.Bool("admin_created", created))
	return nil
}

func main() {
	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "Scoops storefront and back-office API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "config file, defaults to configs/config.$APP_ENV.yaml",
				EnvVars: []string{"SCOOPS_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "start http server",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "create or update database tables",
				Action: migrate,
			},
			{
				Name:   "seed",
				Usage:  "create the configured admin user when no user exists",
				Action: seed,
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("api-server failed", zap.Error(err))
	}
}

package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Rakhulsr/go-storefront/app/configs"
	"github.com/Rakhulsr/go-storefront/app/db/seeders"
	"github.com/Rakhulsr/go-storefront/app/models"
	"github.com/Rakhulsr/go-storefront/app/models/migrations"
	"github.com/Rakhulsr/go-storefront/app/repositories"
	"github.com/Rakhulsr/go-storefront/app/services"
	"github.com/Rakhulsr/go-storefront/app/utils/storage"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func RunCli(env configs.ENV, args []string) error {
	cmd := &cli.Command{
		Name:  "storefront",
		Usage: "Storefront catalog management",
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection(env)
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					fmt.Println("✅ Migration complete")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Load the sample clothing catalog",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection(env)
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}

					fetcher := services.NewHTTPImageFetcher(nil)
					store := storage.NewLocalStorage(env.MediaRoot, env.MediaURL)

					report, err := seeders.DBSeed(ctx, db, fetcher, store)
					if err != nil {
						return err
					}
					if report.ImageFailures > 0 {
						zap.L().Warn("seed: some product images could not be attached", zap.Int("image_failures", report.ImageFailures))
					}
					fmt.Println("✅ Sample clothing data populated successfully.")
					return nil
				},
			},
			{
				Name:  "generate-keys",
				Usage: "Generate new session authentication, encryption and CSRF keys for .env",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "out", Usage: "also write the keys to this file"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := configs.GenerateSessionKeys(os.Stdout, c.String("out")); err != nil {
						return err
					}
					fmt.Println("✅ Key generation complete. Please copy the keys to your .env file.")
					return nil
				},
			},
			{
				Name:  "create-user",
				Usage: "Create a storefront user",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "username", Required: true},
					&cli.StringFlag{Name: "email"},
					&cli.StringFlag{Name: "password", Required: true},
					&cli.BoolFlag{Name: "staff", Usage: "allow access to the catalog admin"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection(env)
					if err != nil {
						return err
					}

					user := &models.User{
						Username: strings.TrimSpace(c.String("username")),
						Email:    strings.TrimSpace(c.String("email")),
						Password: c.String("password"),
						IsStaff:  c.Bool("staff"),
					}
					if err := repositories.NewUserRepository(db).Create(ctx, user); err != nil {
						return fmt.Errorf("failed to create user %q: %w", user.Username, err)
					}
					fmt.Printf("✅ User %s created\n", user.Username)
					return nil
				},
			},
			{
				Name:  "create-coupon",
				Usage: "Create a coupon with the default discount and minimum amounts",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "code", Required: true},
					&cli.BoolFlag{Name: "expired"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					code := strings.TrimSpace(c.String("code"))
					if len(code) > 10 {
						return fmt.Errorf("coupon code %q is longer than 10 characters", code)
					}

					db, err := configs.OpenConnection(env)
					if err != nil {
						return err
					}

					coupon := &models.Coupon{Code: code, IsExpired: c.Bool("expired")}
					if err := repositories.NewCouponRepository(db).Create(ctx, coupon); err != nil {
						return fmt.Errorf("failed to create coupon %q: %w", code, err)
					}
					fmt.Printf("✅ Coupon %s created\n", coupon.Code)
					return nil
				},
			},
		},
	}

	return cmd.Run(context.Background(), args)
}

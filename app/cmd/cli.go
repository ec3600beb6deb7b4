package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Rakhulsr/cloth-cafe/app/configs"
	"github.com/Rakhulsr/cloth-cafe/app/db/seeders"
	"github.com/Rakhulsr/cloth-cafe/app/logger"
	"github.com/Rakhulsr/cloth-cafe/app/metrics"
	"github.com/Rakhulsr/cloth-cafe/app/middlewares"
	"github.com/Rakhulsr/cloth-cafe/app/models/migrations"
	"github.com/Rakhulsr/cloth-cafe/app/repositories"
	"github.com/Rakhulsr/cloth-cafe/app/routes"
	"github.com/Rakhulsr/cloth-cafe/app/services"
	"github.com/Rakhulsr/cloth-cafe/app/store"
	"github.com/Rakhulsr/cloth-cafe/app/utils/renderer"
	"github.com/Rakhulsr/cloth-cafe/app/utils/sessions"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

const serviceName = "cloth-cafe"

func RunCli(args []string) {
	env := configs.LoadEnv()

	appLogger, err := logger.InitLogger(&logger.LogConfig{
		Level:       env.LogLevel,
		Environment: env.APP_ENV,
		ServiceName: serviceName,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer appLogger.Sync()

	for _, warning := range env.Warnings {
		appLogger.Warn(warning)
	}

	cmd := &cli.Command{
		Name:  serviceName,
		Usage: "Cloth Cafe storefront service",
		Action: func(ctx context.Context, c *cli.Command) error {
			return serve(ctx, env, appLogger)
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Run the HTTP API",
				Action: func(ctx context.Context, c *cli.Command) error {
					return serve(ctx, env, appLogger)
				},
			},
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection(env, appLogger)
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					appLogger.Info("✅ Migration complete")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Write the default catalog and site config",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "force",
						Usage: "overwrite keys that already exist",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					repo, err := openRepository(env, appLogger)
					if err != nil {
						return err
					}
					if err := seeders.DBSeed(ctx, repo, c.Bool("force"), appLogger); err != nil {
						return err
					}
					appLogger.Info("✅ Seeding complete")
					return nil
				},
			},
			{
				Name:  "keys",
				Usage: "List the keys held by the store backend",
				Action: func(ctx context.Context, c *cli.Command) error {
					repo, err := openRepository(env, appLogger)
					if err != nil {
						return err
					}
					keys, err := repo.Keys(ctx)
					if err != nil {
						return err
					}
					for _, k := range keys {
						fmt.Println(k)
					}
					return nil
				},
			},
			{
				Name:  "generate-keys",
				Usage: "Generate new session authentication and encryption keys for .env",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "output",
						Value: ".env.session_keys",
						Usage: "file the generated keys are written to",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := configs.GenerateAndPrintSessionKeys(c.String("output")); err != nil {
						return err
					}
					appLogger.Info("✅ Key generation complete. Please copy the keys to your .env file.")
					return nil
				},
			},
			{
				Name:      "hash-passphrase",
				Usage:     "Print a bcrypt hash for ADMIN_PASSPHRASE_HASH",
				ArgsUsage: "<passphrase>",
				Action: func(ctx context.Context, c *cli.Command) error {
					if c.Args().Len() != 1 {
						return errors.New("expected exactly one passphrase argument")
					}
					hash, err := services.HashPassphrase(c.Args().First())
					if err != nil {
						return err
					}
					fmt.Println(hash)
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), args); err != nil {
		appLogger.Fatal("command failed", zap.Error(err))
	}
}

func openRepository(env configs.ENV, log *zap.Logger) (repositories.KVRepository, error) {
	switch env.StoreBackend {
	case configs.StoreBackendMemory:
		log.Warn("STORE_BACKEND=memory, data is lost on exit")
		return repositories.NewMemoryKVRepository(nil), nil
	case configs.StoreBackendMySQL:
		db, err := configs.OpenConnection(env, log)
		if err != nil {
			return nil, err
		}
		if err := migrations.AutoMigrate(db); err != nil {
			return nil, fmt.Errorf("failed to migrate kv table: %w", err)
		}
		return repositories.NewKVRepository(db), nil
	}
	return nil, fmt.Errorf("unknown STORE_BACKEND %q", env.StoreBackend)
}

func sessionKeys(env configs.ENV, log *zap.Logger) (*configs.SessionKeys, error) {
	if env.AppAuthKey == "" && env.AppEncKey == "" && !env.IsProduction() {
		log.Warn("APP_AUTH_KEY/APP_ENC_KEY not set, admin sessions will not survive a restart")
		return configs.EphemeralSessionKeys(), nil
	}
	return configs.LoadSessionKeys(env)
}

func serve(ctx context.Context, env configs.ENV, appLogger *zap.Logger) error {
	repo, err := openRepository(env, appLogger)
	if err != nil {
		return err
	}

	st, err := store.Load(ctx, repo, seeders.Defaults(), appLogger)
	if err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}

	auth, err := services.NewPassphraseAuthenticator(env.AdminPassphraseHash, env.AdminPassphrase)
	if err != nil {
		return fmt.Errorf("admin auth: %w", err)
	}

	keys, err := sessionKeys(env, appLogger)
	if err != nil {
		return err
	}

	relay := services.NewNotificationRelay(env.FormRelayURL, env.RelayTimeout)
	if _, noop := relay.(services.NoopRelay); noop {
		appLogger.Warn("FORM_RELAY_URL not set, notifications are dropped")
	}

	router := routes.NewRouter(routes.Dependencies{
		Store:    st,
		Relay:    relay,
		Auth:     auth,
		Sessions: sessions.NewCookieSessionStore(env.IsProduction(), keys.AuthKey, keys.EncKey),
		Metrics:  metrics.NewDefault(),
		Logger:   appLogger,
		Render:   renderer.New(env.IsProduction()),
	})

	server := &http.Server{
		Addr:              env.Port,
		Handler:           middlewares.MethodOverrideMiddleware(router),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		appLogger.Info("🚀 Server starting", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	appLogger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

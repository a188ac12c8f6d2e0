package main

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"taxipark/api"
	"taxipark/config"
	"taxipark/pkg/logger"
	"taxipark/pkg/notify"
	"taxipark/pkg/session"
	"taxipark/service"
	"taxipark/storage"
	"taxipark/storage/postgres"
)

func init() {
	serveCmd.Flags().IntP("port", "p", 0, "HTTP port (overrides HTTP_PORT)")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		if port, _ := cmd.Flags().GetInt("port"); port != 0 {
			cfg.HTTPPort = port
		}
		if cfg.LoggerLevel != "debug" {
			gin.SetMode(gin.ReleaseMode)
		}

		fx.New(
			fx.Supply(&cfg),
			fx.Provide(
				provideLogger,
				provideStorage,
				provideRedis,
				provideSessionStore,
				notify.New,
				provideService,
				api.NewEngine,
				api.NewServer,
			),
			fx.Invoke(startHTTPServer),
		).Run()
	},
}

func provideLogger(lc fx.Lifecycle, cfg *config.Config) logger.ILogger {
	log := logger.New(cfg.ServiceName, cfg.LoggerLevel)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			_ = log.Sync()
			return nil
		},
	})
	return log
}

func provideStorage(lc fx.Lifecycle, cfg *config.Config, log logger.ILogger) (storage.IStorage, error) {
	stg, err := postgres.New(context.Background(), *cfg, log)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info("closing Postgres pool")
			stg.Close()
			return nil
		},
	})
	return stg, nil
}

func provideRedis(lc fx.Lifecycle, cfg *config.Config, log logger.ILogger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				log.Error("failed to ping Redis", logger.Error(err))
				return err
			}
			log.Info("Redis connected", logger.String("addr", cfg.RedisAddr()))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("closing Redis")
			return client.Close()
		},
	})
	return client
}

func provideSessionStore(client *redis.Client, cfg *config.Config, log logger.ILogger) session.IStore {
	return session.NewRedisStore(client, cfg.SessionTTL, log)
}

func provideService(stg storage.IStorage, n notify.INotifier, log logger.ILogger, cfg *config.Config) service.IServiceManager {
	return service.New(stg, n, log, cfg.PageSize)
}

func startHTTPServer(lc fx.Lifecycle, srv *http.Server, log logger.ILogger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("HTTP server started", logger.String("addr", srv.Addr))

			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("HTTP server stopped", logger.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

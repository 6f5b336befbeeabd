package main

import (
	"context"
	"time"

	"github.com/simonindia/hr-portal/internal/api"
	mongodb "github.com/simonindia/hr-portal/internal/infrastructure/db/mongo"
	redisdb "github.com/simonindia/hr-portal/internal/infrastructure/db/redis"
	"github.com/simonindia/hr-portal/internal/pkg/config"
	"github.com/simonindia/hr-portal/pkg/logger"
)

// @title        HR Portal API
// @version      1.0
// @description  Internal HR portal backend: news posts, employee referrals and admin sessions.
// @BasePath     /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	if err := mongodb.NewNewsRepository(db).EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("news index creation failed")
	}
	if err := mongodb.NewReferralRepository(db).EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("referral index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	e, err := api.NewRouter(db, rdb, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("router setup failed")
	}

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting hr-portal api")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

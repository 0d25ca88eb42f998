package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/dscatalog/catalog-system/internal/api"
	"github.com/dscatalog/catalog-system/internal/core/domain"
	"github.com/dscatalog/catalog-system/internal/core/ports"
	"github.com/dscatalog/catalog-system/internal/core/service"
	"github.com/dscatalog/catalog-system/internal/infrastructure/db/postgres"
	redisinfra "github.com/dscatalog/catalog-system/internal/infrastructure/db/redis"
	"github.com/dscatalog/catalog-system/internal/pkg/config"
	"github.com/dscatalog/catalog-system/pkg/logger"

	_ "github.com/dscatalog/catalog-system/docs"
)

// @title        Catalog API
// @version      1.0
// @description  Catalog management backend: categories, products, and users behind an OAuth2 password grant.
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.Connect(ctx, postgres.Config{
		URL:      cfg.Postgres.URL,
		MaxConns: cfg.Postgres.MaxConns,
		MinConns: cfg.Postgres.MinConns,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure database schema")
	}

	rdb, err := redisinfra.Connect(ctx, redisinfra.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	if err := bootstrapAdmin(ctx, pool, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("failed to bootstrap admin user")
	}

	e := api.NewRouter(pool, rdb, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting catalog API")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// bootstrapAdmin seeds an admin user on an empty users table when
// ADMIN_EMAIL/ADMIN_PASSWORD are configured. Without it a fresh deployment
// has no way to obtain a first token.
func bootstrapAdmin(ctx context.Context, pool *pgxpool.Pool, cfg *config.Config, log zerolog.Logger) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		return nil
	}

	userRepo := postgres.NewUserRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)

	count, err := userRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	adminRole, err := roleRepo.FindByAuthority(ctx, domain.RoleAdmin)
	if err != nil {
		return err
	}

	users := service.NewUserService(userRepo, roleRepo, log)
	u, err := users.Create(ctx, ports.CreateUserInput{
		FirstName: "Admin",
		Email:     cfg.Admin.Email,
		Password:  cfg.Admin.Password,
		RoleIDs:   []int64{adminRole.ID},
	})
	if err != nil {
		return err
	}

	log.Info().Str("email", u.Email).Msg("seeded initial admin user")
	return nil
}

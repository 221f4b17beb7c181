package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/arnavshah/vacancy-bidding-api/pkg/audit"
	"github.com/arnavshah/vacancy-bidding-api/pkg/auth"
	"github.com/arnavshah/vacancy-bidding-api/pkg/bidding"
	"github.com/arnavshah/vacancy-bidding-api/pkg/config"
	"github.com/arnavshah/vacancy-bidding-api/pkg/database"
	"github.com/arnavshah/vacancy-bidding-api/pkg/handlers"
	"github.com/arnavshah/vacancy-bidding-api/pkg/kvstore"
)

// App is a wired service ready to serve
type App struct {
	Router  *gin.Engine
	Handler *handlers.Handler
	closers []func() error
}

// Close releases the database and redis connections
func (a *App) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// New opens storage, bootstraps the admin user and mounts the routes
func New(cfg *config.Config, log *zap.Logger) (*App, error) {
	settings, err := cfg.Settings()
	if err != nil {
		return nil, err
	}

	db, err := database.Open(database.Options{DSN: cfg.DatabaseURL, Path: cfg.DataPath})
	if err != nil {
		return nil, err
	}
	a := &App{}
	a.closers = append(a.closers, func() error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	})

	created, err := auth.EnsureAdminExists(db, cfg.AdminUsername, cfg.AdminPassword)
	if err != nil {
		a.Close()
		return nil, errors.Wrap(err, "bootstrap admin user")
	}
	if created {
		log.Info("default admin user created", zap.String("username", cfg.AdminUsername))
	}

	store, err := a.auditStore(cfg, db)
	if err != nil {
		a.Close()
		return nil, err
	}
	log.Info("audit storage ready", zap.String("backend", cfg.AuditBackend))

	h := &handlers.Handler{
		DB:       db,
		Tokens:   auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL),
		Audit:    audit.NewLogger(store, log.Named("audit")),
		Settings: settings,
		Log:      log,
		NewID:    bidding.NewUUID,
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	h.Register(r)

	a.Router = r
	a.Handler = h
	return a, nil
}

func (a *App) auditStore(cfg *config.Config, db *gorm.DB) (audit.Storage, error) {
	switch cfg.AuditBackend {
	case config.BackendMemory:
		return kvstore.NewMemory(), nil
	case config.BackendRedis:
		rs := kvstore.NewRedis(kvstore.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rs.Ping(ctx); err != nil {
			rs.Close()
			return nil, errors.Wrap(err, "connect redis")
		}
		a.closers = append(a.closers, rs.Close)
		return rs, nil
	default:
		return database.NewKVStore(db), nil
	}
}

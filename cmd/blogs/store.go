package main

import (
	"context"
	"fmt"
	"os"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/blogsandposts/internal/blog"
	"github.com/2beens/blogsandposts/internal/config"
	"github.com/2beens/blogsandposts/internal/db"
	"github.com/2beens/blogsandposts/pkg"
)

// openStore returns the configured store, plus any prometheus collectors
// that come with its connection.
func openStore(ctx context.Context, cfg *config.Config) (blog.Store, []prometheus.Collector, error) {
	switch cfg.Store {
	case config.StorePostgres:
		postgresPassword := os.Getenv("BLOGS_POSTGRES_PASSWORD")
		if postgresPassword == "" {
			log.Debugln("postgres password not set, use BLOGS_POSTGRES_PASSWORD to set it")
		}

		dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
			DBHost:         cfg.PostgresHost,
			DBPort:         cfg.PostgresPort,
			DBName:         cfg.PostgresDBName,
			DBUser:         cfg.PostgresUser,
			DBPassword:     postgresPassword,
			TracingEnabled: cfg.TracingEnabled,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("new db pool: %w", err)
		}
		if err := db.EnsurePsqlSchema(ctx, dbPool); err != nil {
			dbPool.Close()
			return nil, nil, err
		}

		pgxpoolCollector := pgxpoolprometheus.NewCollector(
			dbPool,
			map[string]string{"db_name": cfg.PostgresDBName},
		)
		return blog.NewPsqlRepo(dbPool), []prometheus.Collector{pgxpoolCollector}, nil

	case config.StoreSQLite:
		exists, err := pkg.PathExists(cfg.SQLitePath, false)
		if err != nil {
			return nil, nil, fmt.Errorf("check sqlite path: %w", err)
		}
		if !exists {
			log.Infof("creating new sqlite database: %s", cfg.SQLitePath)
		}

		sqlDB, err := db.NewSQLiteDB(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return blog.NewSQLiteRepo(sqlDB), nil, nil

	case config.StoreRedis:
		rdb, err := db.NewRedisClient(ctx, db.NewRedisClientParams{
			Host:           cfg.RedisHost,
			Port:           cfg.RedisPort,
			Password:       os.Getenv("BLOGS_REDIS_PASS"),
			TracingEnabled: cfg.TracingEnabled,
		})
		if err != nil {
			return nil, nil, err
		}
		return blog.NewRedisRepo(rdb), nil, nil

	case config.StoreMemory:
		log.Warnln("using in-memory store, nothing will be persisted")
		return blog.NewMemRepo(), nil, nil

	default:
		return nil, nil, fmt.Errorf("unknown store: [%s]", cfg.Store)
	}
}

package db

import (
	"context"
	"fmt"
	"net/url"

	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

type NewDBPoolParams struct {
	DBHost         string
	DBPort         string
	DBName         string
	DBUser         string
	DBPassword     string
	TracingEnabled bool
}

func (p NewDBPoolParams) connString() string {
	user := p.DBUser
	if user == "" {
		user = "postgres"
	}
	u := &url.URL{
		Scheme: "postgres",
		Host:   fmt.Sprintf("%s:%s", p.DBHost, p.DBPort),
		Path:   "/" + p.DBName,
	}
	if p.DBPassword != "" {
		u.User = url.UserPassword(user, p.DBPassword)
	} else {
		u.User = url.User(user)
	}
	return u.String()
}

func NewDBPool(ctx context.Context, params NewDBPoolParams) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(params.connString())
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}

	if params.TracingEnabled {
		poolConfig.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	log.Debugf("connected to postgres: %s:%s/%s", params.DBHost, params.DBPort, params.DBName)

	return db, nil
}

// EnsurePsqlSchema creates the blog and post tables if they are missing.
func EnsurePsqlSchema(ctx context.Context, db *pgxpool.Pool) error {
	if _, err := db.Exec(ctx, PsqlSchema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

const PsqlSchema = `
CREATE TABLE IF NOT EXISTS blog
(
    id   SERIAL PRIMARY KEY,
    name VARCHAR NOT NULL
);

CREATE TABLE IF NOT EXISTS post
(
    id      SERIAL PRIMARY KEY,
    blog_id INTEGER NOT NULL REFERENCES blog (id),
    title   VARCHAR NOT NULL,
    content TEXT    NOT NULL
);

CREATE INDEX IF NOT EXISTS ix_post_blog_id ON post (blog_id);
`

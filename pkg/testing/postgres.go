package testing

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/2beens/blogsandposts/internal/db"
)

// GetDBPool connects to POSTGRES_HOST:POSTGRES_PORT (localhost:5432 by default),
// creates the schema and empties the blog and post tables.
func GetDBPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	host := os.Getenv("POSTGRES_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("POSTGRES_PORT")
	if port == "" {
		port = "5432"
	}
	t.Logf("using postgres host: %s:%s", host, port)

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     host,
		DBPort:     port,
		DBName:     "blogs",
		DBPassword: os.Getenv("POSTGRES_PASSWORD"),
	})
	require.NoError(t, err)
	t.Cleanup(dbPool.Close)

	require.NoError(t, db.EnsurePsqlSchema(ctx, dbPool))
	_, err = dbPool.Exec(ctx, `TRUNCATE post, blog RESTART IDENTITY;`)
	require.NoError(t, err)

	return dbPool
}

package blog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/blogsandposts/internal/telemetry/tracing"
)

var _ Store = (*SQLiteRepo)(nil)

// SQLiteRepo expects a *sql.DB opened with db.NewSQLiteDB, which has
// foreign keys enabled and the blog/post schema in place.
type SQLiteRepo struct {
	db *sql.DB
}

func NewSQLiteRepo(db *sql.DB) *SQLiteRepo {
	return &SQLiteRepo{
		db: db,
	}
}

func (r *SQLiteRepo) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *SQLiteRepo) CreateBlog(ctx context.Context, name string) (*Blog, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sqliteRepo.CreateBlog")
	defer span.End()

	if err := validateBlogName(name); err != nil {
		return nil, err
	}

	res, err := r.db.ExecContext(ctx, `INSERT INTO blog (name) VALUES (?)`, name)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	return &Blog{
		ID:   int(id),
		Name: name,
	}, nil
}

func (r *SQLiteRepo) ListBlogs(ctx context.Context) ([]*Blog, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sqliteRepo.ListBlogs")
	defer span.End()

	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM blog ORDER BY name, id`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Warnf("close blog rows: %s", err)
		}
	}()

	var blogs []*Blog
	for rows.Next() {
		b := &Blog{}
		if err := rows.Scan(&b.ID, &b.Name); err != nil {
			return nil, err
		}
		blogs = append(blogs, b)
	}

	return blogs, rows.Err()
}

func (r *SQLiteRepo) FindBlog(ctx context.Context, id int) (*Blog, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sqliteRepo.FindBlog")
	span.SetAttributes(attribute.Int("id", id))
	defer span.End()

	b := &Blog{}
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM blog WHERE id = ?`, id).Scan(&b.ID, &b.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBlogNotFound
	}
	if err != nil {
		return nil, err
	}

	return b, nil
}

func (r *SQLiteRepo) CreatePost(ctx context.Context, blogID int, title, content string) (*Post, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sqliteRepo.CreatePost")
	span.SetAttributes(attribute.Int("blog_id", blogID))
	defer span.End()

	if err := validatePost(title, content); err != nil {
		return nil, err
	}

	// the foreign key error text differs between sqlite builds, so check up front
	if _, err := r.FindBlog(ctx, blogID); err != nil {
		return nil, err
	}

	res, err := r.db.ExecContext(
		ctx,
		`INSERT INTO post (blog_id, title, content) VALUES (?, ?, ?)`,
		blogID, title, content,
	)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	return &Post{
		ID:      int(id),
		BlogID:  blogID,
		Title:   title,
		Content: content,
	}, nil
}

func (r *SQLiteRepo) ListPostsByBlog(ctx context.Context, blogID int) ([]*Post, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sqliteRepo.ListPostsByBlog")
	span.SetAttributes(attribute.Int("blog_id", blogID))
	defer span.End()

	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, blog_id, title, content FROM post WHERE blog_id = ? ORDER BY id`,
		blogID,
	)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Warnf("close post rows: %s", err)
		}
	}()

	var posts []*Post
	for rows.Next() {
		p := &Post{}
		if err := rows.Scan(&p.ID, &p.BlogID, &p.Title, &p.Content); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}

	return posts, rows.Err()
}

package blog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/blogsandposts/internal/telemetry/tracing"
	"github.com/2beens/blogsandposts/pkg"
)

// manual caching of prepared statements not needed (at least for this use case):
// https://github.com/jackc/pgx/wiki/Automatic-Prepared-Statement-Caching

var _ Store = (*PsqlRepo)(nil)

type PsqlRepo struct {
	db *pgxpool.Pool
}

func NewPsqlRepo(db *pgxpool.Pool) *PsqlRepo {
	return &PsqlRepo{
		db: db,
	}
}

func (r *PsqlRepo) Close() error {
	if r.db != nil {
		r.db.Close()
	}
	return nil
}

func (r *PsqlRepo) CreateBlog(ctx context.Context, name string) (*Blog, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "blogRepo.CreateBlog")
	defer span.End()

	if err := validateBlogName(name); err != nil {
		return nil, err
	}

	var id int
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO blog (name) VALUES ($1) RETURNING id;`,
		name,
	).Scan(&id); err != nil {
		return nil, fmt.Errorf("insert blog: %w", err)
	}

	return &Blog{
		ID:   id,
		Name: name,
	}, nil
}

func (r *PsqlRepo) ListBlogs(ctx context.Context) ([]*Blog, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "blogRepo.ListBlogs")
	defer span.End()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name FROM blog ORDER BY name, id;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return r.rows2blogs(rows)
}

func (r *PsqlRepo) FindBlog(ctx context.Context, id int) (*Blog, error) {
	log.Tracef("getting blog %d", id)

	ctx, span := tracing.GlobalTracer.Start(ctx, "blogRepo.FindBlog")
	span.SetAttributes(attribute.Int("id", id))
	defer span.End()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name FROM blog WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, ErrBlogNotFound
	}

	blog := &Blog{}
	if err := rows.Scan(&blog.ID, &blog.Name); err != nil {
		return nil, err
	}
	return blog, nil
}

func (r *PsqlRepo) CreatePost(ctx context.Context, blogID int, title, content string) (*Post, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "blogRepo.CreatePost")
	span.SetAttributes(attribute.Int("blog_id", blogID))
	defer span.End()

	if err := validatePost(title, content); err != nil {
		return nil, err
	}

	var id int
	err := r.db.QueryRow(
		ctx,
		`INSERT INTO post (blog_id, title, content) VALUES ($1, $2, $3) RETURNING id;`,
		blogID, title, content,
	).Scan(&id)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}

	return &Post{
		ID:      id,
		BlogID:  blogID,
		Title:   title,
		Content: content,
	}, nil
}

func (r *PsqlRepo) ListPostsByBlog(ctx context.Context, blogID int) ([]*Post, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "blogRepo.ListPostsByBlog")
	span.SetAttributes(attribute.Int("blog_id", blogID))
	defer span.End()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, blog_id, title, content FROM post
			WHERE blog_id = $1
			ORDER BY id;
		`,
		blogID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

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

func (r *PsqlRepo) rows2blogs(rows pgx.Rows) ([]*Blog, error) {
	var blogs []*Blog
	for rows.Next() {
		var id int
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		blogs = append(blogs, &Blog{
			ID:   id,
			Name: name,
		})
	}
	return blogs, rows.Err()
}

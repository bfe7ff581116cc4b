package blog

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/blogsandposts/internal/telemetry/tracing"
)

const (
	redisBlogsSetKey     = "blogs"
	redisBlogNextIDKey   = "blogs::next-id"
	redisPostNextIDKey   = "posts::next-id"
	redisBlogKeyPrefix   = "blog::"
	redisPostKeyPrefix   = "post::"
	redisBlogPostsSuffix = "::posts"
)

var _ Store = (*RedisRepo)(nil)

// RedisRepo layout:
//
//	blogs                set of blog ids
//	blog::<id>           hash {name}
//	blog::<id>::posts    list of post ids, in insertion order
//	post::<id>           hash {blog_id, title, content}
//	blogs::next-id       id counter (INCR), same for posts::next-id
type RedisRepo struct {
	redisClient *redis.Client
}

func NewRedisRepo(redisClient *redis.Client) *RedisRepo {
	return &RedisRepo{
		redisClient: redisClient,
	}
}

func blogKey(id int) string {
	return redisBlogKeyPrefix + strconv.Itoa(id)
}

func blogPostsKey(blogID int) string {
	return blogKey(blogID) + redisBlogPostsSuffix
}

func postKey(id int) string {
	return redisPostKeyPrefix + strconv.Itoa(id)
}

func (r *RedisRepo) Close() error {
	return r.redisClient.Close()
}

func (r *RedisRepo) CreateBlog(ctx context.Context, name string) (*Blog, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redisRepo.CreateBlog")
	defer span.End()

	if err := validateBlogName(name); err != nil {
		return nil, err
	}

	id, err := r.redisClient.Incr(ctx, redisBlogNextIDKey).Result()
	if err != nil {
		return nil, fmt.Errorf("next blog id: %w", err)
	}

	// the hash and the set entry are written together or not at all
	if _, err := r.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, blogKey(int(id)), "name", name)
		pipe.SAdd(ctx, redisBlogsSetKey, strconv.Itoa(int(id)))
		return nil
	}); err != nil {
		return nil, fmt.Errorf("store blog: %w", err)
	}

	return &Blog{
		ID:   int(id),
		Name: name,
	}, nil
}

func (r *RedisRepo) ListBlogs(ctx context.Context) ([]*Blog, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redisRepo.ListBlogs")
	defer span.End()

	ids, err := r.redisClient.SMembers(ctx, redisBlogsSetKey).Result()
	if err != nil {
		return nil, err
	}

	blogs := make([]*Blog, 0, len(ids))
	for _, idStr := range ids {
		id, err := strconv.Atoi(idStr)
		if err != nil {
			log.Warnf("redis repo: invalid blog id [%s] in set: %s", idStr, err)
			continue
		}
		b, err := r.FindBlog(ctx, id)
		if err != nil {
			if errors.Is(err, ErrBlogNotFound) {
				log.Warnf("redis repo: blog %d in set but missing", id)
				continue
			}
			return nil, err
		}
		blogs = append(blogs, b)
	}
	sortBlogsByName(blogs)

	return blogs, nil
}

func (r *RedisRepo) FindBlog(ctx context.Context, id int) (*Blog, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redisRepo.FindBlog")
	span.SetAttributes(attribute.Int("id", id))
	defer span.End()

	name, err := r.redisClient.HGet(ctx, blogKey(id), "name").Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrBlogNotFound
	}
	if err != nil {
		return nil, err
	}

	return &Blog{
		ID:   id,
		Name: name,
	}, nil
}

func (r *RedisRepo) CreatePost(ctx context.Context, blogID int, title, content string) (*Post, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redisRepo.CreatePost")
	span.SetAttributes(attribute.Int("blog_id", blogID))
	defer span.End()

	if err := validatePost(title, content); err != nil {
		return nil, err
	}

	exists, err := r.redisClient.Exists(ctx, blogKey(blogID)).Result()
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, ErrBlogNotFound
	}

	id, err := r.redisClient.Incr(ctx, redisPostNextIDKey).Result()
	if err != nil {
		return nil, fmt.Errorf("next post id: %w", err)
	}

	if _, err := r.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(
			ctx,
			postKey(int(id)),
			"blog_id", strconv.Itoa(blogID),
			"title", title,
			"content", content,
		)
		pipe.RPush(ctx, blogPostsKey(blogID), strconv.Itoa(int(id)))
		return nil
	}); err != nil {
		return nil, fmt.Errorf("store post: %w", err)
	}

	return &Post{
		ID:      int(id),
		BlogID:  blogID,
		Title:   title,
		Content: content,
	}, nil
}

func (r *RedisRepo) ListPostsByBlog(ctx context.Context, blogID int) ([]*Post, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redisRepo.ListPostsByBlog")
	span.SetAttributes(attribute.Int("blog_id", blogID))
	defer span.End()

	ids, err := r.redisClient.LRange(ctx, blogPostsKey(blogID), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	var posts []*Post
	for _, idStr := range ids {
		id, err := strconv.Atoi(idStr)
		if err != nil {
			log.Warnf("redis repo: invalid post id [%s] for blog %d: %s", idStr, blogID, err)
			continue
		}

		fields, err := r.redisClient.HGetAll(ctx, postKey(id)).Result()
		if err != nil {
			return nil, err
		}
		if len(fields) == 0 {
			log.Warnf("redis repo: post %d listed for blog %d but missing", id, blogID)
			continue
		}

		posts = append(posts, &Post{
			ID:      id,
			BlogID:  blogID,
			Title:   fields["title"],
			Content: fields["content"],
		})
	}

	return posts, nil
}

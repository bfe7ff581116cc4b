package blog

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrBlogNotFound            = errors.New("blog not found")
	ErrBlogNameEmpty           = errors.New("blog name empty")
	ErrPostTitleOrContentEmpty = errors.New("post title or content empty")
)

type Blog struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Post always belongs to exactly one Blog, referenced by BlogID.
type Post struct {
	ID      int    `json:"id"`
	BlogID  int    `json:"blog_id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Store is implemented by every blogs/posts backend (postgres, sqlite, redis, memory).
// ListBlogs returns blogs ordered by name, ListPostsByBlog returns posts ordered by id.
type Store interface {
	CreateBlog(ctx context.Context, name string) (*Blog, error)
	ListBlogs(ctx context.Context) ([]*Blog, error)
	FindBlog(ctx context.Context, id int) (*Blog, error)
	CreatePost(ctx context.Context, blogID int, title, content string) (*Post, error)
	ListPostsByBlog(ctx context.Context, blogID int) ([]*Post, error)
	Close() error
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func validateBlogName(name string) error {
	if isBlank(name) {
		return ErrBlogNameEmpty
	}
	return nil
}

func validatePost(title, content string) error {
	if isBlank(title) || isBlank(content) {
		return ErrPostTitleOrContentEmpty
	}
	return nil
}

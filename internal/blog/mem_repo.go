package blog

import (
	"context"
	"sort"
	"sync"
)

var _ Store = (*MemRepo)(nil)

// MemRepo keeps blogs and posts in process memory, nothing survives a restart.
// Used by the "memory" store setting and by tests.
type MemRepo struct {
	blogs      map[int]*Blog
	posts      map[int]*Post
	lastBlogID int
	lastPostID int
	mutex      sync.Mutex
}

func NewMemRepo() *MemRepo {
	return &MemRepo{
		blogs: make(map[int]*Blog),
		posts: make(map[int]*Post),
	}
}

func (r *MemRepo) Close() error {
	return nil
}

func (r *MemRepo) CreateBlog(_ context.Context, name string) (*Blog, error) {
	if err := validateBlogName(name); err != nil {
		return nil, err
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.lastBlogID++
	b := &Blog{
		ID:   r.lastBlogID,
		Name: name,
	}
	r.blogs[b.ID] = b

	c := *b
	return &c, nil
}

func (r *MemRepo) ListBlogs(_ context.Context) ([]*Blog, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	blogs := make([]*Blog, 0, len(r.blogs))
	for _, b := range r.blogs {
		c := *b
		blogs = append(blogs, &c)
	}
	sortBlogsByName(blogs)

	return blogs, nil
}

func (r *MemRepo) FindBlog(_ context.Context, id int) (*Blog, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	b, ok := r.blogs[id]
	if !ok {
		return nil, ErrBlogNotFound
	}

	c := *b
	return &c, nil
}

func (r *MemRepo) CreatePost(_ context.Context, blogID int, title, content string) (*Post, error) {
	if err := validatePost(title, content); err != nil {
		return nil, err
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.blogs[blogID]; !ok {
		return nil, ErrBlogNotFound
	}

	r.lastPostID++
	p := &Post{
		ID:      r.lastPostID,
		BlogID:  blogID,
		Title:   title,
		Content: content,
	}
	r.posts[p.ID] = p

	c := *p
	return &c, nil
}

func (r *MemRepo) ListPostsByBlog(_ context.Context, blogID int) ([]*Post, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	var posts []*Post
	for _, p := range r.posts {
		if p.BlogID != blogID {
			continue
		}
		c := *p
		posts = append(posts, &c)
	}

	sort.Slice(posts, func(i, j int) bool {
		return posts[i].ID < posts[j].ID
	})

	return posts, nil
}

// sortBlogsByName orders by name (byte order), ties broken by id.
func sortBlogsByName(blogs []*Blog) {
	sort.Slice(blogs, func(i, j int) bool {
		if blogs[i].Name == blogs[j].Name {
			return blogs[i].ID < blogs[j].ID
		}
		return blogs[i].Name < blogs[j].Name
	})
}

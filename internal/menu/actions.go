package menu

import (
	"context"
	"errors"
	"math"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/blogsandposts/internal/blog"
)

func (m *Menu) ListBlogs(ctx context.Context) error {
	blogs, err := m.store.ListBlogs(ctx)
	if err != nil {
		return err
	}

	if len(blogs) == 0 {
		m.print("\nNo blogs exist in the database\n")
		return nil
	}

	m.printf("\n%d blogs found:\n", len(blogs))
	for _, b := range blogs {
		m.printf("%s\n", b.Name)
	}

	return nil
}

func (m *Menu) AddBlog(ctx context.Context) error {
	name, err := m.prompter.ReadNonBlankString("\nEnter a name for a new Blog: ", "Blog name cannot be blank.")
	if err != nil {
		return err
	}

	b, err := m.store.CreateBlog(ctx, name)
	if err != nil {
		return err
	}

	if m.metrics != nil {
		m.metrics.CounterBlogsCreated.Inc()
	}
	log.Infof("blog added - %s", b.Name)

	return nil
}

func (m *Menu) CreatePost(ctx context.Context) error {
	selected, err := m.selectBlog(ctx)
	if errors.Is(err, ErrNoBlogs) {
		m.print("\nNo blogs available, add a blog first\n")
		return nil
	}
	if err != nil {
		return err
	}

	title, err := m.prompter.ReadNonBlankString("Enter the title of the post > ", "Post title cannot be blank.")
	if err != nil {
		return err
	}
	content, err := m.prompter.ReadNonBlankString("Enter the post content > ", "Post content cannot be blank.")
	if err != nil {
		return err
	}

	post, err := m.store.CreatePost(ctx, selected.ID, title, content)
	if err != nil {
		return err
	}

	if m.metrics != nil {
		m.metrics.CounterPostsCreated.Inc()
	}
	log.Infof("post added - %s", post.Title)

	return nil
}

func (m *Menu) ListPosts(ctx context.Context) error {
	selected, err := m.selectBlog(ctx)
	if errors.Is(err, ErrNoBlogs) {
		m.print("\nNo blogs available, add a blog first\n")
		return nil
	}
	if err != nil {
		return err
	}

	posts, err := m.store.ListPostsByBlog(ctx, selected.ID)
	if err != nil {
		return err
	}

	if len(posts) == 0 {
		m.printf("\n%s is empty. Be the first to post!\n", selected.Name)
		return nil
	}

	m.printf("\n%d posts found:\n", len(posts))
	for _, p := range posts {
		m.printf("%s - %s\n\t%s\n", selected.Name, p.Title, p.Content)
	}

	return nil
}

// selectBlog lists all blogs and asks for an id until one of them is picked.
// Ids are not guaranteed to be contiguous, so an id inside [min, max] can
// still miss; that re-prompts. Returns ErrNoBlogs when the store is empty.
func (m *Menu) selectBlog(ctx context.Context) (*blog.Blog, error) {
	blogs, err := m.store.ListBlogs(ctx)
	if err != nil {
		return nil, err
	}
	if len(blogs) == 0 {
		return nil, ErrNoBlogs
	}

	m.print("\nAll blogs:\n")
	minID, maxID := math.MaxInt, math.MinInt
	for _, b := range blogs {
		m.printf("%d) %s\n", b.ID, b.Name)
		minID = min(minID, b.ID)
		maxID = max(maxID, b.ID)
	}

	for {
		id, err := m.prompter.ReadBoundedInt("Enter a blog number: ", minID, maxID, "Invalid blog ID")
		if err != nil {
			return nil, err
		}

		selected, err := m.store.FindBlog(ctx, id)
		if err == nil {
			return selected, nil
		}
		if !errors.Is(err, blog.ErrBlogNotFound) {
			return nil, err
		}

		if m.metrics != nil {
			m.metrics.CounterInvalidInput.Inc()
		}
		m.print("Invalid blog ID\n")
	}
}

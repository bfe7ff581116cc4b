package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/blogsandposts/internal/blog"
	"github.com/2beens/blogsandposts/internal/telemetry/metrics"
)

const (
	OptionExit = iota
	OptionListBlogs
	OptionAddBlog
	OptionCreatePost
	OptionListPosts
)

const menuText = `
1) Display all blogs
2) Add Blog
3) Create Post
4) Display Posts
0) Exit
`

var ErrNoBlogs = errors.New("no blogs available")

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=menu_test

type blogStore interface {
	CreateBlog(ctx context.Context, name string) (*blog.Blog, error)
	ListBlogs(ctx context.Context) ([]*blog.Blog, error)
	FindBlog(ctx context.Context, id int) (*blog.Blog, error)
	CreatePost(ctx context.Context, blogID int, title, content string) (*blog.Post, error)
	ListPostsByBlog(ctx context.Context, blogID int) ([]*blog.Post, error)
}

type prompter interface {
	ReadBoundedInt(prompt string, min, max int, errorMsg string) (int, error)
	ReadNonBlankString(prompt, errorMsg string) (string, error)
}

type Menu struct {
	store    blogStore
	prompter prompter
	out      io.Writer
	metrics  *metrics.Manager
}

func NewMenu(
	store blogStore,
	prompter prompter,
	out io.Writer,
	metricsManager *metrics.Manager,
) *Menu {
	return &Menu{
		store:    store,
		prompter: prompter,
		out:      out,
		metrics:  metricsManager,
	}
}

// Run shows the menu and runs the selected actions until the user picks Exit,
// in which case it returns nil. Any error from an action, including the
// input running out (io.EOF), ends the loop and is returned.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.print(menuText)
		option, err := m.prompter.ReadBoundedInt("", OptionExit, OptionListPosts, "Number must be one of the aforementioned values")
		if err != nil {
			return err
		}

		if option == OptionExit {
			log.Debugln("exit selected")
			return nil
		}

		if err := m.runAction(ctx, option); err != nil {
			return err
		}
	}
}

func (m *Menu) runAction(ctx context.Context, option int) error {
	var name string
	var action func(context.Context) error
	switch option {
	case OptionListBlogs:
		name, action = "list_blogs", m.ListBlogs
	case OptionAddBlog:
		name, action = "add_blog", m.AddBlog
	case OptionCreatePost:
		name, action = "create_post", m.CreatePost
	case OptionListPosts:
		name, action = "list_posts", m.ListPosts
	default:
		return fmt.Errorf("unknown menu option: %d", option)
	}

	start := time.Now()
	err := action(ctx)
	if m.metrics != nil {
		m.metrics.CounterMenuActions.WithLabelValues(name).Inc()
		m.metrics.HistogramActionDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	}
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	return nil
}

func (m *Menu) print(a ...any) {
	_, _ = fmt.Fprint(m.out, a...)
}

func (m *Menu) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(m.out, format, a...)
}

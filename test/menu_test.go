//go:build integration_test || all_tests

package test

import (
	"context"
	"strings"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/2beens/blogsandposts/internal/blog"
	"github.com/2beens/blogsandposts/internal/console"
	"github.com/2beens/blogsandposts/internal/menu"
	"github.com/2beens/blogsandposts/internal/telemetry/metrics"
)

func (s *IntegrationTestSuite) stores() map[string]blog.Store {
	return map[string]blog.Store{
		"postgres": blog.NewPsqlRepo(s.dbPool),
		"redis":    blog.NewRedisRepo(s.redisClient),
	}
}

func (s *IntegrationTestSuite) runMenu(store blog.Store, lines ...string) string {
	out := &strings.Builder{}
	input := strings.NewReader(strings.Join(lines, "\n") + "\n")
	m := menu.NewMenu(store, console.NewPrompter(input, out), out, metrics.NewTestManager())
	s.Require().NoError(m.Run(context.Background()))
	return out.String()
}

func (s *IntegrationTestSuite) TestMenu_AddBlogsAndPosts() {
	for name, store := range s.stores() {
		s.Run(name, func() {
			s.SetupTest()

			title := gofakeit.Sentence(4)
			content := gofakeit.Paragraph(1, 2, 8, " ")

			out := s.runMenu(store,
				"1",
				"2", "Zeta",
				"2", "Alpha",
				"1",
				// Zeta got id 1
				"3", "1", title, content,
				"4", "2",
				"4", "1",
				"0",
			)

			s.Contains(out, "No blogs exist in the database")
			s.Contains(out, "2 blogs found:\nAlpha\nZeta\n")
			s.Contains(out, "All blogs:\n2) Alpha\n1) Zeta\n")
			s.Contains(out, "Alpha is empty. Be the first to post!")
			s.Contains(out, "1 posts found:\n")
			s.Contains(out, "Zeta - "+title+"\n\t"+content+"\n")

			posts, err := store.ListPostsByBlog(context.Background(), 1)
			s.Require().NoError(err)
			s.Require().Len(posts, 1)
			s.Equal(title, posts[0].Title)
		})
	}
}

func (s *IntegrationTestSuite) TestMenu_SelectMissingBlogReprompts() {
	for name, store := range s.stores() {
		s.Run(name, func() {
			s.SetupTest()
			ctx := context.Background()

			for _, n := range []string{"A", "B", "C"} {
				_, err := store.CreateBlog(ctx, n)
				s.Require().NoError(err)
			}

			if name == "postgres" {
				_, err := s.DB.ExecContext(ctx, `DELETE FROM blog WHERE id = 2;`)
				s.Require().NoError(err)
			} else {
				s.Require().NoError(s.redisClient.Del(ctx, "blog::2").Err())
			}

			out := s.runMenu(store,
				"4", "2", "9", "3",
				"0",
			)

			// once for the out of range 9, once for the missing blog 2
			s.Equal(2, strings.Count(out, "Invalid blog ID\n"))
			s.Contains(out, "C is empty. Be the first to post!")
		})
	}
}

func (s *IntegrationTestSuite) TestMenu_CreatePostWithoutBlogs() {
	for name, store := range s.stores() {
		s.Run(name, func() {
			s.SetupTest()

			out := s.runMenu(store, "3", "0")
			s.Contains(out, "No blogs available, add a blog first")
		})
	}
}

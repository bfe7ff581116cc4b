package blog

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runStoreContract checks the behaviour every Store implementation has to share.
// newStore must return an empty store.
func runStoreContract(t *testing.T, newStore func(t *testing.T) Store) {
	t.Helper()

	t.Run("CreateBlog_ListBlogs", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)

		blogs, err := store.ListBlogs(ctx)
		require.NoError(t, err)
		assert.Empty(t, blogs)

		tech, err := store.CreateBlog(ctx, "Tech")
		require.NoError(t, err)
		require.NotNil(t, tech)
		assert.NotZero(t, tech.ID)
		assert.Equal(t, "Tech", tech.Name)

		blogs, err = store.ListBlogs(ctx)
		require.NoError(t, err)
		require.Len(t, blogs, 1)
		assert.Equal(t, tech.ID, blogs[0].ID)
		assert.Equal(t, "Tech", blogs[0].Name)
	})

	t.Run("ListBlogs_OrderedByName", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)

		b, err := store.CreateBlog(ctx, "B")
		require.NoError(t, err)
		a, err := store.CreateBlog(ctx, "A")
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)

		blogs, err := store.ListBlogs(ctx)
		require.NoError(t, err)
		require.Len(t, blogs, 2)
		assert.Equal(t, "A", blogs[0].Name)
		assert.Equal(t, "B", blogs[1].Name)
	})

	t.Run("CreateBlog_DuplicateNamesAllowed", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)

		b1, err := store.CreateBlog(ctx, "Same")
		require.NoError(t, err)
		b2, err := store.CreateBlog(ctx, "Same")
		require.NoError(t, err)
		assert.NotEqual(t, b1.ID, b2.ID)

		blogs, err := store.ListBlogs(ctx)
		require.NoError(t, err)
		assert.Len(t, blogs, 2)
	})

	t.Run("CreateBlog_BlankName", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)

		for _, name := range []string{"", "   ", "\t\n"} {
			b, err := store.CreateBlog(ctx, name)
			assert.ErrorIs(t, err, ErrBlogNameEmpty)
			assert.Nil(t, b)
		}
	})

	t.Run("FindBlog", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)

		name := gofakeit.Company()
		created, err := store.CreateBlog(ctx, name)
		require.NoError(t, err)

		found, err := store.FindBlog(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, found)

		found, err = store.FindBlog(ctx, created.ID+1000)
		assert.ErrorIs(t, err, ErrBlogNotFound)
		assert.Nil(t, found)
	})

	t.Run("CreatePost_ListPostsByBlog", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)

		b1, err := store.CreateBlog(ctx, "first")
		require.NoError(t, err)
		b2, err := store.CreateBlog(ctx, "second")
		require.NoError(t, err)

		title, content := gofakeit.BookTitle(), gofakeit.Sentence(12)
		post, err := store.CreatePost(ctx, b1.ID, title, content)
		require.NoError(t, err)
		require.NotNil(t, post)
		assert.NotZero(t, post.ID)
		assert.Equal(t, b1.ID, post.BlogID)

		posts, err := store.ListPostsByBlog(ctx, b1.ID)
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, post.ID, posts[0].ID)
		assert.Equal(t, b1.ID, posts[0].BlogID)
		assert.Equal(t, title, posts[0].Title)
		assert.Equal(t, content, posts[0].Content)

		posts, err = store.ListPostsByBlog(ctx, b2.ID)
		require.NoError(t, err)
		assert.Empty(t, posts)

		second, err := store.CreatePost(ctx, b1.ID, "second title", "second content")
		require.NoError(t, err)
		posts, err = store.ListPostsByBlog(ctx, b1.ID)
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, post.ID, posts[0].ID)
		assert.Equal(t, second.ID, posts[1].ID)
	})

	t.Run("CreatePost_UnknownBlog", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)

		post, err := store.CreatePost(ctx, 4242, "title", "content")
		assert.ErrorIs(t, err, ErrBlogNotFound)
		assert.Nil(t, post)
	})

	t.Run("CreatePost_BlankTitleOrContent", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)

		b, err := store.CreateBlog(ctx, "blog")
		require.NoError(t, err)

		_, err = store.CreatePost(ctx, b.ID, " ", "content")
		assert.ErrorIs(t, err, ErrPostTitleOrContentEmpty)
		_, err = store.CreatePost(ctx, b.ID, "title", "")
		assert.ErrorIs(t, err, ErrPostTitleOrContentEmpty)

		posts, err := store.ListPostsByBlog(ctx, b.ID)
		require.NoError(t, err)
		assert.Empty(t, posts)
	})
}

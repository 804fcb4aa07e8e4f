package store

import (
	"context"
	"testing"

	gerr "github.com/pcc1news/pcc1-manager/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	_, err := db.db.ExecContext(ctx, `
	INSERT INTO blog_posts (title, slug, excerpt, content, published_at) VALUES
		('Published', 'published', 'short', 'body', '2024-01-02 00:00:00'),
		('Draft', 'draft', NULL, 'body', NULL)`)
	require.NoError(t, err)

	_, err = db.db.ExecContext(ctx, `
	INSERT INTO research_papers (title, authors, category, published_at) VALUES
		('Capture', 'A. Author', 'capture', '2023-05-01 00:00:00'),
		('Soil', 'B. Author', 'soil', '2022-05-01 00:00:00')`)
	require.NoError(t, err)

	posts, err := db.Content().ListBlogPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "published", posts[0].Slug)

	post, err := db.Content().GetBlogPostBySlug(ctx, "published")
	require.NoError(t, err)
	assert.Equal(t, "body", post.Content)

	_, err = db.Content().GetBlogPostBySlug(ctx, "draft")
	assert.ErrorIs(t, err, gerr.ErrNotFound)

	papers, err := db.Content().ListResearchPapers(ctx, "")
	require.NoError(t, err)
	assert.Len(t, papers, 2)

	papers, err = db.Content().ListResearchPapers(ctx, "soil")
	require.NoError(t, err)
	require.Len(t, papers, 1)
	assert.Equal(t, "Soil", papers[0].Title)
}

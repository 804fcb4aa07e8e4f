package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pcc1news/pcc1-manager/internal/dependency"
	"github.com/pcc1news/pcc1-manager/internal/entity"
	gerr "github.com/pcc1news/pcc1-manager/internal/errors"
)

type contentStore struct {
	*MYSQLStore
}

// Content returns an object implementing Content interface
func (ms *MYSQLStore) Content() dependency.Content {
	return &contentStore{
		MYSQLStore: ms,
	}
}

// ListBlogPosts returns published posts, newest first.
func (ms *contentStore) ListBlogPosts(ctx context.Context) ([]entity.BlogPostPreview, error) {
	query := `
	SELECT id, title, slug, excerpt, published_at, author, image_url, doi
	FROM blog_posts
	WHERE published_at IS NOT NULL
	ORDER BY published_at DESC`
	posts, err := QueryListNamed[entity.BlogPostPreview](ctx, ms.DB(), query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}
	return posts, nil
}

func (ms *contentStore) GetBlogPostBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	query := `
	SELECT id, title, slug, excerpt, published_at, author, image_url, doi, content, created_at
	FROM blog_posts
	WHERE slug = :slug AND published_at IS NOT NULL`
	post, err := QueryNamedOne[entity.BlogPost](ctx, ms.DB(), query, map[string]any{
		"slug": slug,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, gerr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get blog post: %w", err)
	}
	return &post, nil
}

// ListResearchPapers returns papers, newest first. An empty category lists all.
func (ms *contentStore) ListResearchPapers(ctx context.Context, category string) ([]entity.ResearchPaper, error) {
	query := `
	SELECT * FROM research_papers
	WHERE (:category = '' OR category = :category)
	ORDER BY published_at DESC, id DESC`
	papers, err := QueryListNamed[entity.ResearchPaper](ctx, ms.DB(), query, map[string]any{
		"category": category,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list research papers: %w", err)
	}
	return papers, nil
}

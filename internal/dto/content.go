package dto

import (
	"database/sql"
	"time"

	"github.com/pcc1news/pcc1-manager/internal/entity"
)

type BlogPostPreview struct {
	Id          int        `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	Author      string     `json:"author,omitempty"`
	ImageURL    string     `json:"image_url,omitempty"`
	Doi         string     `json:"doi,omitempty"`
}

type BlogPost struct {
	BlogPostPreview
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type ResearchPaper struct {
	Id          int        `json:"id"`
	Title       string     `json:"title"`
	Authors     string     `json:"authors"`
	Journal     string     `json:"journal,omitempty"`
	Year        int        `json:"year,omitempty"`
	Doi         string     `json:"doi,omitempty"`
	URL         string     `json:"url,omitempty"`
	Category    string     `json:"category,omitempty"`
	Summary     string     `json:"summary,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

type Feed struct {
	Posts  []BlogPostPreview `json:"posts"`
	Papers []ResearchPaper   `json:"papers"`
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	return &t.Time
}

func EntityBlogPostPreviewToDto(p *entity.BlogPostPreview) BlogPostPreview {
	return BlogPostPreview{
		Id:          p.Id,
		Title:       p.Title,
		Slug:        p.Slug,
		Excerpt:     p.Excerpt.String,
		PublishedAt: nullTime(p.PublishedAt),
		Author:      p.Author.String,
		ImageURL:    p.ImageURL.String,
		Doi:         p.Doi.String,
	}
}

func EntityBlogPostPreviewsToDto(ps []entity.BlogPostPreview) []BlogPostPreview {
	res := make([]BlogPostPreview, 0, len(ps))
	for i := range ps {
		res = append(res, EntityBlogPostPreviewToDto(&ps[i]))
	}
	return res
}

func EntityBlogPostToDto(p *entity.BlogPost) *BlogPost {
	return &BlogPost{
		BlogPostPreview: EntityBlogPostPreviewToDto(&p.BlogPostPreview),
		Content:         p.Content,
		CreatedAt:       p.CreatedAt,
	}
}

func EntityResearchPapersToDto(ps []entity.ResearchPaper) []ResearchPaper {
	res := make([]ResearchPaper, 0, len(ps))
	for _, p := range ps {
		res = append(res, ResearchPaper{
			Id:          p.Id,
			Title:       p.Title,
			Authors:     p.Authors,
			Journal:     p.Journal.String,
			Year:        int(p.Year.Int32),
			Doi:         p.Doi.String,
			URL:         p.URL.String,
			Category:    p.Category.String,
			Summary:     p.Summary.String,
			PublishedAt: nullTime(p.PublishedAt),
		})
	}
	return res
}

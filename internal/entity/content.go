package entity

import (
	"database/sql"
	"time"
)

// BlogPostPreview holds the columns shown in the blog listing.
type BlogPostPreview struct {
	Id          int            `db:"id"`
	Title       string         `db:"title"`
	Slug        string         `db:"slug"`
	Excerpt     sql.NullString `db:"excerpt"`
	PublishedAt sql.NullTime   `db:"published_at"`
	Author      sql.NullString `db:"author"`
	ImageURL    sql.NullString `db:"image_url"`
	Doi         sql.NullString `db:"doi"`
}

type BlogPost struct {
	BlogPostPreview
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
}

type ResearchPaper struct {
	Id          int            `db:"id"`
	Title       string         `db:"title"`
	Authors     string         `db:"authors"`
	Journal     sql.NullString `db:"journal"`
	Year        sql.NullInt32  `db:"year"`
	Doi         sql.NullString `db:"doi"`
	URL         sql.NullString `db:"url"`
	Category    sql.NullString `db:"category"`
	Summary     sql.NullString `db:"summary"`
	PublishedAt sql.NullTime   `db:"published_at"`
}

package model

import (
	"strings"
	"time"
)

// Blog is an article; drafts stay hidden from the public site until published.
type Blog struct {
	Base
	Title       string     `gorm:"not null" json:"title" validate:"required"`
	Slug        string     `gorm:"type:varchar(255);unique;not null" json:"slug" validate:"required"`
	Excerpt     string     `gorm:"type:text" json:"excerpt"`
	Content     string     `gorm:"type:text" json:"content"`
	Author      string     `json:"author"`
	ImageURL    string     `json:"imageUrl"`
	Category    string     `json:"category"`
	IsPublished bool       `gorm:"not null;index" json:"isPublished"`
	PublishedAt *time.Time `json:"publishedAt"`
}

// Normalize trims the title and lower-cases the slug so uniqueness is case-insensitive.
func (b *Blog) Normalize() {
	b.Title = strings.TrimSpace(b.Title)
	b.Slug = strings.ToLower(strings.TrimSpace(b.Slug))
}

// StampPublished sets PublishedAt the first time a post is published.
// An existing timestamp is never overwritten.
func (b *Blog) StampPublished(now time.Time) {
	if b.IsPublished && b.PublishedAt == nil {
		stamped := now
		b.PublishedAt = &stamped
	}
}

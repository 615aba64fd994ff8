package models

import (
	"time"

	"gorm.io/datatypes"
)

type Magazine struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	Title       string     `gorm:"not null" json:"title" validate:"required"`
	Description string     `json:"description"`
	CoverImage  string     `json:"coverImage"`
	IssueNumber int        `json:"issueNumber"`
	PublishDate *time.Time `json:"publishDate,omitempty"`
	Season      string     `json:"season"`
	Year        int        `json:"year"`
	TotalPages  int        `json:"totalPages"`
	PdfURL      string     `json:"pdfUrl"`
	IsActive    bool       `gorm:"default:true" json:"isActive"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type Article struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"not null" json:"title" validate:"required"`
	Author      string    `json:"author"`
	Summary     string    `json:"summary"`
	MagazineID  uint      `gorm:"not null;uniqueIndex:idx_articles_magazine_order" json:"magazineId" validate:"required"`
	Content     string    `json:"content"`
	Order       int       `gorm:"not null;uniqueIndex:idx_articles_magazine_order" json:"order"`
	IsPublished bool      `gorm:"default:false" json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

const (
	ContentTypeText  = "text"
	ContentTypeImage = "image"
	ContentTypeVideo = "video"
)

type ArticleContent struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	ArticleID   uint           `gorm:"not null" json:"articleId" validate:"required"`
	ContentType string         `gorm:"default:text" json:"contentType" validate:"omitempty,oneof=text image video"`
	Content     datatypes.JSON `json:"content"`
	Order       int            `gorm:"default:0" json:"order"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

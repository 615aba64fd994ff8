package models

import "time"

const (
	DocumentStatusPublished = "published"
	DocumentStatusDraft     = "draft"
	DocumentStatusPrivate   = "private"
)

type Document struct {
	ID            uint       `gorm:"primarykey" json:"id"`
	Title         string     `gorm:"not null" json:"title" validate:"required"`
	Slug          string     `gorm:"uniqueIndex;not null" json:"slug"`
	Content       string     `json:"content"`
	Excerpt       string     `json:"excerpt"`
	Author        string     `json:"author"`
	FileName      string     `json:"fileName"`
	FileURL       string     `json:"fileUrl"`
	FileType      string     `json:"fileType"`
	FileSize      int64      `json:"fileSize"`
	TotalPages    *int       `json:"totalPages,omitempty"`
	CategoryID    *uint      `json:"categoryId,omitempty"`
	Status        string     `gorm:"default:draft" json:"status" validate:"omitempty,oneof=published draft private"`
	AllowDownload bool       `gorm:"default:true" json:"allowDownload"`
	DownloadCount int        `gorm:"default:0" json:"downloadCount"`
	ViewCount     int        `gorm:"default:0" json:"viewCount"`
	IsFeatured    bool       `gorm:"default:false" json:"isFeatured"`
	PublishedAt   *time.Time `json:"publishedAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type DocumentCategory struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null" json:"name" validate:"required"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type DocumentTag struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name" validate:"required"`
	CreatedAt time.Time `json:"createdAt"`
}

// DocumentTagRelation joins documents and tags many-to-many.
type DocumentTagRelation struct {
	ID         uint `gorm:"primarykey" json:"id"`
	DocumentID uint `gorm:"not null;uniqueIndex:idx_document_tag" json:"documentId"`
	TagID      uint `gorm:"not null;uniqueIndex:idx_document_tag" json:"tagId"`
}

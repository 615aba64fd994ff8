package store

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/sheidamoradi/danesh-platform/models"
	"github.com/sheidamoradi/danesh-platform/utils"
)

// Document sort keys.
const (
	SortNewest  = "newest"
	SortPopular = "popular"
	SortTitle   = "title"
)

// DocumentFilter narrows ListDocuments. An empty Status defaults to
// published so drafts never leak into public listings.
type DocumentFilter struct {
	CategoryID *uint
	TagID      *uint
	SearchTerm string
	Status     string
	Sort       string
}

// DocumentPatch enumerates the mutable document fields.
type DocumentPatch struct {
	Title         *string    `json:"title"`
	Content       *string    `json:"content"`
	Excerpt       *string    `json:"excerpt"`
	Author        *string    `json:"author"`
	FileName      *string    `json:"fileName"`
	FileURL       *string    `json:"fileUrl"`
	FileType      *string    `json:"fileType"`
	FileSize      *int64     `json:"fileSize"`
	TotalPages    *int       `json:"totalPages"`
	CategoryID    *uint      `json:"categoryId"`
	Status        *string    `json:"status"`
	AllowDownload *bool      `json:"allowDownload"`
	IsFeatured    *bool      `json:"isFeatured"`
	PublishedAt   *time.Time `json:"publishedAt"`
}

func (s *Store) ListDocuments(filter DocumentFilter) ([]models.Document, error) {
	q := s.db.Model(&models.Document{})

	status := filter.Status
	if status == "" {
		status = models.DocumentStatusPublished
	}
	q = q.Where("documents.status = ?", status)

	if filter.CategoryID != nil {
		q = q.Where("documents.category_id = ?", *filter.CategoryID)
	}
	if filter.TagID != nil {
		q = q.Joins("JOIN document_tag_relations rel ON rel.document_id = documents.id").
			Where("rel.tag_id = ?", *filter.TagID)
	}
	if filter.SearchTerm != "" {
		term := "%" + strings.ToLower(filter.SearchTerm) + "%"
		q = q.Where("LOWER(documents.title) LIKE ? OR LOWER(documents.excerpt) LIKE ?", term, term)
	}

	switch filter.Sort {
	case SortPopular:
		q = q.Order("(documents.view_count + documents.download_count) desc")
	case SortTitle:
		q = q.Order("documents.title asc")
	case SortNewest, "":
		q = q.Order("documents.published_at desc")
	default:
		return nil, invalidf("unknown sort %q", filter.Sort)
	}

	var docs []models.Document
	if err := q.Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *Store) GetDocument(id uint) (*models.Document, error) {
	var doc models.Document
	if err := s.db.First(&doc, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &doc, nil
}

func (s *Store) GetDocumentBySlug(slug string) (*models.Document, error) {
	var doc models.Document
	if err := s.db.Where("slug = ?", slug).First(&doc).Error; err != nil {
		return nil, notFound(err)
	}
	return &doc, nil
}

func (s *Store) CreateDocument(doc *models.Document) error {
	if doc.Slug == "" {
		slug, err := s.uniqueDocumentSlug(doc.Title)
		if err != nil {
			return err
		}
		doc.Slug = slug
	}
	if err := s.checkStruct(doc); err != nil {
		return err
	}
	if doc.CategoryID != nil {
		if err := s.documentCategoryExists(*doc.CategoryID); err != nil {
			return err
		}
	}
	if doc.Status == models.DocumentStatusPublished && doc.PublishedAt == nil {
		now := time.Now()
		doc.PublishedAt = &now
	}
	return s.db.Create(doc).Error
}

func (s *Store) UpdateDocument(id uint, patch DocumentPatch) (*models.Document, error) {
	doc, err := s.GetDocument(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Title != nil {
		if *patch.Title == "" {
			return nil, invalidf("title cannot be empty")
		}
		updates["title"] = *patch.Title
	}
	if patch.Content != nil {
		updates["content"] = *patch.Content
	}
	if patch.Excerpt != nil {
		updates["excerpt"] = *patch.Excerpt
	}
	if patch.Author != nil {
		updates["author"] = *patch.Author
	}
	if patch.FileName != nil {
		updates["file_name"] = *patch.FileName
	}
	if patch.FileURL != nil {
		updates["file_url"] = *patch.FileURL
	}
	if patch.FileType != nil {
		updates["file_type"] = *patch.FileType
	}
	if patch.FileSize != nil {
		updates["file_size"] = *patch.FileSize
	}
	if patch.TotalPages != nil {
		updates["total_pages"] = *patch.TotalPages
	}
	if patch.CategoryID != nil {
		if err := s.documentCategoryExists(*patch.CategoryID); err != nil {
			return nil, err
		}
		updates["category_id"] = *patch.CategoryID
	}
	if patch.Status != nil {
		if err := mustBeOneOf("status", *patch.Status,
			models.DocumentStatusPublished, models.DocumentStatusDraft, models.DocumentStatusPrivate); err != nil {
			return nil, err
		}
		updates["status"] = *patch.Status
		if *patch.Status == models.DocumentStatusPublished && doc.PublishedAt == nil && patch.PublishedAt == nil {
			updates["published_at"] = time.Now()
		}
	}
	if patch.AllowDownload != nil {
		updates["allow_download"] = *patch.AllowDownload
	}
	if patch.IsFeatured != nil {
		updates["is_featured"] = *patch.IsFeatured
	}
	if patch.PublishedAt != nil {
		updates["published_at"] = *patch.PublishedAt
	}

	if len(updates) == 0 {
		return doc, nil
	}
	if err := s.db.Model(doc).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetDocument(id)
}

// DeleteDocument removes the document together with its tag relations in one
// transaction.
func (s *Store) DeleteDocument(id uint) (bool, error) {
	var existed bool
	err := s.Transaction(func(tx *Store) error {
		if err := tx.db.Where("document_id = ?", id).
			Delete(&models.DocumentTagRelation{}).Error; err != nil {
			return err
		}
		res := tx.db.Delete(&models.Document{}, id)
		if res.Error != nil {
			return res.Error
		}
		existed = res.RowsAffected > 0
		return nil
	})
	return existed, err
}

// IncrementViewCount bumps the counter atomically in SQL so concurrent
// requests cannot lose updates.
func (s *Store) IncrementViewCount(id uint) error {
	res := s.db.Model(&models.Document{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementDownloadCount bumps the counter atomically; it fails when the
// document forbids downloads.
func (s *Store) IncrementDownloadCount(id uint) error {
	doc, err := s.GetDocument(id)
	if err != nil {
		return err
	}
	if !doc.AllowDownload {
		return invalidf("document %d does not allow downloads", id)
	}
	return s.db.Model(&models.Document{}).Where("id = ?", id).
		UpdateColumn("download_count", gorm.Expr("download_count + 1")).Error
}

func (s *Store) documentCategoryExists(id uint) error {
	var count int64
	if err := s.db.Model(&models.DocumentCategory{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return invalidf("document category %d does not exist", id)
	}
	return nil
}

// uniqueDocumentSlug derives a slug from the title and probes the table,
// appending -2, -3, ... until the candidate is free.
func (s *Store) uniqueDocumentSlug(title string) (string, error) {
	base := utils.Slugify(title)
	if base == "" {
		base = "document"
	}
	candidate := base
	for i := 2; ; i++ {
		var count int64
		if err := s.db.Model(&models.Document{}).
			Where("LOWER(slug) = LOWER(?)", candidate).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

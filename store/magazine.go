package store

import (
	"time"

	"gorm.io/datatypes"

	"github.com/sheidamoradi/danesh-platform/models"
)

// MagazinePatch enumerates the mutable magazine fields.
type MagazinePatch struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	CoverImage  *string    `json:"coverImage"`
	IssueNumber *int       `json:"issueNumber"`
	PublishDate *time.Time `json:"publishDate"`
	Season      *string    `json:"season"`
	Year        *int       `json:"year"`
	TotalPages  *int       `json:"totalPages"`
	PdfURL      *string    `json:"pdfUrl"`
	IsActive    *bool      `json:"isActive"`
}

// ListMagazines returns active issues only; inactivity is a display filter
// applied here at the query layer, not a deletion barrier.
func (s *Store) ListMagazines() ([]models.Magazine, error) {
	var mags []models.Magazine
	err := s.db.Where("is_active = ?", true).
		Order("issue_number desc").
		Find(&mags).Error
	if err != nil {
		return nil, err
	}
	return mags, nil
}

func (s *Store) GetMagazine(id uint) (*models.Magazine, error) {
	var mag models.Magazine
	if err := s.db.First(&mag, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &mag, nil
}

func (s *Store) CreateMagazine(mag *models.Magazine) error {
	if err := s.checkStruct(mag); err != nil {
		return err
	}
	return s.db.Create(mag).Error
}

func (s *Store) UpdateMagazine(id uint, patch MagazinePatch) (*models.Magazine, error) {
	mag, err := s.GetMagazine(id)
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
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.CoverImage != nil {
		updates["cover_image"] = *patch.CoverImage
	}
	if patch.IssueNumber != nil {
		updates["issue_number"] = *patch.IssueNumber
	}
	if patch.PublishDate != nil {
		updates["publish_date"] = *patch.PublishDate
	}
	if patch.Season != nil {
		updates["season"] = *patch.Season
	}
	if patch.Year != nil {
		updates["year"] = *patch.Year
	}
	if patch.TotalPages != nil {
		updates["total_pages"] = *patch.TotalPages
	}
	if patch.PdfURL != nil {
		updates["pdf_url"] = *patch.PdfURL
	}
	if patch.IsActive != nil {
		updates["is_active"] = *patch.IsActive
	}

	if len(updates) == 0 {
		return mag, nil
	}
	if err := s.db.Model(mag).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetMagazine(id)
}

// DeleteMagazine removes the issue, its articles and their contents in a
// single transaction so no orphan rows survive a partial failure.
func (s *Store) DeleteMagazine(id uint) (bool, error) {
	var existed bool
	err := s.Transaction(func(tx *Store) error {
		var articleIDs []uint
		if err := tx.db.Model(&models.Article{}).
			Where("magazine_id = ?", id).
			Pluck("id", &articleIDs).Error; err != nil {
			return err
		}
		if len(articleIDs) > 0 {
			if err := tx.db.Where("article_id IN ?", articleIDs).
				Delete(&models.ArticleContent{}).Error; err != nil {
				return err
			}
			if err := tx.db.Where("magazine_id = ?", id).
				Delete(&models.Article{}).Error; err != nil {
				return err
			}
		}
		res := tx.db.Delete(&models.Magazine{}, id)
		if res.Error != nil {
			return res.Error
		}
		existed = res.RowsAffected > 0
		return nil
	})
	return existed, err
}

// ArticlePatch enumerates the mutable article fields.
type ArticlePatch struct {
	Title       *string `json:"title"`
	Author      *string `json:"author"`
	Summary     *string `json:"summary"`
	Content     *string `json:"content"`
	Order       *int    `json:"order"`
	IsPublished *bool   `json:"isPublished"`
}

func (s *Store) ListArticles() ([]models.Article, error) {
	var articles []models.Article
	if err := s.db.Order("magazine_id asc").Order(`"order" asc`).Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// ListArticlesByMagazine returns an issue's articles in ascending order.
func (s *Store) ListArticlesByMagazine(magazineID uint) ([]models.Article, error) {
	var articles []models.Article
	err := s.db.Where("magazine_id = ?", magazineID).
		Order(`"order" asc`).
		Find(&articles).Error
	if err != nil {
		return nil, err
	}
	return articles, nil
}

func (s *Store) GetArticle(id uint) (*models.Article, error) {
	var article models.Article
	if err := s.db.First(&article, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &article, nil
}

func (s *Store) CreateArticle(article *models.Article) error {
	if err := s.checkStruct(article); err != nil {
		return err
	}
	if _, err := s.GetMagazine(article.MagazineID); err != nil {
		return err
	}
	var count int64
	s.db.Model(&models.Article{}).
		Where(`magazine_id = ? AND "order" = ?`, article.MagazineID, article.Order).
		Count(&count)
	if count > 0 {
		return invalidf("order %d is already taken in this magazine", article.Order)
	}
	return s.db.Create(article).Error
}

func (s *Store) UpdateArticle(id uint, patch ArticlePatch) (*models.Article, error) {
	article, err := s.GetArticle(id)
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
	if patch.Author != nil {
		updates["author"] = *patch.Author
	}
	if patch.Summary != nil {
		updates["summary"] = *patch.Summary
	}
	if patch.Content != nil {
		updates["content"] = *patch.Content
	}
	if patch.IsPublished != nil {
		updates["is_published"] = *patch.IsPublished
	}
	if patch.Order != nil && *patch.Order != article.Order {
		var count int64
		s.db.Model(&models.Article{}).
			Where(`magazine_id = ? AND "order" = ? AND id <> ?`, article.MagazineID, *patch.Order, id).
			Count(&count)
		if count > 0 {
			return nil, invalidf("order %d is already taken in this magazine", *patch.Order)
		}
		updates["order"] = *patch.Order
	}

	if len(updates) == 0 {
		return article, nil
	}
	if err := s.db.Model(article).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetArticle(id)
}

// DeleteArticle removes the article and its content blocks transactionally.
func (s *Store) DeleteArticle(id uint) (bool, error) {
	var existed bool
	err := s.Transaction(func(tx *Store) error {
		if err := tx.db.Where("article_id = ?", id).
			Delete(&models.ArticleContent{}).Error; err != nil {
			return err
		}
		res := tx.db.Delete(&models.Article{}, id)
		if res.Error != nil {
			return res.Error
		}
		existed = res.RowsAffected > 0
		return nil
	})
	return existed, err
}

// ArticleContentPatch enumerates the mutable content-block fields.
type ArticleContentPatch struct {
	ContentType *string         `json:"contentType"`
	Content     *datatypes.JSON `json:"content"`
	Order       *int            `json:"order"`
}

func (s *Store) ListArticleContents(articleID uint) ([]models.ArticleContent, error) {
	var contents []models.ArticleContent
	q := s.db.Model(&models.ArticleContent{})
	if articleID != 0 {
		q = q.Where("article_id = ?", articleID)
	}
	if err := q.Order(`"order" asc`).Find(&contents).Error; err != nil {
		return nil, err
	}
	return contents, nil
}

func (s *Store) GetArticleContent(id uint) (*models.ArticleContent, error) {
	var content models.ArticleContent
	if err := s.db.First(&content, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &content, nil
}

func (s *Store) CreateArticleContent(content *models.ArticleContent) error {
	if err := s.checkStruct(content); err != nil {
		return err
	}
	if _, err := s.GetArticle(content.ArticleID); err != nil {
		return err
	}
	return s.db.Create(content).Error
}

func (s *Store) UpdateArticleContent(id uint, patch ArticleContentPatch) (*models.ArticleContent, error) {
	content, err := s.GetArticleContent(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.ContentType != nil {
		if err := mustBeOneOf("contentType", *patch.ContentType,
			models.ContentTypeText, models.ContentTypeImage, models.ContentTypeVideo); err != nil {
			return nil, err
		}
		updates["content_type"] = *patch.ContentType
	}
	if patch.Content != nil {
		updates["content"] = *patch.Content
	}
	if patch.Order != nil {
		updates["order"] = *patch.Order
	}

	if len(updates) == 0 {
		return content, nil
	}
	if err := s.db.Model(content).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetArticleContent(id)
}

func (s *Store) DeleteArticleContent(id uint) (bool, error) {
	res := s.db.Delete(&models.ArticleContent{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

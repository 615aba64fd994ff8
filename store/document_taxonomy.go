package store

import "github.com/sheidamoradi/danesh-platform/models"

func (s *Store) ListDocumentCategories() ([]models.DocumentCategory, error) {
	var cats []models.DocumentCategory
	if err := s.db.Order("name asc").Find(&cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}

func (s *Store) CreateDocumentCategory(cat *models.DocumentCategory) error {
	if err := s.checkStruct(cat); err != nil {
		return err
	}
	return s.db.Create(cat).Error
}

func (s *Store) ListDocumentTags() ([]models.DocumentTag, error) {
	var tags []models.DocumentTag
	if err := s.db.Order("name asc").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (s *Store) CreateDocumentTag(tag *models.DocumentTag) error {
	if err := s.checkStruct(tag); err != nil {
		return err
	}
	return s.db.Create(tag).Error
}

// TagDocument links a document and a tag; already-linked pairs are a no-op.
func (s *Store) TagDocument(documentID, tagID uint) error {
	if _, err := s.GetDocument(documentID); err != nil {
		return err
	}
	var tagCount int64
	if err := s.db.Model(&models.DocumentTag{}).Where("id = ?", tagID).Count(&tagCount).Error; err != nil {
		return err
	}
	if tagCount == 0 {
		return invalidf("document tag %d does not exist", tagID)
	}
	var count int64
	s.db.Model(&models.DocumentTagRelation{}).
		Where("document_id = ? AND tag_id = ?", documentID, tagID).Count(&count)
	if count > 0 {
		return nil
	}
	return s.db.Create(&models.DocumentTagRelation{DocumentID: documentID, TagID: tagID}).Error
}

func (s *Store) UntagDocument(documentID, tagID uint) (bool, error) {
	res := s.db.Where("document_id = ? AND tag_id = ?", documentID, tagID).
		Delete(&models.DocumentTagRelation{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

package store

import "github.com/sheidamoradi/danesh-platform/models"

// WorkshopPatch enumerates the mutable workshop fields.
type WorkshopPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Thumbnail   *string `json:"thumbnail"`
	Instructor  *string `json:"instructor"`
	IsLocked    *bool   `json:"isLocked"`
}

func (s *Store) ListWorkshops() ([]models.Workshop, error) {
	var workshops []models.Workshop
	if err := s.db.Order("id asc").Find(&workshops).Error; err != nil {
		return nil, err
	}
	return workshops, nil
}

func (s *Store) GetWorkshop(id uint) (*models.Workshop, error) {
	var workshop models.Workshop
	if err := s.db.First(&workshop, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &workshop, nil
}

func (s *Store) CreateWorkshop(workshop *models.Workshop) error {
	if err := s.checkStruct(workshop); err != nil {
		return err
	}
	return s.db.Create(workshop).Error
}

func (s *Store) UpdateWorkshop(id uint, patch WorkshopPatch) (*models.Workshop, error) {
	workshop, err := s.GetWorkshop(id)
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
	if patch.Thumbnail != nil {
		updates["thumbnail"] = *patch.Thumbnail
	}
	if patch.Instructor != nil {
		updates["instructor"] = *patch.Instructor
	}
	if patch.IsLocked != nil {
		updates["is_locked"] = *patch.IsLocked
	}

	if len(updates) == 0 {
		return workshop, nil
	}
	if err := s.db.Model(workshop).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetWorkshop(id)
}

// DeleteWorkshop removes the workshop with its sections and contents in one
// transaction.
func (s *Store) DeleteWorkshop(id uint) (bool, error) {
	var existed bool
	err := s.Transaction(func(tx *Store) error {
		if err := tx.db.Where("workshop_id = ?", id).
			Delete(&models.WorkshopContent{}).Error; err != nil {
			return err
		}
		if err := tx.db.Where("workshop_id = ?", id).
			Delete(&models.WorkshopSection{}).Error; err != nil {
			return err
		}
		res := tx.db.Delete(&models.Workshop{}, id)
		if res.Error != nil {
			return res.Error
		}
		existed = res.RowsAffected > 0
		return nil
	})
	return existed, err
}

// WorkshopSectionPatch enumerates the mutable section fields.
type WorkshopSectionPatch struct {
	Title *string `json:"title"`
	Order *int    `json:"order"`
}

func (s *Store) ListWorkshopSections(workshopID uint) ([]models.WorkshopSection, error) {
	var sections []models.WorkshopSection
	q := s.db.Model(&models.WorkshopSection{})
	if workshopID != 0 {
		q = q.Where("workshop_id = ?", workshopID)
	}
	if err := q.Order(`"order" asc`).Find(&sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}

func (s *Store) GetWorkshopSection(id uint) (*models.WorkshopSection, error) {
	var section models.WorkshopSection
	if err := s.db.First(&section, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &section, nil
}

func (s *Store) CreateWorkshopSection(section *models.WorkshopSection) error {
	if err := s.checkStruct(section); err != nil {
		return err
	}
	if _, err := s.GetWorkshop(section.WorkshopID); err != nil {
		return err
	}
	var count int64
	s.db.Model(&models.WorkshopSection{}).
		Where(`workshop_id = ? AND "order" = ?`, section.WorkshopID, section.Order).
		Count(&count)
	if count > 0 {
		return invalidf("order %d is already taken in this workshop", section.Order)
	}
	return s.db.Create(section).Error
}

func (s *Store) UpdateWorkshopSection(id uint, patch WorkshopSectionPatch) (*models.WorkshopSection, error) {
	section, err := s.GetWorkshopSection(id)
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
	if patch.Order != nil && *patch.Order != section.Order {
		var count int64
		s.db.Model(&models.WorkshopSection{}).
			Where(`workshop_id = ? AND "order" = ? AND id <> ?`, section.WorkshopID, *patch.Order, id).
			Count(&count)
		if count > 0 {
			return nil, invalidf("order %d is already taken in this workshop", *patch.Order)
		}
		updates["order"] = *patch.Order
	}

	if len(updates) == 0 {
		return section, nil
	}
	if err := s.db.Model(section).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetWorkshopSection(id)
}

func (s *Store) DeleteWorkshopSection(id uint) (bool, error) {
	res := s.db.Delete(&models.WorkshopSection{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// WorkshopContentPatch enumerates the mutable content fields.
type WorkshopContentPatch struct {
	SectionID *uint   `json:"sectionId"`
	Title     *string `json:"title"`
	Type      *string `json:"type"`
	Content   *string `json:"content"`
	Duration  *string `json:"duration"`
	IsLocked  *bool   `json:"isLocked"`
	Order     *int    `json:"order"`
}

func (s *Store) ListWorkshopContents(workshopID uint) ([]models.WorkshopContent, error) {
	var contents []models.WorkshopContent
	q := s.db.Model(&models.WorkshopContent{})
	if workshopID != 0 {
		q = q.Where("workshop_id = ?", workshopID)
	}
	if err := q.Order(`"order" asc`).Find(&contents).Error; err != nil {
		return nil, err
	}
	return contents, nil
}

func (s *Store) GetWorkshopContent(id uint) (*models.WorkshopContent, error) {
	var content models.WorkshopContent
	if err := s.db.First(&content, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &content, nil
}

func (s *Store) CreateWorkshopContent(content *models.WorkshopContent) error {
	if err := s.checkStruct(content); err != nil {
		return err
	}
	if _, err := s.GetWorkshop(content.WorkshopID); err != nil {
		return err
	}
	if content.SectionID != nil {
		if _, err := s.GetWorkshopSection(*content.SectionID); err != nil {
			return err
		}
	}
	var count int64
	s.db.Model(&models.WorkshopContent{}).
		Where(`workshop_id = ? AND "order" = ?`, content.WorkshopID, content.Order).
		Count(&count)
	if count > 0 {
		return invalidf("order %d is already taken in this workshop", content.Order)
	}
	return s.db.Create(content).Error
}

func (s *Store) UpdateWorkshopContent(id uint, patch WorkshopContentPatch) (*models.WorkshopContent, error) {
	content, err := s.GetWorkshopContent(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.SectionID != nil {
		if _, err := s.GetWorkshopSection(*patch.SectionID); err != nil {
			return nil, err
		}
		updates["section_id"] = *patch.SectionID
	}
	if patch.Title != nil {
		if *patch.Title == "" {
			return nil, invalidf("title cannot be empty")
		}
		updates["title"] = *patch.Title
	}
	if patch.Type != nil {
		if err := mustBeOneOf("type", *patch.Type, "text", "video", "pdf"); err != nil {
			return nil, err
		}
		updates["type"] = *patch.Type
	}
	if patch.Content != nil {
		updates["content"] = *patch.Content
	}
	if patch.Duration != nil {
		updates["duration"] = *patch.Duration
	}
	if patch.IsLocked != nil {
		updates["is_locked"] = *patch.IsLocked
	}
	if patch.Order != nil && *patch.Order != content.Order {
		var count int64
		s.db.Model(&models.WorkshopContent{}).
			Where(`workshop_id = ? AND "order" = ? AND id <> ?`, content.WorkshopID, *patch.Order, id).
			Count(&count)
		if count > 0 {
			return nil, invalidf("order %d is already taken in this workshop", *patch.Order)
		}
		updates["order"] = *patch.Order
	}

	if len(updates) == 0 {
		return content, nil
	}
	if err := s.db.Model(content).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetWorkshopContent(id)
}

func (s *Store) DeleteWorkshopContent(id uint) (bool, error) {
	res := s.db.Delete(&models.WorkshopContent{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

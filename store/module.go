package store

import "github.com/sheidamoradi/danesh-platform/models"

// ModulePatch enumerates the mutable module fields.
type ModulePatch struct {
	Title    *string `json:"title"`
	Duration *string `json:"duration"`
	Type     *string `json:"type"`
	Content  *string `json:"content"`
	IsLocked *bool   `json:"isLocked"`
	Order    *int    `json:"order"`
}

// ListModulesByCourse returns a course's modules in traversal order.
func (s *Store) ListModulesByCourse(courseID uint) ([]models.Module, error) {
	var mods []models.Module
	err := s.db.Where("course_id = ?", courseID).
		Order(`"order" asc`).
		Find(&mods).Error
	if err != nil {
		return nil, err
	}
	return mods, nil
}

func (s *Store) GetModule(id uint) (*models.Module, error) {
	var mod models.Module
	if err := s.db.First(&mod, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &mod, nil
}

func (s *Store) CreateModule(mod *models.Module) error {
	if err := s.checkStruct(mod); err != nil {
		return err
	}
	if _, err := s.GetCourse(mod.CourseID); err != nil {
		return err
	}
	var count int64
	s.db.Model(&models.Module{}).
		Where(`course_id = ? AND "order" = ?`, mod.CourseID, mod.Order).
		Count(&count)
	if count > 0 {
		return invalidf("order %d is already taken in this course", mod.Order)
	}
	return s.db.Create(mod).Error
}

func (s *Store) UpdateModule(id uint, patch ModulePatch) (*models.Module, error) {
	mod, err := s.GetModule(id)
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
	if patch.Duration != nil {
		updates["duration"] = *patch.Duration
	}
	if patch.Type != nil {
		updates["type"] = *patch.Type
	}
	if patch.Content != nil {
		updates["content"] = *patch.Content
	}
	if patch.IsLocked != nil {
		updates["is_locked"] = *patch.IsLocked
	}
	if patch.Order != nil && *patch.Order != mod.Order {
		var count int64
		s.db.Model(&models.Module{}).
			Where(`course_id = ? AND "order" = ? AND id <> ?`, mod.CourseID, *patch.Order, id).
			Count(&count)
		if count > 0 {
			return nil, invalidf("order %d is already taken in this course", *patch.Order)
		}
		updates["order"] = *patch.Order
	}

	if len(updates) == 0 {
		return mod, nil
	}
	if err := s.db.Model(mod).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetModule(id)
}

func (s *Store) DeleteModule(id uint) (bool, error) {
	res := s.db.Delete(&models.Module{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

package store

import (
	"gorm.io/datatypes"

	"github.com/sheidamoradi/danesh-platform/models"
)

// SlidePatch enumerates the mutable slide fields.
type SlidePatch struct {
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	ImageURL    *string         `json:"imageUrl"`
	ButtonText  *string         `json:"buttonText"`
	ButtonURL   *string         `json:"buttonUrl"`
	IsActive    *bool           `json:"isActive"`
	Order       *int            `json:"order"`
	Gradient    *datatypes.JSON `json:"gradient"`
	IconName    *string         `json:"iconName"`
}

func (s *Store) ListSlides() ([]models.Slide, error) {
	var slides []models.Slide
	if err := s.db.Order(`"order" asc`).Find(&slides).Error; err != nil {
		return nil, err
	}
	return slides, nil
}

// ActiveSlides returns the slides shown on the landing page, display order.
func (s *Store) ActiveSlides() ([]models.Slide, error) {
	var slides []models.Slide
	err := s.db.Where("is_active = ?", true).
		Order(`"order" asc`).
		Find(&slides).Error
	if err != nil {
		return nil, err
	}
	return slides, nil
}

func (s *Store) GetSlide(id uint) (*models.Slide, error) {
	var slide models.Slide
	if err := s.db.First(&slide, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &slide, nil
}

func (s *Store) CreateSlide(slide *models.Slide) error {
	if err := s.checkStruct(slide); err != nil {
		return err
	}
	return s.db.Create(slide).Error
}

func (s *Store) UpdateSlide(id uint, patch SlidePatch) (*models.Slide, error) {
	slide, err := s.GetSlide(id)
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
	if patch.ImageURL != nil {
		updates["image_url"] = *patch.ImageURL
	}
	if patch.ButtonText != nil {
		updates["button_text"] = *patch.ButtonText
	}
	if patch.ButtonURL != nil {
		updates["button_url"] = *patch.ButtonURL
	}
	if patch.IsActive != nil {
		updates["is_active"] = *patch.IsActive
	}
	if patch.Order != nil {
		updates["order"] = *patch.Order
	}
	if patch.Gradient != nil {
		updates["gradient"] = *patch.Gradient
	}
	if patch.IconName != nil {
		updates["icon_name"] = *patch.IconName
	}

	if len(updates) == 0 {
		return slide, nil
	}
	if err := s.db.Model(slide).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetSlide(id)
}

func (s *Store) DeleteSlide(id uint) (bool, error) {
	res := s.db.Delete(&models.Slide{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

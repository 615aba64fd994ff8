package store

import "github.com/sheidamoradi/danesh-platform/models"

// MediaContentPatch enumerates the mutable media fields.
type MediaContentPatch struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	ContentURL      *string `json:"contentUrl"`
	Duration        *string `json:"duration"`
	InstructorName  *string `json:"instructorName"`
	InstructorTitle *string `json:"instructorTitle"`
}

func (s *Store) ListMediaContents() ([]models.MediaContent, error) {
	var media []models.MediaContent
	if err := s.db.Order("id asc").Find(&media).Error; err != nil {
		return nil, err
	}
	return media, nil
}

func (s *Store) GetMediaContent(id uint) (*models.MediaContent, error) {
	var media models.MediaContent
	if err := s.db.First(&media, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &media, nil
}

func (s *Store) CreateMediaContent(media *models.MediaContent) error {
	if err := s.checkStruct(media); err != nil {
		return err
	}
	return s.db.Create(media).Error
}

func (s *Store) UpdateMediaContent(id uint, patch MediaContentPatch) (*models.MediaContent, error) {
	media, err := s.GetMediaContent(id)
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
	if patch.ContentURL != nil {
		updates["content_url"] = *patch.ContentURL
	}
	if patch.Duration != nil {
		updates["duration"] = *patch.Duration
	}
	if patch.InstructorName != nil {
		updates["instructor_name"] = *patch.InstructorName
	}
	if patch.InstructorTitle != nil {
		updates["instructor_title"] = *patch.InstructorTitle
	}

	if len(updates) == 0 {
		return media, nil
	}
	if err := s.db.Model(media).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetMediaContent(id)
}

func (s *Store) DeleteMediaContent(id uint) (bool, error) {
	res := s.db.Delete(&models.MediaContent{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

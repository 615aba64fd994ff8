package store

import (
	"strings"
	"time"

	"github.com/sheidamoradi/danesh-platform/models"
)

// ProjectFilter narrows ListProjects.
type ProjectFilter struct {
	Type       string
	SearchTerm string
}

// ProjectPatch enumerates the mutable project fields.
type ProjectPatch struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Thumbnail   *string    `json:"thumbnail"`
	Type        *string    `json:"type"`
	DueDate     *time.Time `json:"dueDate"`
	Pages       *int       `json:"pages"`
	Content     *string    `json:"content"`
	IsLocked    *bool      `json:"isLocked"`
}

func (s *Store) ListProjects(filter ProjectFilter) ([]models.Project, error) {
	q := s.db.Model(&models.Project{})
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.SearchTerm != "" {
		term := "%" + strings.ToLower(filter.SearchTerm) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", term, term)
	}

	var projects []models.Project
	if err := q.Order("id asc").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *Store) GetProject(id uint) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &project, nil
}

func (s *Store) CreateProject(project *models.Project) error {
	if err := s.checkStruct(project); err != nil {
		return err
	}
	return s.db.Create(project).Error
}

func (s *Store) UpdateProject(id uint, patch ProjectPatch) (*models.Project, error) {
	project, err := s.GetProject(id)
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
	if patch.Type != nil {
		if err := mustBeOneOf("type", *patch.Type, "project", "magazine", "webinar"); err != nil {
			return nil, err
		}
		updates["type"] = *patch.Type
	}
	if patch.DueDate != nil {
		updates["due_date"] = *patch.DueDate
	}
	if patch.Pages != nil {
		updates["pages"] = *patch.Pages
	}
	if patch.Content != nil {
		updates["content"] = *patch.Content
	}
	if patch.IsLocked != nil {
		updates["is_locked"] = *patch.IsLocked
	}

	if len(updates) == 0 {
		return project, nil
	}
	if err := s.db.Model(project).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetProject(id)
}

func (s *Store) DeleteProject(id uint) (bool, error) {
	res := s.db.Delete(&models.Project{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

package store

import (
	"strings"

	"github.com/sheidamoradi/danesh-platform/models"
)

// CourseFilter narrows ListCourses. SearchTerm matches title or description,
// case-insensitive substring.
type CourseFilter struct {
	Category    string
	AccessLevel string
	SearchTerm  string
}

// CoursePatch enumerates the mutable course fields. Nil means "leave as is".
type CoursePatch struct {
	Title            *string  `json:"title"`
	Description      *string  `json:"description"`
	Thumbnail        *string  `json:"thumbnail"`
	TotalModules     *int     `json:"totalModules"`
	CompletedModules *int     `json:"completedModules"`
	Category         *string  `json:"category"`
	Level            *string  `json:"level"`
	IsNew            *bool    `json:"isNew"`
	IsPopular        *bool    `json:"isPopular"`
	AccessLevel      *string  `json:"accessLevel"`
	Price            *float64 `json:"price"`
	IsLocked         *bool    `json:"isLocked"`
}

func (s *Store) ListCourses(filter CourseFilter) ([]models.Course, error) {
	q := s.db.Model(&models.Course{})
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.AccessLevel != "" {
		q = q.Where("access_level = ?", filter.AccessLevel)
	}
	if filter.SearchTerm != "" {
		term := "%" + strings.ToLower(filter.SearchTerm) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", term, term)
	}

	var courses []models.Course
	if err := q.Order("id asc").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *Store) GetCourse(id uint) (*models.Course, error) {
	var course models.Course
	if err := s.db.First(&course, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &course, nil
}

func (s *Store) CreateCourse(course *models.Course) error {
	if err := s.checkStruct(course); err != nil {
		return err
	}
	if course.CompletedModules > course.TotalModules {
		return invalidf("completedModules cannot exceed totalModules")
	}
	return s.db.Create(course).Error
}

func (s *Store) UpdateCourse(id uint, patch CoursePatch) (*models.Course, error) {
	course, err := s.GetCourse(id)
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
	if patch.Category != nil {
		updates["category"] = *patch.Category
	}
	if patch.Level != nil {
		if err := mustBeOneOf("level", *patch.Level, "Beginner", "Intermediate", "Advanced"); err != nil {
			return nil, err
		}
		updates["level"] = *patch.Level
	}
	if patch.IsNew != nil {
		updates["is_new"] = *patch.IsNew
	}
	if patch.IsPopular != nil {
		updates["is_popular"] = *patch.IsPopular
	}
	if patch.AccessLevel != nil {
		if err := mustBeOneOf("accessLevel", *patch.AccessLevel,
			models.AccessLevelFree, models.AccessLevelPremium, models.AccessLevelVIP); err != nil {
			return nil, err
		}
		updates["access_level"] = *patch.AccessLevel
	}
	if patch.Price != nil {
		updates["price"] = *patch.Price
	}
	if patch.IsLocked != nil {
		updates["is_locked"] = *patch.IsLocked
	}

	total := course.TotalModules
	if patch.TotalModules != nil {
		if *patch.TotalModules < 0 {
			return nil, invalidf("totalModules cannot be negative")
		}
		total = *patch.TotalModules
		updates["total_modules"] = total
	}
	completed := course.CompletedModules
	if patch.CompletedModules != nil {
		if *patch.CompletedModules < 0 {
			return nil, invalidf("completedModules cannot be negative")
		}
		completed = *patch.CompletedModules
		updates["completed_modules"] = completed
	}
	if completed > total {
		return nil, invalidf("completedModules cannot exceed totalModules")
	}

	if len(updates) == 0 {
		return course, nil
	}
	if err := s.db.Model(course).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetCourse(id)
}

func (s *Store) DeleteCourse(id uint) (bool, error) {
	res := s.db.Delete(&models.Course{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// UpdateProgress is the single mutation path for course progress. Values
// outside [0,100] are rejected and leave the row untouched.
func (s *Store) UpdateProgress(courseID uint, progress int) (*models.Course, error) {
	if progress < 0 || progress > 100 {
		return nil, invalidf("progress must be between 0 and 100")
	}
	course, err := s.GetCourse(courseID)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(course).Update("progress", progress).Error; err != nil {
		return nil, err
	}
	course.Progress = progress
	return course, nil
}

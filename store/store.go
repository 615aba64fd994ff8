package store

import (
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/sheidamoradi/danesh-platform/models"
)

// Store wraps an injected gorm connection. All reads and writes of the
// catalog go through it; ids are assigned by the database and never reused.
type Store struct {
	db       *gorm.DB
	validate *validator.Validate
}

func New(db *gorm.DB) *Store {
	return &Store{
		db:       db,
		validate: validator.New(),
	}
}

// AutoMigrate creates or updates the tables for every entity.
func (s *Store) AutoMigrate() error {
	return s.db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Module{},
		&models.Project{},
		&models.Document{},
		&models.DocumentCategory{},
		&models.DocumentTag{},
		&models.DocumentTagRelation{},
		&models.MediaContent{},
		&models.Magazine{},
		&models.Article{},
		&models.ArticleContent{},
		&models.Workshop{},
		&models.WorkshopSection{},
		&models.WorkshopContent{},
		&models.Slide{},
		&models.UserCourseAccess{},
	)
}

// Transaction runs fn against a store bound to a single transaction.
func (s *Store) Transaction(fn func(tx *Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx, validate: s.validate})
	})
}

// checkStruct runs validator tags and converts failures into ValidationError.
func (s *Store) checkStruct(v interface{}) error {
	if err := s.validate.Struct(v); err != nil {
		return &ValidationError{Message: err.Error()}
	}
	return nil
}

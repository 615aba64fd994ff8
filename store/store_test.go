package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sheidamoradi/danesh-platform/models"
)

// newTestStore opens a per-test in-memory database and migrates the schema.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	s := New(db)
	require.NoError(t, s.AutoMigrate())
	return s
}

func createTestUser(t *testing.T, s *Store, username, role string) *models.User {
	t.Helper()
	user := &models.User{
		Username:     username,
		PasswordHash: "x",
		Name:         username,
		Role:         role,
	}
	require.NoError(t, s.CreateUser(user))
	return user
}

func createTestCourse(t *testing.T, s *Store, course models.Course) *models.Course {
	t.Helper()
	require.NoError(t, s.CreateCourse(&course))
	return &course
}

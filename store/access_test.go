package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheidamoradi/danesh-platform/models"
)

func TestCanAccessUnlockedContent(t *testing.T) {
	s := newTestStore(t)
	course := createTestCourse(t, s, models.Course{Title: "Open", IsLocked: false})

	// Unlocked content is open to everyone, even anonymous requests.
	decision, err := s.CanAccess(nil, course)
	require.NoError(t, err)
	assert.Equal(t, AccessAllowed, decision)

	user := createTestUser(t, s, "sara", models.RoleUser)
	decision, err = s.CanAccess(user, course)
	require.NoError(t, err)
	assert.Equal(t, AccessAllowed, decision)
}

func TestCanAccessLockedWithoutGrant(t *testing.T) {
	s := newTestStore(t)
	course := createTestCourse(t, s, models.Course{Title: "Locked", IsLocked: true})
	user := createTestUser(t, s, "sara", models.RoleUser)

	decision, err := s.CanAccess(user, course)
	require.NoError(t, err)
	assert.Equal(t, AccessLocked, decision)

	decision, err = s.CanAccess(nil, course)
	require.NoError(t, err)
	assert.Equal(t, AccessLocked, decision)
}

func TestCanAccessWithGrant(t *testing.T) {
	s := newTestStore(t)
	course := createTestCourse(t, s, models.Course{Title: "Locked", IsLocked: true})
	user := createTestUser(t, s, "sara", models.RoleUser)

	_, err := s.GrantAccess(user.ID, course.ID, models.AccessTypePurchased, nil)
	require.NoError(t, err)

	decision, err := s.CanAccess(user, course)
	require.NoError(t, err)
	assert.Equal(t, AccessAllowed, decision)
}

func TestCanAccessExpiredTrial(t *testing.T) {
	s := newTestStore(t)
	course := createTestCourse(t, s, models.Course{Title: "Locked", IsLocked: true})
	user := createTestUser(t, s, "sara", models.RoleUser)

	expiry := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := s.GrantAccess(user.ID, course.ID, models.AccessTypeTrial, &expiry)
	require.NoError(t, err)

	decision, err := s.CanAccess(user, course)
	require.NoError(t, err)
	assert.Equal(t, AccessExpired, decision)
}

func TestCanAccessAdminBypass(t *testing.T) {
	s := newTestStore(t)
	course := createTestCourse(t, s, models.Course{Title: "Locked", IsLocked: true})
	admin := createTestUser(t, s, "boss", models.RoleAdmin)

	decision, err := s.CanAccess(admin, course)
	require.NoError(t, err)
	assert.Equal(t, AccessAllowed, decision)
}

func TestCanAccessLockedModuleFollowsCourseGrant(t *testing.T) {
	s := newTestStore(t)
	course := createTestCourse(t, s, models.Course{Title: "C", IsLocked: true})
	mod := &models.Module{CourseID: course.ID, Title: "m", Order: 1, IsLocked: true}
	require.NoError(t, s.CreateModule(mod))
	user := createTestUser(t, s, "sara", models.RoleUser)

	decision, err := s.CanAccess(user, mod)
	require.NoError(t, err)
	assert.Equal(t, AccessLocked, decision)

	_, err = s.GrantAccess(user.ID, course.ID, models.AccessTypeGranted, nil)
	require.NoError(t, err)

	decision, err = s.CanAccess(user, mod)
	require.NoError(t, err)
	assert.Equal(t, AccessAllowed, decision)
}

func TestGrantAccessUpsert(t *testing.T) {
	s := newTestStore(t)
	course := createTestCourse(t, s, models.Course{Title: "C", IsLocked: true})
	user := createTestUser(t, s, "sara", models.RoleUser)

	first, err := s.GrantAccess(user.ID, course.ID, models.AccessTypeTrial, nil)
	require.NoError(t, err)

	second, err := s.GrantAccess(user.ID, course.ID, models.AccessTypePurchased, nil)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, models.AccessTypePurchased, second.AccessType)

	grants, err := s.ListAccessByUser(user.ID)
	require.NoError(t, err)
	assert.Len(t, grants, 1)
}

func TestGrantAccessValidation(t *testing.T) {
	s := newTestStore(t)
	course := createTestCourse(t, s, models.Course{Title: "C"})
	user := createTestUser(t, s, "sara", models.RoleUser)

	_, err := s.GrantAccess(user.ID, course.ID, "vip", nil)
	assert.True(t, IsValidation(err))

	_, err = s.GrantAccess(999, course.ID, models.AccessTypeGranted, nil)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.GrantAccess(user.ID, 999, models.AccessTypeGranted, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRevokeAccess(t *testing.T) {
	s := newTestStore(t)
	course := createTestCourse(t, s, models.Course{Title: "C", IsLocked: true})
	user := createTestUser(t, s, "sara", models.RoleUser)

	_, err := s.GrantAccess(user.ID, course.ID, models.AccessTypeGranted, nil)
	require.NoError(t, err)

	existed, err := s.RevokeAccess(user.ID, course.ID)
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = s.RevokeAccess(user.ID, course.ID)
	require.NoError(t, err)
	assert.False(t, existed)

	decision, err := s.CanAccess(user, course)
	require.NoError(t, err)
	assert.Equal(t, AccessLocked, decision)
}

package store

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/sheidamoradi/danesh-platform/models"
)

// AccessDecision is the outcome of an access check.
type AccessDecision string

const (
	AccessAllowed AccessDecision = "allowed"
	AccessLocked  AccessDecision = "locked"
	AccessExpired AccessDecision = "expired"
)

// Gated is content guarded by an isLocked flag, optionally unlockable through
// a course grant.
type Gated interface {
	// Gate returns the lock flag and the course whose grant unlocks the
	// content; a zero course id means no grant can unlock it.
	Gate() (locked bool, courseID uint)
}

// CanAccess decides whether user may view content. Unlocked content is open
// to everyone, admins bypass locks, and everything else depends on the
// user's course grant and its expiry.
func (s *Store) CanAccess(user *models.User, content Gated) (AccessDecision, error) {
	locked, courseID := content.Gate()
	if !locked {
		return AccessAllowed, nil
	}
	if user == nil {
		return AccessLocked, nil
	}
	if user.IsAdmin() {
		return AccessAllowed, nil
	}
	if courseID == 0 {
		return AccessLocked, nil
	}

	var grant models.UserCourseAccess
	err := s.db.Where("user_id = ? AND course_id = ?", user.ID, courseID).
		First(&grant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AccessLocked, nil
		}
		return AccessLocked, err
	}
	if !grant.IsActive {
		return AccessLocked, nil
	}
	if grant.Expired(time.Now()) {
		return AccessExpired, nil
	}
	return AccessAllowed, nil
}

// GrantAccess upserts the grant for (userID, courseID): a repeated grant
// overwrites the previous one, last write wins.
func (s *Store) GrantAccess(userID, courseID uint, accessType string, expiry *time.Time) (*models.UserCourseAccess, error) {
	if accessType == "" {
		accessType = models.AccessTypeGranted
	}
	if err := mustBeOneOf("accessType", accessType,
		models.AccessTypeGranted, models.AccessTypePurchased, models.AccessTypeTrial); err != nil {
		return nil, err
	}
	if _, err := s.GetUser(userID); err != nil {
		return nil, err
	}
	if _, err := s.GetCourse(courseID); err != nil {
		return nil, err
	}

	// A backdated expiry is legal: the grant lands already expired and
	// CanAccess reports it as such.
	now := time.Now()

	var grant models.UserCourseAccess
	err := s.db.Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&grant).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		grant = models.UserCourseAccess{
			UserID:       userID,
			CourseID:     courseID,
			AccessType:   accessType,
			PurchaseDate: now,
			ExpiryDate:   expiry,
			IsActive:     true,
		}
		if err := s.db.Create(&grant).Error; err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		grant.AccessType = accessType
		grant.PurchaseDate = now
		grant.ExpiryDate = expiry
		grant.IsActive = true
		if err := s.db.Save(&grant).Error; err != nil {
			return nil, err
		}
	}
	return &grant, nil
}

// RevokeAccess removes the grant; true iff one existed.
func (s *Store) RevokeAccess(userID, courseID uint) (bool, error) {
	res := s.db.Where("user_id = ? AND course_id = ?", userID, courseID).
		Delete(&models.UserCourseAccess{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ListAccessByUser returns every grant held by a user.
func (s *Store) ListAccessByUser(userID uint) ([]models.UserCourseAccess, error) {
	var grants []models.UserCourseAccess
	err := s.db.Where("user_id = ?", userID).
		Order("course_id asc").
		Find(&grants).Error
	if err != nil {
		return nil, err
	}
	return grants, nil
}

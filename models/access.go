package models

import "time"

const (
	AccessTypeGranted   = "granted"
	AccessTypePurchased = "purchased"
	AccessTypeTrial     = "trial"
)

// UserCourseAccess is the grant/revoke join between a user and a course.
// One row per (user, course); grants are upserted, last write wins.
type UserCourseAccess struct {
	ID           uint       `gorm:"primarykey" json:"id"`
	UserID       uint       `gorm:"not null;uniqueIndex:idx_user_course" json:"userId"`
	CourseID     uint       `gorm:"not null;uniqueIndex:idx_user_course" json:"courseId"`
	AccessType   string     `gorm:"default:granted" json:"accessType" validate:"omitempty,oneof=granted purchased trial"`
	PurchaseDate time.Time  `json:"purchaseDate"`
	ExpiryDate   *time.Time `json:"expiryDate,omitempty"`
	IsActive     bool       `gorm:"default:true" json:"isActive"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// Expired reports whether the grant has an expiry in the past relative to now.
func (a *UserCourseAccess) Expired(now time.Time) bool {
	return a.ExpiryDate != nil && now.After(*a.ExpiryDate)
}

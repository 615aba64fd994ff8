package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	Username       string    `gorm:"uniqueIndex;not null" json:"username" validate:"required"`
	PasswordHash   string    `gorm:"not null" json:"-"`
	Name           string    `json:"name"`
	Role           string    `gorm:"default:user" json:"role" validate:"omitempty,oneof=user admin"`
	MembershipType string    `json:"membershipType"`
	Progress       int       `gorm:"default:0" json:"progress" validate:"min=0,max=100"` // overall
	Avatar         string    `json:"avatar,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

package models

import "time"

type Project struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	Title       string     `gorm:"not null" json:"title" validate:"required"`
	Description string     `json:"description"`
	Thumbnail   string     `json:"thumbnail"`
	Type        string     `gorm:"default:project" json:"type" validate:"omitempty,oneof=project magazine webinar"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Pages       *int       `json:"pages,omitempty"`
	Content     string     `json:"content"`
	IsLocked    bool       `gorm:"default:false" json:"isLocked"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Gate reports the lock flag; projects have no unlocking course.
func (p *Project) Gate() (bool, uint) { return p.IsLocked, 0 }

package models

import "time"

const (
	AccessLevelFree    = "free"
	AccessLevelPremium = "premium"
	AccessLevelVIP     = "vip"
)

type Course struct {
	ID               uint      `gorm:"primarykey" json:"id"`
	Title            string    `gorm:"not null" json:"title" validate:"required"`
	Description      string    `json:"description"`
	Thumbnail        string    `json:"thumbnail"`
	Progress         int       `gorm:"default:0" json:"progress" validate:"min=0,max=100"`
	TotalModules     int       `gorm:"default:0" json:"totalModules" validate:"min=0"`
	CompletedModules int       `gorm:"default:0" json:"completedModules" validate:"min=0"`
	Category         string    `json:"category"`
	Level            string    `json:"level,omitempty" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	IsNew            bool      `gorm:"default:false" json:"isNew"`
	IsPopular        bool      `gorm:"default:false" json:"isPopular"`
	AccessLevel      string    `gorm:"default:free" json:"accessLevel" validate:"omitempty,oneof=free premium vip"`
	Price            *float64  `json:"price,omitempty" validate:"omitempty,min=0"`
	IsLocked         bool      `gorm:"default:false" json:"isLocked"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Gate reports the lock flag and the course whose grant unlocks it.
func (c *Course) Gate() (bool, uint) { return c.IsLocked, c.ID }

type Module struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CourseID  uint      `gorm:"not null;uniqueIndex:idx_modules_course_order" json:"courseId" validate:"required"`
	Title     string    `gorm:"not null" json:"title" validate:"required"`
	Duration  string    `json:"duration"`
	Type      string    `json:"type"` // video, pdf, ...
	Content   string    `json:"content"`
	IsLocked  bool      `gorm:"default:false" json:"isLocked"`
	Order     int       `gorm:"not null;uniqueIndex:idx_modules_course_order" json:"order" validate:"min=0"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Gate reports the lock flag; a module is unlocked by its course's grant.
func (m *Module) Gate() (bool, uint) { return m.IsLocked, m.CourseID }

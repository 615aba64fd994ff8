package models

import "time"

type Workshop struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"not null" json:"title" validate:"required"`
	Description string    `json:"description"`
	Thumbnail   string    `json:"thumbnail"`
	Instructor  string    `json:"instructor"`
	IsLocked    bool      `gorm:"default:false" json:"isLocked"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Gate reports the lock flag; workshops have no unlocking course.
func (w *Workshop) Gate() (bool, uint) { return w.IsLocked, 0 }

type WorkshopSection struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	WorkshopID uint      `gorm:"not null;uniqueIndex:idx_workshop_sections_order" json:"workshopId" validate:"required"`
	Title      string    `gorm:"not null" json:"title" validate:"required"`
	Order      int       `gorm:"not null;uniqueIndex:idx_workshop_sections_order" json:"order" validate:"min=0"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type WorkshopContent struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	WorkshopID uint      `gorm:"not null;uniqueIndex:idx_workshop_contents_order" json:"workshopId" validate:"required"`
	SectionID  *uint     `json:"sectionId,omitempty"`
	Title      string    `gorm:"not null" json:"title" validate:"required"`
	Type       string    `gorm:"default:text" json:"type" validate:"omitempty,oneof=text video pdf"`
	Content    string    `json:"content"`
	Duration   string    `json:"duration"`
	IsLocked   bool      `gorm:"default:false" json:"isLocked"`
	Order      int       `gorm:"not null;uniqueIndex:idx_workshop_contents_order" json:"order" validate:"min=0"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (w *WorkshopContent) Gate() (bool, uint) { return w.IsLocked, 0 }

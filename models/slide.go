package models

import (
	"time"

	"gorm.io/datatypes"
)

type Slide struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Title       string         `gorm:"not null" json:"title" validate:"required"`
	Description string         `json:"description"`
	ImageURL    string         `json:"imageUrl"`
	ButtonText  string         `json:"buttonText"`
	ButtonURL   string         `json:"buttonUrl"`
	IsActive    bool           `gorm:"default:true" json:"isActive"`
	Order       int            `gorm:"default:0" json:"order"`
	Gradient    datatypes.JSON `json:"gradient"` // {"from":"#...","to":"#..."}
	IconName    string         `json:"iconName"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

package models

import "time"

type MediaContent struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	Title           string    `gorm:"not null" json:"title" validate:"required"`
	Description     string    `json:"description"`
	ContentURL      string    `json:"contentUrl"`
	Duration        string    `json:"duration"`
	InstructorName  string    `json:"instructorName"`
	InstructorTitle string    `json:"instructorTitle"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

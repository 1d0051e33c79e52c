package models

import "time"

type Product struct {
	ID          uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string      `gorm:"not null" json:"title"`
	Description string      `gorm:"type:text" json:"description"`
	Color       string      `gorm:"index" json:"color"`
	Views       int64       `gorm:"not null;default:0" json:"views"`
	ImageURLs   StringArray `json:"image_url"`
	ImageNames  StringArray `json:"image_name"`
	CategoryID  uint        `gorm:"not null;index" json:"category_id"`
	Category    *Category   `json:"category,omitempty"`
	Reviews     []Review    `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

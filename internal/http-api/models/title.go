package models

import "time"

type Title struct {
	ID          int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string     `json:"name" gorm:"not null;size:256;index"`
	Year        int        `json:"year" gorm:"not null"`
	Description string     `json:"description,omitempty" gorm:"size:2000"`
	CategoryID  int64      `json:"category_id" gorm:"not null;index"`
	CreatedAt   *time.Time `json:"created_at,omitempty" gorm:"autoCreateTime"`

	// associations
	Category Category `json:"category" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE;"`
	Genres   []Genre  `json:"genres,omitempty" gorm:"many2many:genre_titles;constraint:OnDelete:CASCADE;"`
}

func (Title) TableName() string {
	return "titles"
}

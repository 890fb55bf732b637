package models

// explicit join model so the (title, genre) pair can carry a unique constraint
type GenreTitle struct {
	ID      int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	TitleID int64 `json:"title_id" gorm:"index;not null;uniqueIndex:idx_unique_genre_title"`
	GenreID int64 `json:"genre_id" gorm:"index;not null;uniqueIndex:idx_unique_genre_title"`
}

func (GenreTitle) TableName() string {
	return "genre_titles"
}

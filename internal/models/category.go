package models

// Category groups games, e.g. "Strategy" or "RPG".
type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"type:varchar(255);not null;uniqueIndex"`
}

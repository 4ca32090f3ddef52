package models

// Game represents a rentable board game title. StockTotal is the number of
// copies the shop owns; PricePerDay is charged per rented day.
type Game struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null;uniqueIndex"`
	Image       string    `json:"image" gorm:"type:text"`
	StockTotal  int       `json:"stockTotal" gorm:"not null"`
	CategoryID  uint      `json:"categoryId" gorm:"not null;index"`
	PricePerDay int       `json:"pricePerDay" gorm:"not null"`
	Category    *Category `json:"-"`
}

// GameListing is a game joined with the name of its category.
type GameListing struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Image        string `json:"image"`
	StockTotal   int    `json:"stockTotal"`
	CategoryID   uint   `json:"categoryId"`
	PricePerDay  int    `json:"pricePerDay"`
	CategoryName string `json:"categoryName"`
}

package models

// Rental is a loan of one game copy to one customer.
//
// Dates are kept in the non-padded YYYY-M-D form. ReturnDate and DelayFee stay
// nil until the rental is returned.
type Rental struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	CustomerID    uint      `json:"customerId" gorm:"not null;index"`
	GameID        uint      `json:"gameId" gorm:"not null;index"`
	RentDate      string    `json:"rentDate" gorm:"type:varchar(10);not null"`
	DaysRented    int       `json:"daysRented" gorm:"not null"`
	ReturnDate    *string   `json:"returnDate" gorm:"type:varchar(10)"`
	OriginalPrice int       `json:"originalPrice" gorm:"not null"`
	DelayFee      *int      `json:"delayFee"`
	Customer      *Customer `json:"-"`
	Game          *Game     `json:"-"`
}

// Returned reports whether the rental has already been given back.
func (r *Rental) Returned() bool {
	return r.ReturnDate != nil
}

// RentalCustomer is the customer summary embedded in a rental listing.
type RentalCustomer struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// RentalGame is the game summary embedded in a rental listing.
type RentalGame struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	CategoryID   uint   `json:"categoryId"`
	CategoryName string `json:"categoryName"`
}

// RentalDetail is a rental joined with its customer and game.
type RentalDetail struct {
	ID            uint           `json:"id"`
	CustomerID    uint           `json:"customerId"`
	GameID        uint           `json:"gameId"`
	RentDate      string         `json:"rentDate"`
	DaysRented    int            `json:"daysRented"`
	ReturnDate    *string        `json:"returnDate"`
	OriginalPrice int            `json:"originalPrice"`
	DelayFee      *int           `json:"delayFee"`
	Customer      RentalCustomer `json:"customer"`
	Game          RentalGame     `json:"game"`
}

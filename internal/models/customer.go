package models

import "time"

// Customer represents a shop customer, keyed by their CPF.
type Customer struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	Name     string    `json:"name" gorm:"type:varchar(255);not null"`
	Phone    string    `json:"phone" gorm:"type:varchar(11);not null"`
	CPF      string    `json:"cpf" gorm:"column:cpf;type:varchar(11);not null;uniqueIndex"`
	Birthday time.Time `json:"birthday" gorm:"type:date;not null"`
}

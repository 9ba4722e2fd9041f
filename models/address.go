package models

import "time"

type Address struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        uint      `gorm:"index;not null" json:"userId"`
	Label         string    `json:"label"` // e.g. "Home", "Office"
	FullName      string    `gorm:"not null" json:"fullName"`
	Phone         string    `gorm:"not null" json:"phone"`
	StreetAddress string    `gorm:"not null" json:"streetAddress"`
	City          string    `gorm:"not null" json:"city"`
	State         string    `gorm:"not null" json:"state"`
	PostalCode    string    `gorm:"not null" json:"postalCode"`
	Country       string    `gorm:"not null;default:'United States'" json:"country"`
	IsDefault     bool      `gorm:"default:false" json:"isDefault"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

package models

import "time"

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	ClerkID   string         `gorm:"uniqueIndex;not null" json:"clerkId"` // id issued by the identity provider, immutable
	Email     string         `gorm:"uniqueIndex;not null" json:"email"`
	Name      string         `json:"name"`
	ImageURL  string         `json:"imageUrl"`
	Role      UserRole       `gorm:"type:VARCHAR(16);default:'user'" json:"role"`
	IsActive  bool           `gorm:"default:true" json:"isActive"`
	Addresses []Address      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"addresses,omitempty"`
	Wishlist  []WishlistItem `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"wishlist,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

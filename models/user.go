package models

import (
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Phone     string    `json:"phone"`
	Name      string    `json:"name"`
	Picture   string    `json:"picture"`
	Provider  string    `json:"provider"`
	Role      Role      `gorm:"type:VARCHAR(20);default:'customer'" json:"role"`
	Address   Address   `gorm:"embedded" json:"address"`
	Cart      Cart      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"cart"`
	Orders    []Order   `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"orders"`
	CreatedAt time.Time `json:"created_at"`
}

// Address is embedded in User and snapshotted onto orders at checkout.
type Address struct {
	FullName   string `json:"full_name"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// SaveAddress persists a shipping address to the user's profile for reuse.
func SaveAddress(db *gorm.DB, userID string, addr Address) error {
	return db.Model(&User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"full_name":   addr.FullName,
		"street":      addr.Street,
		"city":        addr.City,
		"state":       addr.State,
		"postal_code": addr.PostalCode,
		"country":     addr.Country,
	}).Error
}

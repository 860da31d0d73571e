package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"        json:"id"`
	Email        string    `gorm:"uniqueIndex;not null"        json:"email"`
	PasswordHash string    `gorm:"not null"                    json:"-"`
	Role         string    `gorm:"not null;default:seller"     json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	Products []Product `gorm:"foreignKey:SellerID;constraint:OnDelete:CASCADE" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

type Product struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"          json:"id"`
	Name      string    `gorm:"not null"                      json:"name"`
	SKU       string    `gorm:"uniqueIndex;not null"          json:"sku"`
	Quantity  int       `gorm:"not null"                      json:"quantity"`
	Price     float64   `gorm:"type:decimal(10,2);not null"   json:"price"`
	SellerID  uuid.UUID `gorm:"type:uuid;index;not null"      json:"sellerId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Seller *User `gorm:"foreignKey:SellerID" json:"seller,omitempty"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

package entity

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Property struct {
	gorm.Model
	Type       string `gorm:"not null" json:"type"`
	RentalType string `gorm:"default:SHORT_TERM" json:"rentalType"`

	TitleRo       string `gorm:"not null" json:"titleRo"`
	TitleEn       string `gorm:"not null" json:"titleEn"`
	DescriptionRo string `json:"descriptionRo"`
	DescriptionEn string `json:"descriptionEn"`

	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`

	Price float64 `json:"price"`

	Images    datatypes.JSONSlice[string] `json:"images"`
	Amenities datatypes.JSONSlice[string] `json:"amenities"`

	ContactPhone string `json:"contactPhone"`
	ContactEmail string `json:"contactEmail"`

	Status            string `gorm:"not null;default:PENDING;index" json:"status"`
	IsActive          bool   `gorm:"default:true" json:"isActive"`
	PromotionOrder    *int   `json:"promotionOrder"`
	IsLocationOfMonth bool   `gorm:"default:false" json:"isLocationOfMonth"`

	UserID uint `json:"userId"` // owner (users.id)
	User   User `json:"-"`
}

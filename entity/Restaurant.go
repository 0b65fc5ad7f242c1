package entity

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	PriceRange string `gorm:"not null;default:MODERATE" json:"priceRange"`

	TitleRo       string `gorm:"not null" json:"titleRo"`
	TitleEn       string `gorm:"not null" json:"titleEn"`
	DescriptionRo string `json:"descriptionRo"`
	DescriptionEn string `json:"descriptionEn"`

	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`

	Images datatypes.JSONSlice[string] `json:"images"`

	ContactPhone string `json:"contactPhone"`
	ContactEmail string `json:"contactEmail"`

	Status            string `gorm:"not null;default:PENDING;index" json:"status"`
	IsActive          bool   `gorm:"default:true" json:"isActive"`
	PromotionOrder    *int   `json:"promotionOrder"`
	IsLocationOfMonth bool   `gorm:"default:false" json:"isLocationOfMonth"`

	UserID uint `json:"userId"`
	User   User `json:"-"`
}

package entity

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Service is a bookable activity or trade listing (ski school, guide, taxi...).
type Service struct {
	gorm.Model
	Category string `gorm:"not null;index" json:"category"`

	TitleRo       string `gorm:"not null" json:"titleRo"`
	TitleEn       string `gorm:"not null" json:"titleEn"`
	DescriptionRo string `json:"descriptionRo"`
	DescriptionEn string `json:"descriptionEn"`

	// Optional, some services have no fixed location
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Address   string   `json:"address"`

	Price *float64 `json:"price"`

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

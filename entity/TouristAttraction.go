package entity

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TouristAttraction is a static informational listing: no owner, no
// moderation lifecycle, managed by admins only.
type TouristAttraction struct {
	gorm.Model
	TitleRo       string `gorm:"not null" json:"titleRo"`
	TitleEn       string `gorm:"not null" json:"titleEn"`
	DescriptionRo string `json:"descriptionRo"`
	DescriptionEn string `json:"descriptionEn"`

	Latitude  float64 `gorm:"not null" json:"latitude"`
	Longitude float64 `gorm:"not null" json:"longitude"`
	Address   string  `json:"address"`

	Images datatypes.JSONSlice[string] `json:"images"`

	IsLocationOfMonth bool `gorm:"default:false" json:"isLocationOfMonth"`
}
